package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/cornellgo/pathtracer/pkg/config"
	"github.com/cornellgo/pathtracer/pkg/integrator"
	"github.com/cornellgo/pathtracer/pkg/renderer"
	"github.com/cornellgo/pathtracer/pkg/rlog"
	"github.com/cornellgo/pathtracer/pkg/scene"
)

const (
	exitOK       = 0
	exitUsage    = 1
	exitIOFailed = 2
)

var log = rlog.Get("main")

func main() {
	app := cli.NewApp()
	app.Name = "cornellgo"
	app.Usage = "render the Cornell box with a Monte Carlo light-transport estimator"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "s", Value: 0, Usage: "scene preset id, 0..7"},
		cli.StringFlag{Name: "a", Value: "pt", Usage: "estimator: el (eye-light), di (direct-MIS), pt (path tracer)"},
		cli.StringFlag{Name: "v", Value: "", Usage: "participating-media mode: gh or iso (accepted, not honored)"},
		cli.IntFlag{Name: "i", Value: 1, Usage: "iteration count"},
		cli.Float64Flag{Name: "t", Value: 0, Usage: "wall-clock time budget in seconds; overrides -i when set"},
		cli.StringFlag{Name: "o", Value: "out.bmp", Usage: "output path (.bmp or .hdr)"},
	}
	var ctx *cli.Context
	app.Action = func(c *cli.Context) error {
		ctx = c
		return run(c)
	}

	if err := app.Run(os.Args); err != nil {
		if _, ok := err.(ioError); ok {
			log.Errorf("%v", err)
			os.Exit(exitIOFailed)
		}
		log.Errorf("%v", err)
		if ctx != nil {
			cli.ShowAppHelp(ctx)
		}
		os.Exit(exitUsage)
	}
	os.Exit(exitOK)
}

// ioError marks a failure writing the output image, distinct from a usage
// error, so main can select exit code 2 instead of 1.
type ioError struct{ err error }

func (e ioError) Error() string { return e.err.Error() }
func (e ioError) Unwrap() error { return e.err }

func run(c *cli.Context) error {
	cfg := config.Default()
	cfg.SceneID = c.Int("s")
	cfg.Iterations = c.Int("i")
	cfg.Output = c.String("o")
	if seconds := c.Float64("t"); seconds > 0 {
		cfg.TimeBudget = time.Duration(seconds * float64(time.Second))
	}

	estimatorKind, err := config.ParseEstimator(c.String("a"))
	if err != nil {
		return err
	}
	cfg.Estimator = estimatorKind

	mediaMode, err := config.ParseMedia(c.String("v"))
	if err != nil {
		return err
	}
	cfg.Media = mediaMode

	if err := cfg.Validate(); err != nil {
		return err
	}

	sc, err := scene.NewCornellScene(cfg.SceneID, float64(cfg.Width)/float64(cfg.Height))
	if err != nil {
		return err
	}

	est := selectEstimator(cfg.Estimator)

	drv, err := renderer.New(sc, est, renderer.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Iterations:    cfg.Iterations,
		TimeBudget:    cfg.TimeBudget,
		MinPathLength: cfg.MinPathLength,
		MaxPathLength: cfg.MaxPathLength,
	})
	if err != nil {
		return err
	}

	log.Infof("rendering scene %d with estimator %q", cfg.SceneID, c.String("a"))
	start := time.Now()
	fb, err := drv.Run(context.Background())
	if err != nil {
		return err
	}
	log.Infof("render finished in %v", time.Since(start))

	outPath := cfg.ResolvedOutput()
	if err := fb.Save(outPath); err != nil {
		return ioError{err: fmt.Errorf("write %s: %w", outPath, err)}
	}
	log.Infof("wrote %s", outPath)
	return nil
}

func selectEstimator(kind config.EstimatorKind) integrator.Estimator {
	switch kind {
	case config.EstimatorEyeLight:
		return integrator.EyeLight{}
	case config.EstimatorDirectMIS:
		return integrator.DirectMIS{}
	default:
		return integrator.PathTracer{}
	}
}
