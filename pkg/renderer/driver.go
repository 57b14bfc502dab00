// Package renderer drives the render loop: for each iteration, for each
// pixel, invoke the selected estimator and accumulate its result into the
// framebuffer, in parallel across tile-owning workers.
package renderer

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/cornellgo/pathtracer/pkg/framebuffer"
	"github.com/cornellgo/pathtracer/pkg/integrator"
	"github.com/cornellgo/pathtracer/pkg/rlog"
	"github.com/cornellgo/pathtracer/pkg/scene"
	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Options configures a render run. Either Iterations or TimeBudget selects
// the stopping condition; TimeBudget, when positive, overrides Iterations.
//
// MinPathLength and MaxPathLength are carried through from config.RenderConfig
// and stored on the Driver, but per spec.md §4.D.3 no estimator consults
// them — Russian roulette is the only termination rule the path tracer
// uses. They exist here purely so the driver's configuration surface
// matches the source's, unused as the source itself leaves them.
type Options struct {
	Width, Height int
	Iterations    int
	TimeBudget    time.Duration
	NumWorkers    int
	TileHeight    int
	BaseSeed      int64
	MinPathLength int
	MaxPathLength int
}

// Driver owns a scene, an estimator, and a framebuffer, and runs the
// iterate-over-pixels render loop described in the concurrency model: one
// estimator instance and one seeded sampler per worker, no cross-thread
// communication within an iteration, cancellation checked only between
// iterations.
type Driver struct {
	opts     Options
	sc       scene.Scene
	est      integrator.Estimator
	fb       *framebuffer.Framebuffer
	log      *rlog.Logger
	progress *rlog.ProgressLogger
	tiles    []framebuffer.Tile
	workers  int
}

// New validates opts against sc and constructs a Driver, or fails with
// ErrNoLights/ErrInvalidScene if the scene cannot be rendered.
func New(sc scene.Scene, est integrator.Estimator, opts Options) (*Driver, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidScene
	}
	if sc.Lights().Count() == 0 {
		if _, hasEnv := sc.Environment(); !hasEnv {
			return nil, ErrNoLights
		}
	}

	workers := opts.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	tileHeight := opts.TileHeight
	if tileHeight <= 0 {
		tileHeight = maxInt(1, opts.Height/workers)
	}

	log := rlog.Get("renderer")
	return &Driver{
		opts:     opts,
		sc:       sc,
		est:      est,
		fb:       framebuffer.New(opts.Width, opts.Height),
		log:      log,
		progress: rlog.NewProgressLogger(log, 2*time.Second),
		tiles:    framebuffer.Tiles(opts.Width, opts.Height, tileHeight),
		workers:  workers,
	}, nil
}

// Run executes the render loop and returns the accumulated, scaled
// framebuffer. ctx cancellation is honored between iterations only.
func (d *Driver) Run(ctx context.Context) (*framebuffer.Framebuffer, error) {
	deadline := time.Time{}
	if d.opts.TimeBudget > 0 {
		deadline = time.Now().Add(d.opts.TimeBudget)
	}

	completed := 0
	for i := 0; ; i++ {
		if d.opts.TimeBudget <= 0 && i >= d.opts.Iterations {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			d.log.Warningf("render cancelled after %d iterations", completed)
			return d.finish(completed), ctx.Err()
		default:
		}

		d.runIteration(i)
		completed++

		total := d.opts.Iterations
		if d.opts.TimeBudget > 0 {
			total = 0 // open-ended: only the time budget decides when this loop stops
		}
		d.progress.Report(i, total)
	}

	if completed == 0 {
		return nil, ErrBudgetExceeded
	}

	d.log.Infof("completed %d iterations", completed)
	return d.finish(completed), nil
}

func (d *Driver) finish(iterations int) *framebuffer.Framebuffer {
	d.fb.Scale(1.0 / float64(iterations))
	return d.fb
}

// runIteration renders one full frame's worth of samples: one tile per
// goroutine, each with its own seeded sampler, writing into disjoint
// framebuffer regions.
func (d *Driver) runIteration(iteration int) {
	var wg sync.WaitGroup
	for tileIdx, tile := range d.tiles {
		wg.Add(1)
		go func(tileIdx int, tile framebuffer.Tile) {
			defer wg.Done()
			seed := xmath.MixSeed(d.opts.BaseSeed, iteration, tileIdx)
			sampler := xmath.NewSampler(seed)
			d.renderTile(tile, sampler)
		}(tileIdx, tile)
	}
	wg.Wait()
}

func (d *Driver) renderTile(tile framebuffer.Tile, sampler xmath.Sampler) {
	cam := d.sc.Camera()
	w, h := float64(d.opts.Width), float64(d.opts.Height)

	for y := tile.Y0; y < tile.Y1; y++ {
		for x := tile.X0; x < tile.X1; x++ {
			r := sampler.Get2D()
			s := (float64(x) + r.X) / w
			t := (float64(y) + r.Y) / h

			ray := cam.GetRay(s, t)
			color := d.est.Estimate(ray, d.sc, sampler)
			d.fb.Add(xmath.NewVec2(float64(x), float64(y)), color)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
