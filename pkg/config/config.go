// Package config parses and validates the CLI-facing render configuration:
// scene preset, estimator choice, iteration/time budget, and output path.
package config

import (
	"fmt"
	"strings"
	"time"
)

// EstimatorKind selects which of the three estimators the driver runs.
type EstimatorKind int

const (
	EstimatorEyeLight EstimatorKind = iota
	EstimatorDirectMIS
	EstimatorPathTracer
)

// ParseEstimator maps the -a acronym to an EstimatorKind.
func ParseEstimator(acronym string) (EstimatorKind, error) {
	switch acronym {
	case "el":
		return EstimatorEyeLight, nil
	case "di":
		return EstimatorDirectMIS, nil
	case "pt":
		return EstimatorPathTracer, nil
	default:
		return 0, fmt.Errorf("unknown estimator acronym %q (want el, di, or pt)", acronym)
	}
}

// MediaMode is the participating-media flag: accepted by the CLI for
// compatibility with the source's configuration surface, but never honored
// by the core estimators (volumetric scattering is a non-goal).
type MediaMode int

const (
	MediaNone MediaMode = iota
	MediaGrid
	MediaIsotropic
)

// ParseMedia maps the -v acronym to a MediaMode.
func ParseMedia(acronym string) (MediaMode, error) {
	switch acronym {
	case "":
		return MediaNone, nil
	case "gh":
		return MediaGrid, nil
	case "iso":
		return MediaIsotropic, nil
	default:
		return 0, fmt.Errorf("unknown media acronym %q (want gh or iso)", acronym)
	}
}

// RenderConfig is the fully validated set of options a render run needs.
//
// MinPathLength and MaxPathLength mirror the source configuration's path
// length bounds. Per spec.md §4.D.3 they are accepted and threaded through
// to the driver but never consulted by the core estimators — Russian
// roulette alone provides unbiased termination, with no depth cap. There
// is no CLI flag for either; they exist so the config/driver plumbing
// carries the same fields the original configuration surface did.
type RenderConfig struct {
	SceneID       int
	Estimator     EstimatorKind
	Media         MediaMode
	Iterations    int
	TimeBudget    time.Duration
	Output        string
	Width         int
	Height        int
	MinPathLength int
	MaxPathLength int
}

// Default returns the CLI's documented defaults: 1 iteration, path tracer,
// scene 0, 512x512, output "out.bmp".
func Default() RenderConfig {
	return RenderConfig{
		SceneID:       0,
		Estimator:     EstimatorPathTracer,
		Media:         MediaNone,
		Iterations:    1,
		Output:        "out.bmp",
		Width:         512,
		Height:        512,
		MinPathLength: 0,
		MaxPathLength: 0,
	}
}

// Validate checks the fully populated config for the invariants the driver
// relies on: bounded scene id, positive iteration count unless a time
// budget is set, non-negative time budget, positive resolution, and a
// non-empty output path.
func (c RenderConfig) Validate() error {
	if c.SceneID < 0 || c.SceneID > 7 {
		return fmt.Errorf("scene id %d out of range [0,7]", c.SceneID)
	}
	if c.Iterations <= 0 && c.TimeBudget <= 0 {
		return fmt.Errorf("iteration count must be positive when no time budget is set")
	}
	if c.TimeBudget < 0 {
		return fmt.Errorf("time budget must be non-negative")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}

// ResolvedOutput appends ".bmp" when the output path carries neither a
// ".bmp" nor ".hdr" extension, per the CLI's documented fallback.
func (c RenderConfig) ResolvedOutput() string {
	lower := strings.ToLower(c.Output)
	if strings.HasSuffix(lower, ".bmp") || strings.HasSuffix(lower, ".hdr") {
		return c.Output
	}
	return c.Output + ".bmp"
}
