package renderer

import "errors"

var (
	ErrNoLights       = errors.New("renderer: scene has no lights")
	ErrInvalidScene   = errors.New("renderer: invalid scene")
	ErrBudgetExceeded = errors.New("renderer: time budget exceeded before first iteration completed")
)
