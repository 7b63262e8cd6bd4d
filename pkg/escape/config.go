package escape

import (
	"errors"
	"fmt"

	"github.com/willbeason/progressive-mandelbrot/pkg/plane"
)

var (
	ErrInvalidConfig    = errors.New("invalid config")
	ErrColorMapperFault = errors.New("color mapper fault")
)

// Config fixes everything an Engine needs at construction. It is copied into
// the Engine and never consulted again from outside.
type Config struct {
	Grid          plane.Grid
	Window        plane.Window
	MaxIterations int

	// Workers is the number of goroutines a Step fans out to.
	// Values below 2 step on the calling goroutine.
	Workers int
}

func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidConfig, c.MaxIterations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}
