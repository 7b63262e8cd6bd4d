package palette

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	ErrInvalidStops = errors.New("invalid color stops")
	ErrOutOfRange   = errors.New("iteration out of range")
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA returns c as a fully opaque image/color value.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Func adapts an ordinary function to the mapper interface consumed by the
// escape engine.
type Func func(iteration int) (RGB, error)

func (f Func) Color(iteration int) (RGB, error) {
	return f(iteration)
}

// Grayscale maps 0 to black and maxIterations to white. Every call fails
// with ErrOutOfRange when maxIterations is not positive.
func Grayscale(maxIterations int) Func {
	return func(iteration int) (RGB, error) {
		if maxIterations <= 0 {
			return RGB{}, fmt.Errorf("%w: max iterations %d", ErrOutOfRange, maxIterations)
		}
		if iteration < 0 || iteration > maxIterations {
			return RGB{}, fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, iteration, maxIterations)
		}

		y := uint8(iteration * 255 / maxIterations)
		return RGB{R: y, G: y, B: y}, nil
	}
}
