package plane

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidGrid   = errors.New("invalid grid")
	ErrInvalidWindow = errors.New("invalid plane window")
)

// Window is a rectangular region of the complex plane.
// Real parts run along X, imaginary parts along Y.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (w Window) Width() float64 {
	return w.XMax - w.XMin
}

func (w Window) Height() float64 {
	return w.YMax - w.YMin
}

// Validate reports whether the window has positive, finite extent on both axes.
func (w Window) Validate() error {
	for _, v := range []float64{w.XMin, w.XMax, w.YMin, w.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bounds must be finite, got %+v", ErrInvalidWindow, w)
		}
	}

	if w.XMin >= w.XMax {
		return fmt.Errorf("%w: x_min %g must be less than x_max %g", ErrInvalidWindow, w.XMin, w.XMax)
	}
	if w.YMin >= w.YMax {
		return fmt.Errorf("%w: y_min %g must be less than y_max %g", ErrInvalidWindow, w.YMin, w.YMax)
	}

	return nil
}

func (w Window) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", w.XMin, w.XMax, w.YMin, w.YMax)
}

// Grid is the pixel raster laid over a Window.
type Grid struct {
	Width, Height int
}

func (g Grid) Total() int {
	return g.Width * g.Height
}

// Validate rejects grids with a single row or column, since the mapping
// divides by Width-1 and Height-1.
func (g Grid) Validate() error {
	if g.Width <= 1 {
		return fmt.Errorf("%w: pixel width must be greater than 1, got %d", ErrInvalidGrid, g.Width)
	}
	if g.Height <= 1 {
		return fmt.Errorf("%w: pixel height must be greater than 1, got %d", ErrInvalidGrid, g.Height)
	}

	return nil
}

// Map converts the linear pixel index i to its grid coordinates and the
// point of the plane it samples. The first and last columns land exactly on
// XMin and XMax; likewise for rows.
func Map(g Grid, w Window, i int) (cx, cy int, re, im float64) {
	cx = i % g.Width
	cy = i / g.Width

	re = w.XMin + (float64(cx)/float64(g.Width-1))*w.Width()
	im = w.YMin + (float64(cy)/float64(g.Height-1))*w.Height()

	return cx, cy, re, im
}

// Fit returns the window spanning [xMin, xMax] horizontally whose vertical
// extent, centered on yCenter, keeps pixels square for g.
func Fit(g Grid, xMin, xMax, yCenter float64) Window {
	viewHeight := (xMax - xMin) * float64(g.Height-1) / float64(g.Width-1)

	return Window{
		XMin: xMin,
		XMax: xMax,
		YMin: yCenter - viewHeight*0.5,
		YMax: yCenter + viewHeight*0.5,
	}
}
