package escape

import (
	"fmt"

	"github.com/willbeason/progressive-mandelbrot/pkg/palette"
	"github.com/willbeason/progressive-mandelbrot/pkg/plane"
	"github.com/willbeason/progressive-mandelbrot/pkg/transforms"
)

// ColorMapper turns an iteration count in [0, MaxIterations] into a color.
// It must be deterministic.
type ColorMapper interface {
	Color(iteration int) (palette.RGB, error)
}

// An Engine advances every pixel of a grid by one Mandelbrot iteration per
// Step and keeps an RGBA buffer matching the pixels' current state.
//
// An Engine is not safe for concurrent use. Buffer must not be read while a
// Step is running.
type Engine struct {
	cfg Config

	// Pixel state, one entry per pixel, indexed cy*width + cx.
	cReal, cImag []float64
	zReal, zImag []float64
	iteration    []int
	status       []Status

	// buf holds RGBA for each pixel at offset 4*i.
	buf []byte

	// colors[n] is the mapper's color for iteration n.
	colors []palette.RGB

	current int
	counts  Counts

	// ranges partitions the pixels among workers.
	ranges []span
}

type span struct {
	lo, hi int
}

// New validates cfg, seeds every pixel and paints the initial buffer.
// Pixels inside the main cardioid or the period-2 bulb start out Interior.
func New(cfg Config, mapper ColorMapper) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	colors, err := colorTable(mapper, cfg.MaxIterations)
	if err != nil {
		return nil, err
	}

	total := cfg.Grid.Total()
	e := &Engine{
		cfg:       cfg,
		cReal:     make([]float64, total),
		cImag:     make([]float64, total),
		zReal:     make([]float64, total),
		zImag:     make([]float64, total),
		iteration: make([]int, total),
		status:    make([]Status, total),
		buf:       make([]byte, total*4),
		colors:    colors,
		ranges:    partition(total, cfg.Workers),
	}

	for i := 0; i < total; i++ {
		_, _, re, im := plane.Map(cfg.Grid, cfg.Window, i)
		e.cReal[i] = re
		e.cImag[i] = im

		if transforms.Interior(re, im) {
			e.status[i] = Interior
			e.iteration[i] = cfg.MaxIterations
			e.counts.Interior++
		} else {
			e.counts.Active++
		}

		e.paint(i)
	}

	return e, nil
}

// colorTable evaluates mapper once for every reachable iteration count so
// that stepping can never fail.
func colorTable(mapper ColorMapper, maxIterations int) ([]palette.RGB, error) {
	if mapper == nil {
		return nil, fmt.Errorf("%w: nil color mapper", ErrInvalidConfig)
	}

	colors := make([]palette.RGB, maxIterations+1)
	for n := range colors {
		c, err := mapper.Color(n)
		if err != nil {
			return nil, fmt.Errorf("%w: iteration %d: %w", ErrColorMapperFault, n, err)
		}
		colors[n] = c
	}

	return colors, nil
}

func (e *Engine) paint(i int) {
	c := e.colors[e.iteration[i]]
	p := e.buf[i*4 : i*4+4 : i*4+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = 255
}

// Step advances every Active pixel by one iteration and reports whether the
// run has settled. Once settled, Step does nothing.
func (e *Engine) Step() bool {
	if e.Settled() {
		return true
	}

	if len(e.ranges) > 1 {
		e.stepParallel()
	} else {
		e.merge(e.stepRange(0, len(e.status)))
	}

	e.current++
	if e.current >= e.cfg.MaxIterations {
		e.settle()
	}

	return e.Settled()
}

// stepRange updates pixels [lo, hi) and returns the resulting change in
// Counts. It touches nothing outside the range.
func (e *Engine) stepRange(lo, hi int) Counts {
	var d Counts

	for i := lo; i < hi; i++ {
		if e.status[i] != Active {
			continue
		}

		zr, zi := e.zReal[i], e.zImag[i]
		x2, y2 := zr*zr, zi*zi

		switch {
		case x2+y2 > 4:
			e.status[i] = Escaped
			d.Escaped++
		case e.iteration[i] >= e.cfg.MaxIterations:
			e.status[i] = Interior
			d.Interior++
		default:
			// zi must be updated from the old zr.
			e.zImag[i] = 2*zr*zi + e.cImag[i]
			e.zReal[i] = x2 - y2 + e.cReal[i]
			e.iteration[i]++
		}

		e.paint(i)
	}

	d.Active = -(d.Escaped + d.Interior)
	return d
}

func (e *Engine) merge(d Counts) {
	e.counts.Active += d.Active
	e.counts.Escaped += d.Escaped
	e.counts.Interior += d.Interior
}

// settle classifies the pixels still Active once the iteration cap is
// reached, exactly as one more Step would. Iterations and colors do not change.
func (e *Engine) settle() {
	for i, s := range e.status {
		if s != Active {
			continue
		}

		zr, zi := e.zReal[i], e.zImag[i]
		if zr*zr+zi*zi > 4 {
			e.status[i] = Escaped
			e.counts.Escaped++
		} else {
			e.status[i] = Interior
			e.counts.Interior++
		}
		e.counts.Active--
	}
}

// Settled reports whether further Steps can change anything: either the
// iteration cap was reached or no pixel is still Active.
func (e *Engine) Settled() bool {
	return e.current >= e.cfg.MaxIterations || e.counts.Active == 0
}

// Buffer returns the RGBA color buffer, row-major, 4 bytes per pixel.
// Callers must not modify it.
func (e *Engine) Buffer() []byte {
	return e.buf
}

// Pixel returns a snapshot of pixel i. It panics if i is out of range.
func (e *Engine) Pixel(i int) Pixel {
	return Pixel{
		CX:        i % e.cfg.Grid.Width,
		CY:        i / e.cfg.Grid.Width,
		CReal:     e.cReal[i],
		CImag:     e.cImag[i],
		ZReal:     e.zReal[i],
		ZImag:     e.zImag[i],
		Iteration: e.iteration[i],
		Status:    e.status[i],
	}
}

// Iteration is the number of Steps that did work.
func (e *Engine) Iteration() int {
	return e.current
}

func (e *Engine) Counts() Counts {
	return e.counts
}

func (e *Engine) Config() Config {
	return e.cfg
}
