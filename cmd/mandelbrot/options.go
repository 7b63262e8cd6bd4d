package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/willbeason/progressive-mandelbrot/pkg/escape"
	"github.com/willbeason/progressive-mandelbrot/pkg/palette"
	"github.com/willbeason/progressive-mandelbrot/pkg/plane"
)

const (
	flagXMin = "xmin"
	flagXMax = "xmax"
	flagYMin = "ymin"
	flagYMax = "ymax"
)

// options are the flags shared by every rendering command.
type options struct {
	width, height int
	maxIterations int
	workers       int

	region                 string
	xMin, xMax, yMin, yMax float64

	stops string
	blend string
	cycle int
}

func (o *options) register(flags *pflag.FlagSet) {
	flags.IntVar(&o.width, "width", 640, "image width in pixels")
	flags.IntVar(&o.height, "height", 480, "image height in pixels")
	flags.IntVar(&o.maxIterations, "max-iterations", 500, "iteration cap")
	flags.IntVar(&o.workers, "workers", runtime.NumCPU(), "goroutines per step")

	flags.StringVar(&o.region, "region", "full",
		fmt.Sprintf("named region, one of %s", strings.Join(plane.LandmarkNames(), ", ")))
	flags.Float64Var(&o.xMin, flagXMin, 0, "left edge of the plane window, overrides --region")
	flags.Float64Var(&o.xMax, flagXMax, 0, "right edge of the plane window, overrides --region")
	flags.Float64Var(&o.yMin, flagYMin, 0, "bottom edge of the plane window, overrides --region")
	flags.Float64Var(&o.yMax, flagYMax, 0, "top edge of the plane window, overrides --region")

	flags.StringVar(&o.stops, "stops", palette.DefaultStops, "gradient as pos:#rrggbb,...")
	flags.StringVar(&o.blend, "blend", string(palette.BlendHcl), "gradient color space: rgb, lab or hcl")
	flags.IntVar(&o.cycle, "cycle", 0, "repeat the gradient every n iterations, 0 to stretch it")
}

// window resolves --region and the explicit bound flags. When only the
// horizontal bounds are given, the vertical extent keeps pixels square.
func (o *options) window(flags *pflag.FlagSet) (plane.Window, error) {
	w, err := plane.Lookup(o.region)
	if err != nil {
		return plane.Window{}, err
	}

	xChanged := flags.Changed(flagXMin) || flags.Changed(flagXMax)
	yChanged := flags.Changed(flagYMin) || flags.Changed(flagYMax)

	if flags.Changed(flagXMin) {
		w.XMin = o.xMin
	}
	if flags.Changed(flagXMax) {
		w.XMax = o.xMax
	}
	if flags.Changed(flagYMin) {
		w.YMin = o.yMin
	}
	if flags.Changed(flagYMax) {
		w.YMax = o.yMax
	}

	if xChanged && !yChanged {
		yCenter := (w.YMin + w.YMax) * 0.5
		w = plane.Fit(plane.Grid{Width: o.width, Height: o.height}, w.XMin, w.XMax, yCenter)
	}

	return w, nil
}

func (o *options) config(flags *pflag.FlagSet) (escape.Config, error) {
	w, err := o.window(flags)
	if err != nil {
		return escape.Config{}, err
	}

	cfg := escape.Config{
		Grid:          plane.Grid{Width: o.width, Height: o.height},
		Window:        w,
		MaxIterations: o.maxIterations,
		Workers:       o.workers,
	}

	return cfg, cfg.Validate()
}

func (o *options) mapper() (escape.ColorMapper, error) {
	stops, err := palette.ParseStops(o.stops)
	if err != nil {
		return nil, err
	}

	g, err := palette.NewGradient(stops, o.maxIterations,
		palette.WithBlend(palette.Blend(o.blend)),
		palette.WithCycle(o.cycle),
	)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// engine builds the Engine described by the flags.
func (o *options) engine(flags *pflag.FlagSet) (*escape.Engine, error) {
	cfg, err := o.config(flags)
	if err != nil {
		return nil, err
	}

	mapper, err := o.mapper()
	if err != nil {
		return nil, err
	}

	return escape.New(cfg, mapper)
}
