package render

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/willbeason/progressive-mandelbrot/pkg/escape"
)

const DefaultPresentInterval = 100 * time.Millisecond

// Frame is one presentation of the engine state. Pix aliases the engine's
// buffer and is only valid for the duration of Present.
type Frame struct {
	Width, Height int
	Iteration     int
	Settled       bool
	Counts        escape.Counts
	Pix           []byte
}

// A Presenter draws frames somewhere.
type Presenter interface {
	Present(ctx context.Context, f Frame) error
}

// Source is the part of escape.Engine the Driver needs.
type Source interface {
	Step() bool
	Settled() bool
	Buffer() []byte
	Iteration() int
	Counts() escape.Counts
	Config() escape.Config
}

var _ Source = (*escape.Engine)(nil)

// Snapshot describes the current state of src as a Frame.
func Snapshot(src Source) Frame {
	g := src.Config().Grid
	return Frame{
		Width:     g.Width,
		Height:    g.Height,
		Iteration: src.Iteration(),
		Settled:   src.Settled(),
		Counts:    src.Counts(),
		Pix:       src.Buffer(),
	}
}

// Driver steps a Source and presents it on independent cadences. Step and
// Present always run on the goroutine calling Run, so a Presenter never sees
// a partially stepped buffer.
type Driver struct {
	Source    Source
	Presenter Presenter

	// StepInterval is the pause between Steps. Zero steps continuously,
	// presenting whenever PresentInterval has elapsed.
	StepInterval time.Duration

	// PresentInterval defaults to DefaultPresentInterval.
	PresentInterval time.Duration

	// Logger, if set, receives a line per presented frame.
	Logger *log.Logger
}

// Run drives the Source until it settles or ctx is done. The settled frame
// is always presented before Run returns nil.
func (d *Driver) Run(ctx context.Context) error {
	if d.Source == nil || d.Presenter == nil {
		return errors.New("driver needs a source and a presenter")
	}

	presentInterval := d.PresentInterval
	if presentInterval <= 0 {
		presentInterval = DefaultPresentInterval
	}
	presentTicker := time.NewTicker(presentInterval)
	defer presentTicker.Stop()

	var stepC <-chan time.Time
	if d.StepInterval > 0 {
		stepTicker := time.NewTicker(d.StepInterval)
		defer stepTicker.Stop()
		stepC = stepTicker.C
	}

	if err := d.present(ctx); err != nil {
		return err
	}

	for !d.Source.Settled() {
		if stepC == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-presentTicker.C:
				if err := d.present(ctx); err != nil {
					return err
				}
			default:
				d.Source.Step()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-presentTicker.C:
			if err := d.present(ctx); err != nil {
				return err
			}
		case <-stepC:
			d.Source.Step()
		}
	}

	return d.present(ctx)
}

func (d *Driver) present(ctx context.Context) error {
	f := Snapshot(d.Source)
	if d.Logger != nil {
		d.Logger.Printf("iteration %d: %v", f.Iteration, f.Counts)
	}

	return d.Presenter.Present(ctx, f)
}

// Multi presents every frame to each of its Presenters in order.
type Multi []Presenter

func (m Multi) Present(ctx context.Context, f Frame) error {
	var errs []error
	for _, p := range m {
		if err := p.Present(ctx, f); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
