package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// PNG writes frames to timestamped files in Dir.
type PNG struct {
	Dir string

	// EveryFrame writes each presented frame instead of only the settled one.
	EveryFrame bool

	// Written lists the files created so far.
	Written []string
}

func (p *PNG) Present(_ context.Context, f Frame) error {
	if !f.Settled && !p.EveryFrame {
		return nil
	}

	err := os.MkdirAll(p.Dir, os.ModePerm)
	if err != nil {
		return err
	}

	name := time.Now().Format("20060102150405")
	if p.EveryFrame {
		name = fmt.Sprintf("%s-%06d", name, f.Iteration)
	}
	path := filepath.Join(p.Dir, name+".png")

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	err = png.Encode(out, f.Image())
	if err != nil {
		_ = out.Close()
		return err
	}

	err = out.Close()
	if err != nil {
		return err
	}

	p.Written = append(p.Written, path)
	return nil
}

// Image wraps the frame's pixels without copying.
func (f Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}
