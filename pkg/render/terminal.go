package render

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal presents frames on a tcell screen. Each character cell shows two
// vertically stacked samples using an upper half block, so the picture keeps
// roughly square pixels. The last row is a status line.
type Terminal struct {
	screen tcell.Screen
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTerminal opens the controlling terminal. Pressing q, Esc or Ctrl-C
// calls cancel.
func NewTerminal(cancel context.CancelFunc) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	return NewTerminalScreen(screen, cancel)
}

// NewTerminalScreen presents on an existing, uninitialized screen.
func NewTerminalScreen(screen tcell.Screen, cancel context.CancelFunc) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go t.pollEvents()

	return t, nil
}

func (t *Terminal) pollEvents() {
	defer close(t.done)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				t.cancel()
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Terminal) Present(_ context.Context, f Frame) error {
	sw, sh := t.screen.Size()
	rows := sh - 1
	if sw <= 0 || rows <= 0 || f.Width <= 0 || f.Height <= 0 {
		return nil
	}

	for y := 0; y < rows; y++ {
		top := (2 * y) * f.Height / (2 * rows)
		bottom := (2*y + 1) * f.Height / (2 * rows)

		for x := 0; x < sw; x++ {
			px := x * f.Width / sw

			style := tcell.StyleDefault.
				Foreground(sample(f, px, top)).
				Background(sample(f, px, bottom))
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	state := "iterating"
	if f.Settled {
		state = "settled"
	}
	status := fmt.Sprintf(" %s  iteration %d  %v  [q to quit]", state, f.Iteration, f.Counts)
	t.drawText(0, rows, sw, status)

	t.screen.Show()
	return nil
}

func (t *Terminal) drawText(x, y, width int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

	col := x
	for _, r := range s {
		if col >= width {
			return
		}
		t.screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		t.screen.SetContent(col, y, ' ', nil, style)
	}
}

func sample(f Frame, x, y int) tcell.Color {
	o := (y*f.Width + x) * 4
	return tcell.NewRGBColor(int32(f.Pix[o]), int32(f.Pix[o+1]), int32(f.Pix[o+2]))
}

// Close restores the terminal and waits for the event loop to exit.
func (t *Terminal) Close() {
	t.screen.Fini()
	<-t.done
}
