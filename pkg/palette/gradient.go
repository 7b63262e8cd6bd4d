package palette

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultStops is the classic blue and gold escape-time gradient.
const DefaultStops = "0:#000764,0.16:#206bcb,0.42:#edffff,0.6425:#ffaa00,0.8575:#000200,1:#000764"

// Blend selects the color space stops are interpolated in.
type Blend string

const (
	BlendRGB Blend = "rgb"
	BlendLab Blend = "lab"
	BlendHcl Blend = "hcl"
)

// Stop anchors a color at a position in [0, 1] along the gradient.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// ParseStops reads stops written as "pos:#rrggbb" separated by commas,
// e.g. "0:#000000,0.5:#ff0000,1:#ffffff".
func ParseStops(s string) ([]Stop, error) {
	var stops []Stop

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		pos, hex, found := strings.Cut(field, ":")
		if !found {
			return nil, fmt.Errorf("%w: %q is not pos:#rrggbb", ErrInvalidStops, field)
		}

		p, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: position %q: %v", ErrInvalidStops, pos, err)
		}

		c, err := colorful.Hex(strings.TrimSpace(hex))
		if err != nil {
			return nil, fmt.Errorf("%w: color %q: %v", ErrInvalidStops, hex, err)
		}

		stops = append(stops, Stop{Pos: p, Color: c})
	}

	if err := validateStops(stops); err != nil {
		return nil, err
	}

	return stops, nil
}

func validateStops(stops []Stop) error {
	if len(stops) < 2 {
		return fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidStops, len(stops))
	}

	if !sort.SliceIsSorted(stops, func(i, j int) bool { return stops[i].Pos < stops[j].Pos }) {
		return fmt.Errorf("%w: positions must be ascending", ErrInvalidStops)
	}

	for _, s := range stops {
		if s.Pos < 0 || s.Pos > 1 {
			return fmt.Errorf("%w: position %g outside [0, 1]", ErrInvalidStops, s.Pos)
		}
	}

	return nil
}

// Gradient maps iteration counts onto a sequence of color stops. Points that
// reach MaxIterations get Inside.
type Gradient struct {
	stops         []Stop
	inside        RGB
	blend         Blend
	maxIterations int

	// cycle, when positive, repeats the gradient every cycle iterations
	// instead of stretching it over [0, maxIterations].
	cycle int
}

type GradientOption func(*Gradient)

func WithBlend(b Blend) GradientOption {
	return func(g *Gradient) { g.blend = b }
}

func WithInside(c RGB) GradientOption {
	return func(g *Gradient) { g.inside = c }
}

func WithCycle(n int) GradientOption {
	return func(g *Gradient) { g.cycle = n }
}

func NewGradient(stops []Stop, maxIterations int, opts ...GradientOption) (*Gradient, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	if maxIterations <= 0 {
		return nil, fmt.Errorf("%w: max iterations must be positive, got %d", ErrOutOfRange, maxIterations)
	}

	g := &Gradient{
		stops:         append([]Stop(nil), stops...),
		blend:         BlendHcl,
		maxIterations: maxIterations,
	}
	for _, opt := range opts {
		opt(g)
	}

	switch g.blend {
	case BlendRGB, BlendLab, BlendHcl:
	default:
		return nil, fmt.Errorf("%w: unknown blend %q", ErrInvalidStops, g.blend)
	}

	return g, nil
}

// Default returns the classic gradient stretched over maxIterations.
func Default(maxIterations int) (*Gradient, error) {
	stops, err := ParseStops(DefaultStops)
	if err != nil {
		return nil, err
	}

	return NewGradient(stops, maxIterations)
}

func (g *Gradient) Color(iteration int) (RGB, error) {
	if iteration < 0 || iteration > g.maxIterations {
		return RGB{}, fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, iteration, g.maxIterations)
	}
	if iteration == g.maxIterations {
		return g.inside, nil
	}

	var t float64
	if g.cycle > 0 {
		t = float64(iteration%g.cycle) / float64(g.cycle)
	} else {
		t = float64(iteration) / float64(g.maxIterations)
	}

	r, gr, b := g.at(t).Clamped().RGB255()
	return RGB{R: r, G: gr, B: b}, nil
}

func (g *Gradient) at(t float64) colorful.Color {
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Pos {
		return first.Color
	}
	if t >= last.Pos {
		return last.Color
	}

	for i := 1; i < len(g.stops); i++ {
		hi := g.stops[i]
		if t > hi.Pos {
			continue
		}

		lo := g.stops[i-1]
		span := hi.Pos - lo.Pos
		if span == 0 {
			return hi.Color
		}

		f := (t - lo.Pos) / span
		switch g.blend {
		case BlendRGB:
			return lo.Color.BlendRgb(hi.Color, f)
		case BlendLab:
			return lo.Color.BlendLab(hi.Color, f)
		default:
			return lo.Color.BlendHcl(hi.Color, f)
		}
	}

	return last.Color
}
