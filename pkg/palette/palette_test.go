package palette

import (
	"errors"
	"testing"
)

func TestParseStops(t *testing.T) {
	stops, err := ParseStops("0:#000000, 0.5:#ff0000 ,1:#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	if len(stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(stops))
	}
	if stops[1].Pos != 0.5 {
		t.Errorf("expected second stop at 0.5, got %g", stops[1].Pos)
	}
	if r, g, b := stops[1].Color.RGB255(); r != 255 || g != 0 || b != 0 {
		t.Errorf("expected red, got (%d, %d, %d)", r, g, b)
	}
}

func TestParseStops_Invalid(t *testing.T) {
	tcs := []struct {
		name  string
		stops string
	}{
		{name: "empty", stops: ""},
		{name: "single", stops: "0:#000000"},
		{name: "no separator", stops: "0#000000,1:#ffffff"},
		{name: "bad position", stops: "zero:#000000,1:#ffffff"},
		{name: "bad color", stops: "0:#zzzzzz,1:#ffffff"},
		{name: "descending", stops: "1:#000000,0:#ffffff"},
		{name: "out of range", stops: "0:#000000,1.5:#ffffff"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseStops(tc.stops)
			if !errors.Is(err, ErrInvalidStops) {
				t.Errorf("expected ErrInvalidStops, got %v", err)
			}
		})
	}
}

func TestGradient_Endpoints(t *testing.T) {
	stops, err := ParseStops("0:#000000,1:#ffffff")
	if err != nil {
		t.Fatal(err)
	}

	inside := RGB{R: 1, G: 2, B: 3}
	g, err := NewGradient(stops, 100, WithBlend(BlendRGB), WithInside(inside))
	if err != nil {
		t.Fatal(err)
	}

	c, err := g.Color(0)
	if err != nil {
		t.Fatal(err)
	}
	if c != (RGB{}) {
		t.Errorf("expected black at 0, got %+v", c)
	}

	c, err = g.Color(100)
	if err != nil {
		t.Fatal(err)
	}
	if c != inside {
		t.Errorf("expected inside color at max, got %+v", c)
	}

	c, err = g.Color(50)
	if err != nil {
		t.Fatal(err)
	}
	if c.R < 120 || c.R > 135 || c.R != c.G || c.G != c.B {
		t.Errorf("expected mid gray at 50, got %+v", c)
	}
}

func TestGradient_Deterministic(t *testing.T) {
	g, err := Default(256)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i <= 256; i++ {
		a, err := g.Color(i)
		if err != nil {
			t.Fatal(err)
		}
		b, err := g.Color(i)
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Fatalf("iteration %d: %+v != %+v", i, a, b)
		}
	}
}

func TestGradient_Cycle(t *testing.T) {
	g, err := Default(1000)
	if err != nil {
		t.Fatal(err)
	}
	cycled, err := Default(1000)
	if err != nil {
		t.Fatal(err)
	}
	WithCycle(10)(cycled)

	a, _ := cycled.Color(3)
	b, _ := cycled.Color(13)
	if a != b {
		t.Errorf("expected cycle of 10 to repeat, got %+v and %+v", a, b)
	}

	c, _ := g.Color(3)
	d, _ := g.Color(30)
	if c == d {
		t.Errorf("expected uncycled gradient to vary, got %+v twice", c)
	}
}

func TestGradient_OutOfRange(t *testing.T) {
	g, err := Default(10)
	if err != nil {
		t.Fatal(err)
	}

	for _, i := range []int{-1, 11} {
		if _, err := g.Color(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Color(%d): expected ErrOutOfRange, got %v", i, err)
		}
	}
}

func TestNewGradient_Invalid(t *testing.T) {
	stops, err := ParseStops("0:#000000,1:#ffffff")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewGradient(stops, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for zero max iterations, got %v", err)
	}
	if _, err := NewGradient(stops, 10, WithBlend("cmyk")); !errors.Is(err, ErrInvalidStops) {
		t.Errorf("expected ErrInvalidStops for unknown blend, got %v", err)
	}
}

func TestGrayscale(t *testing.T) {
	f := Grayscale(255)

	c, err := f.Color(255)
	if err != nil {
		t.Fatal(err)
	}
	if c != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("expected white, got %+v", c)
	}

	if _, err := f.Color(256); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}

	for _, maxIterations := range []int{0, -3} {
		if _, err := Grayscale(maxIterations).Color(0); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Grayscale(%d): expected ErrOutOfRange, got %v", maxIterations, err)
		}
	}
}
