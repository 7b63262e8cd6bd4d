package escape

import "fmt"

// Status is the lifecycle of one pixel. Active is the only non-terminal value.
type Status uint8

const (
	Active Status = iota
	Escaped
	Interior
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Escaped:
		return "escaped"
	case Interior:
		return "interior"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Pixel is a snapshot of one pixel's state.
type Pixel struct {
	CX, CY       int
	CReal, CImag float64
	ZReal, ZImag float64
	Iteration    int
	Status       Status
}

// Counts tallies pixels by status.
type Counts struct {
	Active, Escaped, Interior int
}

func (c Counts) String() string {
	return fmt.Sprintf("active=%d escaped=%d interior=%d", c.Active, c.Escaped, c.Interior)
}
