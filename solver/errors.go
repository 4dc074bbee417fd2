package solver

import "fmt"

// InvalidRackError is returned when a rack cannot be encoded or exceeds
// the rack size.
type InvalidRackError struct {
	Rack   string
	Reason string
}

func (e *InvalidRackError) Error() string {
	return fmt.Sprintf("invalid rack %q: %s", e.Rack, e.Reason)
}

// PlacementError is returned when a play cannot legally be put on the
// board.
type PlacementError struct {
	Word   string
	Row    int
	Col    int
	Reason string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place %q at row %d col %d: %s",
		e.Word, e.Row, e.Col, e.Reason)
}
