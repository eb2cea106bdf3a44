package patrol

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLayout    = errors.New("layout has no rows")
	ErrInvalidCell    = errors.New("invalid cell")
	ErrNoGuard        = errors.New("layout has no guard marker")
	ErrMultipleGuards = errors.New("layout has more than one guard marker")
	ErrRaggedRows     = errors.New("layout rows differ in length")

	// ErrObstacleOnStart is returned by GridMap.WithObstacle for the guard's
	// start cell, which must stay clear.
	ErrObstacleOnStart = errors.New("obstacle on guard start cell")
	ErrOutOfBounds     = errors.New("position out of bounds")
)

// ParseError locates a layout problem. Row and Col are zero-based; Col is -1
// when the problem concerns a whole row.
type ParseError struct {
	Row, Col int
	Char     rune
	Err      error
}

func (e *ParseError) Error() string {
	switch {
	case e.Col < 0:
		return fmt.Sprintf("row %d: %v", e.Row+1, e.Err)
	case e.Char != 0:
		return fmt.Sprintf("row %d col %d: %v %q", e.Row+1, e.Col+1, e.Err, e.Char)
	}
	return fmt.Sprintf("row %d col %d: %v", e.Row+1, e.Col+1, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
