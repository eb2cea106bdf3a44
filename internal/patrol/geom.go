package patrol

import "fmt"

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

type Dimension struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

func (d Dimension) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < d.Rows && p.Col >= 0 && p.Col < d.Cols
}

// Area is the number of cells; Area*4 bounds the distinct guard states.
func (d Dimension) Area() int { return d.Rows * d.Cols }

// Direction is a closed set of four headings. The zero value is Up.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Turn rotates 90 degrees clockwise.
func (d Direction) Turn() Direction { return (d + 1) % 4 }

func (d Direction) Valid() bool { return d <= Left }

func (d Direction) Rune() rune {
	switch d {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	}
	panic(fmt.Sprintf("patrol: invalid direction %d", uint8(d)))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("patrol: invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	for _, c := range Directions {
		if c.String() == string(b) {
			*d = c
			return nil
		}
	}
	return fmt.Errorf("patrol: unknown direction %q", b)
}

// DirectionFromRune maps a guard marker to its heading.
func DirectionFromRune(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

// Next returns the neighbouring cell in direction d. ok is false when the
// move would leave d's bounds, including underflow past row or column 0.
func (d Dimension) Next(p Position, dir Direction) (next Position, ok bool) {
	switch dir {
	case Up:
		if p.Row == 0 {
			return p, false
		}
		next = Position{p.Row - 1, p.Col}
	case Down:
		if p.Row+1 >= d.Rows {
			return p, false
		}
		next = Position{p.Row + 1, p.Col}
	case Left:
		if p.Col == 0 {
			return p, false
		}
		next = Position{p.Row, p.Col - 1}
	case Right:
		if p.Col+1 >= d.Cols {
			return p, false
		}
		next = Position{p.Row, p.Col + 1}
	default:
		panic(fmt.Sprintf("patrol: invalid direction %d", uint8(dir)))
	}
	return next, true
}
