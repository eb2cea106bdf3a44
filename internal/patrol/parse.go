package patrol

import (
	"fmt"
	"io"
	"strings"
)

const (
	cellObstacle = '#'
	cellOpen     = '.'
)

// Parse reads a layout where '#' is an obstacle, '.' is open floor and
// exactly one of ^ > v < marks the guard. Rows must share a length. Trailing
// blank lines and CR line endings are tolerated.
func Parse(text string) (GridMap, Guard, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return GridMap{}, Guard{}, ErrEmptyLayout
	}

	dim := Dimension{Rows: len(lines), Cols: len(lines[0])}
	var (
		obstacles []Position
		guard     Guard
		found     bool
	)
	for row, line := range lines {
		if len(line) != dim.Cols {
			return GridMap{}, Guard{}, &ParseError{Row: row, Col: -1, Err: fmt.Errorf("%w: want %d cells, got %d", ErrRaggedRows, dim.Cols, len(line))}
		}
		for col := 0; col < len(line); col++ {
			c := rune(line[col])
			pos := Position{row, col}
			if d, ok := DirectionFromRune(c); ok {
				if found {
					return GridMap{}, Guard{}, &ParseError{Row: row, Col: col, Char: c, Err: ErrMultipleGuards}
				}
				guard, found = Guard{Pos: pos, Dir: d}, true
				continue
			}
			switch c {
			case cellObstacle:
				obstacles = append(obstacles, pos)
			case cellOpen:
			default:
				return GridMap{}, Guard{}, &ParseError{Row: row, Col: col, Char: c, Err: ErrInvalidCell}
			}
		}
	}
	if dim.Cols == 0 {
		return GridMap{}, Guard{}, ErrEmptyLayout
	}
	if !found {
		return GridMap{}, Guard{}, ErrNoGuard
	}

	m, err := NewGridMap(dim, guard.Pos, obstacles)
	if err != nil {
		return GridMap{}, Guard{}, err
	}
	return m, guard, nil
}

func ParseReader(r io.Reader) (GridMap, Guard, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return GridMap{}, Guard{}, err
	}
	return Parse(string(b))
}

// Render draws m back into layout text with the guard marker at g.
func Render(m GridMap, g Guard) string {
	dim := m.Dimension()
	var sb strings.Builder
	sb.Grow(dim.Rows * (dim.Cols + 1))
	for row := 0; row < dim.Rows; row++ {
		for col := 0; col < dim.Cols; col++ {
			p := Position{row, col}
			switch {
			case p == g.Pos:
				sb.WriteRune(g.Dir.Rune())
			case m.HasObstacle(p):
				sb.WriteByte(cellObstacle)
			default:
				sb.WriteByte(cellOpen)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
