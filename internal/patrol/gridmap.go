package patrol

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// GridMap is a bounded obstacle layout. Values are immutable: WithObstacle
// derives a new map that shares the base obstacle set with its parent and
// keeps its own additions in a small overlay.
type GridMap struct {
	dim       Dimension
	start     Position
	obstacles mapset.Set[Position]
	extra     []Position
}

// NewGridMap builds a map from an obstacle list. The start cell must be in
// bounds and clear.
func NewGridMap(dim Dimension, start Position, obstacles []Position) (GridMap, error) {
	if !dim.Contains(start) {
		return GridMap{}, fmt.Errorf("start %v: %w", start, ErrOutOfBounds)
	}
	set := mapset.New[Position]()
	for _, p := range obstacles {
		if !dim.Contains(p) {
			return GridMap{}, fmt.Errorf("obstacle %v: %w", p, ErrOutOfBounds)
		}
		if p == start {
			return GridMap{}, fmt.Errorf("obstacle %v: %w", p, ErrObstacleOnStart)
		}
		set.Put(p)
	}
	return GridMap{dim: dim, start: start, obstacles: set}, nil
}

func (m GridMap) Dimension() Dimension { return m.dim }
func (m GridMap) Start() Position      { return m.start }

func (m GridMap) InBounds(p Position) bool { return m.dim.Contains(p) }

func (m GridMap) HasObstacle(p Position) bool {
	if m.obstacles.Has(p) {
		return true
	}
	return slices.Contains(m.extra, p)
}

// ObstacleCount counts base and overlay obstacles.
func (m GridMap) ObstacleCount() int { return m.obstacles.Size() + len(m.extra) }

// WithObstacle returns a copy of m with an extra obstacle at p. The receiver
// is left untouched. Placing on the start cell fails with ErrObstacleOnStart;
// placing on an existing obstacle returns an equivalent map.
func (m GridMap) WithObstacle(p Position) (GridMap, error) {
	if !m.dim.Contains(p) {
		return GridMap{}, fmt.Errorf("obstacle %v: %w", p, ErrOutOfBounds)
	}
	if p == m.start {
		return GridMap{}, fmt.Errorf("obstacle %v: %w", p, ErrObstacleOnStart)
	}
	if m.HasObstacle(p) {
		return m, nil
	}
	derived := m
	derived.extra = append(slices.Clip(m.extra), p)
	return derived, nil
}

// Obstacles returns every obstacle, base set first, in no particular order
// within the base set.
func (m GridMap) Obstacles() []Position {
	out := make([]Position, 0, m.ObstacleCount())
	m.obstacles.Each(func(p Position) { out = append(out, p) })
	return append(out, m.extra...)
}
