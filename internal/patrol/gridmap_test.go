package patrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridMap(t *testing.T) {
	dim := Dimension{Rows: 3, Cols: 3}

	m, err := NewGridMap(dim, Position{1, 1}, []Position{{0, 0}, {2, 2}})
	require.NoError(t, err)
	assert.True(t, m.HasObstacle(Position{0, 0}))
	assert.True(t, m.HasObstacle(Position{2, 2}))
	assert.False(t, m.HasObstacle(Position{1, 1}))
	assert.Equal(t, 2, m.ObstacleCount())
	assert.ElementsMatch(t, []Position{{0, 0}, {2, 2}}, m.Obstacles())

	_, err = NewGridMap(dim, Position{1, 1}, []Position{{1, 1}})
	assert.ErrorIs(t, err, ErrObstacleOnStart)

	_, err = NewGridMap(dim, Position{1, 1}, []Position{{3, 0}})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = NewGridMap(dim, Position{0, 5}, nil)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGridMapInBounds(t *testing.T) {
	m, err := NewGridMap(Dimension{Rows: 2, Cols: 5}, Position{0, 0}, nil)
	require.NoError(t, err)
	assert.True(t, m.InBounds(Position{1, 4}))
	assert.False(t, m.InBounds(Position{2, 4}))
	assert.False(t, m.InBounds(Position{1, 5}))
}

func TestGridMapWithObstacle(t *testing.T) {
	base, err := NewGridMap(Dimension{Rows: 4, Cols: 4}, Position{3, 3}, []Position{{0, 0}})
	require.NoError(t, err)

	a, err := base.WithObstacle(Position{1, 1})
	require.NoError(t, err)
	assert.True(t, a.HasObstacle(Position{1, 1}))
	assert.True(t, a.HasObstacle(Position{0, 0}))
	assert.False(t, base.HasObstacle(Position{1, 1}), "baseline must not change")
	assert.Equal(t, 1, base.ObstacleCount())
	assert.Equal(t, 2, a.ObstacleCount())

	// siblings derived from the same parent must not see each other's cells
	b, err := a.WithObstacle(Position{2, 2})
	require.NoError(t, err)
	c, err := a.WithObstacle(Position{2, 1})
	require.NoError(t, err)
	assert.True(t, b.HasObstacle(Position{2, 2}))
	assert.False(t, b.HasObstacle(Position{2, 1}))
	assert.True(t, c.HasObstacle(Position{2, 1}))
	assert.False(t, c.HasObstacle(Position{2, 2}))
	assert.False(t, a.HasObstacle(Position{2, 2}))
	assert.False(t, a.HasObstacle(Position{2, 1}))

	same, err := base.WithObstacle(Position{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, same.ObstacleCount())

	_, err = base.WithObstacle(Position{3, 3})
	assert.ErrorIs(t, err, ErrObstacleOnStart)

	_, err = base.WithObstacle(Position{4, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
