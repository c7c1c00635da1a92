package fixtures_test

import (
	"testing"

	"github.com/CodingThrust/problem-reductions-sub000/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathGraph(t *testing.T) {
	g, err := fixtures.PathGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices)
	assert.Equal(t, 3, g.NumEdges())
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 2))

	_, err = fixtures.PathGraph(1)
	assert.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestCompleteGraph(t *testing.T) {
	g, err := fixtures.CompleteGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices)
	assert.Equal(t, 6, g.NumEdges())
	for i := 0; i < 4; i++ {
		assert.Equal(t, 3, g.Degrees()[i])
	}
}

func TestTriangle(t *testing.T) {
	g := fixtures.Triangle()
	assert.Equal(t, 3, g.NumVertices)
	assert.Equal(t, 3, g.NumEdges())
}

func TestCycleGraph(t *testing.T) {
	g, err := fixtures.CycleGraph(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumEdges())
	assert.True(t, g.HasEdge(4, 0))
	for i := 0; i < 5; i++ {
		assert.Equal(t, 2, g.Degrees()[i])
	}

	_, err = fixtures.CycleGraph(2)
	assert.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestStarGraph(t *testing.T) {
	g, err := fixtures.StarGraph(5)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, 4, g.Degrees()[0])
	for i := 1; i < 5; i++ {
		assert.Equal(t, 1, g.Degrees()[i])
	}
}

func TestUnitDiskGrid(t *testing.T) {
	ud, err := fixtures.UnitDiskGrid(2, 2)
	require.NoError(t, err)
	require.Len(t, ud.Points, 4)

	simple := ud.ToSimpleGraph()
	assert.Equal(t, 4, simple.NumVertices)
	// a unit 2x2 grid is a 4-cycle: each corner adjacent to its two
	// axis-aligned neighbours, diagonals excluded by the radius.
	assert.Equal(t, 4, simple.NumEdges())
	assert.False(t, simple.HasEdge(0, 3))

	_, err = fixtures.UnitDiskGrid(0, 2)
	assert.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}
