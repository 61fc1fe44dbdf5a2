package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/matrix"
)

func TestNewAdjacencyMatrix_SumsParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertex("A", core.WithValue(1)))
	require.NoError(t, g.AddVertex("B", core.WithValue(2)))
	_, err := g.AddEdge("A", "B", 0.25)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0.5)
	require.NoError(t, err)

	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, 2, am.VertexCount())
	assert.Equal(t, []string{"A", "B"}, am.VertexIDs())

	a, _ := am.Index("A")
	b, _ := am.Index("B")
	assert.Equal(t, 0.75, mustAt(t, am.Mat, a, b))
	assert.Equal(t, 0.0, mustAt(t, am.Mat, b, a))

	id, err := am.VertexAt(b)
	require.NoError(t, err)
	assert.Equal(t, "B", id)
	_, err = am.VertexAt(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = am.Index("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	v, err := matrix.ValueVector(g, am)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, v)
}

func TestNewAdjacencyMatrix_Errors(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = matrix.NewAdjacencyMatrix(core.NewGraph())
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", core.WithValue(1)))
	require.NoError(t, g.AddVertex("B"))
	_, err = g.AddUnweightedEdge("A", "B")
	require.NoError(t, err)
	_, err = matrix.NewAdjacencyMatrix(g)
	assert.ErrorIs(t, err, core.ErrMissingAttribute)

	g2 := core.NewGraph()
	require.NoError(t, g2.AddVertex("A", core.WithValue(1)))
	require.NoError(t, g2.AddVertex("B"))
	am, err := matrix.NewAdjacencyMatrix(g2)
	require.NoError(t, err)
	_, err = matrix.ValueVector(g2, am)
	assert.ErrorIs(t, err, core.ErrMissingAttribute)
}
