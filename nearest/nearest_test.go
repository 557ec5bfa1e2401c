package nearest_test

import (
	"testing"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/nearest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T) (*core.Graph, []core.Point) {
	t.Helper()
	vs := []core.Point{
		{Lat: 0, Lon: 0}, // A
		{Lat: 0, Lon: 1}, // B
		{Lat: 0, Lon: 3}, // C
		{Lat: 5, Lon: 5}, // D, no edges
	}
	g, err := core.NewGraph(vs, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	return g, vs
}

func TestNearest_NilGraph(t *testing.T) {
	_, err := nearest.Nearest(nil, core.Point{})
	assert.ErrorIs(t, err, nearest.ErrNilGraph)
}

func TestNearest_EmptyGraph(t *testing.T) {
	g, err := core.NewGraph(nil, nil)
	require.NoError(t, err)

	_, err = nearest.Nearest(g, core.Point{Lat: 1, Lon: 1})
	assert.ErrorIs(t, err, nearest.ErrEmptyGraph)
}

func TestNearest_ExactVertexMatch(t *testing.T) {
	g, vs := buildChain(t)

	// A query equal to an existing vertex comes back at distance zero.
	got, err := nearest.Nearest(g, vs[1])
	require.NoError(t, err)
	assert.Equal(t, vs[1], got)
}

func TestNearest_IsolatedVertexIsCandidate(t *testing.T) {
	g, vs := buildChain(t)

	// D holds no edges yet still wins a nearby query: Nearest scans the
	// vertex list, not the adjacency keys.
	got, err := nearest.Nearest(g, core.Point{Lat: 4.9, Lon: 4.9})
	require.NoError(t, err)
	assert.Equal(t, vs[3], got)
}

func TestNearest_TieBreaksOnInsertionOrder(t *testing.T) {
	// Two vertices equidistant from the query: the earlier one wins.
	vs := []core.Point{
		{Lat: 0, Lon: -1},
		{Lat: 0, Lon: 1},
	}
	g, err := core.NewGraph(vs, nil)
	require.NoError(t, err)

	got, err := nearest.Nearest(g, core.Point{Lat: 0, Lon: 0})
	require.NoError(t, err)
	assert.Equal(t, vs[0], got)
}

func TestNearest_PicksMinimumOverAll(t *testing.T) {
	g, vs := buildChain(t)

	got, err := nearest.Nearest(g, core.Point{Lat: 0, Lon: 2.4})
	require.NoError(t, err)
	assert.Equal(t, vs[2], got) // C(0,3) beats B(0,1) at lon 2.4
}
