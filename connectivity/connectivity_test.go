package connectivity_test

import (
	"testing"

	"github.com/katalvlaran/geograph/connectivity"
	"github.com/katalvlaran/geograph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildChain returns the A—B—C chain plus isolated D.
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

func TestConnected_NilGraph(t *testing.T) {
	_, err := connectivity.Connected(nil, core.Point{}, core.Point{})
	assert.ErrorIs(t, err, connectivity.ErrNilGraph)
}

func TestConnected_SelfIsAlwaysTrue(t *testing.T) {
	g, vs := buildChain(t)

	for _, v := range vs {
		ok, err := connectivity.Connected(g, v, v)
		require.NoError(t, err)
		// Holds even for D, which owns no adjacency entry at all.
		assert.True(t, ok, "point %v must be connected to itself", v)
	}
}

func TestConnected_AcrossChainAndSymmetry(t *testing.T) {
	g, vs := buildChain(t)

	ok, err := connectivity.Connected(g, vs[0], vs[2])
	require.NoError(t, err)
	assert.True(t, ok)

	back, err := connectivity.Connected(g, vs[2], vs[0])
	require.NoError(t, err)
	assert.Equal(t, ok, back)
}

func TestConnected_IsolatedVertexUnreachable(t *testing.T) {
	g, vs := buildChain(t)

	ok, err := connectivity.Connected(g, vs[0], vs[3])
	require.NoError(t, err)
	assert.False(t, ok)

	// The isolated side is a legal traversal start with no outgoing edges.
	ok, err = connectivity.Connected(g, vs[3], vs[0])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConnected_OffGraphStart(t *testing.T) {
	g, vs := buildChain(t)

	// A point that never appeared in any edge or vertex list is still a
	// valid start; it reaches only itself.
	stray := core.Point{Lat: -40, Lon: 100}
	ok, err := connectivity.Connected(g, stray, vs[0])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConnected_TerminatesOnCycles(t *testing.T) {
	// Triangle with an extra self-loop: traversal must not spin.
	vs := []core.Point{
		{Lat: 0, Lon: 0},
		{Lat: 1, Lon: 0},
		{Lat: 0, Lon: 1},
	}
	g, err := core.NewGraph(vs, [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 1}})
	require.NoError(t, err)

	ok, err := connectivity.Connected(g, vs[0], vs[2])
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestConnected_MergedCoordinates verifies the documented value-keyed merge:
// two input records with equal coordinates but disjoint neighbor sets act as
// one node, bridging their components.
func TestConnected_MergedCoordinates(t *testing.T) {
	twin := core.Point{Lat: 10, Lon: 10}
	vs := []core.Point{
		twin,               // index 0, edge to west
		{Lat: 10, Lon: 0},  // west
		twin,               // index 2, edge to east
		{Lat: 10, Lon: 20}, // east
	}
	g, err := core.NewGraph(vs, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	// West and east never share an edge, yet the merged twin joins them.
	ok, err := connectivity.Connected(g, vs[1], vs[3])
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestComponent_DiscoversReachableSet(t *testing.T) {
	g, vs := buildChain(t)

	members, err := connectivity.Component(g, vs[0])
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.Point{vs[0], vs[1], vs[2]}, members)
	assert.Equal(t, vs[0], members[0]) // the start leads discovery order

	// An edge-less point forms a singleton component.
	solo, err := connectivity.Component(g, vs[3])
	require.NoError(t, err)
	assert.Equal(t, []core.Point{vs[3]}, solo)
}

func TestComponent_NilGraph(t *testing.T) {
	_, err := connectivity.Component(nil, core.Point{})
	assert.ErrorIs(t, err, connectivity.ErrNilGraph)
}
