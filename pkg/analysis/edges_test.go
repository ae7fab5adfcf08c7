package analysis

import (
	"testing"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"github.com/philipparndt/gosnap/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) *mesh.Mesh {
	t.Helper()
	v := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(2, 1, 0),
		geometry.NewVector3(0, 1, 0),
	}
	m, err := mesh.FromVertices(v, []uint32{0, 1, 2, 0, 2, 3})
	require.NoError(t, err)
	return m
}

func TestAnalyzeEdgesSquare(t *testing.T) {
	r := AnalyzeEdges(square(t))

	assert.Equal(t, 5, r.EdgeCount)
	assert.Equal(t, 4, r.OpenEdges)
	assert.Equal(t, 1, r.ManifoldEdges)
	assert.Equal(t, 0, r.NonManifold)
	assert.False(t, r.Closed())
	assert.InDelta(t, 1.0, r.MinEdgeLength, 1e-12)
	assert.InDelta(t, 2.2360679775, r.MaxEdgeLength, 1e-9)

	longest := r.LongestEdges(2)
	require.Len(t, longest, 2)
	assert.Equal(t, mesh.NewEdge(0, 2), longest[0].Edge)
	assert.Equal(t, 2, longest[0].Faces)
	assert.InDelta(t, 2.0, longest[1].Length, 1e-12)
	assert.Len(t, r.LongestEdges(10), 5)
}

func TestAnalyzeEdgesTetrahedron(t *testing.T) {
	v := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, 0, 1),
	}
	m, err := mesh.FromVertices(v, []uint32{0, 2, 1, 0, 1, 3, 1, 2, 3, 0, 3, 2})
	require.NoError(t, err)

	r := AnalyzeEdges(m)
	assert.Equal(t, 6, r.EdgeCount)
	assert.Equal(t, 6, r.ManifoldEdges)
	assert.True(t, r.Closed())
}

func TestAnalyzeEdgesNonManifold(t *testing.T) {
	// three triangles hinged on the edge 0-1
	v := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, -1, 0),
		geometry.NewVector3(0, 0, 1),
	}
	m, err := mesh.FromVertices(v, []uint32{0, 1, 2, 1, 0, 3, 0, 1, 4})
	require.NoError(t, err)

	r := AnalyzeEdges(m)
	assert.Equal(t, 1, r.NonManifold)
	assert.Equal(t, 6, r.OpenEdges)
	assert.False(t, r.Closed())
}

func TestAnalyzeEdgesDegenerate(t *testing.T) {
	v := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
	}
	m, err := mesh.FromVertices(v, nil)
	require.NoError(t, err)

	r := AnalyzeEdges(m)
	assert.Equal(t, 1, r.Degenerate)
	assert.Equal(t, 1, r.EdgeCount)
}

func TestAnalyzeEdgesEmpty(t *testing.T) {
	m, err := mesh.FromVertices(nil, nil)
	require.NoError(t, err)

	r := AnalyzeEdges(m)
	assert.Zero(t, r.EdgeCount)
	assert.Zero(t, r.MinEdgeLength)
	assert.False(t, r.Closed())
}
