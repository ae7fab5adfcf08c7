// Package mesh indexes raw triangle buffers into triangles over world-space
// vertices and merges vertices that share a position.
package mesh

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gosnap/pkg/geometry"
)

// ErrInvalidMesh is returned when the buffers do not describe triangles over
// the supplied vertices.
var ErrInvalidMesh = errors.New("mesh: invalid mesh")

// Triangle holds three indices into Mesh.Vertices
type Triangle [3]int

// Edge is an unordered pair of canonical vertex ids with A < B
type Edge struct {
	A, B int
}

// NewEdge returns the edge between canonical ids a and b
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Mesh is a read-only triangle mesh in world space.
//
// Canonical maps every raw vertex index to the index of the first vertex with
// the same quantized position, so Vertices[Canonical[i]] is the position of
// the canonical vertex of i.
type Mesh struct {
	Vertices  []geometry.Vector3
	Triangles []Triangle
	Canonical []int
}

// Index builds a mesh from a flat position buffer (x, y, z per vertex) and an
// optional index buffer. With no indices every three consecutive vertices
// form a triangle.
func Index(positions []float64, indices []uint32) (*Mesh, error) {
	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("%w: position buffer length %d is not a multiple of 3", ErrInvalidMesh, len(positions))
	}

	vertices := make([]geometry.Vector3, len(positions)/3)
	for i := range vertices {
		vertices[i] = geometry.NewVector3(positions[3*i], positions[3*i+1], positions[3*i+2])
	}
	return FromVertices(vertices, indices)
}

// FromVertices builds a mesh over already decoded vertices. The slice is
// retained, not copied.
func FromVertices(vertices []geometry.Vector3, indices []uint32) (*Mesh, error) {
	triangles, err := triangulate(len(vertices), indices)
	if err != nil {
		return nil, err
	}

	return &Mesh{
		Vertices:  vertices,
		Triangles: triangles,
		Canonical: canonicalize(vertices),
	}, nil
}

func triangulate(vertexCount int, indices []uint32) ([]Triangle, error) {
	if len(indices) == 0 {
		if vertexCount%3 != 0 {
			return nil, fmt.Errorf("%w: %d vertices cannot be split into triangles", ErrInvalidMesh, vertexCount)
		}
		triangles := make([]Triangle, vertexCount/3)
		for i := range triangles {
			triangles[i] = Triangle{3 * i, 3*i + 1, 3*i + 2}
		}
		return triangles, nil
	}

	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: index buffer length %d is not a multiple of 3", ErrInvalidMesh, len(indices))
	}
	triangles := make([]Triangle, len(indices)/3)
	for i := range triangles {
		for k := 0; k < 3; k++ {
			idx := indices[3*i+k]
			if int64(idx) >= int64(vertexCount) {
				return nil, fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrInvalidMesh, i, idx, vertexCount)
			}
			triangles[i][k] = int(idx)
		}
	}
	return triangles, nil
}

func canonicalize(vertices []geometry.Vector3) []int {
	canonical := make([]int, len(vertices))
	first := make(map[geometry.Key]int, len(vertices))
	for i, v := range vertices {
		key := v.Key()
		if id, ok := first[key]; ok {
			canonical[i] = id
			continue
		}
		first[key] = i
		canonical[i] = i
	}
	return canonical
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// CanonicalCount returns the number of distinct vertex positions
func (m *Mesh) CanonicalCount() int {
	count := 0
	for i, id := range m.Canonical {
		if i == id {
			count++
		}
	}
	return count
}

// Corners returns the world positions of triangle t
func (m *Mesh) Corners(t int) (geometry.Vector3, geometry.Vector3, geometry.Vector3) {
	tri := m.Triangles[t]
	return m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
}

// CanonicalTriangle returns the canonical vertex ids of triangle t
func (m *Mesh) CanonicalTriangle(t int) [3]int {
	tri := m.Triangles[t]
	return [3]int{m.Canonical[tri[0]], m.Canonical[tri[1]], m.Canonical[tri[2]]}
}

// Edges returns the canonical edges of triangle t in winding order. Edges
// whose ends merged into one canonical vertex are omitted.
func (m *Mesh) Edges(t int, dst []Edge) []Edge {
	c := m.CanonicalTriangle(t)
	for k := 0; k < 3; k++ {
		a, b := c[k], c[(k+1)%3]
		if a != b {
			dst = append(dst, NewEdge(a, b))
		}
	}
	return dst
}

// Position returns the world position of a canonical vertex id
func (m *Mesh) Position(id int) geometry.Vector3 {
	return m.Vertices[id]
}

// BoundingBox returns the bounds of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}
