package snap

import (
	"math"
	"testing"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"github.com/philipparndt/gosnap/pkg/mesh"
	"github.com/stretchr/testify/require"
)

// frame places plane coordinates (x, y) at origin + x*e1 + y*e2.
type frame struct {
	origin, e1, e2 geometry.Vector3
}

var flatFrame = frame{
	origin: geometry.NewVector3(0, 0, 0),
	e1:     geometry.NewVector3(1, 0, 0),
	e2:     geometry.NewVector3(0, 1, 0),
}

func tiltedFrame() frame {
	n := geometry.NewVector3(1, 1, 1).Normalize()
	e1 := geometry.NewVector3(1, -1, 0).Normalize()
	return frame{
		origin: geometry.NewVector3(3, -2, 1),
		e1:     e1,
		e2:     n.Cross(e1),
	}
}

func (f frame) at(x, y float64) geometry.Vector3 {
	return f.origin.Add(f.e1.Mul(x)).Add(f.e2.Mul(y))
}

// regularPolygon returns n rim points of radius r around the frame origin.
func (f frame) regularPolygon(r float64, n int) []geometry.Vector3 {
	rim := make([]geometry.Vector3, n)
	for i := range rim {
		a := 2 * math.Pi * float64(i) / float64(n)
		rim[i] = f.at(r*math.Cos(a), r*math.Sin(a))
	}
	return rim
}

// fanMesh triangulates the rim around center without shared indices, so
// every shared corner has to be merged by position.
func fanMesh(t testing.TB, center geometry.Vector3, rim []geometry.Vector3) *mesh.Mesh {
	t.Helper()
	var positions []float64
	for i := range rim {
		for _, p := range []geometry.Vector3{center, rim[i], rim[(i+1)%len(rim)]} {
			positions = append(positions, p.X, p.Y, p.Z)
		}
	}
	m, err := mesh.Index(positions, nil)
	require.NoError(t, err)
	return m
}

func squareMesh(t testing.TB) *mesh.Mesh {
	return fanMesh(t, geometry.NewVector3(1, 1, 0), []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(2, 2, 0),
		geometry.NewVector3(0, 2, 0),
	})
}

func indexed(t testing.TB, vertices []geometry.Vector3, indices ...uint32) *mesh.Mesh {
	t.Helper()
	m, err := mesh.FromVertices(vertices, indices)
	require.NoError(t, err)
	return m
}

func planeOf(t testing.TB, m *mesh.Mesh, tri int) geometry.Plane {
	t.Helper()
	a, b, c := m.Corners(tri)
	p, ok := geometry.PlaneFromTriangle(a, b, c)
	require.True(t, ok)
	return p
}

func countKinds(points []SnapPoint) (vertices, midpoints int) {
	for _, p := range points {
		switch p.Kind {
		case Vertex:
			vertices++
		case EdgeMidpoint:
			midpoints++
		}
	}
	return vertices, midpoints
}
