package snap

import (
	"math"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"github.com/philipparndt/gosnap/pkg/mesh"
)

// GrowRegion returns the triangles reachable from hit across shared
// canonical edges whose faces lie on plane within cfg's tolerances, in
// breadth-first order. The result is empty when hit itself is not coplanar.
func GrowRegion(m *mesh.Mesh, plane geometry.Plane, hit int, cfg Config) []int {
	region := newScratch().grow(m, plane, hit, cfg)
	if len(region) == 0 {
		return nil
	}
	return append([]int(nil), region...)
}

// Coplanar reports whether triangle t lies on plane: its normal is within
// cfg.NormalCosine of the plane normal (either orientation) and each corner
// is within cfg.PlaneDistance of the plane.
func Coplanar(m *mesh.Mesh, t int, plane geometry.Plane, cfg Config) bool {
	a, b, c := m.Corners(t)
	n, ok := geometry.TriangleNormal(a, b, c)
	if !ok {
		return false
	}
	if math.Abs(n.Dot(plane.Normal)) < cfg.NormalCosine {
		return false
	}
	for _, p := range [3]geometry.Vector3{a, b, c} {
		if math.Abs(plane.SignedDistance(p)) > cfg.PlaneDistance {
			return false
		}
	}
	return true
}

// grow returns a slice aliasing s.queue; it is valid until the next reset.
func (s *scratch) grow(m *mesh.Mesh, plane geometry.Plane, hit int, cfg Config) []int {
	s.reset(len(m.Triangles))
	if hit < 0 || hit >= len(m.Triangles) || !Coplanar(m, hit, plane, cfg) {
		return nil
	}

	for t := range m.Triangles {
		s.candidate[t] = t == hit || Coplanar(m, t, plane, cfg)
	}

	for t, ok := range s.candidate {
		if !ok {
			continue
		}
		s.edges = m.Edges(t, s.edges[:0])
		for _, e := range s.edges {
			s.adjacency[e] = append(s.adjacency[e], t)
		}
	}

	s.visited[hit] = true
	s.queue = append(s.queue, hit)
	for head := 0; head < len(s.queue); head++ {
		t := s.queue[head]
		s.edges = m.Edges(t, s.edges[:0])
		for _, e := range s.edges {
			for _, next := range s.adjacency[e] {
				if s.visited[next] {
					continue
				}
				s.visited[next] = true
				s.queue = append(s.queue, next)
			}
		}
	}
	return s.queue
}
