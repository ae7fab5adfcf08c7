package snap

import "github.com/philipparndt/gosnap/pkg/mesh"

// Boundary is the edge classification of a region. Edges keep the order in
// which the region's triangles first mention them.
type Boundary struct {
	// Edges used by exactly one region triangle, or by more than two
	// (non-manifold edges are kept on the outline).
	Edges []mesh.Edge
	// Interior edges used by exactly two region triangles.
	Interior []mesh.Edge
}

// Vertices returns the distinct canonical ids on the boundary in order of
// first appearance.
func (b Boundary) Vertices() []int {
	seen := make(map[int]struct{}, len(b.Edges))
	ids := make([]int, 0, len(b.Edges))
	for _, e := range b.Edges {
		for _, id := range [2]int{e.A, e.B} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// ExtractBoundary counts how many region triangles use each canonical edge
// and splits the edges into boundary and interior.
func ExtractBoundary(m *mesh.Mesh, region []int) Boundary {
	return newScratch().boundary(m, region)
}

func (s *scratch) boundary(m *mesh.Mesh, region []int) Boundary {
	clear(s.counts)
	s.order = s.order[:0]
	for _, t := range region {
		s.edges = m.Edges(t, s.edges[:0])
		for _, e := range s.edges {
			if s.counts[e] == 0 {
				s.order = append(s.order, e)
			}
			s.counts[e]++
		}
	}

	var b Boundary
	for _, e := range s.order {
		if s.counts[e] == 2 {
			b.Interior = append(b.Interior, e)
		} else {
			b.Edges = append(b.Edges, e)
		}
	}
	return b
}
