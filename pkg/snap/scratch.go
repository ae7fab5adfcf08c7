package snap

import "github.com/philipparndt/gosnap/pkg/mesh"

// scratch holds the per-call working set. It is reset, not reallocated,
// between detections on meshes of similar size.
type scratch struct {
	candidate []bool
	visited   []bool
	queue     []int
	edges     []mesh.Edge
	adjacency map[mesh.Edge][]int
	counts    map[mesh.Edge]int
	order     []mesh.Edge
}

func newScratch() *scratch {
	return &scratch{
		adjacency: make(map[mesh.Edge][]int),
		counts:    make(map[mesh.Edge]int),
	}
}

func (s *scratch) reset(triangles int) {
	s.candidate = resetBools(s.candidate, triangles)
	s.visited = resetBools(s.visited, triangles)
	s.queue = s.queue[:0]
	s.edges = s.edges[:0]
	s.order = s.order[:0]
	clear(s.adjacency)
	clear(s.counts)
}

func resetBools(b []bool, n int) []bool {
	if cap(b) < n {
		return make([]bool, n)
	}
	b = b[:n]
	clear(b)
	return b
}
