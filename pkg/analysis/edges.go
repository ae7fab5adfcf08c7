package analysis

import (
	"math"
	"sort"

	"github.com/philipparndt/gosnap/pkg/mesh"
)

// EdgeInfo describes one distinct edge of a mesh
type EdgeInfo struct {
	Edge   mesh.Edge
	Length float64
	Faces  int // Number of triangles sharing the edge
}

// EdgeReport summarizes the distinct edges of a mesh after coincident
// vertices are merged
type EdgeReport struct {
	EdgeCount     int
	OpenEdges     int // Used by a single triangle
	ManifoldEdges int // Shared by exactly two triangles
	NonManifold   int // Shared by three or more triangles
	Degenerate    int // Triangles with a collapsed edge
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// Closed reports whether every edge is shared by exactly two triangles
func (r *EdgeReport) Closed() bool {
	return r.EdgeCount > 0 && r.OpenEdges == 0 && r.NonManifold == 0
}

// AnalyzeEdges counts how often each canonical edge of m is used. Edges are
// listed in first-seen order.
func AnalyzeEdges(m *mesh.Mesh) *EdgeReport {
	result := &EdgeReport{}
	index := make(map[mesh.Edge]int)
	var edges []mesh.Edge

	for t := range m.Triangles {
		edges = m.Edges(t, edges[:0])
		if len(edges) < 3 {
			result.Degenerate++
		}
		for _, e := range edges {
			if i, ok := index[e]; ok {
				result.AllEdges[i].Faces++
				continue
			}
			index[e] = len(result.AllEdges)
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Edge:   e,
				Length: m.Position(e.A).Distance(m.Position(e.B)),
				Faces:  1,
			})
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount == 0 {
		return result
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for _, edge := range result.AllEdges {
		switch {
		case edge.Faces == 1:
			result.OpenEdges++
		case edge.Faces == 2:
			result.ManifoldEdges++
		default:
			result.NonManifold++
		}
		totalLength += edge.Length
		minLength = math.Min(minLength, edge.Length)
		maxLength = math.Max(maxLength, edge.Length)
	}

	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	return result
}

// LongestEdges returns the N longest edges
func (r *EdgeReport) LongestEdges(count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(r.AllEdges))
	copy(edges, r.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}
