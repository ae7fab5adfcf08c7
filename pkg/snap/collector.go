package snap

import (
	"math"
	"slices"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"github.com/philipparndt/gosnap/pkg/mesh"
)

// CollectBoundaryPoints returns, for every boundary edge in order, its two
// end vertices and its midpoint, each deduplicated by quantized position,
// followed by the centroid of the outline.
func CollectBoundaryPoints(m *mesh.Mesh, plane geometry.Plane, edges []mesh.Edge) []SnapPoint {
	if len(edges) == 0 {
		return nil
	}
	points := appendEdgePoints(make([]SnapPoint, 0, 3*len(edges)+1), m, edges)
	return append(points, SnapPoint{Position: boundaryCentroid(m, plane, edges), Kind: Vertex})
}

func appendEdgePoints(dst []SnapPoint, m *mesh.Mesh, edges []mesh.Edge) []SnapPoint {
	vertices := make(map[geometry.Key]struct{}, len(edges))
	midpoints := make(map[geometry.Key]struct{}, len(edges))

	add := func(seen map[geometry.Key]struct{}, p geometry.Vector3, kind Kind) {
		key := p.Key()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		dst = append(dst, SnapPoint{Position: p, Kind: kind})
	}

	for _, e := range edges {
		a, b := m.Position(e.A), m.Position(e.B)
		add(vertices, a, Vertex)
		add(vertices, b, Vertex)
		add(midpoints, a.Midpoint(b), EdgeMidpoint)
	}
	return dst
}

// boundaryCentroid returns the area-weighted centroid of the outline loop,
// or the plain average of the boundary vertices if no loop closes.
func boundaryCentroid(m *mesh.Mesh, plane geometry.Plane, edges []mesh.Edge) geometry.Vector3 {
	if loop, ok := walkLoop(edges); ok {
		if c, ok := polygonCentroid(m, plane, loop); ok {
			return c
		}
	}
	return averagePosition(m, Boundary{Edges: edges}.Vertices())
}

// walkLoop greedily follows boundary adjacency from the first edge without
// backtracking. It reports true only when at least three vertices were
// visited and the last one connects back to the start.
func walkLoop(edges []mesh.Edge) ([]int, bool) {
	adjacent := make(map[int][]int, len(edges))
	for _, e := range edges {
		adjacent[e.A] = append(adjacent[e.A], e.B)
		adjacent[e.B] = append(adjacent[e.B], e.A)
	}

	start := edges[0].A
	visited := map[int]bool{start: true}
	loop := []int{start}
	for cur := start; ; {
		next := -1
		for _, n := range adjacent[cur] {
			if !visited[n] {
				next = n
				break
			}
		}
		if next < 0 {
			break
		}
		visited[next] = true
		loop = append(loop, next)
		cur = next
	}

	last := loop[len(loop)-1]
	return loop, len(loop) >= 3 && slices.Contains(adjacent[last], start)
}

// polygonCentroid computes the shoelace centroid of the loop in plane
// coordinates. It reports false for loops with (near) zero area.
func polygonCentroid(m *mesh.Mesh, plane geometry.Plane, loop []int) (geometry.Vector3, bool) {
	pts := make([]geometry.Vector2, len(loop))
	var extent float64
	for i, id := range loop {
		pts[i] = plane.ToLocal(m.Position(id))
		extent = math.Max(extent, pts[i].Distance(pts[0]))
	}

	var area2, cx, cy float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		cross := p.X*q.Y - q.X*p.Y
		area2 += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	if !(math.Abs(area2) > 1e-12*extent*extent) {
		return geometry.Vector3{}, false
	}

	c := geometry.NewVector2(cx/(3*area2), cy/(3*area2))
	return plane.FromLocal(c), true
}

func averagePosition(m *mesh.Mesh, ids []int) geometry.Vector3 {
	var sum geometry.Vector3
	for _, id := range ids {
		sum = sum.Add(m.Position(id))
	}
	return sum.Mul(1 / float64(len(ids)))
}
