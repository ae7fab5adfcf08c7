package snap

import "github.com/philipparndt/gosnap/pkg/geometry"

// Kind tags what a snap point represents
type Kind int

const (
	// Vertex is a corner, a face centroid or a circle center
	Vertex Kind = iota
	// EdgeMidpoint is the middle of an edge or a cardinal point of a circle
	EdgeMidpoint
)

// String returns a human readable name for the kind
func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case EdgeMidpoint:
		return "edge-midpoint"
	default:
		return "unknown"
	}
}

// SnapPoint is a candidate cursor position in world space
type SnapPoint struct {
	Position geometry.Vector3
	Kind     Kind
}
