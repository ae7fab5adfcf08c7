package snap

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"github.com/philipparndt/gosnap/pkg/mesh"
)

// NoHit is the hit index meaning the cursor ray missed the mesh.
const NoHit = -1

// ErrHitOutOfRange is returned when the hit triangle does not exist.
var ErrHitOutOfRange = errors.New("snap: hit triangle out of range")

// Detector computes snap points for a hovered triangle. It reuses its scratch
// buffers across calls and is not safe for concurrent use.
type Detector struct {
	cfg     Config
	scratch *scratch
}

// NewDetector creates a detector with the default thresholds adjusted by
// opts. It returns ErrInvalidConfig if the result is unusable.
func NewDetector(opts ...Option) (*Detector, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Detector{cfg: cfg, scratch: newScratch()}, nil
}

// Config returns the thresholds in use.
func (d *Detector) Config() Config {
	return d.cfg
}

// Detect returns the snap points of the flat face containing triangle hit.
//
// A negative hit (NoHit) and a degenerate hit triangle both yield no points.
// If the hit triangle does not pass its own coplanarity test, the vertices
// and edge midpoints of that triangle alone are returned. Otherwise the face
// yields circle points when its outline is circular, or outline points.
func (d *Detector) Detect(m *mesh.Mesh, hit int) ([]SnapPoint, error) {
	if hit < 0 {
		return nil, nil
	}
	if m == nil || hit >= len(m.Triangles) {
		count := 0
		if m != nil {
			count = len(m.Triangles)
		}
		return nil, fmt.Errorf("%w: triangle %d of %d", ErrHitOutOfRange, hit, count)
	}

	a, b, c := m.Corners(hit)
	plane, ok := geometry.PlaneFromTriangle(a, b, c)
	if !ok {
		Logger().Debug("snap: degenerate hit triangle", "triangle", hit)
		return nil, nil
	}

	region := d.scratch.grow(m, plane, hit, d.cfg)
	if len(region) == 0 {
		Logger().Debug("snap: no coplanar face, using hit triangle", "triangle", hit)
		return appendEdgePoints(nil, m, m.Edges(hit, nil)), nil
	}

	boundary := d.scratch.boundary(m, region)
	Logger().Debug("snap: face grown",
		"triangle", hit,
		"region", len(region),
		"boundary", len(boundary.Edges),
		"interior", len(boundary.Interior))

	if points, ok := DetectCircle(m, plane, boundary, d.cfg); ok {
		return points, nil
	}
	return CollectBoundaryPoints(m, plane, boundary.Edges), nil
}

// Detect runs a one-off detection with a fresh Detector.
func Detect(m *mesh.Mesh, hit int, opts ...Option) ([]SnapPoint, error) {
	d, err := NewDetector(opts...)
	if err != nil {
		return nil, err
	}
	return d.Detect(m, hit)
}
