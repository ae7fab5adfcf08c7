package snap

import (
	"math"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"github.com/philipparndt/gosnap/pkg/mesh"
)

// DetectCircle fits a circle to the boundary vertices in the plane. When the
// fit is accepted it returns the four cardinal points (EdgeMidpoint) along
// ±U and ±V followed by the center (Vertex), all in world space.
func DetectCircle(m *mesh.Mesh, plane geometry.Plane, boundary Boundary, cfg Config) ([]SnapPoint, bool) {
	ids := boundary.Vertices()
	fit, reason := fitBoundaryCircle(m, plane, ids, cfg)
	if reason != "" {
		Logger().Debug("snap: no circle", "reason", reason, "samples", len(ids))
		return nil, false
	}

	center := plane.FromLocal(fit.Center)
	u := plane.U.Mul(fit.Radius)
	v := plane.V.Mul(fit.Radius)
	return []SnapPoint{
		{Position: center.Add(u), Kind: EdgeMidpoint},
		{Position: center.Sub(u), Kind: EdgeMidpoint},
		{Position: center.Add(v), Kind: EdgeMidpoint},
		{Position: center.Sub(v), Kind: EdgeMidpoint},
		{Position: center, Kind: Vertex},
	}, true
}

// fitBoundaryCircle returns the fit and an empty reason when it is accepted.
func fitBoundaryCircle(m *mesh.Mesh, plane geometry.Plane, ids []int, cfg Config) (geometry.CircleFit, string) {
	if len(ids) < cfg.MinCircleSamples {
		return geometry.CircleFit{}, "too few samples"
	}

	points := make([]geometry.Vector2, len(ids))
	for i, id := range ids {
		points[i] = plane.ToLocal(m.Position(id))
	}

	fit, err := geometry.FitCircle(points, cfg.SingularPivot)
	if err != nil {
		return fit, err.Error()
	}

	switch {
	case math.IsNaN(fit.Radius) || math.IsInf(fit.Radius, 0) || fit.Radius <= 0:
		return fit, "invalid radius"
	case !(fit.RelativeResidual() <= cfg.MaxRelativeResidual):
		return fit, "residual too large"
	case !(fit.Aspect <= cfg.MaxAspectRatio):
		return fit, "elongated outline"
	}
	return fit, ""
}
