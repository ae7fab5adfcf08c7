package snap

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"github.com/philipparndt/gosnap/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCircleAcceptsPolygon(t *testing.T) {
	f := tiltedFrame()
	m := fanMesh(t, f.origin, f.regularPolygon(4, 32))
	plane := planeOf(t, m, 0)
	b := ExtractBoundary(m, GrowRegion(m, plane, 0, DefaultConfig()))

	points, ok := DetectCircle(m, plane, b, DefaultConfig())
	require.True(t, ok)
	require.Len(t, points, 5)

	center := points[4]
	assert.Equal(t, Vertex, center.Kind)
	assert.InDelta(t, 0, center.Position.Distance(f.origin), 1e-9)
	for _, p := range points[:4] {
		assert.Equal(t, EdgeMidpoint, p.Kind)
		assert.InDelta(t, 4, p.Position.Distance(center.Position), 1e-9)
		assert.InDelta(t, 0, plane.SignedDistance(p.Position), 1e-9)
	}
	// cardinal points lie along ±U and ±V
	assert.InDelta(t, 0, points[0].Position.Sub(center.Position).Dot(plane.V), 1e-9)
	assert.InDelta(t, 0, points[2].Position.Sub(center.Position).Dot(plane.U), 1e-9)
	assert.InDelta(t, 8, points[0].Position.Distance(points[1].Position), 1e-9)
}

func TestDetectCircleRejections(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("too few samples", func(t *testing.T) {
		m := fanMesh(t, flatFrame.origin, flatFrame.regularPolygon(1, 11))
		plane := planeOf(t, m, 0)
		_, reason := fitBoundaryCircle(m, plane, ExtractBoundary(m, GrowRegion(m, plane, 0, cfg)).Vertices(), cfg)
		assert.Equal(t, "too few samples", reason)
	})

	t.Run("elongated", func(t *testing.T) {
		rim := flatFrame.regularPolygon(1, 24)
		for i := range rim {
			rim[i].X *= 1.2
		}
		m := fanMesh(t, flatFrame.origin, rim)
		plane := planeOf(t, m, 0)
		_, reason := fitBoundaryCircle(m, plane, ExtractBoundary(m, GrowRegion(m, plane, 0, cfg)).Vertices(), cfg)
		assert.NotEmpty(t, reason)
	})

	t.Run("residual", func(t *testing.T) {
		// 16 points around a square outline
		var rim []geometry.Vector3
		for i := 0; i < 4; i++ {
			rim = append(rim, geometry.NewVector3(-2+float64(i), -2, 0))
		}
		for i := 0; i < 4; i++ {
			rim = append(rim, geometry.NewVector3(2, -2+float64(i), 0))
		}
		for i := 0; i < 4; i++ {
			rim = append(rim, geometry.NewVector3(2-float64(i), 2, 0))
		}
		for i := 0; i < 4; i++ {
			rim = append(rim, geometry.NewVector3(-2, 2-float64(i), 0))
		}
		m := fanMesh(t, geometry.NewVector3(0, 0, 0), rim)
		plane := planeOf(t, m, 0)
		_, reason := fitBoundaryCircle(m, plane, ExtractBoundary(m, GrowRegion(m, plane, 0, cfg)).Vertices(), cfg)
		assert.Equal(t, "residual too large", reason)
	})
}

func TestDetectCircleLogsVertexSamples(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	m := indexed(t, []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 1, 0),
	}, 0, 1, 2)

	// an open chain: two edges, three distinct vertices
	boundary := Boundary{Edges: []mesh.Edge{{A: 0, B: 1}, {A: 1, B: 2}}}
	_, ok := DetectCircle(m, planeOf(t, m, 0), boundary, DefaultConfig())
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "reason=\"too few samples\"")
	assert.Contains(t, buf.String(), "samples=3")
}
