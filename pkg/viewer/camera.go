package viewer

import (
	"math"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"golang.org/x/image/math/f64"
)

// Camera represents an orbit camera looking at a target
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Near      float64
	Far       float64
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a new camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance == 0 {
		distance = 1
	}

	return &Camera{
		Position:  center.Add(geometry.NewVector3(0, 0, distance)),
		Target:    center,
		Up:        geometry.NewVector3(0, 1, 0),
		FOV:       math.Pi / 4, // 45 degrees
		Near:      0.01,
		Far:       distance * 100,
		Distance:  distance,
		RotationX: 0,
		RotationY: 0,
	}
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	// Calculate position based on spherical coordinates
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// View returns the world-to-camera matrix
func (c *Camera) View() f64.Mat4 {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	return f64.Mat4{
		right.X, right.Y, right.Z, -right.Dot(c.Position),
		up.X, up.Y, up.Z, -up.Dot(c.Position),
		-forward.X, -forward.Y, -forward.Z, forward.Dot(c.Position),
		0, 0, 0, 1,
	}
}

// Projection returns the perspective matrix for the given aspect ratio
func (c *Camera) Projection(aspect float64) f64.Mat4 {
	f := 1 / math.Tan(c.FOV/2)
	nf := c.Near - c.Far
	return f64.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (c.Far + c.Near) / nf, 2 * c.Far * c.Near / nf,
		0, 0, -1, 0,
	}
}

// ViewProjection returns Projection(aspect) * View()
func (c *Camera) ViewProjection(aspect float64) f64.Mat4 {
	return Mul(c.Projection(aspect), c.View())
}

// Projector returns a projector for a canvas of the given size
func (c *Camera) Projector(width, height float64) MatrixProjector {
	return MatrixProjector{Matrix: c.ViewProjection(width / height)}
}

// Project projects a 3D point to 2D screen coordinates and returns its depth
// in front of the camera
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	clip := Transform(c.ViewProjection(width/height), point)
	w := clip[3]
	if w <= c.Near {
		w = c.Near // Prevent division by zero
	}

	screenX := (clip[0]/w + 1) / 2 * width
	screenY := (1 - clip[1]/w) / 2 * height
	return screenX, screenY, clip[3]
}

// MatrixProjector maps world positions through a view-projection matrix
type MatrixProjector struct {
	Matrix f64.Mat4
}

// ProjectNDC returns normalized device coordinates. Points on or behind the
// camera plane are reported as not visible.
func (p MatrixProjector) ProjectNDC(point geometry.Vector3) (geometry.Vector2, bool) {
	clip := Transform(p.Matrix, point)
	if !(clip[3] > 0) {
		return geometry.Vector2{}, false
	}
	return geometry.NewVector2(clip[0]/clip[3], clip[1]/clip[3]), true
}

// Mul returns the matrix product a * b
func Mul(a, b f64.Mat4) f64.Mat4 {
	var m f64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += a[4*r+k] * b[4*k+c]
			}
			m[4*r+c] = s
		}
	}
	return m
}

// Transform applies m to the homogeneous point (p, 1)
func Transform(m f64.Mat4, p geometry.Vector3) f64.Vec4 {
	in := f64.Vec4{p.X, p.Y, p.Z, 1}
	var out f64.Vec4
	for r := 0; r < 4; r++ {
		out[r] = m[4*r]*in[0] + m[4*r+1]*in[1] + m[4*r+2]*in[2] + m[4*r+3]*in[3]
	}
	return out
}
