package geometry

import "math"

// Triangle represents a single facet with its stored normal and three vertices
type Triangle struct {
	Normal Vector3
	V1     Vector3
	V2     Vector3
	V3     Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Length() / 2
}

// BoundingBox is an axis-aligned box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any point will extend
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: NewVector3(inf, inf, inf),
		Max: NewVector3(-inf, -inf, -inf),
	}
}

// Extend grows the box to contain p
func (b *BoundingBox) Extend(p Vector3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// IsEmpty reports whether no point was added
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Center returns the center of the box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Midpoint(b.Max)
}

// Size returns the extent along each axis
func (b BoundingBox) Size() Vector3 {
	if b.IsEmpty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// Diagonal returns the length of the box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}
