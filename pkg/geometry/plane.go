package geometry

import "math"

// degenerateSine is the smallest sine of the corner angle at which a
// triangle still defines a plane.
const degenerateSine = 1e-12

// Plane is the set of points p with Normal·p == Constant. U and V are an
// orthonormal in-plane basis used for local 2D coordinates around Anchor.
type Plane struct {
	Normal   Vector3
	Constant float64
	Anchor   Vector3
	U        Vector3
	V        Vector3
}

// TriangleNormal returns the unit normal of the triangle (a, b, c). It
// reports false for zero-area or non-finite triangles.
func TriangleNormal(a, b, c Vector3) (Vector3, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	n := ab.Cross(ac)
	length := n.Length()
	if !(length > degenerateSine*ab.Length()*ac.Length()) || !isFinite(length) {
		return Vector3{}, false
	}
	return n.Mul(1 / length), true
}

// PlaneFromTriangle builds the plane through a, b and c. It reports false
// when the triangle is degenerate.
func PlaneFromTriangle(a, b, c Vector3) (Plane, bool) {
	n, ok := TriangleNormal(a, b, c)
	if !ok {
		return Plane{}, false
	}
	u, v := planeBasis(n)
	p := Plane{
		Normal:   n,
		Constant: n.Dot(a),
		Anchor:   a,
		U:        u,
		V:        v,
	}
	return p, p.Valid()
}

// Valid reports whether the normal is finite and of unit length
func (p Plane) Valid() bool {
	return p.Normal.IsFinite() && math.Abs(p.Normal.Length()-1) < 1e-9
}

// SignedDistance returns the distance of q from the plane along the normal
func (p Plane) SignedDistance(q Vector3) float64 {
	return p.Normal.Dot(q) - p.Constant
}

// ToLocal projects q into the plane's 2D coordinates
func (p Plane) ToLocal(q Vector3) Vector2 {
	d := q.Sub(p.Anchor)
	return Vector2{X: d.Dot(p.U), Y: d.Dot(p.V)}
}

// FromLocal maps plane coordinates back to world space
func (p Plane) FromLocal(q Vector2) Vector3 {
	return p.Anchor.Add(p.U.Mul(q.X)).Add(p.V.Mul(q.Y))
}

// planeBasis picks the world axis least aligned with n and orthogonalizes
// it against n. The result (u, v, n) is right-handed.
func planeBasis(n Vector3) (Vector3, Vector3) {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	axis := NewVector3(1, 0, 0)
	switch {
	case ay < ax && ay <= az:
		axis = NewVector3(0, 1, 0)
	case az < ax && az < ay:
		axis = NewVector3(0, 0, 1)
	}
	u := axis.Sub(n.Mul(axis.Dot(n))).Normalize()
	v := n.Cross(u)
	return u, v
}
