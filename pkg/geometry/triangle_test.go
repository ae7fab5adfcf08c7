package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with legs 3 and 4, tilted out of the XY plane
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(1, 1, 1),
		NewVector3(4, 1, 1),
		NewVector3(1, 1, 5),
	)

	area := tri.Area()
	expected := 6.0

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleAreaDegenerate(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
	)

	if area := tri.Area(); area != 0 {
		t.Errorf("Area failed: expected 0 for collinear corners, got %v", area)
	}
}

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Fatal("IsEmpty failed: new box should be empty")
	}
	if size := bbox.Size(); size != (Vector3{}) {
		t.Errorf("Size failed: expected zero size for empty box, got %v", size)
	}

	bbox.Extend(NewVector3(1, -2, 3))
	bbox.Extend(NewVector3(-1, 2, 0))
	bbox.Extend(NewVector3(0, 0, 1))

	if bbox.IsEmpty() {
		t.Error("IsEmpty failed: box with points reported empty")
	}
	if bbox.Min != NewVector3(-1, -2, 0) {
		t.Errorf("Min failed: got %v", bbox.Min)
	}
	if bbox.Max != NewVector3(1, 2, 3) {
		t.Errorf("Max failed: got %v", bbox.Max)
	}
	if center := bbox.Center(); center != NewVector3(0, 0, 1.5) {
		t.Errorf("Center failed: expected (0, 0, 1.5), got %v", center)
	}
	if size := bbox.Size(); size != NewVector3(2, 4, 3) {
		t.Errorf("Size failed: expected (2, 4, 3), got %v", size)
	}
	if d := bbox.Diagonal(); math.Abs(d-math.Sqrt(29)) > 1e-10 {
		t.Errorf("Diagonal failed: expected %v, got %v", math.Sqrt(29), d)
	}
}

func TestBoundingBoxSinglePoint(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(2, 2, 2))

	if d := bbox.Diagonal(); d != 0 {
		t.Errorf("Diagonal failed: expected 0, got %v", d)
	}
	if center := bbox.Center(); center != NewVector3(2, 2, 2) {
		t.Errorf("Center failed: got %v", center)
	}
}
