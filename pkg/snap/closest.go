package snap

import "github.com/philipparndt/gosnap/pkg/geometry"

// DefaultPixelBuffer is the extra pixel tolerance added to the snap radius.
const DefaultPixelBuffer = 15.0

// Projector maps a world position to normalized device coordinates. It
// reports false for points that cannot be shown, such as those behind the
// camera.
type Projector interface {
	ProjectNDC(p geometry.Vector3) (geometry.Vector2, bool)
}

// NDCToPixel converts normalized device coordinates to canvas pixels with
// the origin in the top-left corner.
func NDCToPixel(ndc geometry.Vector2, width, height float64) geometry.Vector2 {
	return geometry.NewVector2((ndc.X+1)/2*width, (1-ndc.Y)/2*height)
}

// PixelToNDC converts canvas pixels with the origin in the top-left corner
// to normalized device coordinates. It is the inverse of NDCToPixel.
func PixelToNDC(pixel geometry.Vector2, width, height float64) geometry.Vector2 {
	return geometry.NewVector2(2*pixel.X/width-1, 1-2*pixel.Y/height)
}

// SelectClosest returns the point whose projection is nearest the cursor,
// provided it lies within snapRadius+buffer pixels. The cursor is given in
// normalized device coordinates. On equal distance the earlier point wins.
func SelectClosest(points []SnapPoint, cursor geometry.Vector2, proj Projector, width, height, snapRadius, buffer float64) (SnapPoint, bool) {
	target := NDCToPixel(cursor, width, height)

	best := -1
	bestDist := 0.0
	for i, p := range points {
		ndc, ok := proj.ProjectNDC(p.Position)
		if !ok {
			continue
		}
		dist := NDCToPixel(ndc, width, height).Distance(target)
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}

	if best < 0 || bestDist > snapRadius+buffer {
		return SnapPoint{}, false
	}
	return points[best], true
}
