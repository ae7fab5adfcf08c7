package geometry

import (
	"errors"
	"math"
)

var (
	// ErrTooFewPoints is returned when fewer than three points are supplied.
	ErrTooFewPoints = errors.New("geometry: need at least 3 points to fit a circle")

	// ErrSingularMatrix is returned when a linear solve hits a pivot below
	// the requested threshold.
	ErrSingularMatrix = errors.New("geometry: singular matrix")
)

// CircleFit represents the result of fitting a circle to points in a plane
type CircleFit struct {
	Center   Vector2 // Circle center in plane coordinates
	Radius   float64 // Circle radius
	Residual float64 // RMS of |distance(point, center) - radius|
	Aspect   float64 // Bounding-box aspect ratio of the samples (>= 1)
}

// RelativeResidual returns Residual / Radius
func (f CircleFit) RelativeResidual() float64 {
	return f.Residual / f.Radius
}

// FitCircle fits a circle to 2D points with the algebraic least-squares
// method. The circle x² + y² = 2·cx·x + 2·cy·y + c is solved through its
// 3×3 normal equations and r = sqrt(cx² + cy² + c).
//
// The radius is NaN when the samples do not describe a real circle; callers
// validate the returned fit.
func FitCircle(points []Vector2, minPivot float64) (CircleFit, error) {
	if len(points) < 3 {
		return CircleFit{}, ErrTooFewPoints
	}

	// Work relative to the mean to keep the normal equations well scaled
	var mean Vector2
	for _, p := range points {
		mean = mean.Add(p)
	}
	mean = mean.Mul(1 / float64(len(points)))

	var sxx, syy, sxy, sx, sy, sxz, syz, sz float64
	for _, p := range points {
		x, y := p.X-mean.X, p.Y-mean.Y
		z := x*x + y*y
		sxx += x * x
		syy += y * y
		sxy += x * y
		sx += x
		sy += y
		sxz += z * x
		syz += z * y
		sz += z
	}
	n := float64(len(points))

	a := [3][3]float64{
		{sxx, sxy, sx},
		{sxy, syy, sy},
		{sx, sy, n},
	}
	b := [3]float64{sxz, syz, sz}

	sol, err := Solve3(a, b, minPivot)
	if err != nil {
		return CircleFit{}, err
	}

	cx, cy := sol[0]/2, sol[1]/2
	fit := CircleFit{
		Center: Vector2{X: cx + mean.X, Y: cy + mean.Y},
		Radius: math.Sqrt(cx*cx + cy*cy + sol[2]),
	}

	minP := Vector2{X: math.Inf(1), Y: math.Inf(1)}
	maxP := Vector2{X: math.Inf(-1), Y: math.Inf(-1)}
	var sumSq float64
	for _, p := range points {
		d := p.Distance(fit.Center) - fit.Radius
		sumSq += d * d
		minP = Vector2{X: math.Min(minP.X, p.X), Y: math.Min(minP.Y, p.Y)}
		maxP = Vector2{X: math.Max(maxP.X, p.X), Y: math.Max(maxP.Y, p.Y)}
	}
	fit.Residual = math.Sqrt(sumSq / n)
	fit.Aspect = aspectRatio(maxP.X-minP.X, maxP.Y-minP.Y)

	return fit, nil
}

func aspectRatio(w, h float64) float64 {
	lo, hi := math.Min(w, h), math.Max(w, h)
	if lo <= 0 {
		return math.Inf(1)
	}
	return hi / lo
}

// Solve3 solves a·x = b by Gaussian elimination with partial pivoting.
// It returns ErrSingularMatrix if any pivot magnitude is below minPivot.
func Solve3(a [3][3]float64, b [3]float64, minPivot float64) ([3]float64, error) {
	for col := 0; col < 3; col++ {
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if !(math.Abs(a[pivot][col]) >= minPivot) {
			return [3]float64{}, ErrSingularMatrix
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < 3; row++ {
			f := a[row][col] / a[col][col]
			for k := col; k < 3; k++ {
				a[row][k] -= f * a[col][k]
			}
			b[row] -= f * b[col]
		}
	}

	var x [3]float64
	for row := 2; row >= 0; row-- {
		s := b[row]
		for k := row + 1; k < 3; k++ {
			s -= a[row][k] * x[k]
		}
		x[row] = s / a[row][row]
	}
	return x, nil
}
