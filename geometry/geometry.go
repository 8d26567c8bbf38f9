package geometry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/orsolve/lp"
)

// Intersect solves the 2×2 system formed by the first two coefficients of c1
// and c2 (treated as equalities). It reports false when |det| < eps, i.e. the
// lines are parallel or coincident.
//
// Complexity: O(1).
func Intersect(c1, c2 lp.Constraint, eps float64) (lp.Point, bool) {
	a1, b1 := c1.Coeffs[0], c1.Coeffs[1]
	a2, b2 := c2.Coeffs[0], c2.Coeffs[1]
	det := a1*b2 - b1*a2
	if math.Abs(det) < eps {
		return lp.Point{}, false
	}

	// Cramer's rule.
	return lp.Point{
		X: (c1.RHS*b2 - c2.RHS*b1) / det,
		Y: (a1*c2.RHS - a2*c1.RHS) / det,
	}, true
}

// AxisIntercepts returns where c's boundary line meets the x-axis (y=0) and
// the y-axis (x=0). An intercept is reported only when the matching
// coefficient is larger than eps in magnitude.
//
// Complexity: O(1).
func AxisIntercepts(c lp.Constraint, eps float64) (onX lp.Point, okX bool, onY lp.Point, okY bool) {
	if math.Abs(c.Coeffs[0]) > eps {
		onX, okX = lp.Point{X: c.RHS / c.Coeffs[0]}, true
	}
	if math.Abs(c.Coeffs[1]) > eps {
		onY, okY = lp.Point{Y: c.RHS / c.Coeffs[1]}, true
	}

	return onX, okX, onY, okY
}

// IsFeasible reports whether p has both coordinates ≥ −eps and satisfies
// every constraint within eps for its operator.
//
// Complexity: O(len(cs)).
func IsFeasible(p lp.Point, cs []lp.Constraint, eps float64) bool {
	if p.X < -eps || p.Y < -eps {
		return false
	}
	x := p.Vec()
	for _, c := range cs {
		if !c.Satisfied(x, eps) {
			return false
		}
	}

	return true
}

// Contains reports whether pts already holds a point within eps of p on both axes.
//
// Complexity: O(len(pts)).
func Contains(pts []lp.Point, p lp.Point, eps float64) bool {
	for _, q := range pts {
		if math.Abs(q.X-p.X) < eps && math.Abs(q.Y-p.Y) < eps {
			return true
		}
	}

	return false
}

// Centroid returns the arithmetic mean of pts; the zero point for an empty set.
//
// Complexity: O(len(pts)).
func Centroid(pts []lp.Point) lp.Point {
	if len(pts) == 0 {
		return lp.Point{}
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	n := float64(len(pts))

	return lp.Point{X: floats.Sum(xs) / n, Y: floats.Sum(ys) / n}
}

// ConvexOrder returns a copy of pts sorted by polar angle around their
// centroid (counter-clockwise from −π). Fewer than three points are returned
// unchanged. Equal angles keep input order.
//
// Complexity: O(n log n).
func ConvexOrder(pts []lp.Point) []lp.Point {
	out := append([]lp.Point(nil), pts...)
	if len(out) < 3 {
		return out
	}
	c := Centroid(out)
	angle := func(p lp.Point) float64 { return math.Atan2(p.Y-c.Y, p.X-c.X) }
	sort.SliceStable(out, func(i, j int) bool { return angle(out[i]) < angle(out[j]) })

	return out
}
