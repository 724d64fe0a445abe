package polypart

import "math"

// Point is a position in the 2D plane.
type Point struct {
	X, Y float64
}

// Sub performs a vector subtraction. (p - q)
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dot performs a dot product. (p . q)
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Norm returns the euclidean length of the vector from the origin to p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// normalize returns p scaled to unit length, or the zero point if p has no
// length.
func normalize(p Point) Point {
	norm := p.Norm()
	if norm != 0 {
		return Point{p.X / norm, p.Y / norm}
	}
	return Point{}
}

// distance returns the euclidean distance between p1 and p2.
func distance(p1, p2 Point) float64 {
	return p1.Sub(p2).Norm()
}

// epsilon is the tolerance used for approximate float comparisons.
const epsilon = 1e-9

// f64Approximately returns true if a and b differ by less than epsilon.
func f64Approximately(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// pointApproximately compares two points component-wise with epsilon
// tolerance.
func pointApproximately(p1, p2 Point) bool {
	return f64Approximately(p1.X, p2.X) && f64Approximately(p1.Y, p2.Y)
}

// isBelow returns true if p1 is strictly below p2, comparing y first and
// breaking near-equal ys by x.
func isBelow(p1, p2 Point) bool {
	if f64Approximately(p1.Y, p2.Y) {
		return p1.X < p2.X
	}
	return p1.Y < p2.Y
}
