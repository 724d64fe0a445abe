package polypart

import (
	"math"
	"testing"
)

func hexagon() Polygon {
	return NewPolygon([]Point{
		{60, 40}, {200, 40}, {220, 110}, {200, 180}, {60, 180}, {40, 110},
	}, false)
}

func unitTriangle() Polygon {
	return NewPolygon([]Point{{0, 0}, {1, 0}, {0, 1}}, false)
}

// squareWithHole returns a CCW outer square and a CW inner square hole.
func squareWithHole() []Polygon {
	outer := NewPolygon([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, false)
	hole := NewPolygon([]Point{{4, 4}, {6, 4}, {6, 6}, {4, 6}}, true)
	hole.SetOrientation(Clockwise)
	return []Polygon{outer, hole}
}

// cShape returns a CCW non-monotone polygon, open towards the right.
func cShape() Polygon {
	return NewPolygon([]Point{
		{0, 0}, {4, 0}, {4, 1}, {1, 1}, {1, 3}, {4, 3}, {4, 4}, {0, 4},
	}, false)
}

func signedArea(p *Polygon) float64 {
	var area float64
	n := p.NumPoints()
	for i := 0; i < n; i++ {
		cur, next := p.Point(i), p.Point((i+1)%n)
		area += cur.X*next.Y - cur.Y*next.X
	}
	return area / 2
}

// hasTriangle reports whether one of the triangles has exactly the vertex
// set {p1, p2, p3}, in any rotation or order.
func hasTriangle(triangles []Polygon, p1, p2, p3 Point) bool {
	want := []Point{p1, p2, p3}
	for ti := range triangles {
		if triangles[ti].NumPoints() != 3 {
			continue
		}
		matched := 0
		for _, w := range want {
			for i := 0; i < 3; i++ {
				if pointApproximately(triangles[ti].Point(i), w) {
					matched++
					break
				}
			}
		}
		if matched == 3 {
			return true
		}
	}
	return false
}

// checkTriangulation verifies the shared triangulation invariants: every
// piece is a triangle and the total area matches the input area.
func checkTriangulation(t *testing.T, input []Polygon, triangles []Polygon) {
	t.Helper()

	var wantArea float64
	for i := range input {
		a := signedArea(&input[i])
		if input[i].IsHole() {
			wantArea -= math.Abs(a)
		} else {
			wantArea += math.Abs(a)
		}
	}

	var gotArea float64
	for i := range triangles {
		if n := triangles[i].NumPoints(); n != 3 {
			t.Fatalf("want 3 vertices per triangle, got %d", n)
		}
		if triangles[i].IsHole() {
			t.Fatalf("triangle %d flagged as hole", i)
		}
		gotArea += math.Abs(signedArea(&triangles[i]))
	}
	if math.Abs(wantArea-gotArea) > 1e-6 {
		t.Errorf("want total triangle area %f, got %f", wantArea, gotArea)
	}
}
