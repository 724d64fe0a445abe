package polypart

import "testing"

func TestTriangulateOptHexagon(t *testing.T) {
	hexa := hexagon()
	triangles, err := TriangulateOpt(&hexa)
	if err != nil {
		t.Fatal(err)
	}
	if len(triangles) != 4 {
		t.Fatalf("want 4 triangles, got %d", len(triangles))
	}
	// The minimal-weight triangulation keeps the short left-side diagonal.
	if !hasTriangle(triangles, Point{60, 40}, Point{60, 180}, Point{40, 110}) {
		t.Errorf("want triangle (60,40)-(60,180)-(40,110) in %v", triangles)
	}
	checkTriangulation(t, []Polygon{hexa}, triangles)
}

func TestTriangulateOptTrivial(t *testing.T) {
	tri := unitTriangle()
	triangles, err := TriangulateOpt(&tri)
	if err != nil {
		t.Fatal(err)
	}
	if len(triangles) != 1 {
		t.Fatalf("want 1 triangle, got %d", len(triangles))
	}
	if !hasTriangle(triangles, Point{0, 0}, Point{1, 0}, Point{0, 1}) {
		t.Errorf("want the input triangle back, got %v", triangles[0].Points())
	}
}

func TestTriangulateOptConcave(t *testing.T) {
	c := cShape()
	triangles, err := TriangulateOpt(&c)
	if err != nil {
		t.Fatal(err)
	}
	if len(triangles) != c.NumPoints()-2 {
		t.Fatalf("want %d triangles, got %d", c.NumPoints()-2, len(triangles))
	}
	checkTriangulation(t, []Polygon{c}, triangles)
}

func TestTriangulateOptInvalid(t *testing.T) {
	invalid := NewPolygon([]Point{{0, 0}, {1, 1}}, false)
	if _, err := TriangulateOpt(&invalid); err != ErrInvalidPolygon {
		t.Errorf("want ErrInvalidPolygon, got %v", err)
	}
}

func TestTriangulateOptListRejectsHoles(t *testing.T) {
	if _, err := TriangulateOptList(squareWithHole()); err != ErrHoleNotExpectedDP {
		t.Errorf("want ErrHoleNotExpectedDP, got %v", err)
	}
	if got := ErrHoleNotExpectedDP.Error(); got != "input polygon cannot be a hole in optimal dp" {
		t.Errorf("unexpected diagnostic %q", got)
	}
}

func TestTriangulateOptList(t *testing.T) {
	hexa := hexagon()
	tri := unitTriangle()
	triangles, err := TriangulateOptList([]Polygon{hexa, tri})
	if err != nil {
		t.Fatal(err)
	}
	if len(triangles) != 5 {
		t.Fatalf("want 5 triangles, got %d", len(triangles))
	}
}
