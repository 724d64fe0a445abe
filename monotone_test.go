package polypart

import "testing"

func TestMonotonePartitionConvex(t *testing.T) {
	pieces, err := MonotonePartition([]Polygon{hexagon()})
	if err != nil {
		t.Fatal(err)
	}
	// A convex polygon is already monotone: no diagonal is added.
	if len(pieces) != 1 {
		t.Fatalf("want 1 monotone piece, got %d", len(pieces))
	}
	if pieces[0].NumPoints() != 6 {
		t.Errorf("want 6 vertices, got %d", pieces[0].NumPoints())
	}
	if pieces[0].IsHole() {
		t.Errorf("monotone piece flagged as hole")
	}
}

func TestMonotonePartitionConcave(t *testing.T) {
	pieces, err := MonotonePartition([]Polygon{cShape()})
	if err != nil {
		t.Fatal(err)
	}
	if len(pieces) < 2 {
		t.Fatalf("want at least 2 monotone pieces, got %d", len(pieces))
	}
	var total float64
	for i := range pieces {
		if !pieces[i].IsValid() {
			t.Errorf("piece %d is invalid", i)
		}
		total += signedArea(&pieces[i])
	}
	c := cShape()
	if want := signedArea(&c); !f64Approximately(total, want) {
		t.Errorf("want partitioned area %f, got %f", want, total)
	}
}

func TestMonotonePartitionWithHole(t *testing.T) {
	pieces, err := MonotonePartition(squareWithHole())
	if err != nil {
		t.Fatal(err)
	}
	// The split and merge vertices of the hole each spawn one diagonal,
	// connecting the hole to the outer ring.
	if len(pieces) != 2 {
		t.Fatalf("want 2 monotone pieces, got %d", len(pieces))
	}
	var total float64
	for i := range pieces {
		total += signedArea(&pieces[i])
	}
	if !f64Approximately(total, 96) {
		t.Errorf("want partitioned area 96, got %f", total)
	}
}

func TestMonotonePartitionInvalid(t *testing.T) {
	invalid := NewPolygon([]Point{{0, 0}, {1, 1}}, false)
	if _, err := MonotonePartition([]Polygon{invalid}); err != ErrInvalidPolygon {
		t.Errorf("want ErrInvalidPolygon, got %v", err)
	}
}

func TestTriangulateMonoHexagon(t *testing.T) {
	hexa := hexagon()
	triangles, err := TriangulateMono(&hexa)
	if err != nil {
		t.Fatal(err)
	}
	if len(triangles) != 4 {
		t.Fatalf("want 4 triangles, got %d", len(triangles))
	}
	if !hasTriangle(triangles, Point{60, 40}, Point{200, 40}, Point{40, 110}) {
		t.Errorf("want triangle (60,40)-(200,40)-(40,110) in %v", triangles)
	}
	checkTriangulation(t, []Polygon{hexa}, triangles)
}

func TestTriangulateMonoTrivial(t *testing.T) {
	tri := unitTriangle()
	triangles, err := TriangulateMono(&tri)
	if err != nil {
		t.Fatal(err)
	}
	if len(triangles) != 1 {
		t.Fatalf("want 1 triangle, got %d", len(triangles))
	}
}

func TestTriangulateMonoSquare(t *testing.T) {
	// A square is strictly y-monotone thanks to the lexicographic order on
	// its horizontal edges.
	sq := square(true)
	triangles, err := TriangulateMono(&sq)
	if err != nil {
		t.Fatal(err)
	}
	if len(triangles) != 2 {
		t.Fatalf("want 2 triangles, got %d", len(triangles))
	}
	checkTriangulation(t, []Polygon{sq}, triangles)
}

func TestTriangulateMonoNotMonotone(t *testing.T) {
	c := cShape()
	if _, err := TriangulateMono(&c); err != ErrNotMonotone {
		t.Errorf("want ErrNotMonotone, got %v", err)
	}
}

func TestTriangulateMonoInvalid(t *testing.T) {
	invalid := NewPolygon([]Point{{0, 0}, {1, 1}}, false)
	if _, err := TriangulateMono(&invalid); err != ErrInvalidPolygon {
		t.Errorf("want ErrInvalidPolygon, got %v", err)
	}
}

func TestTriangulateMonoList(t *testing.T) {
	input := squareWithHole()
	triangles, err := TriangulateMonoList(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(triangles) != 8 {
		t.Fatalf("want 8 triangles, got %d", len(triangles))
	}
	checkTriangulation(t, input, triangles)
}

func TestTriangulateMonoListConcave(t *testing.T) {
	c := cShape()
	triangles, err := TriangulateMonoList([]Polygon{c})
	if err != nil {
		t.Fatal(err)
	}
	checkTriangulation(t, []Polygon{c}, triangles)
}
