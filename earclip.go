package polypart

import assert "github.com/arl/assertgo"

// TriangulateEC triangulates a single outer polygon by ear clipping,
// removing the sharpest available ear at each step. Runs in O(n²).
func TriangulateEC(poly *Polygon) ([]Polygon, error) {
	if !poly.IsValid() {
		return nil, ErrInvalidPolygon
	}

	numVertices := poly.NumPoints()
	if numVertices == 3 {
		return []Polygon{poly.Clone()}, nil
	}

	ring := newVertexRing(poly)
	for i := range ring {
		ring.update(i)
	}

	triangles := make([]Polygon, 0, numVertices-2)
	for i := 0; i < numVertices-3; i++ {
		// Pick the active ear with the largest angle cosine, first one
		// encountered on a tie.
		ear := -1
		for v := range ring {
			if !ring[v].isActive || !ring[v].isEar {
				continue
			}
			if ear < 0 || ring[v].angle > ring[ear].angle {
				ear = v
			}
		}
		if ear < 0 {
			return nil, ErrNoEarFound
		}

		prev, next := ring[ear].prev, ring[ear].next
		triangles = append(triangles, Triangle(ring[prev].p, ring[ear].p, ring[next].p))

		ring.remove(ear)
		assert.True(ring[prev].next == next && ring[next].prev == prev,
			"ear removal must splice %d and %d together", prev, next)

		if i == numVertices-4 {
			break
		}
		ring.update(prev)
		ring.update(next)
	}

	// The three remaining active vertices form the last triangle.
	for v := range ring {
		if ring[v].isActive {
			triangles = append(triangles, Triangle(ring[ring[v].prev].p, ring[v].p, ring[ring[v].next].p))
			break
		}
	}
	return triangles, nil
}

// TriangulateECList triangulates every polygon of the list and concatenates
// the resulting triangles. Holes are rejected: run RemoveHoles first.
func TriangulateECList(polys []Polygon) ([]Polygon, error) {
	var triangles []Polygon
	for i := range polys {
		if polys[i].IsHole() {
			return nil, ErrHoleNotExpected
		}
		pieces, err := TriangulateEC(&polys[i])
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, pieces...)
	}
	return triangles, nil
}
