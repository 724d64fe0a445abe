package polypart

// dpState is one cell of the triangulation table: whether the chord (i, j)
// lies inside the polygon, the minimal diagonal weight of the sub-polygon it
// cuts off, and the splitting vertex achieving it.
type dpState struct {
	visible    bool
	weight     float64
	bestVertex int
}

// diagonal is a chord queued for reconstruction.
type diagonal struct {
	index1, index2 int
}

// TriangulateOpt computes the triangulation of a single outer polygon that
// minimizes the total internal edge length, by dynamic programming over
// diagonals. Runs in O(n³).
func TriangulateOpt(poly *Polygon) ([]Polygon, error) {
	if !poly.IsValid() {
		return nil, ErrInvalidPolygon
	}

	numVertices := poly.NumPoints()
	if numVertices == 3 {
		return []Polygon{poly.Clone()}, nil
	}

	// Lower-triangular table: dpStates[j][i] holds the state of the chord
	// (i, j) for i < j.
	dpStates := make([][]dpState, numVertices)
	for j := 1; j < numVertices; j++ {
		dpStates[j] = make([]dpState, j)
	}

	for i := 0; i < numVertices-1; i++ {
		p1 := poly.Point(i)
		for j := i + 1; j < numVertices; j++ {
			dpStates[j][i].visible = true
			dpStates[j][i].bestVertex = -1
			if j == i+1 {
				continue
			}
			p2 := poly.Point(j)

			// The chord is inside the polygon iff each endpoint sees the
			// other through its interior cone and no boundary edge cuts it.
			p3 := poly.Point((i + numVertices - 1) % numVertices)
			p4 := poly.Point((i + 1) % numVertices)
			if !isInCone(p3, p1, p4, p2) {
				dpStates[j][i].visible = false
				continue
			}
			p3 = poly.Point((j + numVertices - 1) % numVertices)
			p4 = poly.Point((j + 1) % numVertices)
			if !isInCone(p3, p2, p4, p1) {
				dpStates[j][i].visible = false
				continue
			}
			for k := 0; k < numVertices; k++ {
				if intersects(p1, p2, poly.Point(k), poly.Point((k+1)%numVertices)) {
					dpStates[j][i].visible = false
					break
				}
			}
		}
	}
	dpStates[numVertices-1][0].visible = true

	for gap := 2; gap < numVertices; gap++ {
		for i := 0; i < numVertices-gap; i++ {
			j := i + gap
			if !dpStates[j][i].visible {
				continue
			}

			bestVertex := -1
			var minWeight float64
			for k := i + 1; k < j; k++ {
				if !dpStates[k][i].visible || !dpStates[j][k].visible {
					continue
				}

				var d1, d2 float64
				if k > i+1 {
					d1 = distance(poly.Point(i), poly.Point(k))
				}
				if j > k+1 {
					d2 = distance(poly.Point(k), poly.Point(j))
				}

				weight := dpStates[k][i].weight + dpStates[j][k].weight + d1 + d2
				if bestVertex < 0 || weight < minWeight {
					bestVertex = k
					minWeight = weight
				}
			}
			if bestVertex < 0 {
				return nil, ErrNoBestVertex
			}

			dpStates[j][i].bestVertex = bestVertex
			dpStates[j][i].weight = minWeight
		}
	}

	triangles := make([]Polygon, 0, numVertices-2)
	queue := []diagonal{{0, numVertices - 1}}
	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]

		bestVertex := dpStates[d.index2][d.index1].bestVertex
		if bestVertex < 0 {
			return nil, ErrNoBestVertex
		}
		triangles = append(triangles, Triangle(
			poly.Point(d.index1), poly.Point(bestVertex), poly.Point(d.index2)))

		if bestVertex > d.index1+1 {
			queue = append(queue, diagonal{d.index1, bestVertex})
		}
		if d.index2 > bestVertex+1 {
			queue = append(queue, diagonal{bestVertex, d.index2})
		}
	}
	return triangles, nil
}

// TriangulateOptList triangulates every polygon of the list and concatenates
// the resulting triangles. Hole polygons are rejected.
func TriangulateOptList(polys []Polygon) ([]Polygon, error) {
	var triangles []Polygon
	for i := range polys {
		if polys[i].IsHole() {
			return nil, ErrHoleNotExpectedDP
		}
		pieces, err := TriangulateOpt(&polys[i])
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, pieces...)
	}
	return triangles, nil
}
