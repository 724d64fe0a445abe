package polypart

// RemoveHoles merges every hole of the input set into an enclosing outer
// polygon through a visibility bridge, until no hole remains. The returned
// polygons carry duplicated vertices along each bridge; the triangulators
// handle those.
func RemoveHoles(inpolys []Polygon) ([]Polygon, error) {
	hasHoles := false
	for i := range inpolys {
		if !inpolys[i].IsValid() {
			return nil, ErrInvalidPolygon
		}
		if inpolys[i].IsHole() {
			hasHoles = true
		}
	}

	polys := make([]Polygon, len(inpolys))
	for i := range inpolys {
		polys[i] = inpolys[i].Clone()
	}
	if !hasHoles {
		return polys, nil
	}

	for {
		// Pick the hole carrying the vertex of largest x over all holes.
		holePolyIndex := -1
		holePointIndex := 0
		for pi := range polys {
			if !polys[pi].IsHole() {
				continue
			}
			maxIndex := 0
			for i := 1; i < polys[pi].NumPoints(); i++ {
				if polys[pi].Point(i).X > polys[pi].Point(maxIndex).X {
					maxIndex = i
				}
			}
			if holePolyIndex < 0 || polys[pi].Point(maxIndex).X > polys[holePolyIndex].Point(holePointIndex).X {
				holePolyIndex = pi
				holePointIndex = maxIndex
			}
		}
		if holePolyIndex < 0 {
			return polys, nil
		}
		holePoint := polys[holePolyIndex].Point(holePointIndex)

		// Find the bridge endpoint on an outer polygon: right of the hole
		// point, holding it in its interior cone, aiming as far right as
		// possible, and visible from it.
		bestPolyIndex := -1
		bestPointIndex := 0
		for pi := range polys {
			if polys[pi].IsHole() {
				continue
			}
			numPoints := polys[pi].NumPoints()
			for i := 0; i < numPoints; i++ {
				polyPoint := polys[pi].Point(i)
				if polyPoint.X <= holePoint.X {
					continue
				}
				prev := polys[pi].Point((i + numPoints - 1) % numPoints)
				next := polys[pi].Point((i + 1) % numPoints)
				if !isInCone(prev, polyPoint, next, holePoint) {
					continue
				}
				if bestPolyIndex >= 0 {
					v1 := normalize(polyPoint.Sub(holePoint))
					v2 := normalize(polys[bestPolyIndex].Point(bestPointIndex).Sub(holePoint))
					if v2.X > v1.X {
						continue
					}
				}
				if !segmentVisible(polys, holePoint, polyPoint) {
					continue
				}
				bestPolyIndex = pi
				bestPointIndex = i
			}
		}
		if bestPolyIndex < 0 {
			return nil, ErrNoVisiblePoint
		}

		// Merge: outer up to the bridge vertex, the whole hole cyclically
		// from the hole point back to itself, then the rest of the outer.
		hole := &polys[holePolyIndex]
		best := &polys[bestPolyIndex]
		holeNumPoints := hole.NumPoints()
		bestNumPoints := best.NumPoints()

		newPoints := make([]Point, 0, holeNumPoints+bestNumPoints+2)
		for i := 0; i <= bestPointIndex; i++ {
			newPoints = append(newPoints, best.Point(i))
		}
		for i := 0; i <= holeNumPoints; i++ {
			newPoints = append(newPoints, hole.Point((i+holePointIndex)%holeNumPoints))
		}
		for i := bestPointIndex; i < bestNumPoints; i++ {
			newPoints = append(newPoints, best.Point(i))
		}

		// Drop both sources, largest index first so the other keeps its
		// position, then add the merged outer polygon.
		i1, i2 := holePolyIndex, bestPolyIndex
		if i1 < i2 {
			i1, i2 = i2, i1
		}
		polys = append(polys[:i1], polys[i1+1:]...)
		polys = append(polys[:i2], polys[i2+1:]...)
		polys = append(polys, NewPolygon(newPoints, false))
	}
}

// segmentVisible returns true if the segment from holePoint to polyPoint
// crosses no edge of any outer polygon.
func segmentVisible(polys []Polygon, holePoint, polyPoint Point) bool {
	for pi := range polys {
		if polys[pi].IsHole() {
			continue
		}
		numPoints := polys[pi].NumPoints()
		for i := 0; i < numPoints; i++ {
			cur := polys[pi].Point(i)
			next := polys[pi].Point((i + 1) % numPoints)
			if intersects(holePoint, polyPoint, cur, next) {
				return false
			}
		}
	}
	return true
}
