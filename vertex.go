package polypart

// partitionVertex is a working vertex of the ear-clipping ring. Vertices
// live in a flat slice and link to their neighbours by index; removing a
// vertex only clears isActive and splices the links.
type partitionVertex struct {
	p        Point
	isActive bool
	isConvex bool
	isEar    bool

	// angle is the cosine of the interior angle at the vertex. Sharper ears
	// have values closer to 1.
	angle float64

	prev, next int
}

// vertexRing is the arena holding the linked ring of working vertices.
type vertexRing []partitionVertex

// newVertexRing copies the polygon vertices into a fresh ring. All vertices
// start active with their ring neighbours as prev/next.
func newVertexRing(poly *Polygon) vertexRing {
	n := poly.NumPoints()
	ring := make(vertexRing, n)
	for i := 0; i < n; i++ {
		ring[i] = partitionVertex{
			p:        poly.Point(i),
			isActive: true,
			prev:     (i + n - 1) % n,
			next:     (i + 1) % n,
		}
	}
	return ring
}

// remove deactivates vertex v and splices its neighbours together.
func (ring vertexRing) remove(v int) {
	ring[v].isActive = false
	ring[ring[v].next].prev = ring[v].prev
	ring[ring[v].prev].next = ring[v].next
}

// update recomputes convexity, ear angle and ear status of vertex v from its
// current neighbours.
func (ring vertexRing) update(v int) {
	p1 := ring[ring[v].prev].p
	p := ring[v].p
	p3 := ring[ring[v].next].p

	ring[v].isConvex = isConvex(p1, p, p3)

	vec1 := normalize(p1.Sub(p))
	vec3 := normalize(p3.Sub(p))
	ring[v].angle = vec1.X*vec3.X + vec1.Y*vec3.Y

	if !ring[v].isConvex {
		ring[v].isEar = false
		return
	}

	ring[v].isEar = true
	for i := range ring {
		if !ring[i].isActive {
			continue
		}
		// Coincident duplicates introduced by hole merging must not block
		// the ear test.
		q := ring[i].p
		if pointApproximately(q, p) || pointApproximately(q, p1) || pointApproximately(q, p3) {
			continue
		}
		if isInside(p1, p, p3, q) {
			ring[v].isEar = false
			break
		}
	}
}
