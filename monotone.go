package polypart

import (
	"sort"

	assert "github.com/arl/assertgo"
)

// monotoneVertex is a working vertex of the monotone arena. Unlike the ear
// ring, vertices are never deactivated: adding a diagonal appends two new
// co-located copies and rewires the links, splitting the ring in two.
type monotoneVertex struct {
	p          Point
	prev, next int
}

// vertex classes assigned by the sweep.
type vertexType int

const (
	vtRegular vertexType = iota
	vtStart
	vtEnd
	vtSplit
	vtMerge
)

// MonotonePartition decomposes a set of polygons (outers counter-clockwise,
// holes clockwise) into y-monotone polygons with a single top-down sweep.
func MonotonePartition(inpolys []Polygon) ([]Polygon, error) {
	numVertices := 0
	for i := range inpolys {
		if !inpolys[i].IsValid() {
			return nil, ErrInvalidPolygon
		}
		numVertices += inpolys[i].NumPoints()
	}

	// Each added diagonal duplicates two vertices and a triangulation adds
	// at most n-3 diagonals, so 3n slots always suffice.
	maxNumVertices := numVertices * 3
	vertices := make([]monotoneVertex, maxNumVertices)
	newNumVertices := numVertices

	polyStart := 0
	for pi := range inpolys {
		poly := &inpolys[pi]
		numPoints := poly.NumPoints()
		polyEnd := polyStart + numPoints - 1
		for i := 0; i < numPoints; i++ {
			v := &vertices[polyStart+i]
			v.p = poly.Point(i)
			if i == 0 {
				v.prev = polyEnd
			} else {
				v.prev = polyStart + i - 1
			}
			if i == numPoints-1 {
				v.next = polyStart
			} else {
				v.next = polyStart + i + 1
			}
		}
		polyStart = polyEnd + 1
	}

	// Sweep priority: topmost first, ties broken towards larger x.
	priority := make([]int, numVertices)
	for i := range priority {
		priority[i] = i
	}
	sort.SliceStable(priority, func(a, b int) bool {
		p1, p2 := vertices[priority[a]].p, vertices[priority[b]].p
		if !f64Approximately(p1.Y, p2.Y) {
			return p1.Y > p2.Y
		}
		return p1.X > p2.X
	})

	vertexTypes := make([]vertexType, maxNumVertices)
	for i := 0; i < numVertices; i++ {
		v := &vertices[i]
		vPrev := &vertices[v.prev]
		vNext := &vertices[v.next]

		switch {
		case isBelow(vPrev.p, v.p) && isBelow(vNext.p, v.p):
			if isConvex(vNext.p, vPrev.p, v.p) {
				vertexTypes[i] = vtStart
			} else {
				vertexTypes[i] = vtSplit
			}
		case isBelow(v.p, vPrev.p) && isBelow(v.p, vNext.p):
			if isConvex(vNext.p, vPrev.p, v.p) {
				vertexTypes[i] = vtEnd
			} else {
				vertexTypes[i] = vtMerge
			}
		default:
			vertexTypes[i] = vtRegular
		}
	}

	helpers := make([]int, maxNumVertices)
	handles := make([]*scanLineEdge, maxNumVertices)
	var status edgeSet

	for _, vIndex := range priority {
		v := vertices[vIndex]
		vIndex2 := vIndex
		v2 := v

		switch vertexTypes[vIndex] {
		case vtStart:
			handles[vIndex] = status.insert(scanLineEdge{
				index: vIndex,
				p1:    v.p,
				p2:    vertices[v.next].p,
			})
			helpers[vIndex] = vIndex

		case vtEnd:
			if handles[v.prev] == nil {
				return nil, ErrMissingStatusEdge
			}
			if vertexTypes[helpers[v.prev]] == vtMerge {
				addDiagonal(vertices, &newNumVertices, vIndex, helpers[v.prev], vertexTypes, handles, helpers)
			}
			if err := status.remove(handles[v.prev]); err != nil {
				return nil, err
			}
			handles[v.prev] = nil

		case vtSplit:
			query := scanLineEdge{p1: v.p, p2: v.p}
			left, err := status.predecessor(&query)
			if err != nil {
				return nil, err
			}
			addDiagonal(vertices, &newNumVertices, vIndex, helpers[left.index], vertexTypes, handles, helpers)
			vIndex2 = newNumVertices - 2
			v2 = vertices[vIndex2]
			helpers[left.index] = vIndex

			handles[vIndex2] = status.insert(scanLineEdge{
				index: vIndex2,
				p1:    v2.p,
				p2:    vertices[v2.next].p,
			})
			helpers[vIndex2] = vIndex2

		case vtMerge:
			if handles[v.prev] == nil {
				return nil, ErrMissingStatusEdge
			}
			if vertexTypes[helpers[v.prev]] == vtMerge {
				addDiagonal(vertices, &newNumVertices, vIndex, helpers[v.prev], vertexTypes, handles, helpers)
				vIndex2 = newNumVertices - 2
				v2 = vertices[vIndex2]
			}
			if err := status.remove(handles[v.prev]); err != nil {
				return nil, err
			}
			handles[v.prev] = nil

			query := scanLineEdge{p1: v.p, p2: v.p}
			left, err := status.predecessor(&query)
			if err != nil {
				return nil, err
			}
			if vertexTypes[helpers[left.index]] == vtMerge {
				addDiagonal(vertices, &newNumVertices, vIndex2, helpers[left.index], vertexTypes, handles, helpers)
			}
			helpers[left.index] = vIndex2

		case vtRegular:
			if isBelow(v.p, vertices[v.prev].p) {
				// Interior lies to the right of the vertex: the incoming
				// edge ends here and the outgoing edge starts here.
				if handles[v.prev] == nil {
					return nil, ErrMissingStatusEdge
				}
				if vertexTypes[helpers[v.prev]] == vtMerge {
					addDiagonal(vertices, &newNumVertices, vIndex, helpers[v.prev], vertexTypes, handles, helpers)
					vIndex2 = newNumVertices - 2
					v2 = vertices[vIndex2]
				}
				if err := status.remove(handles[v.prev]); err != nil {
					return nil, err
				}
				handles[v.prev] = nil

				handles[vIndex2] = status.insert(scanLineEdge{
					index: vIndex2,
					p1:    v2.p,
					p2:    vertices[v2.next].p,
				})
				helpers[vIndex2] = vIndex
			} else {
				query := scanLineEdge{p1: v.p, p2: v.p}
				left, err := status.predecessor(&query)
				if err != nil {
					return nil, err
				}
				if vertexTypes[helpers[left.index]] == vtMerge {
					addDiagonal(vertices, &newNumVertices, vIndex, helpers[left.index], vertexTypes, handles, helpers)
				}
				helpers[left.index] = vIndex
			}
		}
	}
	assert.True(newNumVertices <= maxNumVertices,
		"monotone arena overflow: %d > %d", newNumVertices, maxNumVertices)

	// Walk the resulting ring graph, one monotone polygon per component.
	monotonePolys := make([]Polygon, 0)
	used := make([]bool, newNumVertices)
	for i := 0; i < newNumVertices; i++ {
		if used[i] {
			continue
		}
		size := 1
		for cur := vertices[i].next; cur != i; cur = vertices[cur].next {
			size++
		}

		points := make([]Point, size)
		cur := i
		for k := 0; k < size; k++ {
			points[k] = vertices[cur].p
			used[cur] = true
			cur = vertices[cur].next
		}
		monotonePolys = append(monotonePolys, NewPolygon(points, false))
	}
	return monotonePolys, nil
}

// addDiagonal splits the ring along the chord index1-index2. Two fresh
// vertices co-located with the chord endpoints are appended and the links
// rewired so the ring becomes two sub-rings joined head-to-tail through the
// diagonal. Classification, status handle and helper of the originals are
// propagated to the copies, and a status entry owned by a renamed vertex is
// retargeted in place.
func addDiagonal(vertices []monotoneVertex, numVertices *int, index1, index2 int,
	vertexTypes []vertexType, handles []*scanLineEdge, helpers []int) {

	newIndex1 := *numVertices
	*numVertices++
	newIndex2 := *numVertices
	*numVertices++

	vertices[newIndex1].p = vertices[index1].p
	vertices[newIndex2].p = vertices[index2].p

	vertices[newIndex2].next = vertices[index2].next
	vertices[newIndex1].next = vertices[index1].next

	vertices[vertices[index2].next].prev = newIndex2
	vertices[vertices[index1].next].prev = newIndex1

	vertices[index1].next = newIndex2
	vertices[newIndex2].prev = index1

	vertices[index2].next = newIndex1
	vertices[newIndex1].prev = index2

	vertexTypes[newIndex1] = vertexTypes[index1]
	handles[newIndex1] = handles[index1]
	helpers[newIndex1] = helpers[index1]
	if handles[newIndex1] != nil {
		handles[newIndex1].index = newIndex1
	}

	vertexTypes[newIndex2] = vertexTypes[index2]
	handles[newIndex2] = handles[index2]
	helpers[newIndex2] = helpers[index2]
	if handles[newIndex2] != nil {
		handles[newIndex2].index = newIndex2
	}
}

// TriangulateMono triangulates a single y-monotone polygon with the
// two-chain stack scan. Runs in O(n).
func TriangulateMono(poly *Polygon) ([]Polygon, error) {
	if !poly.IsValid() {
		return nil, ErrInvalidPolygon
	}

	numPoints := poly.NumPoints()
	if numPoints == 3 {
		return []Polygon{poly.Clone()}, nil
	}

	next := func(i int) int { return (i + 1) % numPoints }
	prev := func(i int) int { return (i + numPoints - 1) % numPoints }

	top, bottom := 0, 0
	for i := 1; i < numPoints; i++ {
		if isBelow(poly.Point(top), poly.Point(i)) {
			top = i
		}
		if isBelow(poly.Point(i), poly.Point(bottom)) {
			bottom = i
		}
	}

	// Both chains must run strictly downward from top to bottom.
	for i := top; i != bottom; {
		i2 := next(i)
		if !isBelow(poly.Point(i2), poly.Point(i)) {
			return nil, ErrNotMonotone
		}
		i = i2
	}
	for i := bottom; i != top; {
		i2 := next(i)
		if !isBelow(poly.Point(i), poly.Point(i2)) {
			return nil, ErrNotMonotone
		}
		i = i2
	}

	// Merge the two chains into one top-down sequence, labelling each
	// vertex with its chain: +1 left, -1 right, 0 for the extrema.
	priority := make([]int, numPoints)
	chain := make([]int, numPoints)
	priority[0] = top
	leftIndex := next(top)
	rightIndex := prev(top)
	for i := 1; i < numPoints-1; i++ {
		switch {
		case leftIndex == bottom:
			priority[i] = rightIndex
			chain[rightIndex] = -1
			rightIndex = prev(rightIndex)
		case rightIndex == bottom:
			priority[i] = leftIndex
			chain[leftIndex] = 1
			leftIndex = next(leftIndex)
		case isBelow(poly.Point(leftIndex), poly.Point(rightIndex)):
			priority[i] = rightIndex
			chain[rightIndex] = -1
			rightIndex = prev(rightIndex)
		default:
			priority[i] = leftIndex
			chain[leftIndex] = 1
			leftIndex = next(leftIndex)
		}
	}
	priority[numPoints-1] = bottom

	triangles := make([]Polygon, 0, numPoints-2)
	stack := make([]int, numPoints)
	stack[0] = priority[0]
	stack[1] = priority[1]
	stackPtr := 2

	for i := 2; i < numPoints-1; i++ {
		vIndex := priority[i]
		if chain[vIndex] != chain[stack[stackPtr-1]] {
			for j := 0; j < stackPtr-1; j++ {
				if chain[vIndex] == 1 {
					triangles = append(triangles, Triangle(
						poly.Point(stack[j+1]), poly.Point(stack[j]), poly.Point(vIndex)))
				} else {
					triangles = append(triangles, Triangle(
						poly.Point(stack[j]), poly.Point(stack[j+1]), poly.Point(vIndex)))
				}
			}
			stack[0] = priority[i-1]
			stack[1] = priority[i]
			stackPtr = 2
			continue
		}

		stackPtr--
		for stackPtr > 0 {
			if chain[vIndex] == 1 {
				if !isConvex(poly.Point(vIndex), poly.Point(stack[stackPtr-1]), poly.Point(stack[stackPtr])) {
					break
				}
				triangles = append(triangles, Triangle(
					poly.Point(vIndex), poly.Point(stack[stackPtr-1]), poly.Point(stack[stackPtr])))
			} else {
				if !isConvex(poly.Point(vIndex), poly.Point(stack[stackPtr]), poly.Point(stack[stackPtr-1])) {
					break
				}
				triangles = append(triangles, Triangle(
					poly.Point(vIndex), poly.Point(stack[stackPtr]), poly.Point(stack[stackPtr-1])))
			}
			stackPtr--
		}
		stackPtr++
		stack[stackPtr] = vIndex
		stackPtr++
	}

	vIndex := priority[numPoints-1]
	for j := 0; j < stackPtr-1; j++ {
		if chain[stack[j+1]] == 1 {
			triangles = append(triangles, Triangle(
				poly.Point(stack[j]), poly.Point(stack[j+1]), poly.Point(vIndex)))
		} else {
			triangles = append(triangles, Triangle(
				poly.Point(stack[j+1]), poly.Point(stack[j]), poly.Point(vIndex)))
		}
	}
	return triangles, nil
}

// TriangulateMonoList partitions the polygons into monotone pieces and
// triangulates each one, concatenating the results.
func TriangulateMonoList(inpolys []Polygon) ([]Polygon, error) {
	monotonePolys, err := MonotonePartition(inpolys)
	if err != nil {
		return nil, err
	}
	var triangles []Polygon
	for i := range monotonePolys {
		pieces, err := TriangulateMono(&monotonePolys[i])
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, pieces...)
	}
	return triangles, nil
}
