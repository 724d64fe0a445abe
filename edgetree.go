package polypart

import "sort"

// scanLineEdge is an entry of the sweep status: an edge currently crossed by
// the scan line, with the index of the owning vertex in the monotone arena.
type scanLineEdge struct {
	index  int
	p1, p2 Point
}

// samePosition reports whether both endpoints approximately coincide.
func (e *scanLineEdge) samePosition(other *scanLineEdge) bool {
	return pointApproximately(e.p1, other.p1) && pointApproximately(e.p2, other.p2)
}

// isLeftOf reports whether e lies to the left of other along the scan line.
// The edge whose upper endpoint is strictly left of the other edge wins;
// horizontal edges compare by y.
func (e *scanLineEdge) isLeftOf(other *scanLineEdge) bool {
	if f64Approximately(other.p1.Y, other.p2.Y) {
		if f64Approximately(e.p1.Y, e.p2.Y) {
			return e.p1.Y < other.p1.Y
		}
		return isConvex(e.p1, e.p2, other.p1)
	}
	if f64Approximately(e.p1.Y, e.p2.Y) || e.p1.Y < other.p1.Y {
		return !isConvex(other.p1, other.p2, e.p1)
	}
	return isConvex(e.p1, e.p2, other.p1)
}

// compare orders two status entries. Coincident edges fall back to the
// stored vertex index so the relation stays a strict weak order.
func (e *scanLineEdge) compare(other *scanLineEdge) int {
	if e == other {
		return 0
	}
	if e.samePosition(other) {
		switch {
		case e.index < other.index:
			return -1
		case e.index > other.index:
			return 1
		}
		return 0
	}
	if e.isLeftOf(other) {
		return -1
	}
	return 1
}

// edgeSet is the ordered container of active scan-line edges. Entries are
// kept sorted in a slice; the *scanLineEdge returned by insert is a stable
// handle usable for removal and for in-place index renaming.
type edgeSet struct {
	entries []*scanLineEdge
}

// insert adds a copy of e at its sorted position and returns its handle.
func (s *edgeSet) insert(e scanLineEdge) *scanLineEdge {
	entry := &e
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].compare(entry) >= 0
	})
	s.entries = append(s.entries, nil)
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = entry
	return entry
}

// remove deletes the entry designated by handle.
func (s *edgeSet) remove(handle *scanLineEdge) error {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].compare(handle) >= 0
	})
	for j := i; j < len(s.entries); j++ {
		if s.entries[j] == handle {
			return s.deleteAt(j)
		}
		if s.entries[j].compare(handle) > 0 {
			break
		}
	}
	// Index renames can leave a handle slightly out of order among
	// coincident entries; fall back to a full scan before giving up.
	for j := range s.entries {
		if s.entries[j] == handle {
			return s.deleteAt(j)
		}
	}
	return ErrMissingStatusEdge
}

func (s *edgeSet) deleteAt(i int) error {
	copy(s.entries[i:], s.entries[i+1:])
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return nil
}

// predecessor returns the entry immediately left of query, i.e. the entry
// preceding the lower bound of query in the sorted order.
func (s *edgeSet) predecessor(query *scanLineEdge) (*scanLineEdge, error) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].compare(query) >= 0
	})
	if i == 0 {
		return nil, ErrNoPredecessorEdge
	}
	return s.entries[i-1], nil
}
