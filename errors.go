package polypart

import "errors"

var (
	// ErrInvalidPolygon indicates an input polygon with less than 3 vertices.
	ErrInvalidPolygon = errors.New("input polygon is invalid")

	// ErrHoleNotExpected indicates a hole polygon fed to a triangulator that
	// only accepts outer polygons.
	ErrHoleNotExpected = errors.New("input polygon cannot be a hole")

	// ErrHoleNotExpectedDP is the hole rejection of the optimal dp variant.
	ErrHoleNotExpectedDP = errors.New("input polygon cannot be a hole in optimal dp")

	// ErrNoVisiblePoint indicates hole elimination could not find a bridge
	// vertex visible from a hole.
	ErrNoVisiblePoint = errors.New("no visible polypoint found")

	// ErrNoEarFound indicates an ear-clipping pass without a single ear,
	// which only happens on degenerate input.
	ErrNoEarFound = errors.New("no ear found")

	// ErrNotMonotone indicates a polygon fed to the monotone triangulator
	// whose boundary is not y-monotone.
	ErrNotMonotone = errors.New("input polygon is not monotone")

	// ErrMissingStatusEdge indicates a scan-line status handle was expected
	// but absent.
	ErrMissingStatusEdge = errors.New("scan-line status edge missing")

	// ErrNoPredecessorEdge indicates the sweep queried the edge left of a
	// vertex that has none.
	ErrNoPredecessorEdge = errors.New("no predecessor edge in scan-line status")

	// ErrNoBestVertex indicates a dynamic-programming cell without any
	// usable splitting vertex.
	ErrNoBestVertex = errors.New("no best vertex found")
)
