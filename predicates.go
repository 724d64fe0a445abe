package polypart

// isConvex returns true if p1, p2, p3 make a strict left turn.
func isConvex(p1, p2, p3 Point) bool {
	return (p3.Y-p1.Y)*(p2.X-p1.X)-(p3.X-p1.X)*(p2.Y-p1.Y) > 0
}

// isReflex returns true if p1, p2, p3 make a strict right turn.
func isReflex(p1, p2, p3 Point) bool {
	return (p3.Y-p1.Y)*(p2.X-p1.X)-(p3.X-p1.X)*(p2.Y-p1.Y) < 0
}

// isInside returns true if p lies in the triangle p1p2p3, edges included.
func isInside(p1, p2, p3, p Point) bool {
	return !(isConvex(p1, p, p2) || isConvex(p2, p, p3) || isConvex(p3, p, p1))
}

// isInCone returns true if p lies in the interior cone at p2 formed by the
// edges p2->p1 and p2->p3.
func isInCone(p1, p2, p3, p Point) bool {
	if isConvex(p1, p2, p3) {
		return isConvex(p1, p2, p) && isConvex(p2, p3, p)
	}
	return isConvex(p1, p2, p) || isConvex(p2, p3, p)
}

// intersects returns true if the open segments p11-p12 and p21-p22 cross.
// Segments sharing an endpoint never count as intersecting.
func intersects(p11, p12, p21, p22 Point) bool {
	if p11 == p21 || p11 == p22 || p12 == p21 || p12 == p22 {
		return false
	}

	v1ort := Point{p12.Y - p11.Y, p11.X - p12.X}
	v2ort := Point{p22.Y - p21.Y, p21.X - p22.X}

	dot21 := p21.Sub(p11).Dot(v1ort)
	dot22 := p22.Sub(p11).Dot(v1ort)
	dot11 := p11.Sub(p21).Dot(v2ort)
	dot12 := p12.Sub(p21).Dot(v2ort)

	return dot11*dot12 < 0 && dot21*dot22 < 0
}
