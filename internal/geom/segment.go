package geom

// ClosestPointOnSegment returns the point on the segment (x1,y1)-(x2,y2)
// nearest to (px,py). A degenerate segment yields its single point.
func ClosestPointOnSegment(x1, y1, x2, y2, px, py float64) (float64, float64) {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return x1, y1
	}

	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	switch {
	case t <= 0:
		return x1, y1
	case t >= 1:
		return x2, y2
	}
	return x1 + t*dx, y1 + t*dy
}
