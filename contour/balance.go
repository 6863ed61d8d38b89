package contour

// Sum returns the total of the vertical deltas.
func Sum(dy [4]float64) float64 {
	return dy[0] + dy[1] + dy[2] + dy[3]
}

// Balance returns lower adjusted so that it ends at the same height as
// upper. The discrepancy is absorbed by the last two segments, one third by
// the third segment and two thirds by the last, so that the outer corner
// moves less than the terminal point.
func Balance(upper, lower [4]float64) [4]float64 {
	diff := Sum(lower) - Sum(upper)
	lower[2] -= diff / 3
	lower[3] -= 2 * diff / 3
	return lower
}

// Deltas returns the vertical deltas of segs.
func (segs Segments) Deltas() [4]float64 {
	var dy [4]float64
	for i, seg := range segs {
		dy[i] = seg.DY
	}
	return dy
}
