package mergesort

// run represents the half-open index range [start, end) of a slice.
type run struct {
	start int
	end   int
}

// len returns the number of elements in the range.
func (r run) len() int {
	return r.end - r.start
}

// split divides the range after its first width elements. If the range
// holds width elements or less, the second range returned is empty.
func (r run) split(width int) (run, run) {
	mid := r.start + width
	if mid > r.end {
		mid = r.end
	}
	return run{start: r.start, end: mid}, run{start: mid, end: r.end}
}
