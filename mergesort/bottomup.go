package mergesort

import "cmp"

// SortBottomUp returns a sorted copy of s in ascending order. It produces the
// same result as Sort without recursion, by merging adjacent runs of width 1,
// 2, 4, ... until a single run remains. The sort is stable.
func SortBottomUp[S ~[]E, E cmp.Ordered](s S) S {
	return SortBottomUpFunc(s, cmp.Compare[E])
}

// SortBottomUpFunc is like SortBottomUp but uses the cmp function to compare
// elements.
func SortBottomUpFunc[S ~[]E, E any](s S, cmp func(a, b E) int) S {
	n := len(s)
	if n <= 1 {
		return s
	}
	src := make(S, n)
	copy(src, s)
	dst := make(S, n)
	for width := 1; width < n; width *= 2 {
		for start := 0; start < n; start += 2 * width {
			r := run{start: start, end: min(start+2*width, n)}
			left, right := r.split(width)
			if right.len() == 0 {
				copy(dst[r.start:r.end], src[left.start:left.end])
				continue
			}
			mergeInto(dst[r.start:r.end], src[left.start:left.end], src[right.start:right.end], cmp)
		}
		src, dst = dst, src
	}
	return src
}
