package mergesort

import "cmp"

// Sort returns a sorted copy of s in ascending order. The sort is stable.
// Slices of length 0 or 1 are returned unchanged.
func Sort[S ~[]E, E cmp.Ordered](s S) S {
	return SortFunc(s, cmp.Compare[E])
}

// SortFunc returns a copy of s sorted in ascending order as determined by
// the cmp function, which must return a negative number when a < b, a
// positive number when a > b and zero when a == b. The sort is stable.
func SortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) S {
	if len(s) <= 1 {
		return s
	}
	mid := len(s) / 2
	left := SortFunc(s[:mid], cmp)
	right := SortFunc(s[mid:], cmp)
	return MergeFunc(left, right, cmp)
}

// Merge combines left and right, both sorted in ascending order, into a new
// sorted slice of length len(left)+len(right). When two elements compare
// equal the one from left comes first.
func Merge[S ~[]E, E cmp.Ordered](left, right S) S {
	return MergeFunc(left, right, cmp.Compare[E])
}

// MergeFunc is like Merge but uses the cmp function to compare elements.
func MergeFunc[S ~[]E, E any](left, right S, cmp func(a, b E) int) S {
	result := make(S, len(left)+len(right))
	mergeInto(result, left, right, cmp)
	return result
}

// mergeInto merges left and right into dst, which must have a length of
// len(left)+len(right) and must not overlap with left or right.
func mergeInto[S ~[]E, E any](dst, left, right S, cmp func(a, b E) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}

// IsSorted reports whether s is sorted in ascending order.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return IsSortedFunc(s, cmp.Compare[E])
}

// IsSortedFunc reports whether s is sorted in ascending order, using cmp to
// compare elements.
func IsSortedFunc[S ~[]E, E any](s S, cmp func(a, b E) int) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}
