/*
Package mergesort implements stable, comparison-based sorting of slices using
divide-and-conquer merge sort. It defines the functions Sort and Merge for
element types satisfying cmp.Ordered, and SortFunc and MergeFunc for arbitrary
element types ordered by a caller-supplied comparison function.

Sort splits its input at len(s)/2, sorts both halves recursively and combines
them with Merge. Merge takes the left element whenever the two candidates
compare equal, so elements that compare equal keep their relative input order:

	pairs := []pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}}
	sorted := mergesort.SortFunc(pairs, func(a, b pair) int {
	  return cmp.Compare(a.value, b.value)
	})
	// [{1 1} {1 3} {2 0} {2 2}]

Sorting never modifies its input. Each call returns a newly allocated slice,
except for slices of length 0 or 1 which are returned unchanged.

Two variants produce the same results as Sort. SortBottomUp merges runs of
doubling width without recursion. SortParallel evaluates the two recursive
calls concurrently above a size threshold and is the only function of the
package that can return an error, when its context is cancelled.

Merge and MergeFunc require both inputs to be sorted. Passing unsorted inputs
will result in an unspecified order.
*/
package mergesort
