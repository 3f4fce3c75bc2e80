package mergesort

import (
	"cmp"
	"context"
	"math/bits"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultThreshold is the slice length below which SortParallel stops
// forking and sorts sequentially.
const DefaultThreshold = 2048

// An Option configures SortParallel and SortParallelFunc.
type Option func(*options)

type options struct {
	threshold int
	maxDepth  int
}

// WithThreshold sets the slice length below which the sort falls back to
// sequential recursion. Values lower than 2 are treated as 2.
func WithThreshold(n int) Option {
	return func(o *options) {
		if n < 2 {
			n = 2
		}
		o.threshold = n
	}
}

// WithMaxDepth sets the maximum recursion depth at which the two halves are
// still sorted concurrently. A depth of 0 disables concurrency.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			d = 0
		}
		o.maxDepth = d
	}
}

// defaultMaxDepth returns a depth allowing roughly two goroutines per
// available processor at the deepest forking level.
func defaultMaxDepth() int {
	return bits.Len(uint(runtime.GOMAXPROCS(0))) + 1
}

func newOptions(opts []Option) options {
	o := options{threshold: DefaultThreshold, maxDepth: defaultMaxDepth()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// SortParallel returns a sorted copy of s in ascending order, sorting both
// halves of the slice concurrently while they hold at least the configured
// threshold of elements. The result is identical to the one of Sort. The
// function returns an error only if ctx is done before the sort completes.
func SortParallel[S ~[]E, E cmp.Ordered](ctx context.Context, s S, opts ...Option) (S, error) {
	return SortParallelFunc(ctx, s, cmp.Compare[E], opts...)
}

// SortParallelFunc is like SortParallel but uses the cmp function to compare
// elements.
func SortParallelFunc[S ~[]E, E any](ctx context.Context, s S, cmp func(a, b E) int, opts ...Option) (S, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot sort")
	}
	result, err := sortParallel(ctx, s, cmp, newOptions(opts), 0)
	if err != nil {
		return nil, errors.Wrap(err, "cannot sort")
	}
	return result, nil
}

// sortParallel sorts s, forking one goroutine per half until the slice is
// shorter than the threshold or the maximum depth is reached.
func sortParallel[S ~[]E, E any](ctx context.Context, s S, cmp func(a, b E) int, o options, depth int) (S, error) {
	if len(s) < o.threshold || depth >= o.maxDepth {
		return SortFunc(s, cmp), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mid := len(s) / 2
	var left, right S
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = sortParallel(gctx, s[:mid], cmp, o, depth+1)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = sortParallel(gctx, s[mid:], cmp, o, depth+1)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return MergeFunc(left, right, cmp), nil
}
