// Package selfcheck verifies the sorting algorithms against fixed input and
// expected output pairs.
package selfcheck

import (
	"cmp"
	"context"
	"os"
	"slices"
	"time"

	"github.com/geofduf/merge-sort/internal/config"
	"github.com/geofduf/merge-sort/mergesort"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// A Case is an input sequence and its expected sorted form.
type Case struct {
	Name     string `yaml:"name"`
	Input    []int  `yaml:"input"`
	Expected []int  `yaml:"expected"`
}

// DefaultCases returns the built-in cases.
func DefaultCases() []Case {
	return []Case{
		{"unordered", []int{5, 4, 1, 8, 7, 2, 6, 3}, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"empty", []int{}, []int{}},
		{"single", []int{1}, []int{1}},
		{"duplicates", []int{2, 2, 1, 1}, []int{1, 1, 2, 2}},
		{"odd length", []int{3, 1, 2}, []int{1, 2, 3}},
		{"reversed", []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"negative", []int{0, -1, 3, -7, 2}, []int{-7, -1, 0, 2, 3}},
	}
}

// LoadCases reads a YAML list of cases from path.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cases")
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, errors.Wrap(err, "failed to parse cases")
	}
	for i, c := range cases {
		if c.Name == "" {
			return nil, errors.Errorf("case at index %d has no name", i)
		}
		if len(c.Input) != len(c.Expected) {
			return nil, errors.Errorf("case %q: input has %d elements, expected has %d", c.Name, len(c.Input), len(c.Expected))
		}
	}
	return cases, nil
}

// A SortFunc sorts a slice, returning a new sorted slice.
type SortFunc[E any] func(ctx context.Context, s []E) ([]E, error)

// Resolve returns the sort function implementing the named algorithm, using
// compare to order elements.
func Resolve[E any](name string, p config.ParallelConfig, compare func(a, b E) int) (SortFunc[E], error) {
	switch name {
	case config.AlgorithmRecursive:
		return func(_ context.Context, s []E) ([]E, error) {
			return mergesort.SortFunc(s, compare), nil
		}, nil
	case config.AlgorithmBottomUp:
		return func(_ context.Context, s []E) ([]E, error) {
			return mergesort.SortBottomUpFunc(s, compare), nil
		}, nil
	case config.AlgorithmParallel:
		opts := parallelOptions(p)
		return func(ctx context.Context, s []E) ([]E, error) {
			return mergesort.SortParallelFunc(ctx, s, compare, opts...)
		}, nil
	}
	return nil, errors.Errorf("unknown algorithm %q", name)
}

// parallelOptions converts p to options. Unset values keep the library
// defaults.
func parallelOptions(p config.ParallelConfig) []mergesort.Option {
	var opts []mergesort.Option
	if p.Threshold > 0 {
		opts = append(opts, mergesort.WithThreshold(p.Threshold))
	}
	if p.MaxDepth != nil {
		opts = append(opts, mergesort.WithMaxDepth(*p.MaxDepth))
	}
	return opts
}

// A Result holds the outcome of one case run with one algorithm.
type Result struct {
	Case      string
	Algorithm string
	Elements  int
	Duration  time.Duration
	Err       error
}

// A Report holds the results of a run.
type Report struct {
	Results []Result
}

// Failed returns the results holding an error.
func (r Report) Failed() []Result {
	var failed []Result
	for _, v := range r.Results {
		if v.Err != nil {
			failed = append(failed, v)
		}
	}
	return failed
}

// A Runner runs cases against a set of algorithms.
type Runner struct {
	algorithms []string
	parallel   config.ParallelConfig
	logger     *zap.Logger
}

// NewRunner creates a Runner from cfg. All algorithms are checked unless
// cfg restricts them. A nil logger disables logging.
func NewRunner(cfg *config.Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	algorithms := cfg.SelfCheck.Algorithms
	if len(algorithms) == 0 {
		algorithms = config.Algorithms()
	}
	return &Runner{
		algorithms: algorithms,
		parallel:   cfg.Parallel,
		logger:     logger,
	}
}

// Run runs every case with every algorithm of the runner. The returned error
// is non nil if at least one check failed, in which case the report holds
// the individual errors.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	var report Report
	for _, name := range r.algorithms {
		sort, err := Resolve(name, r.parallel, cmp.Compare[int])
		if err != nil {
			return report, err
		}
		for _, c := range cases {
			res := r.check(ctx, name, sort, c)
			report.Results = append(report.Results, res)
		}
	}
	if n := len(report.Failed()); n > 0 {
		return report, errors.Errorf("%d of %d checks failed", n, len(report.Results))
	}
	return report, nil
}

// check runs a single case and logs its outcome.
func (r *Runner) check(ctx context.Context, algorithm string, sort SortFunc[int], c Case) Result {
	res := Result{Case: c.Name, Algorithm: algorithm, Elements: len(c.Input)}
	input := slices.Clone(c.Input)
	start := time.Now()
	got, err := sort(ctx, input)
	res.Duration = time.Since(start)

	switch {
	case err != nil:
		res.Err = errors.Wrapf(err, "case %q with %s", c.Name, algorithm)
	case !slices.Equal(got, c.Expected):
		res.Err = errors.Errorf("case %q with %s: got %v, want %v", c.Name, algorithm, got, c.Expected)
	case !slices.Equal(input, c.Input):
		res.Err = errors.Errorf("case %q with %s: input was modified", c.Name, algorithm)
	}

	fields := []zap.Field{
		zap.String("case", c.Name),
		zap.String("algorithm", algorithm),
		zap.Int("elements", res.Elements),
		zap.Duration("duration", res.Duration),
	}
	if res.Err != nil {
		r.logger.Error("check failed", append(fields, zap.Error(res.Err))...)
	} else {
		r.logger.Debug("check passed", fields...)
	}
	return res
}
