package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/geofduf/merge-sort/internal/selfcheck"
	"github.com/geofduf/merge-sort/mergesort"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sortAlgorithm string
	sortVerify    bool
	sortReverse   bool
)

// sortCmd sorts numbers given as arguments or on stdin
var sortCmd = &cobra.Command{
	Use:   "sort [numbers...]",
	Short: "Sort numbers given as arguments or on stdin",
	Long: `Sorts whitespace separated numbers and prints them on a single line.
Numbers are read from the arguments, or from stdin when no argument is given.
Flags must precede the numbers. Arguments following the first number are all
read as numbers, and "--" ends the flags when the first number is negative.
Integers are sorted as integers, and an integer outside the int64 range is an
error. If any other value is not an integer every value is parsed as a
floating point number.

Example:
  mergesort sort 5 -4 1 8 7 2 6 3
  mergesort sort --reverse -- -2 7 -9
  seq 1000 | shuf | mergesort sort --algorithm parallel`,
	RunE: runSort,
}

func init() {
	sortCmd.Flags().StringVarP(&sortAlgorithm, "algorithm", "a", "", "sorting algorithm (recursive, bottomup, parallel)")
	sortCmd.Flags().BoolVar(&sortVerify, "verify", false, "check that the output is sorted")
	sortCmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false, "sort in descending order")
	sortCmd.Flags().SetInterspersed(false)
}

func runSort(cmd *cobra.Command, args []string) error {
	fields := args
	if len(fields) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "failed to read stdin")
		}
		fields = strings.Fields(string(data))
	}

	algorithm := cfg.Algorithm
	if sortAlgorithm != "" {
		algorithm = sortAlgorithm
	}

	ints, err := parseInts(fields)
	if err == nil {
		return sortAndPrint(cmd, algorithm, ints)
	}
	if errors.Is(err, strconv.ErrRange) {
		return err
	}
	floats, err := parseFloats(fields)
	if err != nil {
		return err
	}
	return sortAndPrint(cmd, algorithm, floats)
}

func sortAndPrint[E cmp.Ordered](cmd *cobra.Command, algorithm string, values []E) error {
	compare := cmp.Compare[E]
	if sortReverse {
		compare = func(a, b E) int {
			return cmp.Compare(b, a)
		}
	}
	sort, err := selfcheck.Resolve(algorithm, cfg.Parallel, compare)
	if err != nil {
		return err
	}

	start := time.Now()
	sorted, err := sort(cmd.Context(), values)
	if err != nil {
		return err
	}
	logger.Info("sorted",
		zap.String("algorithm", algorithm),
		zap.Bool("reverse", sortReverse),
		zap.String("elements", humanize.Comma(int64(len(sorted)))),
		zap.Duration("duration", time.Since(start)),
	)

	if sortVerify && !mergesort.IsSortedFunc(sorted, compare) {
		return errors.Errorf("%s produced an unsorted output", algorithm)
	}

	out := make([]string, len(sorted))
	for i, v := range sorted {
		out[i] = fmt.Sprint(v)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
	return err
}

// parseInts parses fields as integers. A field that is not an integer
// takes precedence over an integer outside the int64 range, so mixed input
// can still be parsed as floating point numbers.
func parseInts(fields []string) ([]int64, error) {
	values := make([]int64, len(fields))
	var rangeErr error
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			if rangeErr == nil {
				rangeErr = errors.Wrapf(err, "integer out of range at position %d", i+1)
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	if rangeErr != nil {
		return nil, rangeErr
	}
	return values, nil
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Errorf("invalid number %q at position %d", f, i+1)
		}
		values[i] = v
	}
	return values, nil
}
