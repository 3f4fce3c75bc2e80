package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/geofduf/merge-sort/internal/selfcheck"
	"github.com/spf13/cobra"
)

var checkCases string

// checkCmd verifies every configured algorithm against known cases
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the sorting algorithms against known cases",
	Long: `Sorts a fixed set of sequences with every configured algorithm and compares
the results with their expected sorted form. Additional cases can be loaded
from a YAML file:

  - name: reversed
    input: [3, 2, 1]
    expected: [1, 2, 3]`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkCases, "cases", "", "YAML file holding additional cases")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := cfg.SelfCheck.Cases
	if checkCases != "" {
		path = checkCases
	}

	cases := selfcheck.DefaultCases()
	if path != "" {
		extra, err := selfcheck.LoadCases(path)
		if err != nil {
			return err
		}
		cases = append(cases, extra...)
	}

	report, err := selfcheck.NewRunner(cfg, logger).Run(cmd.Context(), cases)
	for _, res := range report.Failed() {
		fmt.Fprintln(cmd.ErrOrStderr(), res.Err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s checks passed\n", humanize.Comma(int64(len(report.Results))))
	return nil
}
