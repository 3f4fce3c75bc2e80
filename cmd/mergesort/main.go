package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/geofduf/merge-sort/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mergesort",
	Short: "Stable merge sort of numeric sequences",
	Long: `mergesort sorts integers or floating point numbers with a stable merge sort.

The algorithm is selected with the configuration file, the MERGESORT_ALGORITHM
environment variable or the --algorithm flag of the sort command:
  - recursive: top-down split and merge
  - bottomup:  iterative merging of runs of doubling width
  - parallel:  top-down, sorting both halves concurrently`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid configuration")
		}
		logger, err = cfg.Logging.Logger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "mergesort.yaml", "path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(checkCmd, sortCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
