package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cbp-tools/bpviz/internal/config"
	"github.com/cbp-tools/bpviz/results"
)

var (
	logLevel string         // Log verbosity level
	env      *config.Config // Environment settings, loaded before every command
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "bpviz",
	Short: "Interactive dashboard for branch-predictor simulation results",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		env = config.Load()
		if !cmd.Flags().Changed("log") {
			logLevel = env.LogLevel
		}
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// loadDataset reads results from a local file or directory, or from an
// object store when path has the form s3://bucket/prefix.
func loadDataset(ctx context.Context, path string) (*results.Dataset, error) {
	if bucket, ok := env.Bucket(path); ok {
		return results.LoadDatasetFromBucket(ctx, bucket)
	}
	return results.LoadDataset(path)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", config.DefaultLogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
}
