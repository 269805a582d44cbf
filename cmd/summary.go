package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cbp-tools/bpviz/internal/config"
	"github.com/cbp-tools/bpviz/results/summary"
)

var (
	sortColumn string // Summary table sort column
	sortDesc   bool   // Sort descending
)

// summaryCmd prints the trace summary table
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the per-trace summary table",
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("data") {
			dataPath = env.DataPath
		}
		ds, err := loadDataset(context.Background(), dataPath)
		if err != nil {
			logrus.Fatalf("unable to load results; %v", err)
		}

		rows := summary.Rows(ds)
		if sortColumn != "" && !summary.SortRows(rows, sortColumn, sortDesc) {
			logrus.Warnf("Unknown sort column %q; keeping dataset order", sortColumn)
		}
		if err := writeSummaryTable(cmd.OutOrStdout(), rows); err != nil {
			logrus.Fatalf("writing summary: %v", err)
		}
	},
}

// writeSummaryTable writes rows as an aligned text table.
func writeSummaryTable(w io.Writer, rows []summary.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	titles := make([]string, len(summary.Columns))
	for i, c := range summary.Columns {
		titles[i] = c.Title
	}
	fmt.Fprintln(tw, strings.Join(titles, "\t")+"\t")
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row.Cells(), "\t")+"\t")
	}
	return tw.Flush()
}

func init() {
	summaryCmd.Flags().StringVar(&dataPath, "data", config.DefaultDataPath, "Results JSON file, directory of JSON files, or s3://bucket/prefix")
	summaryCmd.Flags().StringVar(&sortColumn, "sort", "", "Sort column (trace, NUM_INSTRUCTIONS, NUM_BR, NUM_UNCOND_BR, NUM_CONDITIONAL_BR, NUM_MISPREDICTIONS, MISPRED_PER_1K_INST)")
	summaryCmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort descending")

	rootCmd.AddCommand(summaryCmd)
}
