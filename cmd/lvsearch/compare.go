package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var compareWorkers int

var compareCmd = &cobra.Command{
	Use:   "compare <scenario.yaml>",
	Short: "Run every strategy on a scenario and tabulate the results",
	Long: `Runs depth-first, breadth-first, uniform-cost and A* concurrently on the
scenario and prints one row per strategy. The scenario heuristic is used by A* only.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd.Context(), cmd.OutOrStdout(), args[0], compareWorkers)
	},
}

func init() {
	compareCmd.Flags().IntVarP(&compareWorkers, "workers", "w", 4, "Concurrent searches")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(ctx context.Context, w io.Writer, path string, workers int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p, err := loadProblem(path, "", "")
	if err != nil {
		return err
	}
	runID, rows, err := compareAll(ctx, p, workers, deps.metrics, deps.log.With("scenario", p.Name))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "scenario %s (run %s, astar heuristic %s)\n", p.Name, runID, p.HeuristicName)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tSTATUS\tCOST\tLENGTH\tEXPANDED\tGENERATED\tMAX FRONTIER\tERROR")
	for _, s := range rows {
		errText := "-"
		if s.Err != nil {
			errText = s.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%d\t%d\t%d\t%d\t%s\n",
			s.Strategy, s.Status, s.Cost, len(s.Actions), s.Expanded, s.Generated, s.MaxFrontier, errText)
	}

	return tw.Flush()
}
