package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/config"
)

type solveFlags struct {
	strategy  string
	heuristic string
	render    bool
}

var solveOpts solveFlags

var solveCmd = &cobra.Command{
	Use:   "solve <scenario.yaml>",
	Short: "Solve a scenario with one strategy",
	Long: `Loads the scenario, runs its strategy (or --strategy) and prints the action
sequence, its cost and the search counters. Mazes can be drawn with --render.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], solveOpts)
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveOpts.strategy, "strategy", "s", "", "Override the scenario strategy: dfs, bfs, ucs, astar")
	solveCmd.Flags().StringVar(&solveOpts.heuristic, "heuristic", "", "Override the scenario heuristic")
	solveCmd.Flags().BoolVar(&solveOpts.render, "render", false, "Draw the route on the maze")
	rootCmd.AddCommand(solveCmd)
}

// loadProblem reads a scenario, applies overrides and builds it.
func loadProblem(path, strategy, heuristic string) (*config.Problem, error) {
	sc, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if strategy != "" {
		sc.Strategy = strategy
	}
	if heuristic != "" {
		sc.Heuristic = heuristic
	}

	return sc.Build()
}

func runSolve(ctx context.Context, w io.Writer, path string, o solveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p, err := loadProblem(path, o.strategy, o.heuristic)
	if err != nil {
		return err
	}
	log := deps.log.With("scenario", p.Name)
	s, drawing := solveOne(ctx, p, deps.metrics, log)
	if s.Err != nil {
		return fmt.Errorf("solve %s: %w", p.Name, s.Err)
	}

	fmt.Fprintf(w, "scenario:     %s\n", p.Name)
	fmt.Fprintf(w, "strategy:     %s\n", s.Strategy)
	fmt.Fprintf(w, "heuristic:    %s\n", heuristicLabel(p))
	fmt.Fprintf(w, "status:       %s\n", s.Status)
	fmt.Fprintf(w, "actions:      %s\n", strings.Join(s.Actions, " "))
	fmt.Fprintf(w, "cost:         %g\n", s.Cost)
	fmt.Fprintf(w, "expanded:     %d\n", s.Expanded)
	fmt.Fprintf(w, "generated:    %d\n", s.Generated)
	fmt.Fprintf(w, "max frontier: %d\n", s.MaxFrontier)
	if o.render && drawing != "" {
		fmt.Fprint(w, drawing)
	}

	return nil
}
