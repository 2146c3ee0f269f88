package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/instrument"
	"github.com/katalvlaran/lvsearch/internal/logging"
)

// app holds the dependencies shared by subcommands; PersistentPreRunE fills it.
type app struct {
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *instrument.Metrics
}

var deps = &app{log: logging.NewNop()}

var rootCmd = &cobra.Command{
	Use:   "lvsearch",
	Short: "lvsearch solves state-space search scenarios",
	Long: `lvsearch runs depth-first, breadth-first, uniform-cost and A* search over
mazes and weighted graphs described in YAML scenario files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		asJSON, _ := cmd.Flags().GetBool("log-json")
		log, err := logging.New(logging.Options{Level: level, JSON: asJSON, Output: cmd.ErrOrStderr()})
		if err != nil {
			return err
		}
		deps.log = log.With("invocation", uuid.NewString())
		deps.registry = prometheus.NewRegistry()
		deps.metrics = instrument.NewMetrics(deps.registry)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("metrics-file")
		if path == "" || deps.registry == nil {
			return nil
		}
		if err := prometheus.WriteToTextfile(path, deps.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		deps.log.Debug("metrics written", "path", path)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file after the command")
}
