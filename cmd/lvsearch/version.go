package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lvsearch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lvsearch version %s\n", lvsearch.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
