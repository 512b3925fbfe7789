package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goroark/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goroark",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "goroark v%s\n", version.Version)
		fmt.Fprintf(out, "Built %s from %s\n", version.BuildTime, version.GitCommit)
		fmt.Fprintln(out, "Point-loaded beam analysis (Roark Table 8.1)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
