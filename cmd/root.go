package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goroark/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goroark",
	Short: "Point-loaded beam analysis with Roark's formulas",
	Long: `goroark - Go Roark Beam Solver

A CLI tool for the elastic analysis of straight prismatic beams under
concentrated loads, using the singularity-function solutions of
Roark's Formulas for Stress and Strain, Table 8.1.

This tool computes:
  - End boundary conditions for all ten stable restraint pairs
  - Shear, moment, slope and deflection along the span
  - Reactions and end values at both supports
  - Governing values under NSCP 2015 load combinations

Results can be exported as diagrams, Excel workbooks or PDF
calculation sheets, or served over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goroark v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Roark Beam Solver                                    ║")
		fmt.Printf("  ║   %s © %-44s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Elastic analysis of point-loaded beams using")
		fmt.Println("  Roark's Formulas for Stress and Strain, Table 8.1.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Ten end restraint pairs: fixed, simple, guided, free")
		fmt.Println("    • Shear, moment, slope and deflection by superposition")
		fmt.Println("    • NSCP 2015 load combinations")
		fmt.Println("    • ASCII and image diagrams, Excel and PDF output")
		fmt.Println("    • JSON API server")
		fmt.Println()
		fmt.Println("  Use 'goroark --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
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
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
