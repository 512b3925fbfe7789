package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/goroark/internal/roark"
	"github.com/spf13/cobra"
)

var restraintsCmd = &cobra.Command{
	Use:   "restraints",
	Short: "List the valid end restraint pairs",
	Long: `List the ten end restraint pairs that have a unique static solution.

A restraint code has two digits, A end first:
  1 fixed   2 simple   3 guided   4 free

Pairs that leave the beam free to translate or rotate as a body
(44, 43, 34, 33, 24, 42) are rejected.`,
	Run: func(cmd *cobra.Command, args []string) {
		printRestraints(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(restraintsCmd)
}

func printRestraints(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "END RESTRAINTS:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCode\tA-B\tRoark\n")
	fmt.Fprintf(w, "  ─\t────\t───\t─────\n")
	for _, c := range roark.Cases {
		fmt.Fprintf(w, "  %d\t%d\t%s\t%s\n", c.Number, c.Code.Int(), c.Code, c.Code.Reference())
	}
	w.Flush()
	fmt.Fprintln(out)
}
