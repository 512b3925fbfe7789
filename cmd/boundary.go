package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/goroark/internal/beam"
	"github.com/alexiusacademia/goroark/internal/roark"
	"github.com/spf13/cobra"
)

type boundaryOptions struct {
	restraint string
	modulus   float64
	inertia   float64
	length    float64
	loads     []string
}

var boundaryOpts boundaryOptions

var boundaryCmd = &cobra.Command{
	Use:   "boundary",
	Short: "Left-end boundary conditions for each point load",
	Long: `Resolve the A-end values (Ra, Ma, θa, ya) of each point load from
Roark's Table 8.1, together with the B-end values they produce.

Examples:
  goroark boundary -r free-fixed -E 29000 -I 100 -L 240 --load 1@0 --load 1@120
  goroark boundary -r 14 -E 200000 -I 8.3e7 -L 6000 --load 10000@6000`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := boundaryOpts.run(cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(boundaryCmd)
	f := boundaryCmd.Flags()
	f.StringVarP(&boundaryOpts.restraint, "restraint", "r", "", "End restraints A-B, e.g. fixed-simple or 12 [required]")
	f.Float64VarP(&boundaryOpts.modulus, "modulus", "E", 0, "Elastic modulus [required]")
	f.Float64VarP(&boundaryOpts.inertia, "inertia", "I", 0, "Moment of inertia [required]")
	f.Float64VarP(&boundaryOpts.length, "length", "L", 0, "Span length [required]")
	f.StringArrayVarP(&boundaryOpts.loads, "load", "p", nil, "Point load P@a (repeatable)")
	boundaryCmd.MarkFlagRequired("restraint")
}

func (o *boundaryOptions) run(out io.Writer) error {
	code, err := roark.ParseCode(o.restraint)
	if err != nil {
		return err
	}
	loads, err := parseLoads(o.loads)
	if err != nil {
		return err
	}
	if len(loads) == 0 {
		return fmt.Errorf("provide at least one --load")
	}

	type row struct {
		load beam.PointLoad
		bc   roark.BoundaryConditions
		rb   float64
		end  roark.Response
	}
	rows := make([]row, 0, len(loads))
	for i, l := range loads {
		bc, err := roark.Resolve(code, l.P, o.modulus, o.inertia, o.length, l.A)
		if err != nil {
			return fmt.Errorf("load %d: %w", i+1, err)
		}
		rb, end := bc.EndB(l.P, o.modulus, o.inertia, o.length, l.A)
		rows = append(rows, row{l, bc, rb, end})
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s (%d), Roark %s\n", code, code.Int(), code.Reference())
	fmt.Fprintf(out, "  E = %g, I = %g, L = %g\n", o.modulus, o.inertia, o.length)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "END A:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  #\tP\ta\tRa\tMa\tθa\tya\t\n")
	for i, r := range rows {
		fmt.Fprintf(w, "  %d\t%g\t%g\t%.6g\t%.6g\t%.6g\t%.6g\t\n", i+1, r.load.P, r.load.A, r.bc.Ra, r.bc.Ma, r.bc.ThetaA, r.bc.YA)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "END B:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  #\tRb\tMb\tθb\tyb\t\n")
	for i, r := range rows {
		fmt.Fprintf(w, "  %d\t%.6g\t%.6g\t%.6g\t%.6g\t\n", i+1, r.rb, r.end.Moment, r.end.Slope, r.end.Deflection)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
