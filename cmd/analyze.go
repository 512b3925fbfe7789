package cmd

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/alexiusacademia/goroark/internal/beam"
	"github.com/alexiusacademia/goroark/internal/diagram"
	"github.com/alexiusacademia/goroark/internal/nscp"
	"github.com/alexiusacademia/goroark/internal/report"
	"github.com/alexiusacademia/goroark/internal/section"
	"github.com/alexiusacademia/goroark/internal/workbook"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

const rule = "───────────────────────────────────────────────────────────────"

type analyzeOptions struct {
	file string

	restraint   string
	modulus     float64
	material    string
	fc          float64
	inertia     float64
	width       float64
	height      float64
	sectionFile string
	length      float64
	loads       []string
	loadsXLSX   string
	sections    int

	combo      string
	all        bool
	simplified bool

	diagram bool
	output  string
	xlsx    string
	pdf     string
	profile string
}

var analyzeOpts analyzeOptions

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Shear, moment, slope and deflection of a point-loaded beam",
	Long: `Analyze a prismatic beam under concentrated loads.

Each load is solved with Roark's Table 8.1 boundary conditions for the chosen
end restraints and the results are superposed at evenly spaced sections.

Sign convention:
  P      positive downward
  R      positive upward
  M      positive when sagging
  y      positive upward

Restraints are written A-B, left end first, by name or code:
  1 fixed   2 simple   3 guided   4 free
Use 'goroark restraints' to list the ten valid pairs.

Loads are written P@a[:kind[:label]] where kind is an NSCP load type
(D, L, Lr, W, E, R). Loads without a kind are dead loads.

Examples:
  # Simply supported beam, one load at midspan
  goroark analyze -r simple-simple -E 29000 -I 100 -L 240 --load 1@120

  # Propped cantilever, concrete modulus from f'c, 300x500 rectangle
  goroark analyze -r 12 --material concrete --fc 28 --width 300 --height 500 \
      -L 6000 --load 20000@2000:D --load 15000@4000:L --all

  # Case file with diagrams and exports
  goroark analyze -f beam.hjson --diagram -o out/beam.png --xlsx beam.xlsx --pdf beam.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		if analyzeOpts.profile != "" {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(analyzeOpts.profile), profile.Quiet).Stop()
		}
		if err := analyzeOpts.run(cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	f := analyzeCmd.Flags()

	f.StringVarP(&analyzeOpts.file, "file", "f", "", "Beam case file (HJSON or JSON)")

	// Beam
	f.StringVarP(&analyzeOpts.restraint, "restraint", "r", "", "End restraints A-B, e.g. fixed-simple or 12")
	f.Float64VarP(&analyzeOpts.modulus, "modulus", "E", 0, "Elastic modulus")
	f.StringVar(&analyzeOpts.material, "material", "", "Material for E: steel, structural, concrete, wood")
	f.Float64Var(&analyzeOpts.fc, "fc", 0, "Concrete strength f'c (MPa), with --material concrete")
	f.Float64VarP(&analyzeOpts.inertia, "inertia", "I", 0, "Moment of inertia")
	f.Float64Var(&analyzeOpts.width, "width", 0, "Rectangular section width, for I")
	f.Float64Var(&analyzeOpts.height, "height", 0, "Rectangular section height, for I")
	f.StringVar(&analyzeOpts.sectionFile, "section", "", "Section outline JSON file, for I")
	f.Float64VarP(&analyzeOpts.length, "length", "L", 0, "Span length")

	// Loads
	f.StringArrayVarP(&analyzeOpts.loads, "load", "p", nil, "Point load P@a[:kind[:label]] (repeatable)")
	f.StringVar(&analyzeOpts.loadsXLSX, "loads-xlsx", "", "Read point loads from a workbook (P, a, kind, label)")
	f.IntVarP(&analyzeOpts.sections, "sections", "n", 0, fmt.Sprintf("Number of analysis sections (default %d)", beam.DefaultSections))

	// Combinations
	f.StringVarP(&analyzeOpts.combo, "combo", "c", "", "Factor loads by an NSCP combination (1-7, S for service)")
	f.BoolVarP(&analyzeOpts.all, "all", "a", false, "Try every NSCP combination and use the governing one")
	f.BoolVarP(&analyzeOpts.simplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")

	// Output
	f.BoolVar(&analyzeOpts.diagram, "diagram", false, "Show beam sketch and ASCII diagrams")
	f.StringVarP(&analyzeOpts.output, "output", "o", "", "Export diagrams to image files (png, svg, pdf)")
	f.StringVar(&analyzeOpts.xlsx, "xlsx", "", "Write results to an Excel workbook")
	f.StringVar(&analyzeOpts.pdf, "pdf", "", "Write a PDF calculation sheet")
	f.StringVar(&analyzeOpts.profile, "profile", "", "Write a CPU profile to this directory")
}

func (o *analyzeOptions) run(out io.Writer) error {
	b, err := o.beam()
	if err != nil {
		return err
	}

	combos := nscp.LoadCombinations
	if o.simplified {
		combos = nscp.SimplifiedCombinations
	}

	comboLabel := ""
	switch {
	case o.all:
		gov, err := governingCombination(out, b, combos)
		if err != nil {
			return err
		}
		b = b.Factored(gov)
		comboLabel = gov.ID + ": " + gov.Description
	case o.combo != "":
		c, err := nscp.FindCombination(o.combo, combos)
		if err != nil {
			return err
		}
		b = b.Factored(c)
		comboLabel = c.ID + ": " + c.Description
	}

	secs, err := b.Analyze()
	if err != nil {
		return err
	}
	rx, err := b.Reactions()
	if err != nil {
		return err
	}

	printAnalysis(out, b, comboLabel, secs, rx)

	if o.diagram {
		fmt.Fprintln(out, "DIAGRAMS:")
		fmt.Fprintln(out, rule)
		fmt.Fprint(out, diagram.DrawBeamSketch(b.Code, b.Spec.L, b.Loads, 50))
		fmt.Fprint(out, diagram.DrawASCIIDiagrams(secs, diagram.DefaultASCIIOptions))
		fmt.Fprintln(out)
	}

	if o.output != "" {
		files, err := diagram.ExportDiagrams(secs, b.Loads, b.Name, o.output)
		if err != nil {
			return fmt.Errorf("exporting diagrams: %w", err)
		}
		for _, f := range files {
			fmt.Fprintf(out, "  Diagram exported to: %s\n", f)
		}
	}
	if o.xlsx != "" {
		if err := workbook.WriteResults(o.xlsx, b, secs, rx); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		fmt.Fprintf(out, "  Results written to: %s\n", o.xlsx)
	}
	if o.pdf != "" {
		sheet := report.Sheet{Combo: comboLabel, Beam: b, Sections: secs, Reactions: rx}
		if err := report.WritePDF(o.pdf, sheet); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(out, "  Calculation sheet written to: %s\n", o.pdf)
	}
	return nil
}

// beam builds the beam from a case file or from the flags. Flag loads are
// added to the loads of a case file.
func (o *analyzeOptions) beam() (*beam.Beam, error) {
	loads, err := parseLoads(o.loads)
	if err != nil {
		return nil, err
	}
	if o.loadsXLSX != "" {
		more, err := workbook.ReadLoads(o.loadsXLSX)
		if err != nil {
			return nil, err
		}
		loads = append(loads, more...)
	}

	if o.file != "" {
		b, err := beam.LoadCase(o.file)
		if err != nil {
			return nil, err
		}
		b.Loads = append(b.Loads, loads...)
		if o.sections != 0 {
			b.Sections = o.sections
		}
		return b, b.Validate()
	}

	c := beam.Case{
		Restraint: o.restraint,
		E:         o.modulus,
		Material:  o.material,
		Fc:        o.fc,
		I:         o.inertia,
		Width:     o.width,
		Height:    o.height,
		Length:    o.length,
		Sections:  o.sections,
		Loads:     loads,
	}
	if o.sectionFile != "" {
		sec, err := section.LoadFromFile(o.sectionFile)
		if err != nil {
			return nil, fmt.Errorf("loading section: %w", err)
		}
		c.Section = sec
	}
	return c.Beam()
}

// governingCombination factors the beam by each combination and picks
// the one with the largest absolute moment.
func governingCombination(out io.Writer, b *beam.Beam, combos []nscp.LoadCombination) (nscp.LoadCombination, error) {
	peaks := make(map[string]float64)
	_, gov, err := nscp.Governing(combos, func(c nscp.LoadCombination) (float64, error) {
		secs, err := b.Factored(c).Analyze()
		if err != nil {
			return 0, err
		}
		m, _ := beam.FindExtremes(secs).Moment.Governing()
		peaks[c.ID] = m
		return math.Abs(m), nil
	})
	if err != nil {
		return nscp.LoadCombination{}, err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tPeak M\n")
	fmt.Fprintf(w, "  ─\t───────────\t──────\n")
	for _, c := range combos {
		marker := ""
		if c.ID == gov.ID {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.4g%s\n", c.ID, c.Description, peaks[c.ID], marker)
	}
	w.Flush()
	return gov, nil
}

func printAnalysis(out io.Writer, b *beam.Beam, combo string, secs []beam.Section, rx beam.Reactions) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          BEAM ANALYSIS - ROARK TABLE 8.1")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if b.Name != "" {
		fmt.Fprintf(out, "  Beam: %s\n", b.Name)
	}
	fmt.Fprintf(out, "  %s\n\n", b.Summary())

	fmt.Fprintln(out, "BEAM PROPERTIES:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Restraint:\t%s (%d)\n", b.Code, b.Code.Int())
	fmt.Fprintf(w, "  Reference:\tRoark %s\n", b.Code.Reference())
	fmt.Fprintf(w, "  Modulus (E):\t%g\n", b.Spec.E)
	fmt.Fprintf(w, "  Inertia (I):\t%g\n", b.Spec.I)
	fmt.Fprintf(w, "  Length (L):\t%g\n", b.Spec.L)
	fmt.Fprintf(w, "  Sections:\t%d\n", b.Sections)
	if combo != "" {
		fmt.Fprintf(w, "  Combination:\t%s\n", combo)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOADS:")
	fmt.Fprintln(out, rule)
	if len(b.Loads) == 0 {
		fmt.Fprintln(out, "  (none)")
	} else {
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tP\ta\tKind\tLabel\n")
		fmt.Fprintf(w, "  ─\t─\t─\t────\t─────\n")
		for i, l := range b.Loads {
			fmt.Fprintf(w, "  %d\t%g\t%g\t%s\t%s\n", i+1, l.P, l.A, l.Kind, l.Label)
		}
		w.Flush()
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "END CONDITIONS:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  End\tR\tM\tθ\ty\n")
	fmt.Fprintf(w, "  ───\t─\t─\t─\t─\n")
	fmt.Fprintf(w, "  A\t%.6g\t%.6g\t%.6g\t%.6g\n", rx.Ra, rx.Ma, rx.ThetaA, rx.YA)
	fmt.Fprintf(w, "  B\t%.6g\t%.6g\t%.6g\t%.6g\n", rx.Rb, rx.Mb, rx.ThetaB, rx.YB)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SECTIONS:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  #\tx\tV\tM\tθ\ty\t\n")
	for i, s := range secs {
		fmt.Fprintf(w, "  %d\t%.4g\t%.6g\t%.6g\t%.6g\t%.6g\t\n", i+1, s.X, s.Shear, s.Moment, s.Slope, s.Deflection)
	}
	w.Flush()
	fmt.Fprintln(out)

	ex := beam.FindExtremes(secs)
	lines := make([]string, 0, len(diagram.Quantities))
	for _, q := range []struct {
		name string
		e    beam.Extreme
	}{
		{"Shear", ex.Shear},
		{"Moment", ex.Moment},
		{"Slope", ex.Slope},
		{"Deflection", ex.Deflection},
	} {
		v, x := q.e.Governing()
		lines = append(lines, fmt.Sprintf("%-10s  %12.6g  at x = %g", q.name, v, x))
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("GOVERNING VALUES", lines))
	fmt.Fprintln(out)
}
