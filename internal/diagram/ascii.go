package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/goroark/internal/beam"
	"github.com/alexiusacademia/goroark/internal/roark"
	"github.com/guptarohit/asciigraph"
)

// Quantity selects one of the four response diagrams.
type Quantity struct {
	Name  string
	Unit  string
	Value func(roark.Response) float64
}

// Quantities are the four diagrams in the order they are drawn.
var Quantities = []Quantity{
	{Name: "Shear", Unit: "force", Value: func(r roark.Response) float64 { return r.Shear }},
	{Name: "Moment", Unit: "force·length", Value: func(r roark.Response) float64 { return r.Moment }},
	{Name: "Slope", Unit: "rad", Value: func(r roark.Response) float64 { return r.Slope }},
	{Name: "Deflection", Unit: "length", Value: func(r roark.Response) float64 { return r.Deflection }},
}

// ASCIIOptions controls the size of the terminal charts.
type ASCIIOptions struct {
	Width     int // columns of the plot area, 0 = one column per section
	Height    int // rows of the plot area
	Precision uint
}

// DefaultASCIIOptions fits an 80 column terminal.
var DefaultASCIIOptions = ASCIIOptions{Width: 60, Height: 10, Precision: 3}

// DrawASCIIDiagram plots one quantity along the beam.
func DrawASCIIDiagram(sections []beam.Section, q Quantity, opts ASCIIOptions) string {
	data := beam.Column(sections, q.Value)
	if len(data) == 0 {
		return ""
	}
	// asciigraph cannot scale a flat line of zeros
	flat := true
	for _, v := range data {
		if v != 0 {
			flat = false
			break
		}
	}
	if flat {
		return fmt.Sprintf("  %s: zero along the beam\n", q.Name)
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Precision(opts.Precision),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("%s (%s), x = %g to %g", q.Name, q.Unit, sections[0].X, sections[len(sections)-1].X)),
	}
	if opts.Width > 0 {
		graphOpts = append(graphOpts, asciigraph.Width(opts.Width))
	}
	return asciigraph.Plot(data, graphOpts...) + "\n"
}

// DrawASCIIDiagrams plots all four quantities, one under the other.
func DrawASCIIDiagrams(sections []beam.Section, opts ASCIIOptions) string {
	var sb strings.Builder
	for _, q := range Quantities {
		sb.WriteString("\n")
		sb.WriteString(DrawASCIIDiagram(sections, q, opts))
	}
	return sb.String()
}

// DrawBeamSketch draws the supports and load positions along the span.
//
//	 ▼P1       ▼P2
//	█══════════════════○
//	A                  B
func DrawBeamSketch(code roark.Code, length float64, loads []beam.PointLoad, width int) string {
	if width < 10 {
		width = 10
	}
	marks := []rune(strings.Repeat(" ", width+2))
	labels := make([]string, 0, len(loads))
	for i, l := range loads {
		col := 1 + int(l.A/length*float64(width-1)+0.5)
		arrow := '▼'
		if l.P < 0 {
			arrow = '▲'
		}
		marks[col] = arrow
		labels = append(labels, fmt.Sprintf("P%d = %g at %g", i+1, l.P, l.A))
	}

	var sb strings.Builder
	sb.WriteString("  " + strings.TrimRight(string(marks), " ") + "\n")
	sb.WriteString("  " + string(support(code.A)) + strings.Repeat("═", width) + string(support(code.B)) + "\n")
	sb.WriteString("  A" + strings.Repeat(" ", width) + "B\n")
	for _, l := range labels {
		sb.WriteString("    " + l + "\n")
	}
	return sb.String()
}

func support(r roark.Restraint) rune {
	switch r {
	case roark.Fixed:
		return '█'
	case roark.Simple:
		return '△'
	case roark.Guided:
		return '╟'
	}
	return ' '
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; fmt's %-*s counts bytes.
func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
