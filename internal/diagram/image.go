package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goroark/internal/beam"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var lineColors = map[string]color.Color{
	"Shear":      color.RGBA{R: 0, G: 0, B: 139, A: 255},
	"Moment":     color.RGBA{R: 178, G: 34, B: 34, A: 255},
	"Slope":      color.RGBA{R: 0, G: 100, B: 0, A: 255},
	"Deflection": color.RGBA{R: 139, G: 69, B: 19, A: 255},
}

// ExportDiagram exports one response diagram to an image file.
// The format follows the extension (png, svg, pdf); png is the default.
func ExportDiagram(sections []beam.Section, q Quantity, loads []beam.PointLoad, title, filename string) error {
	if len(sections) == 0 {
		return fmt.Errorf("no sections to plot")
	}

	p := plot.New()
	p.Title.Text = q.Name + " Diagram"
	if title != "" {
		p.Title.Text = title + " - " + p.Title.Text
	}
	p.X.Label.Text = "x (from end A)"
	p.Y.Label.Text = fmt.Sprintf("%s (%s)", q.Name, q.Unit)
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(sections)+2)
	pts = append(pts, plotter.XY{X: sections[0].X, Y: 0})
	for _, s := range sections {
		pts = append(pts, plotter.XY{X: s.X, Y: q.Value(s.Response)})
	}
	pts = append(pts, plotter.XY{X: sections[len(sections)-1].X, Y: 0})

	fill, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	c := lineColors[q.Name]
	if c == nil {
		c = color.Black
	}
	r, g, b, _ := c.RGBA()
	fill.Color = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 60}
	fill.LineStyle.Width = 0
	p.Add(fill)

	line, err := plotter.NewLine(pts[1 : len(pts)-1])
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	p.Add(line)

	// Beam axis
	axis, err := plotter.NewLine(plotter.XYs{
		{X: sections[0].X, Y: 0},
		{X: sections[len(sections)-1].X, Y: 0},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	// Load positions
	if len(loads) > 0 {
		marks := make(plotter.XYs, len(loads))
		for i, l := range loads {
			marks[i] = plotter.XY{X: l.A, Y: 0}
		}
		sc, err := plotter.NewScatter(marks)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(sc)
	}

	// Label the governing value
	gv, gx := governing(sections, q)
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: gx, Y: gv}},
		Labels: []string{fmt.Sprintf("%.4g at x=%.4g", gv, gx)},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportDiagrams writes the four diagrams to separate files, naming them
// after base: beam.png becomes beam-shear.png, beam-moment.png and so on.
// It returns the paths written.
func ExportDiagrams(sections []beam.Section, loads []beam.PointLoad, title, base string) ([]string, error) {
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".png"
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	var written []string
	for _, q := range Quantities {
		name := fmt.Sprintf("%s-%s%s", stem, strings.ToLower(q.Name), ext)
		if err := ExportDiagram(sections, q, loads, title, name); err != nil {
			return written, fmt.Errorf("%s diagram: %w", q.Name, err)
		}
		written = append(written, name)
	}
	return written, nil
}

func governing(sections []beam.Section, q Quantity) (value, x float64) {
	for i, s := range sections {
		v := q.Value(s.Response)
		if i == 0 || abs(v) > abs(value) {
			value, x = v, s.X
		}
	}
	return value, x
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
