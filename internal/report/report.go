// Package report renders a beam analysis as a PDF calculation sheet.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/alexiusacademia/goroark/internal/beam"
	"github.com/phpdave11/gofpdf"
)

// Sheet is everything printed on a calculation sheet.
type Sheet struct {
	Title     string
	Project   string
	Author    string
	Combo     string // load combination label, empty for unfactored loads
	Beam      *beam.Beam
	Sections  []beam.Section
	Reactions beam.Reactions
}

// Write renders the sheet to w.
func Write(w io.Writer, s Sheet) error {
	pdf, err := build(s)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// WritePDF renders the sheet to a file.
func WritePDF(path string, s Sheet) error {
	pdf, err := build(s)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

func build(s Sheet) (*gofpdf.Fpdf, error) {
	if s.Beam == nil {
		return nil, fmt.Errorf("report: no beam")
	}
	if s.Title == "" {
		s.Title = "Beam Analysis"
		if s.Beam.Name != "" {
			s.Title += ": " + s.Beam.Name
		}
	}
	b := s.Beam

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(s.Title, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if s.Project != "" {
		pdf.Cell(0, 6, "Project: "+s.Project)
		pdf.Ln(6)
	}
	if s.Author != "" {
		pdf.Cell(0, 6, "Author: "+s.Author)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, "Date: "+time.Now().Format("2006-01-02"))
	pdf.Ln(10)

	heading(pdf, "Input")
	pairs(pdf, [][2]string{
		{"Restraint", fmt.Sprintf("%s (%d)", b.Code, b.Code.Int())},
		{"Reference", "Roark " + b.Code.Reference()},
		{"Modulus E", fmt.Sprintf("%g", b.Spec.E)},
		{"Inertia I", fmt.Sprintf("%g", b.Spec.I)},
		{"Length L", fmt.Sprintf("%g", b.Spec.L)},
		{"Sections", fmt.Sprintf("%d", b.Sections)},
	})
	if s.Combo != "" {
		pairs(pdf, [][2]string{{"Combination", s.Combo}})
	}
	pdf.Ln(4)

	heading(pdf, "Loads")
	table(pdf, []float64{15, 35, 35, 25, 70}, []string{"#", "P", "a", "Kind", "Label"})
	for i, l := range b.Loads {
		row(pdf, []float64{15, 35, 35, 25, 70}, []string{
			fmt.Sprintf("%d", i+1), fmt.Sprintf("%g", l.P), fmt.Sprintf("%g", l.A), string(l.Kind), l.Label,
		})
	}
	pdf.Ln(4)

	r := s.Reactions
	heading(pdf, "End Conditions")
	table(pdf, []float64{30, 40, 40, 40, 40}, []string{"End", "R", "M", "Slope", "Deflection"})
	row(pdf, []float64{30, 40, 40, 40, 40}, []string{"A", num(r.Ra), num(r.Ma), num(r.ThetaA), num(r.YA)})
	row(pdf, []float64{30, 40, 40, 40, 40}, []string{"B", num(r.Rb), num(r.Mb), num(r.ThetaB), num(r.YB)})
	pdf.Ln(4)

	if len(s.Sections) > 0 {
		ex := beam.FindExtremes(s.Sections)
		heading(pdf, "Extremes")
		widths := []float64{40, 35, 25, 35, 25}
		table(pdf, widths, []string{"Quantity", "Max", "at x", "Min", "at x"})
		for _, e := range []struct {
			name string
			v    beam.Extreme
		}{
			{"Shear", ex.Shear},
			{"Moment", ex.Moment},
			{"Slope", ex.Slope},
			{"Deflection", ex.Deflection},
		} {
			row(pdf, widths, []string{e.name, num(e.v.Max), fmt.Sprintf("%g", e.v.XMax), num(e.v.Min), fmt.Sprintf("%g", e.v.XMin)})
		}
		pdf.Ln(4)

		heading(pdf, "Sections")
		widths = []float64{15, 30, 35, 35, 35, 35}
		table(pdf, widths, []string{"#", "x", "Shear", "Moment", "Slope", "Deflection"})
		for i, sec := range s.Sections {
			row(pdf, widths, []string{
				fmt.Sprintf("%d", i+1), fmt.Sprintf("%g", sec.X),
				num(sec.Shear), num(sec.Moment), num(sec.Slope), num(sec.Deflection),
			})
		}
	}

	return pdf, pdf.Error()
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func pairs(pdf *gofpdf.Fpdf, kv [][2]string) {
	for _, p := range kv {
		pdf.CellFormat(40, 6, p[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, p[1], "", 1, "L", false, 0, "")
	}
}

func table(pdf *gofpdf.Fpdf, widths []float64, header []string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, widths []float64, cells []string) {
	for i, c := range cells {
		align := "R"
		if i == 0 || i == len(cells)-1 && widths[i] >= 70 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func num(v float64) string {
	return fmt.Sprintf("%.5g", v)
}
