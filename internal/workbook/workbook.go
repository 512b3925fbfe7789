// Package workbook reads point loads from and writes analysis results to
// Excel workbooks.
package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/goroark/internal/beam"
	"github.com/alexiusacademia/goroark/internal/nscp"
	"github.com/xuri/excelize/v2"
)

const (
	inputSheet   = "Input"
	loadsSheet   = "Loads"
	resultsSheet = "Results"
)

// ReadLoads reads point loads from the first sheet of a workbook.
// The first row is a header; each following row is
// P, a[, kind[, label]]. Blank rows are skipped, any other bad row fails.
func ReadLoads(path string) ([]beam.PointLoad, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: sheet %q has no load rows", path, sheet)
	}

	var loads []beam.PointLoad
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		load, err := parseLoadRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
		}
		loads = append(loads, load)
	}
	return loads, nil
}

func parseLoadRow(row []string) (beam.PointLoad, error) {
	// expected: p, a, kind(optional), label(optional)
	if len(row) < 2 {
		return beam.PointLoad{}, fmt.Errorf("expected at least P and a")
	}
	p, err := toFloat(row[0])
	if err != nil {
		return beam.PointLoad{}, fmt.Errorf("P: %w", err)
	}
	a, err := toFloat(row[1])
	if err != nil {
		return beam.PointLoad{}, fmt.Errorf("a: %w", err)
	}
	load := beam.PointLoad{P: p, A: a, Kind: nscp.Dead}
	if len(row) > 2 {
		if load.Kind, err = nscp.ParseLoadType(row[2]); err != nil {
			return beam.PointLoad{}, err
		}
	}
	if len(row) > 3 {
		load.Label = strings.TrimSpace(row[3])
	}
	return load, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// WriteResults writes the beam input, its loads and the section results to
// a new workbook.
func WriteResults(path string, b *beam.Beam, sections []beam.Section, r beam.Reactions) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", inputSheet); err != nil {
		return err
	}
	input := [][]interface{}{
		{"Name", b.Name},
		{"Restraint", b.Code.String()},
		{"Reference", b.Code.Reference()},
		{"E", b.Spec.E},
		{"I", b.Spec.I},
		{"L", b.Spec.L},
		{"Sections", b.Sections},
		{},
		{"Ra", r.Ra},
		{"Ma", r.Ma},
		{"θa", r.ThetaA},
		{"ya", r.YA},
		{"Rb", r.Rb},
		{"Mb", r.Mb},
		{"θb", r.ThetaB},
		{"yb", r.YB},
	}
	if err := writeRows(f, inputSheet, input); err != nil {
		return err
	}

	if _, err := f.NewSheet(loadsSheet); err != nil {
		return err
	}
	loads := [][]interface{}{{"P", "a", "Kind", "Label"}}
	for _, l := range b.Loads {
		loads = append(loads, []interface{}{l.P, l.A, string(l.Kind), l.Label})
	}
	if err := writeRows(f, loadsSheet, loads); err != nil {
		return err
	}

	if _, err := f.NewSheet(resultsSheet); err != nil {
		return err
	}
	results := [][]interface{}{{"Section", "x", "Shear", "Moment", "Slope", "Deflection"}}
	for i, s := range sections {
		results = append(results, []interface{}{i + 1, s.X, s.Shear, s.Moment, s.Slope, s.Deflection})
	}
	if err := writeRows(f, resultsSheet, results); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
