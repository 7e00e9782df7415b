package export

import (
	"fmt"
	"io"

	"Threads/internal/calc/engine"
	"Threads/internal/registry"

	"github.com/xuri/excelize/v2"
)

var header = []any{
	"Designation", "CTD", "Class", "Gender",
	"Major min", "Major max", "Pitch min", "Pitch max", "Minor min", "Minor max",
	"Tap drill", "Drill size", "Engagement %", "Status",
}

// Workbook lays the thread table out on one sheet named after the standard,
// with a second sheet listing rows that failed.
func Workbook(std registry.Standard, items []engine.Item) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := string(std.Kind)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, err
	}

	for i, row := range Rows(std, items) {
		l := row.Limits
		values := []any{
			row.Designation, row.CTD, row.Class, string(row.Gender),
			l.Major.Min, l.Major.Max, l.Pitch.Min, l.Pitch.Max, l.Minor.Min, l.Minor.Max,
		}
		if td := l.TapDrill; td != nil {
			values = append(values, td.Name, td.ToolSize, td.Validation.Engagement, td.Validation.Label)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}

	var failed [][]any
	for _, it := range items {
		if it.Err != nil {
			failed = append(failed, []any{it.Preset.Size, it.Preset.TPI, it.Error})
		}
	}
	if len(failed) > 0 {
		if _, err := f.NewSheet("Errors"); err != nil {
			return nil, err
		}
		if err := f.SetSheetRow("Errors", "A1", &[]any{"Size", "TPI", "Error"}); err != nil {
			return nil, err
		}
		for i, r := range failed {
			if err := f.SetSheetRow("Errors", fmt.Sprintf("A%d", i+2), &r); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// XLSX writes the workbook built by Workbook.
func XLSX(w io.Writer, std registry.Standard, items []engine.Item) error {
	f, err := Workbook(std, items)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}
