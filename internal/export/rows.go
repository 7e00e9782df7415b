// Package export writes calculated thread tables as Fusion 360 thread
// definitions, XLSX workbooks and PDF reports.
package export

import (
	"strconv"

	"Threads/internal/calc"
	"Threads/internal/calc/engine"
	"Threads/internal/registry"
	"Threads/internal/thread"
)

// Row is one class and gender of one thread size, the unit every format
// shares.
type Row struct {
	Designation string
	CTD         string
	Size        float64
	TPI         float64
	Pitch       float64
	Class       string
	Gender      thread.Gender
	Limits      *calc.DiameterLimits
}

// Rows flattens a batch in preset order, classes in the standard's order and
// external before internal. Failed items are skipped.
func Rows(std registry.Standard, items []engine.Item) []Row {
	var rows []Row
	for _, it := range items {
		if it.Result == nil {
			continue
		}
		for _, class := range std.Classes {
			cr, ok := it.Result.Classes[class]
			if !ok {
				continue
			}
			for _, g := range []thread.Gender{thread.External, thread.Internal} {
				l := cr.For(g)
				if l == nil {
					continue
				}
				rows = append(rows, Row{
					Designation: it.Preset.Designation,
					CTD:         it.Preset.CTD,
					Size:        it.Preset.Nominal,
					TPI:         it.Result.TPI,
					Pitch:       it.Result.Basic.P,
					Class:       class,
					Gender:      g,
					Limits:      l,
				})
			}
		}
	}
	return rows
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
