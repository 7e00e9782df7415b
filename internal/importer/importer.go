// Package importer reads thread size lists from XLSX sheets and calculates
// them as a batch.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"Threads/internal/calc"
	"Threads/internal/calc/engine"
	"Threads/internal/registry"

	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"
)

// RowError reports a sheet row that could not become a preset. Row is the
// 1-based sheet row.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type Result struct {
	Count   int           `json:"count"`
	Items   []engine.Item `json:"items"`
	Skipped []RowError    `json:"skipped,omitempty"`
}

// ReadPresets reads the first sheet: a header row, then size, tpi and an
// optional series per row. BA rows only need the size. A Whitworth row
// without a series must match a default size and pitch. Blank rows are
// ignored.
func ReadPresets(k registry.Kind, r io.Reader) ([]registry.Preset, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("importer: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("importer: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("importer: empty sheet")
	}

	var presets []registry.Preset
	var skipped []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		p, err := parseRow(k, row)
		if err != nil {
			skipped = append(skipped, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		presets = append(presets, p)
	}
	return presets, skipped, nil
}

func parseRow(k registry.Kind, row []string) (registry.Preset, error) {
	tpi := 0.0
	if len(row) > 1 && strings.TrimSpace(row[1]) != "" {
		v, err := toFloat(row[1])
		if err != nil {
			return registry.Preset{}, fmt.Errorf("bad tpi %q", row[1])
		}
		tpi = v
	}
	series := ""
	if len(row) > 2 {
		series = strings.TrimSpace(row[2])
	}
	return registry.ResolvePreset(k, row[0], tpi, series)
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

type Handler struct {
	Defaults calc.Options
}

// Import takes a multipart "file" upload and answers the batch results.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	k, err := registry.ParseKind(mux.Vars(r)["standard"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	opts, err := engine.OptionsFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	presets, skipped, err := ReadPresets(k, file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	items := engine.Batch(k, presets, opts.Merge(h.Defaults))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{Count: len(items), Items: items, Skipped: skipped})
}
