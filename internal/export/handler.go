package export

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"Threads/internal/calc"
	"Threads/internal/calc/engine"
	"Threads/internal/registry"

	"github.com/gorilla/mux"
)

// Format names an export writer.
type Format string

const (
	FormatXML  Format = "xml"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var contentTypes = map[Format]string{
	FormatXML:  "application/xml",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatPDF:  "application/pdf",
}

// Write renders items in format f.
func Write(w io.Writer, f Format, std registry.Standard, items []engine.Item) error {
	switch f {
	case FormatXML:
		return Fusion(w, std, items)
	case FormatXLSX:
		return XLSX(w, std, items)
	case FormatPDF:
		return PDF(w, std, items)
	}
	return fmt.Errorf("export: unknown format %q", f)
}

type Handler struct {
	Defaults calc.Options
}

// Export serves /threads/{standard}/export.{format} for the standard's
// preset table.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	k, err := registry.ParseKind(vars["standard"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	format := Format(vars["format"])
	ct, ok := contentTypes[format]
	if !ok {
		http.Error(w, "Unknown export format", http.StatusNotFound)
		return
	}
	opts, err := engine.OptionsFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	std, _ := registry.Lookup(k)

	var buf bytes.Buffer
	if err := Write(&buf, format, std, engine.Table(k, opts.Merge(h.Defaults))); err != nil {
		http.Error(w, "Export generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.%s\"", k, format))
	w.Write(buf.Bytes())
}
