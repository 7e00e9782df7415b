package export

import (
	"fmt"
	"io"
	"time"

	"Threads/internal/calc/engine"
	"Threads/internal/registry"

	"github.com/phpdave11/gofpdf"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Designation", 38}, {"Class", 18}, {"Gender", 18},
	{"Major", 34}, {"Pitch", 34}, {"Minor", 34},
	{"Tap drill", 22}, {"Eng. %", 16}, {"Status", 30},
}

// PDF prints the thread table on landscape A4 pages, repeating the header
// on every page.
func PDF(w io.Writer, std registry.Standard, items []engine.Item) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(std.Name, true)
	pdf.SetAutoPageBreak(true, 12)

	head := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			head()
		}
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, std.Name)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Unit: %s   Thread angle: %s deg", std.Unit, num(std.Angle)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)
	head()

	for _, row := range Rows(std, items) {
		l := row.Limits
		cells := []string{
			row.Designation, row.Class, string(row.Gender),
			num(l.Major.Min) + " - " + num(l.Major.Max),
			num(l.Pitch.Min) + " - " + num(l.Pitch.Max),
			num(l.Minor.Min) + " - " + num(l.Minor.Max),
			"", "", "",
		}
		if td := l.TapDrill; td != nil {
			cells[6] = td.Name
			cells[7] = fmt.Sprintf("%.1f", td.Validation.Engagement)
			cells[8] = td.Validation.Label
		}
		for i, c := range pdfColumns {
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	for _, it := range items {
		if it.Err != nil {
			pdf.Ln(4)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s: %s", it.Preset.Size, it.Error), "", "L", false)
		}
	}
	return pdf.Output(w)
}
