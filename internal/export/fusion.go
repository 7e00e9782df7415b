package export

import (
	"encoding/xml"
	"io"

	"Threads/internal/calc/engine"
	"Threads/internal/registry"
	"Threads/internal/thread"
)

type fusionThreadType struct {
	XMLName    xml.Name     `xml:"ThreadType"`
	Name       string       `xml:"Name"`
	CustomName string       `xml:"CustomName"`
	Unit       string       `xml:"Unit"`
	Angle      float64      `xml:"Angle"`
	SortOrder  int          `xml:"SortOrder"`
	ThreadForm int          `xml:"ThreadForm"`
	Sizes      []fusionSize `xml:"ThreadSize"`
}

type fusionSize struct {
	Size         string              `xml:"Size"`
	Designations []fusionDesignation `xml:"Designation"`
}

type fusionDesignation struct {
	ThreadDesignation string         `xml:"ThreadDesignation"`
	CTD               string         `xml:"CTD"`
	TPI               string         `xml:"TPI,omitempty"`
	Pitch             string         `xml:"Pitch,omitempty"`
	Threads           []fusionThread `xml:"Thread"`
}

type fusionThread struct {
	Gender   string `xml:"Gender"`
	Class    string `xml:"Class"`
	MajorDia string `xml:"MajorDia"`
	PitchDia string `xml:"PitchDia"`
	MinorDia string `xml:"MinorDia"`
	TapDrill string `xml:"TapDrill,omitempty"`
}

// Fusion writes a Fusion 360 custom thread definition. Inch standards carry
// TPI, millimetre standards carry Pitch. Sizes sharing a nominal diameter
// are grouped under one ThreadSize.
func Fusion(w io.Writer, std registry.Standard, items []engine.Item) error {
	doc := fusionThreadType{
		Name:       std.Name,
		CustomName: std.Name,
		Unit:       string(std.Unit),
		Angle:      std.Angle,
		SortOrder:  std.SortOrder,
		ThreadForm: std.ThreadForm,
	}

	index := map[string]int{}
	last := ""
	for _, row := range Rows(std, items) {
		size := num(row.Size)
		si, ok := index[size]
		if !ok {
			si = len(doc.Sizes)
			index[size] = si
			doc.Sizes = append(doc.Sizes, fusionSize{Size: size})
		}
		s := &doc.Sizes[si]

		if len(s.Designations) == 0 || last != row.Designation {
			d := fusionDesignation{ThreadDesignation: row.Designation, CTD: row.CTD}
			if std.Unit == thread.Millimetre {
				d.Pitch = num(row.Pitch)
			} else {
				d.TPI = num(row.TPI)
			}
			s.Designations = append(s.Designations, d)
			last = row.Designation
		}
		d := &s.Designations[len(s.Designations)-1]

		l := row.Limits
		t := fusionThread{
			Gender:   string(row.Gender),
			Class:    row.Class,
			MajorDia: num(l.Major.Max),
			PitchDia: num(l.Pitch.Max),
			MinorDia: num(l.Minor.Max),
		}
		if row.Gender == thread.Internal {
			t.MajorDia = num(l.Major.Min)
			t.PitchDia = num(l.Pitch.Min)
			t.MinorDia = num(l.Minor.Min)
			if l.TapDrill != nil {
				t.TapDrill = num(l.TapDrill.ToolSize)
			} else {
				t.TapDrill = num(l.Minor.Min)
			}
		}
		d.Threads = append(d.Threads, t)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
