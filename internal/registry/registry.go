// Package registry describes the supported thread standards: units, angles,
// classes, series, default drill sets and the preset size tables.
package registry

import (
	"fmt"
	"strings"

	"Threads/internal/calc/ba"
	"Threads/internal/calc/bsb"
	"Threads/internal/calc/bsc"
	"Threads/internal/calc/me"
	"Threads/internal/calc/whitworth"
	"Threads/internal/drill"
	"Threads/internal/thread"
)

// Kind tags a thread standard.
type Kind string

const (
	Whitworth Kind = "whitworth"
	BA        Kind = "ba"
	ME        Kind = "me"
	BSC       Kind = "bsc"
	BSB       Kind = "bsb"
)

// Kinds lists the standards in display order.
var Kinds = []Kind{Whitworth, BA, ME, BSC, BSB}

// Standard is the read-only description of one standard.
type Standard struct {
	Kind             Kind         `json:"id"`
	Name             string       `json:"name"`
	Unit             thread.Unit  `json:"unit"`
	Angle            float64      `json:"angle"`
	SortOrder        int          `json:"sort_order"`
	ThreadForm       int          `json:"thread_form"` // Fusion 360 thread form code
	Series           []string     `json:"series"`
	Classes          []string     `json:"classes"`
	DefaultDrillSets []drill.Kind `json:"default_drill_sets"`
}

var standards = map[Kind]Standard{
	Whitworth: {
		Kind:             Whitworth,
		Name:             "British Standard Whitworth (BSW/BSF)",
		Unit:             thread.Inch,
		Angle:            thread.WhitworthAngle,
		SortOrder:        1,
		ThreadForm:       7,
		Series:           []string{"BSW", "BSF"},
		Classes:          whitworth.Classes,
		DefaultDrillSets: whitworth.DefaultDrillSets,
	},
	BA: {
		Kind:             BA,
		Name:             "British Association (BA)",
		Unit:             thread.Millimetre,
		Angle:            ba.Angle,
		SortOrder:        2,
		ThreadForm:       8,
		Series:           []string{"BA"},
		Classes:          ba.Classes,
		DefaultDrillSets: ba.DefaultDrillSets,
	},
	ME: {
		Kind:             ME,
		Name:             "Model Engineer (ME)",
		Unit:             thread.Inch,
		Angle:            thread.WhitworthAngle,
		SortOrder:        3,
		ThreadForm:       8,
		Series:           []string{"Fine (40 TPI)", "Medium (32 TPI)", "BSB (26 TPI)"},
		Classes:          me.Classes,
		DefaultDrillSets: me.DefaultDrillSets,
	},
	BSC: {
		Kind:             BSC,
		Name:             "British Standard Cycle (BSC/CEI)",
		Unit:             thread.Inch,
		Angle:            60,
		SortOrder:        4,
		ThreadForm:       8,
		Series:           []string{"Standard", "BSA"},
		Classes:          bsc.Classes,
		DefaultDrillSets: bsc.DefaultDrillSets,
	},
	BSB: {
		Kind:             BSB,
		Name:             "British Standard Brass (BSB)",
		Unit:             thread.Inch,
		Angle:            thread.WhitworthAngle,
		SortOrder:        5,
		ThreadForm:       8,
		Series:           []string{"BSB"},
		Classes:          bsb.Classes,
		DefaultDrillSets: bsb.DefaultDrillSets,
	},
}

// Lookup returns the standard for k.
func Lookup(k Kind) (Standard, bool) {
	s, ok := standards[k]
	return s, ok
}

// All returns every standard in display order.
func All() []Standard {
	out := make([]Standard, 0, len(Kinds))
	for _, k := range Kinds {
		out = append(out, standards[k])
	}
	return out
}

// ParseKind accepts standard ids and the common series abbreviations.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whitworth", "bsw", "bsf":
		return Whitworth, nil
	case "ba":
		return BA, nil
	case "me":
		return ME, nil
	case "bsc", "cei", "bsa":
		return BSC, nil
	case "bsb":
		return BSB, nil
	}
	return "", thread.NotFound("registry.parse_kind", fmt.Sprintf("standard %q", s))
}
