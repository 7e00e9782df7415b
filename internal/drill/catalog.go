// Package drill holds the standard twist drill catalogs and the tap drill
// selection and validation rules built on them.
package drill

import (
	"fmt"
	"strings"
)

// Kind names a drill catalog. The declaration order is the selection
// priority used to break ties.
type Kind int

const (
	Fractional Kind = iota
	Letter
	Number
	Metric
)

// Priority lists every catalog in tie-break order.
var Priority = []Kind{Fractional, Letter, Number, Metric}

func (k Kind) String() string {
	switch k {
	case Fractional:
		return "Fractional"
	case Letter:
		return "Letter"
	case Number:
		return "Number"
	case Metric:
		return "Metric"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind accepts catalog names case-insensitively; "Imperial" is the
// fractional catalog.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fractional", "imperial":
		return Fractional, nil
	case "letter":
		return Letter, nil
	case "number", "numbered":
		return Number, nil
	case "metric":
		return Metric, nil
	}
	return 0, fmt.Errorf("unknown drill set %q", s)
}

// ParseKinds parses a list of catalog names, e.g. from a comma separated flag.
func ParseKinds(names []string) ([]Kind, error) {
	out := make([]Kind, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Drill is one catalog entry; Inches is the normalized diameter.
type Drill struct {
	Name   string  `json:"name"`
	Inches float64 `json:"inches"`
	Kind   Kind    `json:"kind"`
}

// Millimetres reports the drill diameter in mm.
func (d Drill) Millimetres() float64 {
	return d.Inches * 25.4
}

var catalogs = map[Kind][]Drill{
	Fractional: buildFractional(),
	Letter:     buildLetter(),
	Number:     buildNumber(),
	Metric:     buildMetric(),
}

// Catalog returns a copy of one catalog in ascending order.
func Catalog(k Kind) []Drill {
	src := catalogs[k]
	out := make([]Drill, len(src))
	copy(out, src)
	return out
}

var numberSizes = []float64{
	0.0135, 0.0145, 0.0160, 0.0180, 0.0200, 0.0210, 0.0225, 0.0240, 0.0250, 0.0260, // #80-#71
	0.0280, 0.0292, 0.0310, 0.0320, 0.0330, 0.0350, 0.0360, 0.0370, 0.0380, 0.0390, // #70-#61
	0.0400, 0.0410, 0.0420, 0.0430, 0.0465, 0.0520, 0.0550, 0.0595, 0.0635, 0.0670, // #60-#51
	0.0700, 0.0730, 0.0760, 0.0785, 0.0810, 0.0820, 0.0860, 0.0890, 0.0935, 0.0960, // #50-#41
	0.0980, 0.0995, 0.1015, 0.1040, 0.1065, 0.1100, 0.1110, 0.1130, 0.1160, 0.1200, // #40-#31
	0.1285, 0.1360, 0.1405, 0.1440, 0.1470, 0.1495, 0.1520, 0.1540, 0.1570, 0.1590, // #30-#21
	0.1610, 0.1660, 0.1695, 0.1730, 0.1770, 0.1800, 0.1820, 0.1850, 0.1890, 0.1910, // #20-#11
	0.1935, 0.1960, 0.1990, 0.2010, 0.2040, 0.2055, 0.2090, 0.2130, 0.2210, 0.2280, // #10-#1
}

func buildNumber() []Drill {
	out := make([]Drill, 0, len(numberSizes))
	for i, size := range numberSizes {
		out = append(out, Drill{Name: fmt.Sprintf("#%d", 80-i), Inches: size, Kind: Number})
	}
	return out
}

var letterSizes = []float64{
	0.234, 0.238, 0.242, 0.246, 0.250, 0.257, 0.261, 0.266, 0.272, 0.277, 0.281, 0.290, 0.295,
	0.302, 0.316, 0.323, 0.332, 0.339, 0.348, 0.358, 0.368, 0.377, 0.386, 0.397, 0.404, 0.413,
}

func buildLetter() []Drill {
	out := make([]Drill, 0, len(letterSizes))
	for i, size := range letterSizes {
		out = append(out, Drill{Name: string(rune('A' + i)), Inches: size, Kind: Letter})
	}
	return out
}

// Metric drills are generated in hundredths of a millimetre so the steps
// never accumulate floating point drift.
func buildMetric() []Drill {
	var out []Drill
	add := func(from, to, step int, format string) {
		for i := from; i <= to; i += step {
			mm := float64(i) / 100
			out = append(out, Drill{Name: fmt.Sprintf(format, mm), Inches: mm / 25.4, Kind: Metric})
		}
	}
	add(10, 300, 5, "%.2fmm")
	add(310, 1300, 10, "%.1fmm")
	add(1350, 2000, 50, "%.1fmm")
	return out
}

// Fractional drills are counted in 64ths with a step that coarsens as the
// sizes grow.
func buildFractional() []Drill {
	var out []Drill
	add := func(from, to, step int) {
		for i := from; i <= to; i += step {
			out = append(out, Drill{Name: fractionName(i), Inches: float64(i) / 64, Kind: Fractional})
		}
	}
	add(1, 112, 1)   // 1/64" to 1 3/4"
	add(114, 144, 2) // 1/32" steps to 2 1/4"
	add(148, 192, 4) // 1/16" steps to 3"
	add(200, 384, 8) // 1/8" steps to 6"
	return out
}

func fractionName(sixtyFourths int) string {
	whole, rem := sixtyFourths/64, sixtyFourths%64
	if rem == 0 {
		return fmt.Sprintf("%d\"", whole)
	}
	g := gcd(rem, 64)
	if whole > 0 {
		return fmt.Sprintf("%d %d/%d\"", whole, rem/g, 64/g)
	}
	return fmt.Sprintf("%d/%d\"", rem/g, 64/g)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Find looks a drill up by its catalog name, e.g. "#7", "F", "1/4\"" or
// "6.5mm". Names are unique across catalogs.
func Find(name string) (Drill, bool) {
	name = strings.TrimSpace(name)
	for _, k := range Priority {
		for _, d := range catalogs[k] {
			if strings.EqualFold(d.Name, name) {
				return d, true
			}
		}
	}
	return Drill{}, false
}
