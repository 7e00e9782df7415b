package registry

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"Threads/internal/calc/ba"
	"Threads/internal/thread"

	"gopkg.in/yaml.v3"
)

// Preset is one row of a standard's default size table.
type Preset struct {
	Designation string  `json:"designation" yaml:"-"`
	CTD         string  `json:"ctd" yaml:"-"`
	Series      string  `json:"series" yaml:"series"`
	Size        string  `json:"size" yaml:"size"` // fraction, decimal or BA number
	Nominal     float64 `json:"nominal" yaml:"-"`
	TPI         float64 `json:"tpi,omitempty" yaml:"tpi"`
}

type presetFile struct {
	Standard Kind     `yaml:"standard"`
	Presets  []Preset `yaml:"presets"`
}

//go:embed presets/*.yaml
var presetFS embed.FS

var presets = mustLoadPresets()

// Presets returns a copy of the default size table for k.
func Presets(k Kind) []Preset {
	src := presets[k]
	out := make([]Preset, len(src))
	copy(out, src)
	return out
}

func mustLoadPresets() map[Kind][]Preset {
	out := make(map[Kind][]Preset, len(Kinds))
	for _, k := range Kinds {
		b, err := presetFS.ReadFile("presets/" + string(k) + ".yaml")
		if err != nil {
			panic(fmt.Sprintf("registry: missing presets for %s: %v", k, err))
		}
		list, err := ParsePresets(k, b)
		if err != nil {
			panic(err)
		}
		out[k] = list
	}
	return out
}

// ParsePresets decodes a YAML preset table and derives nominal sizes and
// designations.
func ParsePresets(k Kind, b []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("registry: presets for %s: %w", k, err)
	}
	if f.Standard != "" && f.Standard != k {
		return nil, fmt.Errorf("registry: preset file is for %s, not %s", f.Standard, k)
	}
	out := make([]Preset, 0, len(f.Presets))
	for i, p := range f.Presets {
		full, err := NewPreset(k, p.Size, p.TPI, p.Series)
		if err != nil {
			return nil, fmt.Errorf("registry: %s presets[%d]: %w", k, i, err)
		}
		out = append(out, full)
	}
	return out, nil
}

// NewPreset builds a preset from a size string, deriving the series when
// series is empty. Whitworth sizes must name BSW or BSF.
func NewPreset(k Kind, size string, tpi float64, series string) (Preset, error) {
	nominal, err := nominalOf(k, size)
	if err != nil {
		return Preset{}, err
	}
	if series == "" {
		series = SeriesFor(k, tpi)
	}
	if series == "" {
		return Preset{}, seriesRequired(size, tpi)
	}
	p := Preset{Series: series, Size: strings.TrimSpace(size), Nominal: nominal, TPI: tpi}
	p.Designation, p.CTD = Designate(k, p)
	return p, nil
}

// ResolvePreset is NewPreset for user input: a Whitworth size without a
// series takes the series of the default preset with the same size and pitch.
func ResolvePreset(k Kind, size string, tpi float64, series string) (Preset, error) {
	series = strings.TrimSpace(series)
	if k == Whitworth && series == "" {
		nominal, err := ParseFraction(size)
		if err != nil {
			return Preset{}, err
		}
		for _, p := range presets[Whitworth] {
			if p.Nominal == nominal && p.TPI == tpi {
				series = p.Series
				break
			}
		}
	}
	return NewPreset(k, size, tpi, series)
}

func seriesRequired(size string, tpi float64) error {
	return &thread.Error{
		Op:    "registry.preset",
		Kind:  thread.KindInvalidInput,
		Field: "series",
		Err:   fmt.Errorf("%w: %s x %v needs a series (BSW or BSF)", thread.ErrInvalidInput, strings.TrimSpace(size), tpi),
	}
}

// nominalOf reads a size string; BA sizes are numbers whose nominal is the
// tabulated major diameter.
func nominalOf(k Kind, size string) (float64, error) {
	if k != BA {
		return ParseFraction(size)
	}
	n, err := BANumber(size)
	if err != nil {
		return 0, err
	}
	g, ok := ba.BasicGeometry(n)
	if !ok {
		return 0, thread.NotFound("registry.preset", "BA "+size)
	}
	return g.Major, nil
}

// BANumber parses a BA size such as "4" or "4BA".
func BANumber(size string) (int, error) {
	s := strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(size)), "BA")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &thread.Error{
			Op:    "registry.ba_number",
			Kind:  thread.KindInvalidInput,
			Field: size,
			Err:   fmt.Errorf("%w: %q is not a BA number", thread.ErrInvalidInput, size),
		}
	}
	return n, nil
}

// SeriesFor derives the series of a size that does not name one. Whitworth
// has none: BSW and BSF share sizes and pitches.
func SeriesFor(k Kind, tpi float64) string {
	switch k {
	case BA:
		return "BA"
	case ME:
		switch tpi {
		case 40:
			return "Fine (40 TPI)"
		case 26:
			return "BSB (26 TPI)"
		}
		return "Medium (32 TPI)"
	case BSC:
		if tpi == 20 {
			return "BSA"
		}
		return "Standard"
	case BSB:
		return "BSB"
	}
	return ""
}

// Designate returns the human designation and the CAD thread designation.
func Designate(k Kind, p Preset) (designation, ctd string) {
	tpi := strconv.FormatFloat(p.TPI, 'f', -1, 64)
	switch k {
	case Whitworth:
		return fmt.Sprintf("%s\" %s", p.Size, p.Series), fmt.Sprintf("%s - %s %s", p.Size, tpi, p.Series)
	case BA:
		return p.Size + "BA", p.Size + " BA"
	case ME:
		if p.TPI == 26 {
			return fmt.Sprintf("ME %s x 26 BSB", p.Size), fmt.Sprintf("%s - 26 BSB", p.Size)
		}
		return fmt.Sprintf("ME %s x %s", p.Size, tpi), fmt.Sprintf("%s - %s ME", p.Size, tpi)
	case BSC:
		tag := "BSC"
		if p.Series == "BSA" {
			tag = "BSA"
		}
		return fmt.Sprintf("%s %s", p.Size, tag), fmt.Sprintf("%s - %s %s", p.Size, tpi, tag)
	case BSB:
		return fmt.Sprintf("BSB %s x %s", p.Size, tpi), fmt.Sprintf("%s - %s BSB", p.Size, tpi)
	}
	return p.Size, p.Size
}

// ParseFraction reads "1/4", "1 1/8", "1.370" or "3" as a decimal.
func ParseFraction(s string) (float64, error) {
	s = strings.TrimSpace(s)
	fail := func() (float64, error) {
		return 0, &thread.Error{
			Op:    "registry.parse_fraction",
			Kind:  thread.KindInvalidInput,
			Field: s,
			Err:   fmt.Errorf("%w: %q is not a size", thread.ErrInvalidInput, s),
		}
	}
	if !strings.Contains(s, "/") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fail()
		}
		return v, nil
	}

	whole := 0.0
	frac := s
	if parts := strings.Fields(s); len(parts) == 2 {
		w, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return fail()
		}
		whole, frac = w, parts[1]
	} else if len(parts) != 1 {
		return fail()
	}

	num, den, ok := strings.Cut(frac, "/")
	if !ok {
		return fail()
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return fail()
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return fail()
	}
	return whole + n/d, nil
}
