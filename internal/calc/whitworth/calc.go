// Package whitworth computes British Standard Whitworth (BSW) and British
// Standard Fine (BSF) thread limits to BS 84.
package whitworth

import (
	"Threads/internal/calc"
	"Threads/internal/drill"
	"Threads/internal/thread"
)

// Tolerance classes. Close and Free are bolt-only, Normal is nut-only.
const (
	Close  = "Close"
	Medium = "Medium"
	Free   = "Free"
	Normal = "Normal"
)

var Classes = []string{Close, Medium, Free, Normal}

var DefaultDrillSets = []drill.Kind{drill.Number, drill.Letter, drill.Fractional}

// Effective diameter tolerance multipliers on T; zero means the class does not
// define that gender.
var multipliers = map[string]struct{ external, internal float64 }{
	Close:  {external: 2.0 / 3.0},
	Medium: {external: 1, internal: 1},
	Free:   {external: 1.5},
	Normal: {internal: 1.5},
}

// normalNutMinorDivisor scales the medium nut minor tolerance for the Normal
// class: tol × (1.5 / 1.125).
const normalNutMinorDivisor = 1.125

const op = "whitworth"

// BasicGeometry returns the basic sizes for a nominal diameter and tpi, both
// in inches, rounded for output.
func BasicGeometry(nominal, tpi float64) (thread.Geometry, error) {
	b, err := basic(nominal, tpi)
	if err != nil {
		return thread.Geometry{}, err
	}
	return b.Rounded(), nil
}

func basic(nominal, tpi float64) (thread.Geometry, error) {
	if err := thread.Positive(op+".basic_geometry", map[string]float64{"nominal": nominal, "tpi": tpi}); err != nil {
		return thread.Geometry{}, err
	}
	p := 1 / tpi
	return thread.BasicFromForm(nominal, p, thread.WhitworthForm(p)), nil
}

// ClassLimits computes one gender's limits for a class from basic geometry,
// usually the rounded output of BasicGeometry. The exact geometry is rebuilt
// from its major diameter and pitch before any tolerance is applied.
func ClassLimits(b thread.Geometry, class string, gender thread.Gender, opts calc.Options) (*calc.DiameterLimits, error) {
	if err := thread.Positive(op+".class_limits", map[string]float64{"major": b.Major, "p": b.P}); err != nil {
		return nil, err
	}
	tpi := thread.TPIFromPitch(b.P)
	b, err := basic(b.Major, tpi)
	if err != nil {
		return nil, err
	}
	res, err := classResult(b, tpi, class, opts.WithDefaults(DefaultDrillSets))
	if err != nil {
		return nil, err
	}
	if l := res.For(gender); l != nil {
		return l, nil
	}
	return nil, thread.UnsupportedClass(op+".class_limits", class+" "+string(gender))
}

// Calculate runs geometry and every class for one size.
func Calculate(nominal, tpi float64, opts calc.Options) (*calc.Result, error) {
	b, err := basic(nominal, tpi)
	if err != nil {
		return nil, err
	}
	opts = opts.WithDefaults(DefaultDrillSets)

	classes := make(map[string]calc.ClassResult, len(Classes))
	for _, name := range Classes {
		res, err := classResult(b, tpi, name, opts)
		if err != nil {
			return nil, err
		}
		classes[name] = res
	}

	return &calc.Result{
		Unit:    thread.Inch,
		TPI:     tpi,
		Basic:   b.Rounded(),
		Classes: classes,
	}, nil
}

func classResult(b thread.Geometry, tpi float64, class string, opts calc.Options) (calc.ClassResult, error) {
	m, ok := multipliers[class]
	if !ok {
		return calc.ClassResult{}, thread.UnsupportedClass(op+".class_limits", class)
	}

	p := b.P
	T := thread.BS84.Factor(b.Major, opts.EngagementLength, p)

	var res calc.ClassResult
	if m.external > 0 {
		tEff := T * m.external
		res.External = calc.External(b,
			thread.MajorTolerance(tEff, p),
			tEff,
			thread.BoltMinorTolerance(tEff, p),
		)
	}
	if m.internal > 0 {
		nutMinor := thread.NutMinorTolerance(tpi)
		if class == Normal {
			nutMinor *= m.internal / normalNutMinorDivisor
		}
		res.Internal = calc.Internal(b, T*m.internal, nutMinor).
			WithTapDrill(thread.Inch, b, nutMinor, opts)
	}
	return res, nil
}
