// Package me computes Model Engineer (ME) threads: the 55° Whitworth form at
// the constant 32 and 40 tpi pitches, with a BS 84 style medium class.
package me

import (
	"Threads/internal/calc"
	"Threads/internal/drill"
	"Threads/internal/thread"
)

const Medium = "Medium"

var Classes = []string{Medium}

var DefaultDrillSets = []drill.Kind{drill.Number, drill.Letter, drill.Fractional}

const op = "me"

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
	return res.For(gender), nil
}

func Calculate(nominal, tpi float64, opts calc.Options) (*calc.Result, error) {
	b, err := basic(nominal, tpi)
	if err != nil {
		return nil, err
	}
	opts = opts.WithDefaults(DefaultDrillSets)

	res, err := classResult(b, tpi, Medium, opts)
	if err != nil {
		return nil, err
	}
	return &calc.Result{
		Unit:    thread.Inch,
		TPI:     tpi,
		Basic:   b.Rounded(),
		Classes: map[string]calc.ClassResult{Medium: res},
	}, nil
}

// There is no formal tolerance standard for ME threads; the BS 84 medium
// class is applied with the fine-pitch nut minor bracket.
func classResult(b thread.Geometry, tpi float64, class string, opts calc.Options) (calc.ClassResult, error) {
	if class != Medium {
		return calc.ClassResult{}, thread.UnsupportedClass(op+".class_limits", class)
	}
	p := b.P
	tEff := thread.BS84.Factor(b.Major, opts.EngagementLength, p)

	nutMinor := 0.2*p + 0.007
	if tpi >= 26 {
		nutMinor = 0.2*p + 0.004
	}

	return calc.ClassResult{
		External: calc.External(b,
			thread.MajorTolerance(tEff, p),
			tEff,
			thread.BoltMinorTolerance(tEff, p),
		),
		Internal: calc.Internal(b, tEff, nutMinor).
			WithTapDrill(thread.Inch, b, nutMinor, opts),
	}, nil
}
