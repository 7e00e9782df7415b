// Package bsc computes British Standard Cycle threads (BS 811:1950, also
// CEI) including the BSA heavy 20 tpi sizes.
package bsc

import (
	"math"

	"Threads/internal/calc"
	"Threads/internal/drill"
	"Threads/internal/thread"
)

const (
	Close  = "Close"
	Medium = "Medium"
	Free   = "Free"
)

var Classes = []string{Close, Medium, Free}

var DefaultDrillSets = []drill.Kind{drill.Number, drill.Letter, drill.Fractional}

var multipliers = map[string]struct{ external, internal float64 }{
	Close:  {external: 0.75, internal: 1.0},
	Medium: {external: 1.0, internal: 1.25},
	Free:   {external: 1.5, internal: 1.5},
}

const op = "bsc"

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
	return thread.BasicFromForm(nominal, p, thread.CycleForm(p)), nil
}

// ClassLimits computes one gender's limits. The length of engagement in opts
// is ignored: the cycle tolerance has no L term.
func ClassLimits(b thread.Geometry, class string, gender thread.Gender, opts calc.Options) (*calc.DiameterLimits, error) {
	if err := thread.Positive(op+".class_limits", map[string]float64{"major": b.Major, "p": b.P}); err != nil {
		return nil, err
	}
	b, err := basic(b.Major, thread.TPIFromPitch(b.P))
	if err != nil {
		return nil, err
	}
	res, err := classResult(b, class, opts.WithDefaults(DefaultDrillSets))
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

	classes := make(map[string]calc.ClassResult, len(Classes))
	for _, name := range Classes {
		res, err := classResult(b, name, opts)
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

// Tolerance is the BS 811 effective diameter tolerance before the class
// multiplier.
func Tolerance(D, p float64) float64 {
	return 0.006*math.Sqrt(p) + 0.001*math.Sqrt(D)
}

func classResult(b thread.Geometry, class string, opts calc.Options) (calc.ClassResult, error) {
	m, ok := multipliers[class]
	if !ok {
		return calc.ClassResult{}, thread.UnsupportedClass(op+".class_limits", class)
	}
	p := b.P
	T := Tolerance(b.Major, p)

	tExt := T * m.external
	tInt := T * m.internal
	nutMinor := 0.2*p + 0.004

	return calc.ClassResult{
		External: calc.External(b,
			thread.MajorTolerance(tExt, p),
			tExt,
			thread.BoltMinorTolerance(tExt, p),
		),
		Internal: calc.Internal(b, tInt, nutMinor).
			WithTapDrill(thread.Inch, b, nutMinor, opts),
	}, nil
}
