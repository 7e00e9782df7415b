// Package ba computes British Association threads (BS 57 / BS 93). Sizes are
// looked up by BA number; all lengths are millimetres.
package ba

import (
	"Threads/internal/calc"
	"Threads/internal/drill"
	"Threads/internal/thread"
)

const (
	Close  = "Close"
	Normal = "Normal"
)

var Classes = []string{Close, Normal}

var DefaultDrillSets = []drill.Kind{drill.Metric, drill.Number}

// Angle is the BA included angle in degrees.
const Angle = 47.5

// closeLimit is the largest BA number with a Close class.
const closeLimit = 10

type size struct {
	p, depth, major, effective, minor, radius float64
}

// Published BA dimensions. The pitch follows 0.9^n mm and the major diameter
// 6·p^1.2 mm, both rounded as tabulated.
var table = []size{
	{p: 1.00, depth: 0.600, major: 6.00, effective: 5.400, minor: 4.80, radius: 0.1808},
	{p: 0.90, depth: 0.540, major: 5.30, effective: 4.760, minor: 4.22, radius: 0.1627},
	{p: 0.81, depth: 0.485, major: 4.70, effective: 4.215, minor: 3.73, radius: 0.1465},
	{p: 0.73, depth: 0.440, major: 4.10, effective: 3.660, minor: 3.22, radius: 0.1320},
	{p: 0.66, depth: 0.395, major: 3.60, effective: 3.205, minor: 2.81, radius: 0.1193},
	{p: 0.59, depth: 0.355, major: 3.20, effective: 2.845, minor: 2.49, radius: 0.1067},
	{p: 0.53, depth: 0.320, major: 2.80, effective: 2.480, minor: 2.16, radius: 0.0958},
	{p: 0.48, depth: 0.290, major: 2.50, effective: 2.210, minor: 1.92, radius: 0.0868},
	{p: 0.43, depth: 0.260, major: 2.20, effective: 1.940, minor: 1.68, radius: 0.0778},
	{p: 0.39, depth: 0.235, major: 1.90, effective: 1.665, minor: 1.43, radius: 0.0705},
	{p: 0.35, depth: 0.210, major: 1.70, effective: 1.490, minor: 1.28, radius: 0.0633},
	{p: 0.31, depth: 0.185, major: 1.50, effective: 1.315, minor: 1.13, radius: 0.0561},
	{p: 0.28, depth: 0.170, major: 1.30, effective: 1.130, minor: 0.96, radius: 0.0506},
	{p: 0.25, depth: 0.150, major: 1.20, effective: 1.050, minor: 0.90, radius: 0.0452},
	{p: 0.23, depth: 0.140, major: 1.00, effective: 0.860, minor: 0.72, radius: 0.0416},
	{p: 0.21, depth: 0.125, major: 0.90, effective: 0.775, minor: 0.65, radius: 0.0380},
	{p: 0.19, depth: 0.115, major: 0.79, effective: 0.675, minor: 0.56, radius: 0.0344},
}

// Sizes is the number of tabulated BA sizes, 0 to Sizes-1.
var Sizes = len(table)

// Pitch returns the tabulated pitch in mm of a BA number.
func Pitch(n int) (float64, bool) {
	if n < 0 || n >= len(table) {
		return 0, false
	}
	return table[n].p, true
}

// BasicGeometry returns the basic sizes of BA number n; ok is false for a
// number outside the table.
func BasicGeometry(n int) (g thread.Geometry, ok bool) {
	if n < 0 || n >= len(table) {
		return thread.Geometry{}, false
	}
	s := table[n]
	return thread.Geometry{
		Major:  s.major,
		Pitch:  s.effective,
		Minor:  s.minor,
		Depth:  s.depth,
		Radius: s.radius,
		P:      s.p,
	}.Rounded(), true
}

// ClassLimits computes one gender's limits of BA number n.
func ClassLimits(n int, class string, gender thread.Gender, opts calc.Options) (*calc.DiameterLimits, error) {
	b, ok := BasicGeometry(n)
	if !ok {
		return nil, thread.NotFound("ba.class_limits", "size")
	}
	res, err := classResult(n, b, class, opts.WithDefaults(DefaultDrillSets))
	if err != nil {
		return nil, err
	}
	if l := res.For(gender); l != nil {
		return l, nil
	}
	return nil, thread.UnsupportedClass("ba.class_limits", class+" "+string(gender))
}

// Calculate returns the full result for BA number n, or ok=false when n is
// not a tabulated size. Close is only present for 0 to 10 BA.
func Calculate(n int, opts calc.Options) (*calc.Result, bool) {
	b, ok := BasicGeometry(n)
	if !ok {
		return nil, false
	}
	opts = opts.WithDefaults(DefaultDrillSets)

	classes := make(map[string]calc.ClassResult, len(Classes))
	for _, name := range Classes {
		res, err := classResult(n, b, name, opts)
		if err != nil {
			continue
		}
		classes[name] = res
	}
	return &calc.Result{
		Unit:    thread.Millimetre,
		Basic:   b,
		Classes: classes,
	}, true
}

func classResult(n int, b thread.Geometry, class string, opts calc.Options) (calc.ClassResult, error) {
	p := b.P
	switch class {
	case Normal:
		majorTol := 0.20 * p
		if n > closeLimit {
			majorTol = 0.25 * p
		}
		nutMinor := 0.375 * p
		return calc.ClassResult{
			External: calc.External(b, majorTol, 0.10*p+0.025, 0.20*p+0.05),
			Internal: calc.Internal(b, 0.12*p+0.03, nutMinor).
				WithTapDrill(thread.Millimetre, b, nutMinor, opts),
		}, nil
	case Close:
		if n > closeLimit {
			break
		}
		return calc.ClassResult{
			External: calc.External(b, 0.15*p, 0.08*p+0.02, 0.16*p+0.04),
		}, nil
	}
	return calc.ClassResult{}, thread.UnsupportedClass("ba.class_limits", class)
}
