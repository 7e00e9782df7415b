package calc

import (
	"Threads/internal/drill"
	"Threads/internal/thread"
)

// Nut describes an internal thread for tap drill selection. All lengths are
// unrounded and in Unit.
type Nut struct {
	Unit     thread.Unit
	Major    float64
	Minor    float64
	Depth    float64
	MinorMax float64
}

// RecommendTapDrill aims for the material's engagement, picks the nearest
// enabled drill and scores it against the nut minor limit. It returns nil
// when no drill set is enabled.
func RecommendTapDrill(n Nut, opts Options) *TapDrill {
	material := opts.Material.OrDefault()
	target := n.Major - 2*n.Depth*material.TargetEngagement()/100

	d, ok := drill.Nearest(target, n.Unit, opts.DrillSets)
	if !ok {
		return nil
	}
	size := n.Unit.FromInches(d.Inches)

	v, err := drill.Validate(size, n.Major, n.Minor, n.MinorMax, material)
	if err != nil {
		// Basic geometry always has major > minor; treat a degenerate
		// thread like an empty drill set.
		return nil
	}
	v.Engagement = thread.Round6(v.Engagement)

	return &TapDrill{
		Target:     thread.Round6(target),
		ToolSize:   thread.Round6(size),
		Name:       d.Name,
		Set:        d.Kind,
		Validation: v,
	}
}

// External builds bolt limits from unrounded basic sizes and tolerances.
func External(basic thread.Geometry, majorTol, pitchTol, minorTol float64) *DiameterLimits {
	return &DiameterLimits{
		Gender: thread.External,
		Major:  thread.ExternalLimit(basic.Major, majorTol),
		Pitch:  thread.ExternalLimit(basic.Pitch, pitchTol),
		Minor:  thread.ExternalLimit(basic.Minor, minorTol),
	}
}

// Internal builds nut limits. The nut major diameter has no upper limit in
// these standards and is reported at basic size.
func Internal(basic thread.Geometry, pitchTol, minorTol float64) *DiameterLimits {
	return &DiameterLimits{
		Gender: thread.Internal,
		Major:  thread.InternalLimit(basic.Major, 0),
		Pitch:  thread.InternalLimit(basic.Pitch, pitchTol),
		Minor:  thread.InternalLimit(basic.Minor, minorTol),
	}
}

// WithTapDrill attaches a recommendation for the nut's own minor limit.
func (l *DiameterLimits) WithTapDrill(unit thread.Unit, basic thread.Geometry, minorTol float64, opts Options) *DiameterLimits {
	l.TapDrill = RecommendTapDrill(Nut{
		Unit:     unit,
		Major:    basic.Major,
		Minor:    basic.Minor,
		Depth:    basic.Depth,
		MinorMax: basic.Minor + minorTol,
	}, opts)
	return l
}
