// Package calc holds the types shared by every thread standard's engine: the
// per-call options, the aggregated result and the tap drill recommendation.
package calc

import (
	"math"

	"Threads/internal/drill"
	"Threads/internal/thread"
)

// Options carry the optional inputs of a calculation. Zero values select the
// documented defaults; nothing falls back to state from an earlier call.
type Options struct {
	// DrillSets enables drill catalogs for tap drill selection. Nil selects
	// the standard's defaults; an empty non-nil slice disables selection.
	DrillSets []drill.Kind `json:"drill_sets"`
	// EngagementLength is L in the tolerance factor. Zero means L = D.
	EngagementLength float64 `json:"engagement_length"`
	// Material sets the target thread engagement. Empty means ferrous.
	Material thread.Material `json:"material"`
}

// WithDefaults fills unset fields; defaults is the standard's drill sets.
func (o Options) WithDefaults(defaults []drill.Kind) Options {
	if o.DrillSets == nil {
		o.DrillSets = defaults
	}
	o.Material = o.Material.OrDefault()
	if o.EngagementLength < 0 {
		o.EngagementLength = 0
	}
	return o
}

// Validate rejects an engagement length that is negative or not finite.
func (o Options) Validate(op string) error {
	if l := o.EngagementLength; l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return thread.InvalidInput(op, "length", l)
	}
	return nil
}

// Merge fills the fields o leaves unset from d, typically the server's
// configured defaults.
func (o Options) Merge(d Options) Options {
	if o.DrillSets == nil {
		o.DrillSets = d.DrillSets
	}
	if o.Material == "" {
		o.Material = d.Material
	}
	if o.EngagementLength == 0 {
		o.EngagementLength = d.EngagementLength
	}
	return o
}
