package calc

import (
	"Threads/internal/drill"
	"Threads/internal/thread"
)

// DiameterLimits are one gender's limits for a tolerance class.
type DiameterLimits struct {
	Gender   thread.Gender `json:"gender"`
	Major    thread.Limit  `json:"major"`
	Pitch    thread.Limit  `json:"pitch"`
	Minor    thread.Limit  `json:"minor"`
	TapDrill *TapDrill     `json:"tap_drill,omitempty"`
}

// ClassResult holds whichever genders a class defines.
type ClassResult struct {
	External *DiameterLimits `json:"external,omitempty"`
	Internal *DiameterLimits `json:"internal,omitempty"`
}

// For returns the limits for g, or nil when the class does not define it.
func (c ClassResult) For(g thread.Gender) *DiameterLimits {
	if g == thread.Internal {
		return c.Internal
	}
	return c.External
}

// Result is the complete calculation for one thread size.
type Result struct {
	Unit    thread.Unit            `json:"unit"`
	TPI     float64                `json:"tpi,omitempty"`
	Basic   thread.Geometry        `json:"basic"`
	Classes map[string]ClassResult `json:"classes"`
}

// TapDrill recommends a real drill for an internal thread. Sizes are in the
// standard's unit.
type TapDrill struct {
	Target     float64          `json:"target"`
	ToolSize   float64          `json:"tool_size"`
	Name       string           `json:"name"`
	Set        drill.Kind       `json:"set"`
	Validation drill.Validation `json:"validation"`
}
