package drill

import (
	"fmt"
	"math"

	"Threads/internal/thread"
)

// Status classifies how a tap drill will cut.
type Status string

const (
	CatastrophicLarge Status = "catastrophic-large"
	CatastrophicSmall Status = "catastrophic-small"
	DangerLoose       Status = "danger-loose"
	WarningLoose      Status = "warning-loose"
	DangerTight       Status = "danger-tight"
	WarningTight      Status = "warning-tight"
	Optimal           Status = "optimal"
)

var labels = map[Status]string{
	CatastrophicLarge: "No Thread Remaining",
	CatastrophicSmall: "Tap Breakage Certain",
	DangerLoose:       "Stripping Risk",
	WarningLoose:      "Loose Fit",
	DangerTight:       "Tap Breakage Risk",
	WarningTight:      "Tight Fit",
	Optimal:           "Optimal Fit",
}

func (s Status) Label() string {
	return labels[s]
}

// Engagement thresholds, in percent.
const (
	minEngagement   = 50
	tightEngagement = 82
	maxEngagement   = 90
)

// Validation scores a drill against a thread.
type Validation struct {
	Engagement       float64 `json:"engagement"`
	Status           Status  `json:"status"`
	Label            string  `json:"label"`
	TargetEngagement float64 `json:"target_engagement"`
}

// Validate computes the percentage of thread engagement a drill leaves and
// classifies the fit. All diameters share one unit. The material only sets
// the reported target; the thresholds are fixed.
func Validate(drill, major, minor, nutMinorMax float64, material thread.Material) (Validation, error) {
	height := (major - minor) / 2
	if !(height > 0) {
		return Validation{}, &thread.Error{
			Op:   "drill.validate",
			Kind: thread.KindInvalidThread,
			Err:  fmt.Errorf("%w: major %v must exceed minor %v", thread.ErrInvalidThread, major, minor),
		}
	}

	engagement := math.Max(0, (major-drill)/(2*height)*100)

	var status Status
	switch {
	case drill >= major:
		status = CatastrophicLarge
	case drill <= minor:
		status = CatastrophicSmall
	case engagement < minEngagement:
		status = DangerLoose
	case drill > nutMinorMax:
		status = WarningLoose
	case engagement > maxEngagement:
		status = DangerTight
	case engagement > tightEngagement:
		status = WarningTight
	default:
		status = Optimal
	}

	return Validation{
		Engagement:       engagement,
		Status:           status,
		Label:            status.Label(),
		TargetEngagement: material.TargetEngagement(),
	}, nil
}
