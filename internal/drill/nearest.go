package drill

import (
	"math"

	"Threads/internal/thread"
)

// tieEpsilon treats two distances as equal so catalog priority decides.
const tieEpsilon = 1e-10

// Nearest returns the enabled catalog drill closest to target. Catalogs are
// searched in Priority order whatever order kinds lists them in, and a later
// candidate only replaces the current best when it is closer by at least
// tieEpsilon. ok is false when no catalog is enabled.
func Nearest(target float64, unit thread.Unit, kinds []Kind) (best Drill, ok bool) {
	targetIn := unit.ToInches(target)

	enabled := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		enabled[k] = true
	}

	bestDiff := 0.0
	for _, k := range Priority {
		if !enabled[k] {
			continue
		}
		for _, d := range catalogs[k] {
			diff := math.Abs(d.Inches - targetIn)
			if !ok {
				best, bestDiff, ok = d, diff, true
				continue
			}
			if math.Abs(diff-bestDiff) < tieEpsilon {
				continue
			}
			if diff < bestDiff {
				best, bestDiff = d, diff
			}
		}
	}
	return best, ok
}
