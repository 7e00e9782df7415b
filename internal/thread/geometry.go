package thread

import "math"

// Geometry holds the basic (zero-tolerance) dimensions of a thread. Lengths are
// in the standard's unit.
type Geometry struct {
	Major  float64 `json:"major"`
	Pitch  float64 `json:"pitch"` // effective (pitch) diameter
	Minor  float64 `json:"minor"`
	Depth  float64 `json:"d"`
	Radius float64 `json:"r"`
	P      float64 `json:"p"` // axial pitch
}

// Rounded returns g with every field rounded to six decimal places. Fields
// are rounded independently, so Major - 2*Depth and Minor agree only to
// 1.5e-6 when Major is exact. Limits are always taken from the unrounded
// geometry.
func (g Geometry) Rounded() Geometry {
	return Geometry{
		Major:  Round6(g.Major),
		Pitch:  Round6(g.Pitch),
		Minor:  Round6(g.Minor),
		Depth:  Round6(g.Depth),
		Radius: Round6(g.Radius),
		P:      Round6(g.P),
	}
}

// Form is the profile of one thread pitch: fundamental triangle height,
// worked depth and crest/root radius.
type Form struct {
	H      float64
	Depth  float64
	Radius float64
}

// WhitworthAngle is the 55° included angle shared by BSW, BSF, ME and BSB.
const WhitworthAngle = 55.0

// RoundedForm derives a symmetrical form truncated by H/6 at crest and root,
// with circular arcs of height H/6 blending the flanks.
func RoundedForm(includedAngleDeg, p float64) Form {
	theta := (includedAngleDeg / 2) * (math.Pi / 180)
	H := p / (2 * math.Tan(theta))
	return Form{
		H:      H,
		Depth:  (2.0 / 3.0) * H,
		Radius: (H / 6) / ((1 / math.Sin(theta)) - 1),
	}
}

// WhitworthForm is RoundedForm at 55°.
func WhitworthForm(p float64) Form {
	return RoundedForm(WhitworthAngle, p)
}

// CycleForm is the BS 811 60° cycle form: depth H - p/3, radius p/6.
func CycleForm(p float64) Form {
	H := p * math.Sqrt(3) / 2
	return Form{
		H:      H,
		Depth:  H - p/3,
		Radius: p / 6,
	}
}

// BasicFromForm lays f over a nominal major diameter.
func BasicFromForm(nominal, p float64, f Form) Geometry {
	return Geometry{
		Major:  nominal,
		Pitch:  nominal - f.Depth,
		Minor:  nominal - 2*f.Depth,
		Depth:  f.Depth,
		Radius: f.Radius,
		P:      p,
	}
}

// TPIFromPitch recovers threads per inch from a pitch that may have been
// rounded to six places. Counts within rounding error of a whole or half
// thread snap to it, so a rounded pitch falls in the same tolerance bracket
// as the exact one.
func TPIFromPitch(p float64) float64 {
	tpi := 1 / p
	if half := math.Round(tpi*2) / 2; math.Abs(tpi-half) < tpi*tpi*1e-6 {
		return half
	}
	return tpi
}

// PitchFromTPI converts threads per inch into an inch pitch.
func PitchFromTPI(op string, tpi float64) (float64, error) {
	if err := Positive(op, map[string]float64{"tpi": tpi}); err != nil {
		return 0, err
	}
	return 1 / tpi, nil
}
