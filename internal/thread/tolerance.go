package thread

import "math"

// Coefficients parameterize T = a·D^(1/3) + b·L^(1/2) + c·p^(1/2).
type Coefficients struct {
	Diameter float64
	Length   float64
	Pitch    float64
}

// BS84 are the Whitworth (BS 84) medium-class effective diameter coefficients,
// inch units. ME and BSB borrow them.
var BS84 = Coefficients{Diameter: 0.002, Length: 0.003, Pitch: 0.005}

// Factor evaluates T. A non-positive length of engagement falls back to D.
func (c Coefficients) Factor(D, L, p float64) float64 {
	if L <= 0 {
		L = D
	}
	return c.Diameter*math.Cbrt(D) + c.Length*math.Sqrt(L) + c.Pitch*math.Sqrt(p)
}

// Whitworth-form bolt major and minor tolerances sit a fixed √p step above
// the effective diameter tolerance.
func MajorTolerance(tEff, p float64) float64 {
	return tEff + 0.01*math.Sqrt(p)
}

func BoltMinorTolerance(tEff, p float64) float64 {
	return tEff + 0.02*math.Sqrt(p)
}

// NutMinorTolerance applies the BS 84 pitch bracket footnotes:
// 26 tpi and finer 0.2p+0.004, 24 and 22 tpi 0.2p+0.005, 20 tpi and coarser 0.2p+0.007.
func NutMinorTolerance(tpi float64) float64 {
	p := 1 / tpi
	switch {
	case tpi >= 26:
		return 0.2*p + 0.004
	case tpi >= 22:
		return 0.2*p + 0.005
	default:
		return 0.2*p + 0.007
	}
}
