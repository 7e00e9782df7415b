package thread

// Gender distinguishes bolts from nuts.
type Gender string

const (
	External Gender = "external"
	Internal Gender = "internal"
)

// Limit is one diameter's basic size and permitted range.
type Limit struct {
	Nominal float64 `json:"nominal"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// ExternalLimit keeps the bolt at or below nominal: the maximum material
// condition is the upper bound.
func ExternalLimit(nominal, tol float64) Limit {
	return Limit{
		Nominal: Round6(nominal),
		Min:     Round6(nominal - tol),
		Max:     Round6(nominal),
	}
}

// InternalLimit keeps the nut at or above nominal: the maximum material
// condition is the lower bound.
func InternalLimit(nominal, tol float64) Limit {
	return Limit{
		Nominal: Round6(nominal),
		Min:     Round6(nominal),
		Max:     Round6(nominal + tol),
	}
}

// Tolerance is Max - Min.
func (l Limit) Tolerance() float64 {
	return l.Max - l.Min
}
