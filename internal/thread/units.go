package thread

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// MMPerInch is the exact inch definition.
const MMPerInch = 25.4

type Unit string

const (
	Inch       Unit = "in"
	Millimetre Unit = "mm"
)

func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "in", "inch", "inches":
		return Inch, nil
	case "mm", "millimetre", "millimeter", "millimetres", "millimeters":
		return Millimetre, nil
	}
	return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, s)
}

// ToInches converts v expressed in u.
func (u Unit) ToInches(v float64) float64 {
	if u == Millimetre {
		return v / MMPerInch
	}
	return v
}

// FromInches converts an inch value into u.
func (u Unit) FromInches(v float64) float64 {
	if u == Millimetre {
		return v * MMPerInch
	}
	return v
}

// Round6 rounds to six decimal places, the machining precision of every table.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func isInf(v float64) bool {
	return math.IsInf(v, 0)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
