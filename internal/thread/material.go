package thread

import (
	"fmt"
	"strings"
)

// Material groups substrates by how much thread they tolerate being cut.
type Material string

const (
	Hard    Material = "hard"
	Ferrous Material = "ferrous"
	Soft    Material = "soft"
)

// TargetEngagement is the percentage of thread engagement aimed for when
// picking a tap drill.
func (m Material) TargetEngagement() float64 {
	switch m {
	case Hard:
		return 60
	case Soft:
		return 80
	default:
		return 70
	}
}

func (m Material) OrDefault() Material {
	if m == "" {
		return Ferrous
	}
	return m
}

func ParseMaterial(s string) (Material, error) {
	switch Material(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return Ferrous, nil
	case Hard:
		return Hard, nil
	case Ferrous:
		return Ferrous, nil
	case Soft:
		return Soft, nil
	}
	return "", fmt.Errorf("%w: unknown material %q", ErrInvalidInput, s)
}

func (m *Material) UnmarshalText(b []byte) error {
	parsed, err := ParseMaterial(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
