package thread

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitworthFormRadius(t *testing.T) {
	theta := 27.5 * math.Pi / 180
	for _, p := range []float64{1.0 / 60, 1.0 / 26, 0.05, 0.125, 1, 2.54} {
		f := WhitworthForm(p)
		want := (f.H / 6) / (1/math.Sin(theta) - 1)
		assert.InDelta(t, want, f.Radius, 1e-9, "p=%v", p)
		assert.InDelta(t, 2*f.H/3, f.Depth, 1e-12)
	}
}

func TestWhitworthFormKnownConstants(t *testing.T) {
	// Handbook ratios: H = 0.960491p, d = 0.640327p, r = 0.137329p.
	f := WhitworthForm(1)
	assert.InDelta(t, 0.960491, f.H, 1e-6)
	assert.InDelta(t, 0.640327, f.Depth, 1e-6)
	assert.InDelta(t, 0.137329, f.Radius, 1e-6)
}

func TestCycleForm(t *testing.T) {
	f := CycleForm(1)
	assert.InDelta(t, 0.866025, f.H, 1e-6)
	assert.InDelta(t, 0.532692, f.Depth, 1e-6)
	assert.InDelta(t, 1.0/6, f.Radius, 1e-12)
}

func TestBasicFromFormOrdering(t *testing.T) {
	g := BasicFromForm(0.25, 0.05, WhitworthForm(0.05))
	assert.Greater(t, g.Major, g.Pitch)
	assert.Greater(t, g.Pitch, g.Minor)
	assert.InDelta(t, g.Depth, (g.Major-g.Minor)/2, 1e-12)
}

func TestRoundedGeometryTolerance(t *testing.T) {
	const bound = 1.5e-6 + 1e-12
	for _, tpi := range []float64{8, 11, 12, 16, 19, 20, 22, 26, 32, 40, 60} {
		p := 1 / tpi
		for n := 4; n <= 128; n++ {
			nominal := float64(n) / 64
			for _, f := range []Form{WhitworthForm(p), CycleForm(p)} {
				g := BasicFromForm(nominal, p, f).Rounded()
				assert.InDelta(t, g.Minor, g.Major-2*g.Depth, bound, "%v x %v", nominal, tpi)
				assert.InDelta(t, g.Pitch, g.Major-g.Depth, bound, "%v x %v", nominal, tpi)
			}
		}
	}
	g := BasicFromForm(0.25, 1.0/20, WhitworthForm(1.0/20)).Rounded()
	assert.Equal(t, 0.185967, g.Minor)
}

func TestPitchFromRoundedTPI(t *testing.T) {
	for _, tpi := range []float64{8, 19, 22, 26, 32, 40, 60, 80, 4.5} {
		assert.Equal(t, tpi, TPIFromPitch(Round6(1/tpi)), "%v", tpi)
	}
	assert.InDelta(t, 1/0.03, TPIFromPitch(0.03), 1e-9)
}

func TestRound6(t *testing.T) {
	assert.Equal(t, 4.7, Round6(4.7000000001))
	assert.Equal(t, 0.123457, Round6(0.1234567))
	assert.Equal(t, -0.000001, Round6(-0.0000014))
}

func TestLimits(t *testing.T) {
	ext := ExternalLimit(1, 0.01)
	assert.Equal(t, Limit{Nominal: 1, Min: 0.99, Max: 1}, ext)

	in := InternalLimit(1, 0.01)
	assert.Equal(t, Limit{Nominal: 1, Min: 1, Max: 1.01}, in)
	assert.InDelta(t, 0.01, in.Tolerance(), 1e-12)
}

func TestCoefficientsFactorDefaultsLength(t *testing.T) {
	withL := BS84.Factor(0.5, 0.5, 1.0/12)
	withoutL := BS84.Factor(0.5, 0, 1.0/12)
	assert.Equal(t, withL, withoutL)
	assert.Greater(t, BS84.Factor(0.5, 1, 1.0/12), withL)
}

func TestNutMinorToleranceBrackets(t *testing.T) {
	assert.InDelta(t, 0.2/26+0.004, NutMinorTolerance(26), 1e-12)
	assert.InDelta(t, 0.2/40+0.004, NutMinorTolerance(40), 1e-12)
	assert.InDelta(t, 0.2/24+0.005, NutMinorTolerance(24), 1e-12)
	assert.InDelta(t, 0.2/22+0.005, NutMinorTolerance(22), 1e-12)
	assert.InDelta(t, 0.2/20+0.007, NutMinorTolerance(20), 1e-12)
	assert.InDelta(t, 0.2/8+0.007, NutMinorTolerance(8), 1e-12)
}

func TestPositive(t *testing.T) {
	require.NoError(t, Positive("op", map[string]float64{"a": 1, "b": 2}))

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := Positive("op", map[string]float64{"nominal": bad})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.True(t, IsKind(err, KindInvalidInput))
		assert.Contains(t, err.Error(), "nominal")
	}
}

func TestErrorKinds(t *testing.T) {
	err := UnsupportedClass("whitworth.class_limits", "Loose")
	assert.True(t, errors.Is(err, ErrUnsupportedClass))
	assert.True(t, IsKind(err, KindUnsupportedClass))
	assert.False(t, IsKind(err, KindNotFound))
	assert.Equal(t, "whitworth.class_limits: unsupported_class (Loose): unsupported class", err.Error())

	assert.True(t, errors.Is(NotFound("ba.calculate", "size"), ErrNotFound))
}

func TestMaterial(t *testing.T) {
	m, err := ParseMaterial("Soft")
	require.NoError(t, err)
	assert.Equal(t, Soft, m)
	assert.Equal(t, 80.0, m.TargetEngagement())
	assert.Equal(t, 60.0, Hard.TargetEngagement())
	assert.Equal(t, 70.0, Material("").TargetEngagement())
	assert.Equal(t, Ferrous, Material("").OrDefault())

	_, err = ParseMaterial("titanium")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnits(t *testing.T) {
	u, err := ParseUnit("MM")
	require.NoError(t, err)
	assert.Equal(t, Millimetre, u)
	assert.InDelta(t, 1.0, Millimetre.ToInches(25.4), 1e-15)
	assert.InDelta(t, 25.4, Millimetre.FromInches(1), 1e-15)
	assert.Equal(t, 0.5, Inch.ToInches(0.5))

	_, err = ParseUnit("cubit")
	assert.Error(t, err)
}

func TestMaterialUnmarshalText(t *testing.T) {
	var m Material
	require.NoError(t, m.UnmarshalText([]byte("HARD")))
	assert.Equal(t, Hard, m)
	assert.Error(t, m.UnmarshalText([]byte("cheese")))
}
