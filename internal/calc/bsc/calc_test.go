package bsc

import (
	"testing"

	"Threads/internal/calc"
	"Threads/internal/drill"
	"Threads/internal/thread"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func TestBasicGeometry(t *testing.T) {
	g, err := BasicGeometry(0.25, 26)
	require.NoError(t, err)
	assert.Equal(t, 0.25, g.Major)
	assert.InDelta(t, 0.229512, g.Pitch, eps)
	assert.InDelta(t, 0.209024, g.Minor, eps)
	assert.InDelta(t, 0.020488, g.Depth, eps)
	assert.InDelta(t, 0.006410, g.Radius, eps)
	assert.InDelta(t, 0.038462, g.P, eps)

	_, err = BasicGeometry(0.25, -26)
	assert.ErrorIs(t, err, thread.ErrInvalidInput)
}

func TestCalculateClasses(t *testing.T) {
	res, err := Calculate(0.25, 26, calc.Options{})
	require.NoError(t, err)
	require.Len(t, res.Classes, 3)

	cases := []struct {
		class                     string
		majorMin, pitchMin, minor float64
		nutPitchMax               float64
	}{
		{Close, 0.246781, 0.228254, 0.203844, 0.231189},
		{Medium, 0.246362, 0.227835, 0.203425, 0.231608},
		{Free, 0.245524, 0.226997, 0.202586, 0.232027},
	}
	for _, tc := range cases {
		c := res.Classes[tc.class]
		require.NotNil(t, c.External, tc.class)
		require.NotNil(t, c.Internal, tc.class)
		assert.InDelta(t, tc.majorMin, c.External.Major.Min, eps, tc.class)
		assert.InDelta(t, tc.pitchMin, c.External.Pitch.Min, eps, tc.class)
		assert.InDelta(t, tc.minor, c.External.Minor.Min, eps, tc.class)
		assert.InDelta(t, tc.nutPitchMax, c.Internal.Pitch.Max, eps, tc.class)
		assert.InDelta(t, 0.220716, c.Internal.Minor.Max, eps, tc.class)

		td := c.Internal.TapDrill
		require.NotNil(t, td)
		assert.Equal(t, "#2", td.Name)
		assert.InDelta(t, 0.221317, td.Target, eps)
	}
}

func TestEngagementLengthIgnored(t *testing.T) {
	a, err := Calculate(0.5, 20, calc.Options{})
	require.NoError(t, err)
	b, err := Calculate(0.5, 20, calc.Options{EngagementLength: 2})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInvariants(t *testing.T) {
	for _, s := range [][2]float64{{0.125, 40}, {0.1875, 32}, {0.5, 26}, {0.75, 20}, {1.370, 24}} {
		res, err := Calculate(s[0], s[1], calc.Options{DrillSets: []drill.Kind{drill.Metric}})
		require.NoError(t, err)
		b := res.Basic
		assert.Greater(t, b.Major, b.Pitch)
		assert.Greater(t, b.Pitch, b.Minor)
		assert.InDelta(t, b.Minor, b.Major-2*b.Depth, 2*eps)
	}
}

func TestClassLimitsUnsupported(t *testing.T) {
	b, _ := BasicGeometry(0.25, 26)
	_, err := ClassLimits(b, "Normal", thread.Internal, calc.Options{})
	assert.ErrorIs(t, err, thread.ErrUnsupportedClass)

	l, err := ClassLimits(b, Free, thread.Internal, calc.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 0.232027, l.Pitch.Max, eps)
}
