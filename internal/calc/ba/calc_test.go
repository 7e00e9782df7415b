package ba

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Threads/internal/calc"
	"Threads/internal/drill"
	"Threads/internal/thread"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateZeroBA(t *testing.T) {
	res, ok := Calculate(0, calc.Options{})
	require.True(t, ok)
	assert.Equal(t, thread.Millimetre, res.Unit)
	assert.Equal(t, 6.0, res.Basic.Major)
	assert.Equal(t, 1.0, res.Basic.P)
	assert.Equal(t, 0.6, res.Basic.Depth)
	assert.Equal(t, 5.4, res.Basic.Pitch)
	assert.Equal(t, 4.8, res.Basic.Minor)

	normal := res.Classes[Normal]
	require.NotNil(t, normal.External)
	assert.Equal(t, thread.Limit{Nominal: 6, Min: 5.8, Max: 6}, normal.External.Major)
	assert.Equal(t, thread.Limit{Nominal: 5.4, Min: 5.275, Max: 5.4}, normal.External.Pitch)
	assert.Equal(t, thread.Limit{Nominal: 4.8, Min: 4.55, Max: 4.8}, normal.External.Minor)

	require.NotNil(t, normal.Internal)
	assert.Equal(t, 6.0, normal.Internal.Major.Nominal)
	assert.Equal(t, 4.8, normal.Internal.Minor.Nominal)
	assert.Equal(t, 5.55, normal.Internal.Pitch.Max)
	assert.Equal(t, 5.175, normal.Internal.Minor.Max)

	closeFit := res.Classes[Close]
	require.NotNil(t, closeFit.External)
	assert.Nil(t, closeFit.Internal)
	assert.Equal(t, 5.85, closeFit.External.Major.Min)
	assert.Equal(t, 5.3, closeFit.External.Pitch.Min)
	assert.Equal(t, 4.6, closeFit.External.Minor.Min)
}

func TestCalculateTwoBA(t *testing.T) {
	res, ok := Calculate(2, calc.Options{})
	require.True(t, ok)
	assert.Equal(t, 4.70, res.Basic.Major)
	assert.Equal(t, 0.81, res.Basic.P)
	assert.Contains(t, res.Classes, Close)
	assert.Contains(t, res.Classes, Normal)
}

func TestCalculateUnknownSize(t *testing.T) {
	res, ok := Calculate(99, calc.Options{})
	assert.False(t, ok)
	assert.Nil(t, res)

	_, ok = Calculate(-1, calc.Options{})
	assert.False(t, ok)

	_, ok = BasicGeometry(17)
	assert.False(t, ok)
}

func TestCloseClassOnlyToTenBA(t *testing.T) {
	res, ok := Calculate(10, calc.Options{})
	require.True(t, ok)
	assert.Contains(t, res.Classes, Close)

	res, ok = Calculate(11, calc.Options{})
	require.True(t, ok)
	assert.NotContains(t, res.Classes, Close)
	// 11 BA and smaller take the wider 0.25p major tolerance.
	assert.InDelta(t, 1.5-0.25*0.31, res.Classes[Normal].External.Major.Min, 1e-9)

	_, err := ClassLimits(11, Close, thread.External, calc.Options{})
	assert.ErrorIs(t, err, thread.ErrUnsupportedClass)
}

func TestPitchTable(t *testing.T) {
	for n := 0; n < Sizes; n++ {
		p, ok := Pitch(n)
		require.True(t, ok)
		assert.InEpsilon(t, math.Pow(0.9, float64(n)), p, 0.03, "BA %d", n)
	}
	p, _ := Pitch(0)
	assert.Equal(t, 1.0, p)
	_, ok := Pitch(Sizes)
	assert.False(t, ok)
}

func TestGeometryInvariants(t *testing.T) {
	for n := 0; n < Sizes; n++ {
		g, ok := BasicGeometry(n)
		require.True(t, ok)
		assert.Greater(t, g.Major, g.Pitch, "BA %d", n)
		assert.Greater(t, g.Pitch, g.Minor, "BA %d", n)
		assert.InDelta(t, g.Depth, (g.Major-g.Minor)/2, 1e-9, "BA %d", n)
		assert.InDelta(t, g.Minor, g.Major-2*g.Depth, 1e-9, "BA %d", n)
	}
}

func TestTapDrillInMillimetres(t *testing.T) {
	res, _ := Calculate(0, calc.Options{})
	td := res.Classes[Normal].Internal.TapDrill
	require.NotNil(t, td)
	assert.Equal(t, 5.16, td.Target)
	assert.Equal(t, "#6", td.Name)
	assert.Equal(t, 5.1816, td.ToolSize)
	assert.InDelta(t, 68.2, td.Validation.Engagement, 1e-6)

	res, _ = Calculate(2, calc.Options{DrillSets: []drill.Kind{drill.Metric}})
	td = res.Classes[Normal].Internal.TapDrill
	require.NotNil(t, td)
	assert.Equal(t, "4.0mm", td.Name)
	assert.Equal(t, 4.0, td.ToolSize)
	assert.Equal(t, drill.Optimal, td.Validation.Status)
}

func TestClassLimits(t *testing.T) {
	l, err := ClassLimits(0, Normal, thread.Internal, calc.Options{})
	require.NoError(t, err)
	assert.Equal(t, 5.175, l.Minor.Max)

	_, err = ClassLimits(0, Close, thread.Internal, calc.Options{})
	assert.True(t, thread.IsKind(err, thread.KindUnsupportedClass))

	_, err = ClassLimits(0, "Free", thread.External, calc.Options{})
	assert.ErrorIs(t, err, thread.ErrUnsupportedClass)

	_, err = ClassLimits(40, Normal, thread.External, calc.Options{})
	assert.ErrorIs(t, err, thread.ErrNotFound)
}

func TestCalculateIdempotent(t *testing.T) {
	a, _ := Calculate(4, calc.Options{})
	b, _ := Calculate(4, calc.Options{})
	assert.Equal(t, a, b)
}

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"size":2}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unit":"mm"`)

	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"size":99}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
