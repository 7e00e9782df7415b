package bsb

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Threads/internal/calc"
	"Threads/internal/thread"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func TestCalculateHalfInch(t *testing.T) {
	res, err := Calculate(0.5, TPI, calc.Options{})
	require.NoError(t, err)

	b := res.Basic
	assert.InDelta(t, 0.475372, b.Pitch, eps)
	assert.InDelta(t, 0.450744, b.Minor, eps)
	assert.InDelta(t, 0.024628, b.Depth, eps)

	m := res.Classes[Medium]
	assert.InDelta(t, 0.493350, m.External.Major.Min, eps)
	assert.InDelta(t, 0.470683, m.External.Pitch.Min, eps)
	assert.InDelta(t, 0.480061, m.Internal.Pitch.Max, eps)
	assert.InDelta(t, 0.462436, m.Internal.Minor.Max, eps)

	td := m.Internal.TapDrill
	require.NotNil(t, td)
	assert.Equal(t, "15/32\"", td.Name)
	assert.InDelta(t, 0.465521, td.Target, eps)
}

func TestEngagementLength(t *testing.T) {
	res, err := Calculate(0.5, TPI, calc.Options{EngagementLength: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.469804, res.Classes[Medium].External.Pitch.Min, eps)
}

func TestUnsupportedClass(t *testing.T) {
	b, _ := BasicGeometry(0.5, TPI)
	_, err := ClassLimits(b, "Free", thread.External, calc.Options{})
	assert.ErrorIs(t, err, thread.ErrUnsupportedClass)
}

func TestHandlerDefaultsPitch(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"size":0.5}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tpi":26`)
}
