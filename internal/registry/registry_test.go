package registry

import (
	"testing"

	"Threads/internal/drill"
	"Threads/internal/thread"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllStandards(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	for i, s := range all {
		assert.Equal(t, Kinds[i], s.Kind)
		assert.NotEmpty(t, s.Classes, s.Kind)
		assert.NotEmpty(t, s.Series, s.Kind)
		assert.NotEmpty(t, s.DefaultDrillSets, s.Kind)
	}

	ba, ok := Lookup(BA)
	require.True(t, ok)
	assert.Equal(t, thread.Millimetre, ba.Unit)
	assert.Equal(t, 47.5, ba.Angle)
	assert.Equal(t, []drill.Kind{drill.Metric, drill.Number}, ba.DefaultDrillSets)

	bsc, _ := Lookup(BSC)
	assert.Equal(t, 60.0, bsc.Angle)
	assert.Equal(t, []string{"Close", "Medium", "Free"}, bsc.Classes)

	_, ok = Lookup("acme")
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"BSW": Whitworth, "bsf": Whitworth, "BA": BA, "me": ME, "CEI": BSC, "bsb": BSB} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("UNC")
	assert.True(t, thread.IsKind(err, thread.KindNotFound))
}

func TestParseFraction(t *testing.T) {
	cases := map[string]float64{
		"1/4":   0.25,
		"1 1/8": 1.125,
		" 3/16": 0.1875,
		"1.370": 1.37,
		"2":     2,
	}
	for in, want := range cases {
		got, err := ParseFraction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "a/4", "1/0", "1 2 3/4", "1/x", "one"} {
		_, err := ParseFraction(bad)
		assert.ErrorIs(t, err, thread.ErrInvalidInput, bad)
	}
}

func TestPresetsLoaded(t *testing.T) {
	w := Presets(Whitworth)
	require.NotEmpty(t, w)
	assert.Equal(t, Preset{
		Designation: "1/16\" BSW",
		CTD:         "1/16 - 60 BSW",
		Series:      "BSW",
		Size:        "1/16",
		Nominal:     0.0625,
		TPI:         60,
	}, w[0])

	ba := Presets(BA)
	require.Len(t, ba, 17)
	assert.Equal(t, "0BA", ba[0].Designation)
	assert.Equal(t, 6.0, ba[0].Nominal)
	assert.Equal(t, 0.79, ba[16].Nominal)

	me := Presets(ME)
	assert.Equal(t, "ME 1/8 x 40", me[0].Designation)
	assert.Equal(t, "Fine (40 TPI)", me[0].Series)

	bsc := Presets(BSC)
	last := bsc[len(bsc)-1]
	assert.Equal(t, "BSA", last.Series)
	assert.Equal(t, "3/4 - 20 BSA", last.CTD)

	bsb := Presets(BSB)
	assert.Equal(t, "BSB 1 1/8 x 26", bsb[8].Designation)
	assert.Equal(t, 1.125, bsb[8].Nominal)
}

func TestPresetsReturnsCopy(t *testing.T) {
	p := Presets(BSB)
	p[0].Nominal = 42
	assert.NotEqual(t, 42.0, Presets(BSB)[0].Nominal)
}

func TestNewPresetDerivesSeries(t *testing.T) {
	p, err := NewPreset(ME, "1/4", 26, "")
	require.NoError(t, err)
	assert.Equal(t, "BSB (26 TPI)", p.Series)
	assert.Equal(t, "ME 1/4 x 26 BSB", p.Designation)
	assert.Equal(t, "1/4 - 26 BSB", p.CTD)

	p, err = NewPreset(BSC, "5/8", 20, "")
	require.NoError(t, err)
	assert.Equal(t, "5/8 BSA", p.Designation)

	p, err = NewPreset(BA, "4BA", 0, "")
	require.NoError(t, err)
	assert.Equal(t, 3.6, p.Nominal)

	_, err = NewPreset(BA, "30", 0, "")
	assert.ErrorIs(t, err, thread.ErrNotFound)

	_, err = NewPreset(Whitworth, "quarter", 20, "")
	assert.ErrorIs(t, err, thread.ErrInvalidInput)

	_, err = NewPreset(Whitworth, "1/4", 26, "")
	assert.ErrorIs(t, err, thread.ErrInvalidInput)
}

func TestResolvePresetWhitworthSeries(t *testing.T) {
	p, err := ResolvePreset(Whitworth, "1/4", 26, "")
	require.NoError(t, err)
	assert.Equal(t, "BSF", p.Series)
	assert.Equal(t, `1/4" BSF`, p.Designation)

	p, err = ResolvePreset(Whitworth, "0.5", 12, " ")
	require.NoError(t, err)
	assert.Equal(t, "BSW", p.Series)

	p, err = ResolvePreset(Whitworth, "1/4", 19, "BSF")
	require.NoError(t, err)
	assert.Equal(t, "1/4 - 19 BSF", p.CTD)

	_, err = ResolvePreset(Whitworth, "1/4", 19, "")
	assert.ErrorIs(t, err, thread.ErrInvalidInput)
	assert.Contains(t, err.Error(), "series")

	p, err = ResolvePreset(BSB, "1/2", 26, "")
	require.NoError(t, err)
	assert.Equal(t, "BSB", p.Series)
}

func TestParsePresetsErrors(t *testing.T) {
	_, err := ParsePresets(BSB, []byte("standard: me\npresets: []\n"))
	assert.Error(t, err)

	_, err = ParsePresets(BSB, []byte("presets: [\n"))
	assert.Error(t, err)

	_, err = ParsePresets(BSB, []byte("presets:\n  - size: \"x/y\"\n    tpi: 26\n"))
	assert.ErrorIs(t, err, thread.ErrInvalidInput)
}
