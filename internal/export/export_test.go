package export

import (
	"bytes"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Threads/internal/calc"
	"Threads/internal/calc/engine"
	"Threads/internal/registry"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func table(t *testing.T, k registry.Kind) (registry.Standard, []engine.Item) {
	t.Helper()
	std, ok := registry.Lookup(k)
	require.True(t, ok)
	return std, engine.Table(k, calc.Options{})
}

func TestRowsOrder(t *testing.T) {
	std, items := table(t, registry.Whitworth)
	rows := Rows(std, items[:1])

	var got []string
	for _, r := range rows {
		got = append(got, r.Class+" "+string(r.Gender))
	}
	assert.Equal(t, []string{
		"Close external",
		"Medium external", "Medium internal",
		"Free external",
		"Normal internal",
	}, got)
}

func TestFusionInch(t *testing.T) {
	std, items := table(t, registry.Whitworth)

	var buf bytes.Buffer
	require.NoError(t, Fusion(&buf, std, items))
	require.True(t, strings.HasPrefix(buf.String(), xml.Header))

	var doc fusionThreadType
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, std.Name, doc.Name)
	assert.Equal(t, "in", doc.Unit)
	assert.Equal(t, 55.0, doc.Angle)

	var quarter *fusionSize
	for i := range doc.Sizes {
		if doc.Sizes[i].Size == "0.25" {
			quarter = &doc.Sizes[i]
		}
	}
	require.NotNil(t, quarter)
	require.Len(t, quarter.Designations, 2)

	bsw := quarter.Designations[0]
	assert.Equal(t, `1/4" BSW`, bsw.ThreadDesignation)
	assert.Equal(t, "20", bsw.TPI)
	assert.Empty(t, bsw.Pitch)
	require.Len(t, bsw.Threads, 5)

	medium := bsw.Threads[2]
	assert.Equal(t, "internal", medium.Gender)
	assert.Equal(t, "Medium", medium.Class)
	assert.Equal(t, "0.2055", medium.TapDrill)
	assert.Equal(t, "0.25", medium.MajorDia)
	assert.Equal(t, "0.185967", medium.MinorDia)
	assert.Empty(t, bsw.Threads[0].TapDrill)
}

func TestFusionMetricUsesPitch(t *testing.T) {
	std, items := table(t, registry.BA)

	var buf bytes.Buffer
	require.NoError(t, Fusion(&buf, std, items))

	var doc fusionThreadType
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Sizes, 17)
	d := doc.Sizes[0].Designations[0]
	assert.Equal(t, "6", doc.Sizes[0].Size)
	assert.Equal(t, "0BA", d.ThreadDesignation)
	assert.Equal(t, "1", d.Pitch)
	assert.Empty(t, d.TPI)

	// Close is not defined above 10BA.
	assert.Len(t, doc.Sizes[0].Designations[0].Threads, 3)
	assert.Len(t, doc.Sizes[16].Designations[0].Threads, 2)
}

func TestWorkbook(t *testing.T) {
	std, items := table(t, registry.BSB)
	bad := engine.Batch(registry.BSB, []registry.Preset{{Size: "x", Nominal: -1, TPI: 26}}, calc.Options{})
	items = append(items, bad...)

	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, std, items))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("bsb")
	require.NoError(t, err)
	require.Len(t, rows, len(Rows(std, items))+1)
	assert.Equal(t, "Designation", rows[0][0])
	assert.Equal(t, "Status", rows[0][13])
	assert.Equal(t, "BSB 1/8 x 26", rows[1][0])

	errRows, err := f.GetRows("Errors")
	require.NoError(t, err)
	require.Len(t, errRows, 2)
	assert.Equal(t, "x", errRows[1][0])
}

func TestPDF(t *testing.T) {
	std, items := table(t, registry.ME)

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, std, items))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportHandler(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/threads/{standard}/export.{format}", (&Handler{}).Export).Methods("GET")

	cases := []struct {
		path   string
		status int
		ct     string
	}{
		{"/threads/ba/export.xml", http.StatusOK, "application/xml"},
		{"/threads/bsw/export.xlsx", http.StatusOK, contentTypes[FormatXLSX]},
		{"/threads/bsc/export.pdf?material=hard", http.StatusOK, "application/pdf"},
		{"/threads/bsc/export.csv", http.StatusNotFound, ""},
		{"/threads/unc/export.xml", http.StatusNotFound, ""},
		{"/threads/me/export.xml?drill_sets=morse", http.StatusBadRequest, ""},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, c.path, nil))
			require.Equal(t, c.status, rec.Code)
			if c.ct != "" {
				assert.Equal(t, c.ct, rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
			}
		})
	}
}
