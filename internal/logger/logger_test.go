package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	t.Cleanup(Discard)

	var buf bytes.Buffer
	Setup(Config{Output: &buf})
	L().Info("calc.done", "standard", "ba")
	L().Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "calc.done", rec["msg"])
	assert.Equal(t, "ba", rec["standard"])
	assert.True(t, strings.HasSuffix(rec["time"].(string), "Z"))
}

func TestSetupDebugText(t *testing.T) {
	t.Cleanup(Discard)

	var buf bytes.Buffer
	Setup(Config{Output: &buf, Debug: true, Text: true})
	L().Debug("drill.nearest", "name", "#5")

	out := buf.String()
	assert.Contains(t, out, "logger.initialized")
	assert.Contains(t, out, "msg=drill.nearest")
	assert.Contains(t, out, "name=#5")
	assert.Contains(t, out, "source=")
}
