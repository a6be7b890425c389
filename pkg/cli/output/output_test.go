package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOut, prevNoColor := Out, color.NoColor
	Out, color.NoColor = buf, true
	t.Cleanup(func() {
		Out, color.NoColor = prevOut, prevNoColor
	})
	return buf
}

func TestPrintJSON(t *testing.T) {
	buf := captureOutput(t)

	require.NoError(t, PrintJSON(map[string]string{"name": "build"}))
	assert.Equal(t, "{\n  \"name\": \"build\"\n}\n", buf.String())
}

func TestMessages(t *testing.T) {
	buf := captureOutput(t)

	Success("created %s", "dag")
	Error("failed: %v", "boom")
	Info("empty")
	Warning("careful")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "✅ created dag", lines[0])
	assert.Equal(t, "❌ failed: boom", lines[1])
	assert.Contains(t, lines[2], "empty")
	assert.Contains(t, lines[3], "careful")
}

func TestTable_Render(t *testing.T) {
	buf := captureOutput(t)

	table := NewTable("ID", "NAME")
	table.AddRow("1", "build")
	table.AddRow("22", "", "ignored")
	assert.Equal(t, 2, table.Len())
	table.Render()

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "ID  NAME   ", lines[0])
	assert.Equal(t, "--  -----  ", lines[1])
	assert.Equal(t, "1   build  ", lines[2])
	assert.Equal(t, "22         ", lines[3])
	assert.NotContains(t, buf.String(), "ignored")
}
