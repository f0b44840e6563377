package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/cristianoliveira/peekshell/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatterType(t *testing.T) {
	for in, want := range map[string]FormatterType{
		"":       FormatterTypeSimple,
		"simple": FormatterTypeSimple,
		"TABLE":  FormatterTypeTable,
		" json ": FormatterTypeJSON,
	} {
		got, err := ParseFormatterType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormatterType("yaml")
	assert.Error(t, err)
}

func TestHistorySimple(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, History(&buf, []string{"https://a", "https://b"}, FormatterTypeSimple))
	assert.Equal(t, "https://a\nhttps://b\n", buf.String())

	buf.Reset()
	require.NoError(t, History(&buf, nil, FormatterTypeSimple))
	assert.Empty(t, buf.String())
}

func TestHistoryJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, History(&buf, nil, FormatterTypeJSON))
	assert.JSONEq(t, `[]`, buf.String())

	buf.Reset()
	require.NoError(t, History(&buf, []string{"x"}, FormatterTypeJSON))
	assert.JSONEq(t, `["x"]`, buf.String())
}

func TestHistoryTable(t *testing.T) {
	var buf bytes.Buffer
	long := "https://example.com/" + strings.Repeat("a", 200)
	require.NoError(t, History(&buf, []string{"https://a", long}, FormatterTypeTable))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "URL")
	assert.Contains(t, lines[1], "1  https://a")
	assert.True(t, strings.HasSuffix(lines[2], "..."))
	assert.LessOrEqual(t, len([]rune(lines[2])), indexWidth+2+maxValueWidth)

	buf.Reset()
	require.NoError(t, History(&buf, []string{}, FormatterTypeTable))
	assert.Contains(t, buf.String(), "No history")
}

func TestStatus(t *testing.T) {
	st := state.Status{
		SessionID:      "3f2c",
		DataDir:        "/d",
		ProfileDir:     "/p",
		HistoryBackend: "json",
		HistoryLength:  4,
		Opacity:        0.7,
	}

	var buf bytes.Buffer
	require.NoError(t, Status(&buf, st, FormatterTypeSimple))
	out := buf.String()
	assert.Contains(t, out, "session: 3f2c\n")
	assert.Contains(t, out, "history length: 4\n")
	assert.Contains(t, out, "last url: -\n")
	assert.Contains(t, out, "opacity: 0.7\n")

	buf.Reset()
	require.NoError(t, Status(&buf, st, FormatterTypeTable))
	assert.Contains(t, buf.String(), "peekshell status")
	assert.Contains(t, buf.String(), "/p")

	buf.Reset()
	require.NoError(t, Status(&buf, st, FormatterTypeJSON))
	var decoded state.Status
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, st, decoded)
}

func TestSettings(t *testing.T) {
	s := settings.DefaultSettings()
	s.Bookmarks = []string{"https://a", "https://b"}

	var buf bytes.Buffer
	require.NoError(t, Settings(&buf, s, FormatterTypeSimple))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(settings.Keys))
	assert.Equal(t, "lang=ru", lines[0])
	assert.Contains(t, buf.String(), "ribbon.width=480\n")
	assert.Contains(t, buf.String(), "bookmarks=https://a,https://b\n")

	buf.Reset()
	require.NoError(t, Settings(&buf, s, FormatterTypeJSON))
	assert.Contains(t, buf.String(), `"showAddress": true`)
}

func TestFormatOpacity(t *testing.T) {
	assert.Equal(t, "1.0", FormatOpacity(1))
	assert.Equal(t, "0.6", FormatOpacity(0.6))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 10))
	assert.Equal(t, "hé...", truncate("héllo wörld", 5))
}

func TestAnsiColorNumber(t *testing.T) {
	assert.Equal(t, "34", ansiColorNumber("\033[0;34m"))
	assert.Equal(t, "", ansiColorNumber("x"))
}
