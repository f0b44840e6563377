// Package format renders state for the CLI: plain lines for scripts, styled
// tables for terminals and JSON for machines.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/peekshell/internal/colors"
)

// FormatterType selects an output style.
type FormatterType string

const (
	// FormatterTypeSimple prints bare values, one per line.
	FormatterTypeSimple FormatterType = "simple"
	// FormatterTypeTable prints a styled table with headers.
	FormatterTypeTable FormatterType = "table"
	// FormatterTypeJSON prints indented JSON.
	FormatterTypeJSON FormatterType = "json"
)

// ParseFormatterType maps a flag value to a FormatterType.
func ParseFormatterType(s string) (FormatterType, error) {
	switch t := FormatterType(strings.ToLower(strings.TrimSpace(s))); t {
	case "", FormatterTypeSimple:
		return FormatterTypeSimple, nil
	case FormatterTypeTable, FormatterTypeJSON:
		return t, nil
	default:
		return "", fmt.Errorf("unknown format %q: expected simple, table or json", s)
	}
}

const (
	indexWidth    = 4
	labelWidth    = 16
	maxValueWidth = 72
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ansiColorNumber extracts the color number from an escape like "\033[0;34m".
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}

// truncate shortens s to width runes, ending with "..." when cut.
func truncate(s string, width int) string {
	if width <= 3 || utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-3]) + "..."
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// keyValues prints aligned label/value rows.
func keyValues(w io.Writer, rows [][2]string) error {
	for _, row := range rows {
		label := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, row[0]))
		if _, err := fmt.Fprintf(w, "%s %s\n", label, row[1]); err != nil {
			return err
		}
	}
	return nil
}
