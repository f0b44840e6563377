package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cristianoliveira/peekshell/internal/state"
)

// Status writes a state snapshot in the given style.
func Status(w io.Writer, st state.Status, t FormatterType) error {
	if t == FormatterTypeJSON {
		return writeJSON(w, st)
	}
	lastURL := st.LastURL
	if lastURL == "" {
		lastURL = "-"
	}
	rows := [][2]string{
		{"session", st.SessionID},
		{"data dir", st.DataDir},
		{"profile dir", st.ProfileDir},
		{"profile exists", strconv.FormatBool(st.ProfileExists)},
		{"history backend", st.HistoryBackend},
		{"history length", strconv.Itoa(st.HistoryLength)},
		{"last url", truncate(lastURL, maxValueWidth)},
		{"opacity", FormatOpacity(st.Opacity)},
	}
	if t == FormatterTypeTable {
		if _, err := fmt.Fprintln(w, headerStyle.Render("peekshell status")); err != nil {
			return err
		}
		return keyValues(w, rows)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s: %s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

// FormatOpacity prints an opacity level with one decimal, e.g. "0.9".
func FormatOpacity(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
