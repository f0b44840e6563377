package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/peekshell/internal/settings"
)

// Settings writes s in the given style. The simple style prints key=value
// lines using the same keys `settings set` accepts.
func Settings(w io.Writer, s *settings.Settings, t FormatterType) error {
	if t == FormatterTypeJSON {
		return writeJSON(w, s)
	}
	rows := make([][2]string, 0, len(settings.Keys))
	for _, key := range settings.Keys {
		v, err := s.Get(key)
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{key, v})
	}
	if t == FormatterTypeTable {
		if _, err := fmt.Fprintln(w, headerStyle.Render("settings")); err != nil {
			return err
		}
		return keyValues(w, rows)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s=%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}
