package format

import (
	"fmt"
	"io"
)

// History writes urls, oldest first, in the given style.
func History(w io.Writer, urls []string, t FormatterType) error {
	if urls == nil {
		urls = []string{}
	}
	switch t {
	case FormatterTypeJSON:
		return writeJSON(w, urls)
	case FormatterTypeTable:
		return historyTable(w, urls)
	default:
		for _, u := range urls {
			if _, err := fmt.Fprintln(w, u); err != nil {
				return err
			}
		}
		return nil
	}
}

func historyTable(w io.Writer, urls []string) error {
	if len(urls) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("No history"))
		return err
	}
	header := fmt.Sprintf("%*s  %s", indexWidth, "#", "URL")
	if _, err := fmt.Fprintln(w, headerStyle.Render(header)); err != nil {
		return err
	}
	for i, u := range urls {
		if _, err := fmt.Fprintf(w, "%*d  %s\n", indexWidth, i+1, truncate(u, maxValueWidth)); err != nil {
			return err
		}
	}
	return nil
}
