package report

import (
	"fmt"
	"io"
	"strings"
)

// TextReporter prints one line per document that matched any keyword
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a new text reporter
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report prints "name[:line]: kw1, kw2". Results without keywords are skipped.
func (r *TextReporter) Report(result Result) error {
	if len(result.Keywords) == 0 {
		return nil
	}

	name := result.Document
	if result.Line > 0 {
		name = fmt.Sprintf("%s:%d", name, result.Line)
	}
	_, err := fmt.Fprintf(r.w, "%s: %s\n", name, strings.Join(result.Keywords, ", "))
	return err
}

// Flush is a no-op; every result is written immediately.
func (r *TextReporter) Flush() error {
	return nil
}
