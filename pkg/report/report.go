// Package report writes keyword extraction results.
package report

import (
	"fmt"
	"io"

	"github.com/Veraticus/keyword-extractor/pkg/config"
)

// Result is the outcome of scanning one document.
type Result struct {
	Document string   `json:"document" yaml:"document"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Reporter writes results.
type Reporter interface {
	Report(result Result) error
	Flush() error
}

// NewReporter returns the reporter for format writing to w.
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextReporter(w), nil
	case config.FormatJSON:
		return NewJSONReporter(w), nil
	case config.FormatYAML:
		return NewYAMLReporter(w), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
