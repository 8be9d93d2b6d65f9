package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLReporter buffers results and writes them as a single YAML list on Flush.
type YAMLReporter struct {
	w       io.Writer
	results []Result
}

// NewYAMLReporter creates a new YAML reporter
func NewYAMLReporter(w io.Writer) *YAMLReporter {
	return &YAMLReporter{w: w}
}

// Report buffers result.
func (r *YAMLReporter) Report(result Result) error {
	if result.Keywords == nil {
		result.Keywords = []string{}
	}
	r.results = append(r.results, result)
	return nil
}

// Flush writes all buffered results and resets the buffer.
func (r *YAMLReporter) Flush() error {
	results := r.results
	if results == nil {
		results = []Result{}
	}

	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finish yaml output: %w", err)
	}

	r.results = nil
	return nil
}
