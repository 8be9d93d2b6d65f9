package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONReporter writes one JSON object per line.
type JSONReporter struct {
	enc *json.Encoder
}

// NewJSONReporter creates a new JSON lines reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(w)}
}

// Report encodes result. Documents without matches are still written so the
// output has one record per input document.
func (r *JSONReporter) Report(result Result) error {
	if result.Keywords == nil {
		result.Keywords = []string{}
	}
	if err := r.enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// Flush is a no-op.
func (r *JSONReporter) Flush() error {
	return nil
}
