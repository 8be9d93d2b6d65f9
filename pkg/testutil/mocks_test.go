package testutil

import (
	"errors"
	"testing"

	"github.com/Veraticus/keyword-extractor/pkg/report"
)

func TestMockReporter(t *testing.T) {
	t.Run("successful report", func(t *testing.T) {
		mock := NewMockReporter()
		r := report.Result{Document: "doc", Keywords: []string{"go"}}

		if err := mock.Report(r); err != nil {
			t.Errorf("Report() error = %v, want nil", err)
		}

		if results := mock.GetResults(); len(results) != 1 {
			t.Errorf("GetResults() returned %d, want 1", len(results))
		}
		if attempts := mock.GetAttempts(); len(attempts) != 1 {
			t.Errorf("GetAttempts() returned %d, want 1", len(attempts))
		}
	})

	t.Run("report with error", func(t *testing.T) {
		mock := NewMockReporter()
		mockErr := errors.New("test error")
		mock.SetError(mockErr)

		err := mock.Report(report.Result{Document: "doc"})
		if err != mockErr {
			t.Errorf("Report() error = %v, want %v", err, mockErr)
		}

		// Should have no successful results
		if results := mock.GetResults(); len(results) != 0 {
			t.Errorf("GetResults() returned %d, want 0", len(results))
		}

		// But should have an attempt
		if attempts := mock.GetAttempts(); len(attempts) != 1 {
			t.Errorf("GetAttempts() returned %d, want 1", len(attempts))
		}
	})

	t.Run("flush", func(t *testing.T) {
		mock := NewMockReporter()
		_ = mock.Flush()
		flushErr := errors.New("flush error")
		mock.SetFlushError(flushErr)

		if err := mock.Flush(); err != flushErr {
			t.Errorf("Flush() error = %v, want %v", err, flushErr)
		}
		if got := mock.GetFlushCount(); got != 2 {
			t.Errorf("GetFlushCount() = %d, want 2", got)
		}
	})

	t.Run("clear state", func(t *testing.T) {
		mock := NewMockReporter()
		_ = mock.Report(report.Result{Document: "doc"})
		_ = mock.Flush()
		mock.SetError(errors.New("error"))

		mock.Clear()

		if len(mock.GetResults()) != 0 || len(mock.GetAttempts()) != 0 || mock.GetFlushCount() != 0 {
			t.Error("Clear() did not reset recorded state")
		}
		if err := mock.Report(report.Result{Document: "doc"}); err != nil {
			t.Errorf("Report() after Clear() error = %v, want nil", err)
		}
	})
}

func TestMockExtractor(t *testing.T) {
	mock := NewMockExtractor()
	mock.SetResult("alpha beta", "beta", "alpha")

	got := mock.ExtractKeywords("alpha beta")
	if sorted := got.Sorted(); len(sorted) != 2 || sorted[0] != "alpha" || sorted[1] != "beta" {
		t.Errorf("ExtractKeywords() = %v, want [alpha beta]", sorted)
	}

	if got := mock.ExtractKeywords("unknown"); got.Len() != 0 {
		t.Errorf("ExtractKeywords() for unknown document = %v, want empty", got.Sorted())
	}

	docs := mock.GetDocuments()
	if len(docs) != 2 || docs[0] != "alpha beta" || docs[1] != "unknown" {
		t.Errorf("GetDocuments() = %v", docs)
	}
}
