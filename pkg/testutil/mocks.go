package testutil

import (
	"sync"

	"github.com/Veraticus/keyword-extractor/pkg/interfaces"
	"github.com/Veraticus/keyword-extractor/pkg/keyword"
	"github.com/Veraticus/keyword-extractor/pkg/report"
)

// MockReporter is a thread-safe mock implementation of report.Reporter for testing
type MockReporter struct {
	mu         sync.Mutex
	results    []report.Result
	attempts   []report.Result // Track all report attempts
	flushCount int
	reportErr  error
	flushErr   error
}

var _ report.Reporter = (*MockReporter)(nil)

// NewMockReporter creates a new mock reporter
func NewMockReporter() *MockReporter {
	return &MockReporter{
		results:  []report.Result{},
		attempts: []report.Result{},
	}
}

// Report implements the Reporter interface
func (m *MockReporter) Report(r report.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Always track the attempt
	m.attempts = append(m.attempts, r)

	if m.reportErr != nil {
		return m.reportErr
	}

	m.results = append(m.results, r)
	return nil
}

// Flush implements the Reporter interface
func (m *MockReporter) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushCount++
	return m.flushErr
}

// GetResults returns a copy of successfully reported results
func (m *MockReporter) GetResults() []report.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]report.Result, len(m.results))
	copy(result, m.results)
	return result
}

// GetAttempts returns a copy of all report attempts (including failures)
func (m *MockReporter) GetAttempts() []report.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]report.Result, len(m.attempts))
	copy(result, m.attempts)
	return result
}

// GetFlushCount returns how many times Flush was called
func (m *MockReporter) GetFlushCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushCount
}

// SetError sets the error to return on Report calls
func (m *MockReporter) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportErr = err
}

// SetFlushError sets the error to return on Flush calls
func (m *MockReporter) SetFlushError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushErr = err
}

// Clear resets all recorded state
func (m *MockReporter) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = []report.Result{}
	m.attempts = []report.Result{}
	m.flushCount = 0
	m.reportErr = nil
	m.flushErr = nil
}

// MockExtractor is a mock implementation of interfaces.Extractor for testing
type MockExtractor struct {
	mu        sync.Mutex
	results   map[string][]string
	documents []string
}

var _ interfaces.Extractor = (*MockExtractor)(nil)

// NewMockExtractor creates a mock extractor that returns nothing until
// SetResult is called
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{
		results: make(map[string][]string),
	}
}

// ExtractKeywords implements the Extractor interface
func (m *MockExtractor) ExtractKeywords(document string) keyword.Set {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documents = append(m.documents, document)

	set := make(keyword.Set)
	for _, kw := range m.results[document] {
		set.Add(kw)
	}
	return set
}

// SetResult sets the keywords returned for document
func (m *MockExtractor) SetResult(document string, keywords ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[document] = keywords
}

// GetDocuments returns a copy of every document passed to ExtractKeywords
func (m *MockExtractor) GetDocuments() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.documents))
	copy(result, m.documents)
	return result
}
