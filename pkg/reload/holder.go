// Package reload keeps a frozen keyword.Matcher available to concurrent
// readers while a replacement is built in the background.
package reload

import (
	"sync/atomic"

	"github.com/Veraticus/keyword-extractor/pkg/keyword"
)

// Builder builds a fresh, fully populated matcher.
type Builder func() (*keyword.Matcher, error)

// Holder publishes the current matcher. A stored matcher must not be
// modified afterwards; readers scan it without locking.
type Holder struct {
	current atomic.Pointer[keyword.Matcher]
}

// NewHolder creates a holder serving m.
func NewHolder(m *keyword.Matcher) *Holder {
	h := &Holder{}
	h.Store(m)
	return h
}

// Load returns the current matcher.
func (h *Holder) Load() *keyword.Matcher {
	return h.current.Load()
}

// Store replaces the current matcher.
func (h *Holder) Store(m *keyword.Matcher) {
	h.current.Store(m)
}

// ExtractKeywords scans document with the current matcher.
func (h *Holder) ExtractKeywords(document string) keyword.Set {
	m := h.Load()
	if m == nil {
		return keyword.Set{}
	}
	return m.ExtractKeywords(document)
}

// Keywords lists the current matcher's keywords.
func (h *Holder) Keywords() []string {
	m := h.Load()
	if m == nil {
		return nil
	}
	return m.Keywords()
}

// Rebuild builds a new matcher and stores it. On error the current matcher
// is left in place.
func (h *Holder) Rebuild(build Builder) error {
	m, err := build()
	if err != nil {
		return err
	}
	h.Store(m)
	return nil
}
