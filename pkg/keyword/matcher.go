// Package keyword provides whole-word multi-keyword extraction backed by a trie.
//
// A Matcher is built by registering keywords and then scans documents in a
// single pass. A keyword is reported only when it spans a complete run of
// alphabetic characters: prefixes, suffixes and substrings of longer words
// never match.
//
// ExtractKeywords never mutates the trie, so any number of goroutines may
// scan concurrently. AddKeyword must not run concurrently with anything
// else; callers that need to change keywords while scanning should build a
// new Matcher and swap it in (see package reload).
package keyword

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher extracts registered keywords from documents.
type Matcher struct {
	root          *node
	caseSensitive bool
	count         int
}

// New creates an empty matcher. When caseSensitive is false, keywords and
// documents are lowercased before they touch the trie.
func New(caseSensitive bool) *Matcher {
	return &Matcher{
		root:          newNode(),
		caseSensitive: caseSensitive,
	}
}

// CaseSensitive reports the mode the matcher was created with.
func (m *Matcher) CaseSensitive() bool {
	return m.caseSensitive
}

// Len returns the number of distinct registered keywords.
func (m *Matcher) Len() int {
	return m.count
}

// AddKeyword registers keyword. Registering the same keyword again has no
// effect. The empty string is ignored since it can never span a word.
func (m *Matcher) AddKeyword(keyword string) {
	if keyword == "" {
		return
	}
	keyword = m.normalize(keyword)

	current := m.root
	for _, r := range keyword {
		current = current.childOrCreate(r)
	}
	if !current.terminal {
		m.count++
	}
	current.markTerminal(keyword)
}

// AddKeywords registers each keyword in order.
func (m *Matcher) AddKeywords(keywords ...string) {
	for _, kw := range keywords {
		m.AddKeyword(kw)
	}
}

// Contains reports whether keyword, after case folding, is registered.
func (m *Matcher) Contains(keyword string) bool {
	if keyword == "" {
		return false
	}
	current := m.root
	for _, r := range m.normalize(keyword) {
		if current = current.child(r); current == nil {
			return false
		}
	}
	return current.terminal
}

// Keywords returns every registered keyword in lexical order.
func (m *Matcher) Keywords() []string {
	return sortedKeywords(m.root)
}

// ExtractKeywords returns the distinct registered keywords that occur in
// document as whole alphabetic runs. Any non-alphabetic rune, as well as the
// start and end of the document, is a word boundary.
func (m *Matcher) ExtractKeywords(document string) Set {
	found := make(Set)
	document = m.normalize(document)

	// current is nil while lost inside a word that left the trie.
	current := m.root
	for _, r := range document {
		if !isAlphabetic(r) {
			m.emit(current, found)
			current = m.root
			continue
		}
		if current != nil {
			current = current.child(r)
		}
	}
	m.emit(current, found)

	return found
}

// emit records the terminal value of the cursor at a boundary. The root is
// never reported, so an empty run cannot produce a match.
func (m *Matcher) emit(current *node, found Set) {
	if current == nil || current == m.root || !current.terminal {
		return
	}
	found.Add(current.keyword)
}

// normalize is the single place case folding happens, for both
// registration and scanning. Full Unicode lowercasing is applied, so a
// word-final capital sigma folds to ς. A Caser is stateful, hence one per
// call.
func (m *Matcher) normalize(s string) string {
	if m.caseSensitive {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

// isAlphabetic reports whether r has the Unicode Alphabetic property.
func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}
