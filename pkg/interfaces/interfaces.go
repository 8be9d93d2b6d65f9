// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import "github.com/Veraticus/keyword-extractor/pkg/keyword"

// Extractor finds registered keywords in a document.
type Extractor interface {
	ExtractKeywords(document string) keyword.Set
}

// KeywordSource lists the keywords an extractor was built from.
type KeywordSource interface {
	Keywords() []string
}
