// Package document turns input files and streams into documents for keyword extraction.
package document

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// StdinName is the document name used for standard input.
const StdinName = "-"

// maxLineSize bounds a single line in line mode.
const maxLineSize = 4 * 1024 * 1024

// Document is one unit of text to scan.
type Document struct {
	Name string
	Line int // 1-based line number in line mode, 0 for whole inputs
	Text string
}

// Read returns the documents in r. When lines is false the whole input is a
// single document; otherwise every line is its own document.
func Read(name string, r io.Reader, lines bool) ([]Document, error) {
	if !lines {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return []Document{{Name: name, Text: string(data)}}, nil
	}

	var docs []Document
	err := Scan(context.Background(), name, r, func(d Document) error {
		docs = append(docs, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Scan calls fn for every line of r until the input ends, fn returns an
// error, or ctx is cancelled.
func Scan(ctx context.Context, name string, r io.Reader, fn func(Document) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		if err := fn(Document{Name: name, Line: line, Text: scanner.Text()}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return nil
}

// Each opens every path in turn and calls fn with its reader. An empty path
// list, or the path "-", reads from stdin.
func Each(paths []string, stdin io.Reader, fn func(name string, r io.Reader) error) error {
	if len(paths) == 0 {
		paths = []string{StdinName}
	}

	for _, path := range paths {
		if path == StdinName {
			if err := fn(StdinName, stdin); err != nil {
				return err
			}
			continue
		}
		if err := eachFile(path, fn); err != nil {
			return err
		}
	}
	return nil
}

func eachFile(path string, fn func(name string, r io.Reader) error) error {
	// #nosec G304 - input paths are supplied by the user running the tool
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return fn(path, f)
}
