package document

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		lines    bool
		expected []Document
	}{
		{
			name:  "whole document",
			input: "first line\nsecond line\n",
			lines: false,
			expected: []Document{
				{Name: "doc", Text: "first line\nsecond line\n"},
			},
		},
		{
			name:  "one document per line",
			input: "first line\nsecond line\n",
			lines: true,
			expected: []Document{
				{Name: "doc", Line: 1, Text: "first line"},
				{Name: "doc", Line: 2, Text: "second line"},
			},
		},
		{
			name:  "last line without newline",
			input: "a\nb",
			lines: true,
			expected: []Document{
				{Name: "doc", Line: 1, Text: "a"},
				{Name: "doc", Line: 2, Text: "b"},
			},
		},
		{
			name:     "empty input in document mode",
			input:    "",
			lines:    false,
			expected: []Document{{Name: "doc", Text: ""}},
		},
		{
			name:     "empty input in line mode",
			input:    "",
			lines:    true,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := Read("doc", strings.NewReader(tt.input), tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, docs)
		})
	}
}

func TestScan_StopsOnCallbackError(t *testing.T) {
	sentinel := errors.New("stop")
	var seen []int

	err := Scan(context.Background(), "doc", strings.NewReader("a\nb\nc\n"), func(d Document) error {
		seen = append(seen, d.Line)
		if d.Line == 2 {
			return sentinel
		}
		return nil
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestScan_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Scan(ctx, "doc", strings.NewReader("a\nb\n"), func(Document) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestEach(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file"), 0600))

	tests := []struct {
		name      string
		paths     []string
		wantNames []string
		wantText  []string
		wantErr   bool
	}{
		{
			name:      "no paths reads stdin",
			paths:     nil,
			wantNames: []string{StdinName},
			wantText:  []string{"from stdin"},
		},
		{
			name:      "file and dash",
			paths:     []string{file, "-"},
			wantNames: []string{file, StdinName},
			wantText:  []string{"from file", "from stdin"},
		},
		{
			name:    "missing file",
			paths:   []string{filepath.Join(dir, "missing.txt")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names, texts []string
			err := Each(tt.paths, strings.NewReader("from stdin"), func(name string, r io.Reader) error {
				data, err := io.ReadAll(r)
				if err != nil {
					return err
				}
				names = append(names, name)
				texts = append(texts, string(data))
				return nil
			})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantText, texts)
		})
	}
}
