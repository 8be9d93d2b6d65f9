package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewReporter(t *testing.T) {
	tests := []struct {
		format  string
		want    interface{}
		wantErr bool
	}{
		{format: "text", want: &TextReporter{}},
		{format: "", want: &TextReporter{}},
		{format: "json", want: &JSONReporter{}},
		{format: "yaml", want: &YAMLReporter{}},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := NewReporter(tt.format, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}

func TestTextReporter_Report(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "whole document",
			result: Result{Document: "notes.txt", Keywords: []string{"alpha", "beta"}},
			want:   "notes.txt: alpha, beta\n",
		},
		{
			name:   "line document",
			result: Result{Document: "-", Line: 3, Keywords: []string{"gamma"}},
			want:   "-:3: gamma\n",
		},
		{
			name:   "no keywords is skipped",
			result: Result{Document: "empty.txt"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewTextReporter(&buf)

			require.NoError(t, r.Report(tt.result))
			require.NoError(t, r.Flush())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestJSONReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)

	require.NoError(t, r.Report(Result{Document: "a.txt", Keywords: []string{"go"}}))
	require.NoError(t, r.Report(Result{Document: "b.txt", Line: 2}))
	require.NoError(t, r.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"document":"a.txt","keywords":["go"]}`, lines[0])
	assert.JSONEq(t, `{"document":"b.txt","line":2,"keywords":[]}`, lines[1])

	var decoded Result
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &decoded))
	assert.Equal(t, 2, decoded.Line)
}

func TestYAMLReporter_Flush(t *testing.T) {
	var buf bytes.Buffer
	r := NewYAMLReporter(&buf)

	require.NoError(t, r.Report(Result{Document: "a.txt", Keywords: []string{"go", "rust"}}))
	require.NoError(t, r.Report(Result{Document: "b.txt", Line: 4}))
	assert.Empty(t, buf.String(), "nothing is written before Flush")

	require.NoError(t, r.Flush())

	var decoded []Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []Result{
		{Document: "a.txt", Keywords: []string{"go", "rust"}},
		{Document: "b.txt", Line: 4, Keywords: []string{}},
	}, decoded)
}

func TestYAMLReporter_FlushEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewYAMLReporter(&buf)

	require.NoError(t, r.Flush())
	assert.Equal(t, "[]\n", buf.String())
}
