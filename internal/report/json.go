package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/covreport/internal/coverage"
)

// JSONWriter outputs the summary in JSON format.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// jsonSummary adds formatted percentages next to the raw counters.
type jsonSummary struct {
	Files []jsonFile `json:"files"`
	Total jsonFile   `json:"total"`
}

type jsonFile struct {
	coverage.FileCoverage

	Percent jsonPercent `json:"percent"`
}

type jsonPercent struct {
	Statements string `json:"statements"`
	Branches   string `json:"branches"`
	Functions  string `json:"functions"`
}

func newJSONFile(f coverage.FileCoverage) jsonFile {
	return jsonFile{
		FileCoverage: f,
		Percent: jsonPercent{
			Statements: f.Statements.Percent(),
			Branches:   f.Branches.Percent(),
			Functions:  f.Functions.Percent(),
		},
	}
}

// Write outputs the summary as a single JSON object.
func (w *JSONWriter) Write(summary *coverage.Summary) (int, error) {
	out := jsonSummary{
		Files: make([]jsonFile, 0, len(summary.Files)),
		Total: newJSONFile(summary.Total),
	}
	for _, f := range summary.Files {
		out.Files = append(out.Files, newJSONFile(f))
	}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(out, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
