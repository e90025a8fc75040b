package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/covreport/internal/config"
	"github.com/nao1215/covreport/internal/coverage"
)

const (
	// fileColumnWidth is the width of the left-aligned file column.
	fileColumnWidth = 50

	// ruleWidth is the length of the horizontal rules.
	ruleWidth = 80
)

// SimpleWriter outputs the summary as a fixed-width text table, one row per
// file followed by a Total row.
type SimpleWriter struct {
	baseWriter

	// htmlReport is the path shown in the closing hint. Empty hides it.
	htmlReport string
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithHTMLReport sets the HTML report path shown after the table.
// An empty path hides the hint.
func WithHTMLReport(path string) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.htmlReport = path
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		htmlReport: config.DefaultHTMLReport,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary table.
func (w *SimpleWriter) Write(summary *coverage.Summary) (int, error) {
	var sb strings.Builder
	rule := strings.Repeat("-", ruleWidth) + "\n"

	sb.WriteString("Coverage summary (calculated from coverage-final.json)\n")
	sb.WriteString(rule)
	sb.WriteString(padRight("| File", fileColumnWidth))
	sb.WriteString("| % Stmts | % Branch | % Funcs | Stmts | Branch | Funcs\n")
	sb.WriteString(rule)

	for _, f := range summary.Files {
		writeRow(&sb, f.Path, f)
	}

	sb.WriteString(rule)
	writeRow(&sb, "Total", summary.Total)

	if w.htmlReport != "" {
		sb.WriteString(fmt.Sprintf("\nPara ver el reporte HTML, abre: %s\n", w.htmlReport))
	}

	return io.WriteString(w.output, sb.String())
}

// writeRow writes one table row labelled name.
func writeRow(sb *strings.Builder, name string, f coverage.FileCoverage) {
	sb.WriteString(padRight(name, fileColumnWidth))
	sb.WriteString(fmt.Sprintf("| %6s | %8s | %6s | %5d/%-5d | %6d/%-6d | %5d/%-5d\n",
		f.Statements.Percent(),
		f.Branches.Percent(),
		f.Functions.Percent(),
		f.Statements.Covered, f.Statements.Total,
		f.Branches.Covered, f.Branches.Total,
		f.Functions.Covered, f.Functions.Total,
	))
}

// padRight pads s with spaces to width runes. Longer strings are kept.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
