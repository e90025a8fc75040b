package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/covreport/internal/coverage"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs the summary as a Markdown document with a table of
// files and an alert comparing totals with a threshold.
type MarkdownWriter struct {
	baseWriter

	// threshold is the minimum total percentage. Zero disables the check.
	threshold float64
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithThreshold sets the minimum total percentage reported by the alert.
func WithThreshold(threshold float64) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.threshold = threshold
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *coverage.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H2("Coverage summary")
	md.PlainText("")

	rows := make([][]string, 0, len(summary.Files)+1)
	for _, f := range summary.Files {
		rows = append(rows, markdownRow("`"+f.Path+"`", f))
	}
	total := markdownRow("", summary.Total)
	for i := range total {
		total[i] = "**" + total[i] + "**"
	}
	total[0] = "**Total**"
	rows = append(rows, total)

	md.Table(markdown.TableSet{
		Header: []string{"File", "% Stmts", "% Branch", "% Funcs", "Stmts", "Branch", "Funcs"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeAlert(md, summary)

	return len(md.String()), md.Build()
}

func markdownRow(name string, f coverage.FileCoverage) []string {
	return []string{
		name,
		f.Statements.Percent(),
		f.Branches.Percent(),
		f.Functions.Percent(),
		f.Statements.Fraction(),
		f.Branches.Fraction(),
		f.Functions.Fraction(),
	}
}

// writeAlert writes a warning naming the metrics below the threshold, or a
// tip when every metric meets it.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary *coverage.Summary) {
	if w.threshold <= 0 {
		return
	}

	threshold := strconv.FormatFloat(w.threshold, 'f', -1, 64)
	if below := summary.BelowThreshold(w.threshold); len(below) > 0 {
		md.Warningf("Coverage below %s%%: %s.", threshold, strings.Join(below, ", "))
	} else {
		md.Tip(fmt.Sprintf("All totals meet the %s%% threshold.", threshold))
	}
	md.PlainText("")
}
