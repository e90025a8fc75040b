package generator

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/nao1215/covreport/internal/config"
	"github.com/nao1215/covreport/internal/docx"
	"github.com/nao1215/covreport/internal/document"
	"github.com/nao1215/covreport/internal/pipeline"
)

// Generator builds and saves the coverage report.
type Generator struct {
	// outputPath is the report destination.
	outputPath string

	// stdout receives the confirmation line.
	stdout io.Writer

	logger *slog.Logger

	// now stamps the document core properties.
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutputPath overrides the report destination.
func WithOutputPath(path string) Option {
	return func(g *Generator) {
		g.outputPath = path
	}
}

// WithStdout sets the writer that receives the confirmation line.
func WithStdout(w io.Writer) Option {
	return func(g *Generator) {
		g.stdout = w
	}
}

// WithLogger sets the logger used by the step pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithClock sets the clock used for the document timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator that writes config.DefaultReportPath and prints to
// os.Stdout unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{
		outputPath: config.DefaultReportPath,
		stdout:     os.Stdout,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OutputPath returns the report destination.
func (g *Generator) OutputPath() string {
	return g.outputPath
}

// Build returns the report document without saving it.
func (g *Generator) Build(ctx context.Context) (*document.Document, error) {
	doc := newReportDocument()
	p := pipeline.New(pipeline.WithLogger(g.logger))
	p.AddSteps(contentSteps()...)
	if err := p.Execute(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Generate builds the report, saves it and prints the confirmation line.
// Re-running replaces the previous file.
func (g *Generator) Generate(ctx context.Context) error {
	g.logger.Debug("generating report", "output", g.outputPath)
	return g.Pipeline().Execute(ctx, newReportDocument())
}

// Pipeline returns the full generation pipeline.
func (g *Generator) Pipeline() *pipeline.Pipeline {
	w := docx.NewWriter(docx.WithClock(g.now), docx.WithApplication(config.AppName))

	p := pipeline.New(pipeline.WithLogger(g.logger))
	p.AddSteps(contentSteps()...)
	p.AddSteps(
		ensureDirStep(g.outputPath),
		saveStep(w, g.outputPath),
		confirmStep(g.stdout, g.outputPath),
	)
	return p
}

// contentSteps returns the section steps in report order.
func contentSteps() []pipeline.Step {
	steps := []pipeline.Step{
		sectionStep(titleSection),
		sectionStep(summarySection),
		sectionStep(detailsSection),
		sectionStep(thresholdSection),
		metricsTableStep(),
	}
	for _, s := range trailingSections {
		steps = append(steps, sectionStep(s))
	}
	return steps
}

func newReportDocument() *document.Document {
	doc := document.New()
	doc.Metadata = document.Metadata{
		Title:   ReportTitle,
		Subject: ProjectName,
		Creator: config.AppName,
	}
	return doc
}
