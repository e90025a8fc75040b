package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/covreport/internal/docx"
	"github.com/nao1215/covreport/internal/document"
	"github.com/nao1215/covreport/internal/pipeline"
)

// dirPerm is the mode of directories created for the report.
const dirPerm = 0o750

// sectionStep appends a heading and its paragraphs.
func sectionStep(s section) pipeline.Step {
	return pipeline.NewStepFunc(s.name, func(_ context.Context, doc *document.Document) error {
		if _, err := doc.AddHeading(s.heading, s.level); err != nil {
			return err
		}
		for _, text := range s.paragraphs {
			doc.AddParagraph().AddRun(text).SetBold(false).SetSize(bodySize)
		}
		return nil
	})
}

// metricsTableStep appends the two-column metrics table.
func metricsTableStep() pipeline.Step {
	return pipeline.NewStepFunc("metrics-table", func(_ context.Context, doc *document.Document) error {
		table, err := doc.AddTable(len(MetricsHeader))
		if err != nil {
			return err
		}
		if err := table.AddRow(MetricsHeader...); err != nil {
			return err
		}
		for _, m := range Metrics {
			if err := table.AddRow(m.Name, m.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// ensureDirStep creates the parent directory of path.
func ensureDirStep(path string) pipeline.Step {
	return pipeline.NewStepFunc("ensure-directory", func(_ context.Context, _ *document.Document) error {
		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
		return nil
	})
}

// saveStep writes the document to path.
func saveStep(w *docx.Writer, path string) pipeline.Step {
	return pipeline.NewStepFunc("save", func(_ context.Context, doc *document.Document) error {
		return w.Save(path, doc)
	})
}

// confirmStep prints the confirmation line naming path.
func confirmStep(out io.Writer, path string) pipeline.Step {
	return pipeline.NewStepFunc("confirm", func(_ context.Context, _ *document.Document) error {
		_, err := fmt.Fprintf(out, "Report generated at %s\n", path)
		return err
	})
}
