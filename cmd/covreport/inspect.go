package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/covreport/internal/config"
	"github.com/spf13/cobra"
	tabuladocx "github.com/tsawler/tabula/docx"
	"github.com/tsawler/tabula/model"
	"gopkg.in/yaml.v3"
)

// outline is the reopened structure of a DOCX document.
type outline struct {
	Path        string         `yaml:"path"`
	Title       string         `yaml:"title,omitempty"`
	Application string         `yaml:"application,omitempty"`
	Headings    int            `yaml:"headings"`
	Paragraphs  int            `yaml:"paragraphs"`
	Blocks      []outlineBlock `yaml:"blocks"`
}

// outlineBlock is one heading or non-empty paragraph.
type outlineBlock struct {
	Kind  string `yaml:"kind"`
	Level int    `yaml:"level,omitempty"`
	Text  string `yaml:"text"`
}

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Print the outline of a generated report",
		Long: `Inspect reopens a DOCX file and prints its headings and paragraphs in
document order. Without a path it reads reports/test_coverage_report.docx.

Table contents are not listed.`,
		Example: `  covreport inspect
  covreport inspect --yaml reports/test_coverage_report.docx`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspectCmd,
	}

	cmd.Flags().Bool("yaml", false, "Print the outline as YAML")

	return cmd
}

func runInspectCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(cmd)

	path := config.DefaultReportPath
	if len(args) > 0 {
		path = args[0]
	}

	asYAML, err := cmd.Flags().GetBool("yaml")
	if err != nil {
		return err
	}

	logger.Debug("inspecting document", "path", path)
	o, err := readOutline(path)
	if err != nil {
		return err
	}

	if asYAML {
		return writeOutlineYAML(cmd.OutOrStdout(), o)
	}
	return writeOutlineText(cmd.OutOrStdout(), o)
}

// readOutline opens path and collects its headings and paragraphs.
func readOutline(path string) (*outline, error) {
	r, err := tabuladocx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	meta := r.Metadata()
	o := &outline{
		Path:        path,
		Title:       meta.Title,
		Application: meta.Creator,
		Blocks:      make([]outlineBlock, 0),
	}
	for _, page := range doc.Pages {
		for _, el := range page.Elements {
			switch e := el.(type) {
			case *model.Heading:
				o.Headings++
				o.Blocks = append(o.Blocks, outlineBlock{Kind: "heading", Level: e.Level, Text: e.Text})
			case *model.Paragraph:
				o.Paragraphs++
				o.Blocks = append(o.Blocks, outlineBlock{Kind: "paragraph", Text: e.Text})
			}
		}
	}
	return o, nil
}

func writeOutlineYAML(w io.Writer, o *outline) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("failed to encode outline: %w", err)
	}
	return enc.Close()
}

// writeOutlineText prints headings as Markdown-style markers and indents
// paragraph lines under them.
func writeOutlineText(w io.Writer, o *outline) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Document: %s\n", o.Path))
	if o.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", o.Title))
	}
	sb.WriteString(fmt.Sprintf("Blocks:   %d headings, %d paragraphs\n\n", o.Headings, o.Paragraphs))

	for _, b := range o.Blocks {
		if b.Kind == "heading" {
			sb.WriteString(strings.Repeat("#", max(b.Level, 1)))
			sb.WriteString(" ")
			sb.WriteString(b.Text)
			sb.WriteString("\n")
			continue
		}
		for _, line := range strings.Split(b.Text, "\n") {
			sb.WriteString("    ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
