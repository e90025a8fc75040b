package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/nao1215/covreport/internal/config"
	"github.com/nao1215/covreport/internal/generator"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the coverage report",
		Long: `Generate writes reports/test_coverage_report.docx relative to the
current directory and prints its path. It is the default action of covreport.`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}
}

// runGenerateCmd is the RunE of the root and generate commands.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(cmd)
	return generateReport(cmd.Context(), config.DefaultReportPath, cmd.OutOrStdout(), logger)
}

// generateReport writes the report to path and prints the confirmation to
// stdout.
func generateReport(ctx context.Context, path string, stdout io.Writer, logger *slog.Logger) error {
	g := generator.New(
		generator.WithOutputPath(path),
		generator.WithStdout(stdout),
		generator.WithLogger(logger),
	)
	return g.Generate(ctx)
}
