package main

import (
	"io"

	"github.com/nao1215/covreport/internal/config"
	"github.com/nao1215/covreport/internal/coverage"
	"github.com/nao1215/covreport/internal/report"
	"github.com/spf13/cobra"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [coverage-final.json]",
		Short: "Print per-file coverage from an Istanbul coverage file",
		Long: `Summary reads an Istanbul coverage-final.json and prints statement, branch
and function coverage per file and in total. Without a path it reads
coverage/coverage-final.json.

With --threshold, the command fails when any total percentage is below the
given value.`,
		Example: `  covreport summary
  covreport summary backend/coverage/coverage-final.json --format markdown
  covreport summary --threshold 70`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSummaryCmd,
	}

	cmd.Flags().StringP("format", "f", string(config.FormatText), "Output format: text, markdown or json")
	cmd.Flags().Float64("threshold", config.DefaultThreshold, "Minimum total coverage percentage (0 disables)")
	cmd.Flags().String("root", "", "Directory file paths are made relative to (default: parent of the coverage directory)")

	return cmd
}

func runSummaryCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(cmd)

	cfg, err := buildSummaryConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	root := cfg.ResolvedCoverageRoot()
	logger.Debug("loading coverage", "file", cfg.CoverageFile, "dir", root)

	summary, err := coverage.Load(cfg.CoverageFile, root)
	if err != nil {
		return err
	}
	logger.Info("coverage loaded", "files", len(summary.Files))

	if _, err := newSummaryWriter(cmd.OutOrStdout(), cfg).Write(summary); err != nil {
		return err
	}
	return summary.CheckThreshold(cfg.Threshold)
}

// buildSummaryConfig creates the configuration from flags and arguments.
func buildSummaryConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if len(args) > 0 {
		cfg.CoverageFile = args[0]
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	if cfg.Format, err = config.ParseFormat(format); err != nil {
		return nil, err
	}

	if cfg.Threshold, err = cmd.Flags().GetFloat64("threshold"); err != nil {
		return nil, err
	}
	if cfg.CoverageRoot, err = cmd.Flags().GetString("root"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newSummaryWriter returns the writer for the configured format.
func newSummaryWriter(out io.Writer, cfg *config.Config) report.Writer {
	switch cfg.Format {
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(out, report.WithThreshold(cfg.Threshold))
	case config.FormatJSON:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	default:
		return report.NewSimpleWriter(out)
	}
}
