package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/covreport/internal/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for covreport.
// Running it without a subcommand generates the report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covreport",
		Short: "Generate the test coverage report as a Word document",
		Long: `covreport writes the test and coverage report of gestion-proyectos-frontend
to reports/test_coverage_report.docx, creating the reports directory if needed.

The report content is fixed. Running covreport again replaces the file.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		RunE:          runGenerateCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, _ = cmd.Root().PersistentFlags().GetBool("verbose")
	}
	return verbose
}

// setupLogger creates the stderr logger selected by the global flags and
// makes it the default.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getVerboseFlag(cmd)
	jsonLogs, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		jsonLogs, _ = cmd.Root().PersistentFlags().GetBool("log-json")
	}

	var logger *slog.Logger
	if jsonLogs {
		logger = log.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	} else {
		logger = log.NewLogger(cmd.ErrOrStderr(), verbose)
	}
	slog.SetDefault(logger)
	return logger
}
