package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default configuration values.
const (
	// AppName is the application name used in document metadata.
	AppName = "covreport"

	// DefaultReportPath is where the coverage report is written, relative
	// to the working directory.
	DefaultReportPath = "reports/test_coverage_report.docx"

	// DefaultCoverageFile is the Istanbul output read by the summary command.
	DefaultCoverageFile = "coverage/coverage-final.json"

	// DefaultHTMLReport is the Istanbul HTML report mentioned in summaries.
	DefaultHTMLReport = "coverage/lcov-report/index.html"

	// DefaultThreshold disables the summary threshold check.
	DefaultThreshold = 0.0
)

// Format is an output format of the summary command.
type Format string

const (
	// FormatText is the padded plain-text table.
	FormatText Format = "text"
	// FormatMarkdown is a GitHub-flavored Markdown table.
	FormatMarkdown Format = "markdown"
	// FormatJSON is machine-readable JSON.
	FormatJSON Format = "json"
)

// ParseFormat converts s to a Format. Matching is case-insensitive and
// "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Config holds the options of a covreport invocation.
// Commands populate it from flags; generation uses only ReportPath, which
// stays at DefaultReportPath outside tests.
type Config struct {
	// Verbose lowers the log level to Debug.
	Verbose bool

	// ReportPath is the output path of the generated document.
	ReportPath string

	// CoverageFile is the coverage-final.json read by the summary command.
	CoverageFile string

	// CoverageRoot is the directory file paths in the summary are made
	// relative to. Empty means the parent of the coverage directory.
	CoverageRoot string

	// Format selects the summary output format.
	Format Format

	// Threshold is the minimum total percentage for statements, branches
	// and functions. Zero disables the check.
	Threshold float64
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		ReportPath:   DefaultReportPath,
		CoverageFile: DefaultCoverageFile,
		Format:       FormatText,
		Threshold:    DefaultThreshold,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.ReportPath == "" {
		return ErrNoReportPath
	}
	if c.CoverageFile == "" {
		return ErrNoCoverageFile
	}
	switch c.Format {
	case FormatText, FormatMarkdown, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, c.Threshold)
	}
	return nil
}

// ResolvedCoverageRoot returns CoverageRoot, or the project directory that
// contains the coverage directory when CoverageRoot is empty.
// For "coverage/coverage-final.json" this is ".".
func (c *Config) ResolvedCoverageRoot() string {
	if c.CoverageRoot != "" {
		return c.CoverageRoot
	}
	return filepath.Dir(filepath.Dir(c.CoverageFile))
}
