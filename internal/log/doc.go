// Package log builds the slog loggers used by covreport.
//
// Loggers write to stderr so that stdout carries only command output (the
// confirmation line, summaries, outlines). The default level is Warn;
// verbose mode lowers it to Debug.
//
// PathHandler wraps any slog.Handler and rewrites file path attributes to
// forward-slash form, so log lines look the same on Windows and Unix:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Info("saving report", "path", `reports\test_coverage_report.docx`)
//	// level=INFO msg="saving report" path=reports/test_coverage_report.docx
package log
