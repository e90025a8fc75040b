// Package main provides the entry point for the covreport CLI.
//
// covreport writes the test coverage report of the gestion-proyectos-frontend
// project to reports/test_coverage_report.docx.
//
// Usage:
//
//	covreport
//	covreport inspect [report.docx]
//	covreport summary [coverage-final.json]
//
// See --help for all available options.
package main

func main() {
	Execute()
}
