// Package report renders coverage summaries.
//
// This package contains writers for different output formats:
//   - SimpleWriter: fixed-width text table for terminal display
//   - MarkdownWriter: Markdown table with a threshold alert
//   - JSONWriter: structured JSON output for tool integration
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
