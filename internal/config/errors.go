package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and identify which
// flag-provided value is wrong.
var (
	// ErrInvalidFormat is returned when the summary format is not one of
	// text, markdown or json.
	ErrInvalidFormat = errors.New("invalid format: must be text, markdown or json")

	// ErrInvalidThreshold is returned when the coverage threshold is outside
	// 0..100. Zero disables the threshold check.
	ErrInvalidThreshold = errors.New("invalid threshold: must be between 0 and 100")

	// ErrNoCoverageFile is returned when the coverage file path is empty.
	ErrNoCoverageFile = errors.New("no coverage file specified")

	// ErrNoReportPath is returned when the report path is empty.
	ErrNoReportPath = errors.New("no report path specified")
)
