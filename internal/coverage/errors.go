package coverage

import "errors"

var (
	// ErrCoverageNotFound is returned when the coverage file does not exist.
	ErrCoverageNotFound = errors.New("coverage-final.json no encontrado en coverage/")

	// ErrMalformedCoverage is returned when the coverage file is not a JSON
	// object of per-file counters.
	ErrMalformedCoverage = errors.New("malformed coverage data")

	// ErrBelowThreshold is returned by CheckThreshold when a total metric
	// is below the required percentage.
	ErrBelowThreshold = errors.New("coverage below threshold")
)
