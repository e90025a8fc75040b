package document

import "errors"

// Document construction errors.
// These are returned by the model when a block would break one of its
// structural invariants, and by serializers that validate a finished document.
var (
	// ErrInvalidHeadingLevel is returned when a heading level is negative.
	// Level 0 is the document title; there is no upper bound.
	ErrInvalidHeadingLevel = errors.New("invalid heading level: must be non-negative")

	// ErrEmptyParagraph is returned when a paragraph without runs is validated.
	ErrEmptyParagraph = errors.New("paragraph has no runs")

	// ErrInvalidColumnCount is returned when a table is created with fewer
	// than one column.
	ErrInvalidColumnCount = errors.New("invalid column count: must be at least 1")

	// ErrRowWidth is returned when a row does not have exactly as many cells
	// as the table has columns.
	ErrRowWidth = errors.New("row width does not match table column count")
)
