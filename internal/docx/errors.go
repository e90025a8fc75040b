package docx

import "errors"

// ErrNilDocument is returned when Encode or Save is called without a document.
var ErrNilDocument = errors.New("document is nil")
