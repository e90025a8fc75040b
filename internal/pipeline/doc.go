// Package pipeline runs named document-building steps in a fixed order.
//
// The report is assembled by a sequence of steps: each one appends a
// section to the document, and the final steps create the output directory
// and save the file. Running them through a Pipeline gives every step the
// same logging and error handling: the first failing step stops the run and
// its error is returned unchanged (wrapped with the step name).
package pipeline
