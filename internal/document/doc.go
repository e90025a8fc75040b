// Package document defines the in-memory document model used to assemble
// the coverage report before it is serialized.
//
// A Document is an ordered sequence of blocks:
//   - Heading: a line of text with an outline level
//   - Paragraph: one or more styled runs
//   - Table: a rectangular grid whose first row is the header
//
// The model knows nothing about file formats. Serialization lives in the
// docx package, which walks Blocks() in order.
package document
