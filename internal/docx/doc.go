// Package docx serializes a document.Document into an Office Open XML
// (WordprocessingML) package.
//
// The package written by Writer contains only the parts Word needs to open
// the file:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml
//	docProps/app.xml
//	word/document.xml
//	word/styles.xml
//	word/_rels/document.xml.rels
//
// Headings map to the built-in Title and Heading1..Heading9 paragraph
// styles, so readers that resolve heading levels from style IDs see the
// same outline as the in-memory model. Line breaks inside a run become
// <w:br/> elements.
//
// The only time-dependent content is the created/modified timestamp in the
// core properties, taken from the Writer's clock.
package docx
