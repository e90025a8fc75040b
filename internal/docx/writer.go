package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/covreport/internal/document"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultApplication is written to docProps/app.xml.
	DefaultApplication = "covreport"

	// DefaultBodySize is the default run size in points (Word's Normal style).
	DefaultBodySize = 11

	// columnWidth is the width of each table column in twips.
	columnWidth = 4261

	// filePerm is the mode of saved documents.
	filePerm = 0o644

	w3cdtfLayout = "2006-01-02T15:04:05Z"
)

// Writer serializes documents to DOCX packages.
type Writer struct {
	// now returns the timestamp written to the core properties.
	now func() time.Time

	// application is the producer name in docProps/app.xml.
	application string
}

// Option configures a Writer.
type Option func(*Writer)

// WithClock sets the clock used for the created/modified core properties
// and the zip entry timestamps. Tests use a fixed clock to get
// byte-identical output.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		w.now = now
	}
}

// WithApplication sets the producer name written to docProps/app.xml.
func WithApplication(name string) Option {
	return func(w *Writer) {
		w.application = name
	}
}

// NewWriter creates a Writer with the given options.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		now:         time.Now,
		application: DefaultApplication,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Encode writes doc as a DOCX package to out.
// The document is validated first; invariant violations are returned
// before anything is written.
func (w *Writer) Encode(out io.Writer, doc *document.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	body, err := marshalPart(buildDocument(doc))
	if err != nil {
		return fmt.Errorf("encoding %s: %w", partDocument, err)
	}

	stamp := w.now().UTC().Truncate(time.Second)
	core, err := marshalPart(w.coreProperties(doc, stamp))
	if err != nil {
		return fmt.Errorf("encoding %s: %w", partCore, err)
	}
	app, err := marshalPart(w.appProperties(doc))
	if err != nil {
		return fmt.Errorf("encoding %s: %w", partApp, err)
	}

	parts := []struct {
		name string
		data []byte
	}{
		{partContentTypes, []byte(contentTypesXML)},
		{partRootRels, []byte(rootRelsXML)},
		{partCore, core},
		{partApp, app},
		{partDocument, body},
		{partStyles, []byte(stylesXML(DefaultBodySize * 2))},
		{partDocumentRels, []byte(documentRelsXML)},
	}

	zw := zip.NewWriter(out)
	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: stamp,
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing package: %w", err)
	}
	return nil
}

// Save writes doc to path. The parent directory must already exist.
//
// The package is written to a temporary file next to path and renamed over
// it, so an existing file at path is either fully replaced or left as it was.
func (w *Writer) Save(path string, doc *document.Document) error {
	if doc == nil {
		return ErrNilDocument
	}

	var buf bytes.Buffer
	if err := w.Encode(&buf, doc); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace output file: %w", err)
	}
	return nil
}

// coreProperties builds docProps/core.xml.
func (w *Writer) coreProperties(doc *document.Document, stamp time.Time) corePropertiesXML {
	ts := w3cdtfXML{Type: "dcterms:W3CDTF", Value: stamp.Format(w3cdtfLayout)}
	return corePropertiesXML{
		NSCP:           nsCP,
		NSDC:           nsDC,
		NSDCTerms:      nsDCTerms,
		NSXSI:          nsXSI,
		Title:          normalize(doc.Metadata.Title),
		Subject:        normalize(doc.Metadata.Subject),
		Creator:        normalize(doc.Metadata.Creator),
		LastModifiedBy: normalize(doc.Metadata.Creator),
		Revision:       "1",
		Created:        ts,
		Modified:       ts,
	}
}

// appProperties builds docProps/app.xml.
func (w *Writer) appProperties(doc *document.Document) appPropertiesXML {
	return appPropertiesXML{
		NSVT:        nsVT,
		Application: w.application,
		Paragraphs:  len(doc.Paragraphs()),
	}
}

// buildDocument converts the model into the word/document.xml tree.
func buildDocument(doc *document.Document) documentXML {
	blocks := doc.Blocks()
	content := make([]any, 0, len(blocks))
	for _, b := range blocks {
		switch v := b.(type) {
		case *document.Heading:
			content = append(content, headingParagraph(v))
		case *document.Paragraph:
			content = append(content, bodyParagraph(v))
		case *document.Table:
			content = append(content, buildTable(v))
		}
	}

	return documentXML{
		NSW: nsW,
		NSR: nsR,
		Body: bodyXML{
			Content: content,
			SectPr: sectPrXML{
				PageSize: pageSizeXML{W: "12240", H: "15840"},
				PageMargin: pageMarginXML{
					Top: "1440", Right: "1440", Bottom: "1440", Left: "1440",
					Header: "720", Footer: "720", Gutter: "0",
				},
			},
		},
	}
}

// headingParagraph renders a heading as a styled paragraph with one run.
func headingParagraph(h *document.Heading) *paragraphXML {
	return &paragraphXML{
		Properties: &paragraphPropsXML{Style: &valXML{Val: styleForLevel(h.Level)}},
		Runs:       textRuns(h.Text, nil),
	}
}

// bodyParagraph renders a paragraph using the default style.
func bodyParagraph(p *document.Paragraph) *paragraphXML {
	out := &paragraphXML{}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, textRuns(r.Text, runProperties(r))...)
	}
	return out
}

// runProperties returns the <w:rPr> for a run, or nil when it has no
// explicit formatting.
func runProperties(r *document.Run) *runPropsXML {
	if !r.Bold && r.Size <= 0 {
		return nil
	}
	props := &runPropsXML{}
	if r.Bold {
		props.Bold = &emptyXML{}
	}
	if r.Size > 0 {
		halfPoints := strconv.Itoa(int(r.Size*2 + 0.5))
		props.Size = &valXML{Val: halfPoints}
		props.SizeCS = &valXML{Val: halfPoints}
	}
	return props
}

// textRuns splits text on '\n' into consecutive runs sharing props.
// Every run except the last ends with a <w:br/>, keeping text and breaks in
// order even for readers that collect all <w:t> of a run before its breaks.
func textRuns(text string, props *runPropsXML) []runXML {
	lines := strings.Split(normalize(text), "\n")
	runs := make([]runXML, 0, len(lines))
	for i, line := range lines {
		run := runXML{Properties: props}
		if line != "" || len(lines) == 1 {
			run.Text = &textXML{Space: "preserve", Value: line}
		}
		if i < len(lines)-1 {
			run.Break = &emptyXML{}
		} else if run.Text == nil {
			// Trailing newline: the previous run already carries the break.
			continue
		}
		runs = append(runs, run)
	}
	return runs
}

// buildTable renders a table. The first row is repeated as a header row.
func buildTable(t *document.Table) *tableXML {
	cols := t.ColumnCount()
	width := strconv.Itoa(columnWidth)

	tbl := &tableXML{
		Properties: tablePropsXML{
			Style: valXML{Val: "TableGrid"},
			Width: widthXML{W: strconv.Itoa(columnWidth * cols), Type: "dxa"},
		},
	}
	for i := 0; i < cols; i++ {
		tbl.Grid.Cols = append(tbl.Grid.Cols, widthXML{W: width})
	}

	for i, row := range t.Rows() {
		tr := tableRowXML{}
		if i == 0 {
			tr.Properties = &rowPropsXML{Header: &emptyXML{}}
		}
		for _, cell := range row {
			p := paragraphXML{}
			if cell != "" {
				p.Runs = textRuns(cell, nil)
			}
			tr.Cells = append(tr.Cells, tableCellXML{
				Properties: cellPropsXML{Width: widthXML{W: width, Type: "dxa"}},
				Paragraphs: []paragraphXML{p},
			})
		}
		tbl.Rows = append(tbl.Rows, tr)
	}
	return tbl
}

// marshalPart encodes v with the standard XML declaration.
func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(data))
	out = append(out, xml.Header...)
	return append(out, data...), nil
}

// normalize returns s in Unicode NFC so accented text is stored as
// precomposed characters regardless of how the source was typed.
func normalize(s string) string {
	return norm.NFC.String(s)
}
