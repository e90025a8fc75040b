package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/covreport/internal/document"
	tabuladocx "github.com/tsawler/tabula/docx"
	"github.com/tsawler/tabula/model"
)

// fixedClock returns a clock that always reports the same instant.
func fixedClock() func() time.Time {
	ts := time.Date(2025, time.October, 6, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

// createTestDocument builds a small document exercising every block type.
func createTestDocument(t *testing.T) *document.Document {
	t.Helper()

	doc := document.New()
	doc.Metadata.Title = "Informe"
	doc.Metadata.Creator = "covreport"

	if _, err := doc.AddHeading("Informe de Pruebas", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc.AddParagraph().AddRun("Fecha: 2025-10-06").SetSize(11)
	if _, err := doc.AddHeading("Resumen", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := doc.AddParagraph()
	p.AddRun("Estado: ").SetSize(11)
	p.AddRun("Done").SetBold(true).SetSize(11)

	tbl, err := doc.AddTable(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range [][]string{{"Métrica", "Valor"}, {"Lines", "80.5%"}} {
		if err := tbl.AddRow(row...); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if _, err := doc.AddHeading("Detalle", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc.AddParagraph().AddRun("cd 'd:\\Proyectos'\nnpm run test:cov").SetSize(11)
	return doc
}

// readPart returns the content of a named part from an encoded package.
func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open package: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		return string(content)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

// TestWriter_Encode tests the package layout and XML content.
func TestWriter_Encode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(WithClock(fixedClock()))
	if err := w.Encode(&buf, createTestDocument(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := buf.Bytes()

	t.Run("contains required parts", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{
			partContentTypes, partRootRels, partCore, partApp,
			partDocument, partStyles, partDocumentRels,
		} {
			if readPart(t, data, name) == "" {
				t.Errorf("expected non-empty part %s", name)
			}
		}
	})

	t.Run("maps headings to styles", func(t *testing.T) {
		t.Parallel()

		body := readPart(t, data, partDocument)
		for _, style := range []string{"Heading1", "Heading2", "Heading3"} {
			if !strings.Contains(body, `<w:pStyle w:val="`+style+`">`) {
				t.Errorf("expected style %s in document.xml", style)
			}
		}
	})

	t.Run("writes bold only where set", func(t *testing.T) {
		t.Parallel()

		body := readPart(t, data, partDocument)
		if n := strings.Count(body, "<w:b></w:b>"); n != 1 {
			t.Errorf("expected exactly one bold run, got %d", n)
		}
		if !strings.Contains(body, `<w:sz w:val="22">`) {
			t.Error("expected 11pt runs to be written as 22 half-points")
		}
	})

	t.Run("writes line breaks", func(t *testing.T) {
		t.Parallel()

		body := readPart(t, data, partDocument)
		if !strings.Contains(body, "<w:br></w:br>") {
			t.Error("expected a line break element")
		}
		if !strings.Contains(body, "npm run test:cov") {
			t.Error("expected the second line to be present")
		}
	})

	t.Run("writes table rows and header", func(t *testing.T) {
		t.Parallel()

		body := readPart(t, data, partDocument)
		if n := strings.Count(body, "<w:tr>"); n != 2 {
			t.Errorf("expected 2 table rows, got %d", n)
		}
		if n := strings.Count(body, "<w:tc>"); n != 4 {
			t.Errorf("expected 4 table cells, got %d", n)
		}
		if n := strings.Count(body, "<w:tblHeader></w:tblHeader>"); n != 1 {
			t.Errorf("expected 1 header row marker, got %d", n)
		}
		if !strings.Contains(body, `<w:tblStyle w:val="TableGrid">`) {
			t.Error("expected TableGrid style")
		}
	})

	t.Run("writes core properties from clock", func(t *testing.T) {
		t.Parallel()

		core := readPart(t, data, partCore)
		if !strings.Contains(core, "2025-10-06T12:00:00Z") {
			t.Errorf("expected fixed timestamp in core properties: %s", core)
		}
		if !strings.Contains(core, "<dc:title>Informe</dc:title>") {
			t.Errorf("expected title in core properties: %s", core)
		}
	})

	t.Run("writes application name", func(t *testing.T) {
		t.Parallel()

		app := readPart(t, data, partApp)
		if !strings.Contains(app, "<Application>covreport</Application>") {
			t.Errorf("expected application name: %s", app)
		}
	})
}

// TestWriter_Deterministic tests that identical input and clock give
// identical bytes.
func TestWriter_Deterministic(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	w := NewWriter(WithClock(fixedClock()))
	if err := w.Encode(&first, createTestDocument(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Encode(&second, createTestDocument(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("expected byte-identical packages")
	}
}

// TestWriter_Encode_Invalid tests that invalid documents are rejected.
func TestWriter_Encode_Invalid(t *testing.T) {
	t.Parallel()

	t.Run("nil document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := NewWriter().Encode(&buf, nil); !errors.Is(err, ErrNilDocument) {
			t.Errorf("expected ErrNilDocument, got %v", err)
		}
	})

	t.Run("empty paragraph", func(t *testing.T) {
		t.Parallel()

		doc := document.New()
		doc.AddParagraph()

		var buf bytes.Buffer
		err := NewWriter().Encode(&buf, doc)
		if !errors.Is(err, document.ErrEmptyParagraph) {
			t.Errorf("expected ErrEmptyParagraph, got %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected nothing to be written, got %d bytes", buf.Len())
		}
	})
}

// TestWriter_Save_ReadBack tests that a saved package opens as DOCX and
// keeps the outline.
func TestWriter_Save_ReadBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.docx")
	if err := NewWriter().Save(path, createTestDocument(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, err := tabuladocx.Open(path)
	if err != nil {
		t.Fatalf("failed to open saved document: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })

	t.Run("text keeps line breaks", func(t *testing.T) {
		t.Parallel()

		text, err := r.Text()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(text, "cd 'd:\\Proyectos'\nnpm run test:cov") {
			t.Errorf("expected command block with line break, got %q", text)
		}
		if !strings.Contains(text, "Estado: Done") {
			t.Errorf("expected run text to be joined, got %q", text)
		}
	})

	t.Run("heading levels", func(t *testing.T) {
		t.Parallel()

		doc, err := r.Document()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var levels []int
		for _, page := range doc.Pages {
			for _, el := range page.Elements {
				if h, ok := el.(*model.Heading); ok {
					levels = append(levels, h.Level)
				}
			}
		}
		want := []int{1, 2, 3}
		if len(levels) != len(want) {
			t.Fatalf("expected levels %v, got %v", want, levels)
		}
		for i := range want {
			if levels[i] != want[i] {
				t.Errorf("heading %d: expected level %d, got %d", i, want[i], levels[i])
			}
		}
	})

	t.Run("metadata", func(t *testing.T) {
		t.Parallel()

		meta := r.Metadata()
		if meta.Title != "Informe" {
			t.Errorf("expected title %q, got %q", "Informe", meta.Title)
		}
		if meta.Creator != DefaultApplication {
			t.Errorf("expected application %q, got %q", DefaultApplication, meta.Creator)
		}
	})
}

// TestWriter_Save_Overwrite tests that saving twice leaves one file with
// the second content.
func TestWriter_Save_Overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.docx")
	w := NewWriter(WithClock(fixedClock()))

	if err := w.Save(path, createTestDocument(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := document.New()
	second.AddParagraph().AddRun("segunda")
	if err := w.Save(path, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one file, got %d", len(entries))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := readPart(t, data, partDocument)
	if !strings.Contains(body, "segunda") {
		t.Error("expected second document content")
	}
	if strings.Contains(body, "Informe de Pruebas") {
		t.Error("expected first document content to be replaced")
	}
}

// TestWriter_Save_ReadOnlyDir tests that a permission failure leaves the
// previous file untouched.
func TestWriter_Save_ReadOnlyDir(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "report.docx")
	if err := os.WriteFile(path, []byte("previous"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	err := NewWriter().Save(path, createTestDocument(t))
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "previous" {
		t.Errorf("expected previous content to be kept, got %q", data)
	}
}

// TestStyleForLevel tests heading style mapping.
func TestStyleForLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level int
		want  string
	}{
		{0, "Title"},
		{1, "Heading1"},
		{3, "Heading3"},
		{9, "Heading9"},
		{10, "Heading9"},
		{42, "Heading9"},
	}
	for _, tt := range tests {
		if got := styleForLevel(tt.level); got != tt.want {
			t.Errorf("styleForLevel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

// TestTextRuns tests line splitting into runs.
func TestTextRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		wantRuns   int
		wantBreaks int
	}{
		{name: "single line", text: "hola", wantRuns: 1, wantBreaks: 0},
		{name: "empty text", text: "", wantRuns: 1, wantBreaks: 0},
		{name: "two lines", text: "a\nb", wantRuns: 2, wantBreaks: 1},
		{name: "blank middle line", text: "a\n\nb", wantRuns: 3, wantBreaks: 2},
		{name: "trailing newline", text: "a\n", wantRuns: 1, wantBreaks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runs := textRuns(tt.text, nil)
			if len(runs) != tt.wantRuns {
				t.Errorf("expected %d runs, got %d", tt.wantRuns, len(runs))
			}
			breaks := 0
			for _, r := range runs {
				if r.Break != nil {
					breaks++
				}
			}
			if breaks != tt.wantBreaks {
				t.Errorf("expected %d breaks, got %d", tt.wantBreaks, breaks)
			}
		})
	}
}

// TestNormalize tests NFC normalization of decomposed input.
func TestNormalize(t *testing.T) {
	t.Parallel()

	decomposed := "Me\u0301trica"
	if got := normalize(decomposed); got != "Métrica" {
		t.Errorf("expected precomposed form, got %q", got)
	}
}
