package document

import (
	"fmt"
	"strings"
)

// BlockType identifies the kind of a block element.
type BlockType int

const (
	// BlockHeading is a Heading block.
	BlockHeading BlockType = iota
	// BlockParagraph is a Paragraph block.
	BlockParagraph
	// BlockTable is a Table block.
	BlockTable
)

// String returns the lower-case name of the block type.
func (t BlockType) String() string {
	switch t {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockTable:
		return "table"
	default:
		return "unknown"
	}
}

// Block is an element of the document body.
type Block interface {
	// BlockType returns the kind of block.
	BlockType() BlockType
}

// Metadata holds the core properties stored alongside the body.
type Metadata struct {
	Title   string
	Subject string
	Creator string
}

// Document is an ordered sequence of blocks.
// The zero value is not usable; create documents with New.
type Document struct {
	// Metadata is written to the package core properties.
	Metadata Metadata

	blocks []Block
}

// New creates an empty document.
func New() *Document {
	return &Document{
		blocks: make([]Block, 0),
	}
}

// AddHeading appends a heading with the given outline level.
// Level 0 is the document title, 1 a top-level section, and higher values
// nest deeper. Negative levels return ErrInvalidHeadingLevel.
func (d *Document) AddHeading(text string, level int) (*Heading, error) {
	if level < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeadingLevel, level)
	}
	h := &Heading{Text: text, Level: level}
	d.blocks = append(d.blocks, h)
	return h, nil
}

// AddParagraph appends an empty paragraph and returns it.
// Callers add content with Paragraph.AddRun.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{Runs: make([]*Run, 0, 1)}
	d.blocks = append(d.blocks, p)
	return p
}

// AddTable appends an empty table with a fixed column count.
// The first row added becomes the header row.
func (d *Document) AddTable(cols int) (*Table, error) {
	if cols < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColumnCount, cols)
	}
	t := &Table{cols: cols}
	d.blocks = append(d.blocks, t)
	return t, nil
}

// Blocks returns the body blocks in document order.
func (d *Document) Blocks() []Block {
	out := make([]Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Len returns the number of blocks in the document.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Headings returns all headings in document order.
func (d *Document) Headings() []*Heading {
	var out []*Heading
	for _, b := range d.blocks {
		if h, ok := b.(*Heading); ok {
			out = append(out, h)
		}
	}
	return out
}

// Paragraphs returns all paragraphs in document order.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, b := range d.blocks {
		if p, ok := b.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns all tables in document order.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, b := range d.blocks {
		if t, ok := b.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks the structural invariants of every block.
// It returns the first violation found, annotated with the block index.
func (d *Document) Validate() error {
	for i, b := range d.blocks {
		switch v := b.(type) {
		case *Heading:
			if v.Level < 0 {
				return fmt.Errorf("block %d: %w: %d", i, ErrInvalidHeadingLevel, v.Level)
			}
		case *Paragraph:
			if len(v.Runs) == 0 {
				return fmt.Errorf("block %d: %w", i, ErrEmptyParagraph)
			}
		}
	}
	return nil
}

// Heading is a titled line at an outline level.
type Heading struct {
	Text  string
	Level int
}

// BlockType implements Block.
func (*Heading) BlockType() BlockType { return BlockHeading }

// Paragraph is an ordered sequence of styled runs.
type Paragraph struct {
	Runs []*Run
}

// BlockType implements Block.
func (*Paragraph) BlockType() BlockType { return BlockParagraph }

// AddRun appends a run with default styling and returns it.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text}
	p.Runs = append(p.Runs, r)
	return r
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Run is a contiguous span of text sharing one style.
type Run struct {
	// Text may contain '\n'; each one is kept as a line break.
	Text string

	// Bold renders the run in bold.
	Bold bool

	// Size is the font size in points. Zero inherits the paragraph style.
	Size float64
}

// SetBold sets the bold flag and returns the run for chaining.
func (r *Run) SetBold(bold bool) *Run {
	r.Bold = bold
	return r
}

// SetSize sets the font size in points and returns the run for chaining.
func (r *Run) SetSize(points float64) *Run {
	r.Size = points
	return r
}

// Table is a grid of text cells with a fixed column count.
type Table struct {
	cols int
	rows [][]string
}

// BlockType implements Block.
func (*Table) BlockType() BlockType { return BlockTable }

// AddRow appends a row. The number of cells must equal the column count,
// otherwise ErrRowWidth is returned and the table is left unchanged.
func (t *Table) AddRow(cells ...string) error {
	if len(cells) != t.cols {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowWidth, len(cells), t.cols)
	}
	row := make([]string, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// ColumnCount returns the fixed number of columns.
func (t *Table) ColumnCount() int {
	return t.cols
}

// RowCount returns the number of rows including the header row.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Header returns the first row, or nil if the table has no rows.
func (t *Table) Header() []string {
	if len(t.rows) == 0 {
		return nil
	}
	return t.Row(0)
}

// Row returns a copy of row i. It panics if i is out of range.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.rows[i]))
	copy(row, t.rows[i])
	return row
}

// Rows returns a copy of all rows including the header row.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}
	return out
}
