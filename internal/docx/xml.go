package docx

import "encoding/xml"

// XML namespaces used in the generated package.
const (
	nsW       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCP      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsDCTerms = "http://purl.org/dc/terms/"
	nsXSI     = "http://www.w3.org/2001/XMLSchema-instance"
	nsVT      = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
)

// The structs below are written with literal "w:" prefixes in their tags.
// encoding/xml emits tag names verbatim, which yields the prefixed form Word
// expects while the root element declares the namespaces.

// documentXML is word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	NSW     string   `xml:"xmlns:w,attr"`
	NSR     string   `xml:"xmlns:r,attr"`
	Body    bodyXML  `xml:"w:body"`
}

// bodyXML holds paragraphs and tables in document order.
// Content holds *paragraphXML and *tableXML values; each carries its own
// XMLName so the slice marshals as a mixed sequence.
type bodyXML struct {
	Content []any
	SectPr  sectPrXML `xml:"w:sectPr"`
}

// paragraphXML is <w:p>.
type paragraphXML struct {
	XMLName    xml.Name           `xml:"w:p"`
	Properties *paragraphPropsXML `xml:"w:pPr"`
	Runs       []runXML           `xml:"w:r"`
}

// paragraphPropsXML is <w:pPr>.
type paragraphPropsXML struct {
	Style *valXML `xml:"w:pStyle"`
}

// runXML is <w:r>. A run carries at most one text node followed by an
// optional break.
type runXML struct {
	Properties *runPropsXML `xml:"w:rPr"`
	Text       *textXML     `xml:"w:t"`
	Break      *emptyXML    `xml:"w:br"`
}

// runPropsXML is <w:rPr>.
type runPropsXML struct {
	Bold   *emptyXML `xml:"w:b"`
	Size   *valXML   `xml:"w:sz"`
	SizeCS *valXML   `xml:"w:szCs"`
}

// textXML is <w:t>.
type textXML struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// valXML is any element whose only content is a w:val attribute.
type valXML struct {
	Val string `xml:"w:val,attr"`
}

// emptyXML is an element with no attributes or content (<w:b/>, <w:br/>).
type emptyXML struct{}

// tableXML is <w:tbl>.
type tableXML struct {
	XMLName    xml.Name      `xml:"w:tbl"`
	Properties tablePropsXML `xml:"w:tblPr"`
	Grid       tableGridXML  `xml:"w:tblGrid"`
	Rows       []tableRowXML `xml:"w:tr"`
}

// tablePropsXML is <w:tblPr>.
type tablePropsXML struct {
	Style valXML   `xml:"w:tblStyle"`
	Width widthXML `xml:"w:tblW"`
}

// widthXML is a width in twips (<w:tblW>, <w:tcW>, <w:gridCol>).
type widthXML struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr,omitempty"`
}

// tableGridXML is <w:tblGrid>.
type tableGridXML struct {
	Cols []widthXML `xml:"w:gridCol"`
}

// tableRowXML is <w:tr>.
type tableRowXML struct {
	Properties *rowPropsXML   `xml:"w:trPr"`
	Cells      []tableCellXML `xml:"w:tc"`
}

// rowPropsXML is <w:trPr>.
type rowPropsXML struct {
	Header *emptyXML `xml:"w:tblHeader"`
}

// tableCellXML is <w:tc>. Word requires at least one paragraph per cell.
type tableCellXML struct {
	Properties cellPropsXML   `xml:"w:tcPr"`
	Paragraphs []paragraphXML `xml:"w:p"`
}

// cellPropsXML is <w:tcPr>.
type cellPropsXML struct {
	Width widthXML `xml:"w:tcW"`
}

// sectPrXML is the final section's page setup (US Letter, 1 inch margins).
type sectPrXML struct {
	PageSize   pageSizeXML   `xml:"w:pgSz"`
	PageMargin pageMarginXML `xml:"w:pgMar"`
}

type pageSizeXML struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type pageMarginXML struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

// corePropertiesXML is docProps/core.xml.
type corePropertiesXML struct {
	XMLName        xml.Name  `xml:"cp:coreProperties"`
	NSCP           string    `xml:"xmlns:cp,attr"`
	NSDC           string    `xml:"xmlns:dc,attr"`
	NSDCTerms      string    `xml:"xmlns:dcterms,attr"`
	NSXSI          string    `xml:"xmlns:xsi,attr"`
	Title          string    `xml:"dc:title,omitempty"`
	Subject        string    `xml:"dc:subject,omitempty"`
	Creator        string    `xml:"dc:creator,omitempty"`
	LastModifiedBy string    `xml:"cp:lastModifiedBy,omitempty"`
	Revision       string    `xml:"cp:revision"`
	Created        w3cdtfXML `xml:"dcterms:created"`
	Modified       w3cdtfXML `xml:"dcterms:modified"`
}

// w3cdtfXML is a timestamp typed as dcterms:W3CDTF.
type w3cdtfXML struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appPropertiesXML is docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Properties"`
	NSVT        string   `xml:"xmlns:vt,attr"`
	Application string   `xml:"Application"`
	DocSecurity int      `xml:"DocSecurity"`
	Paragraphs  int      `xml:"Paragraphs"`
}
