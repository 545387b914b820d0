package model

// Document is the root of the translation intermediate representation.
type Document struct {
	Pages []*Page
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddPage appends a page to the document.
func (d *Document) AddPage(p *Page) {
	d.Pages = append(d.Pages, p)
}

// Page holds the translated paragraphs of a single PDF page.
type Page struct {
	// Number is the 1-indexed page number.
	Number     int
	Paragraphs []*Paragraph
}

// NewPage creates an empty page with the given 1-indexed number.
func NewPage(number int) *Page {
	return &Page{Number: number}
}

// AddParagraph appends a paragraph to the page.
func (p *Page) AddParagraph(para *Paragraph) {
	p.Paragraphs = append(p.Paragraphs, para)
}

// Style carries the font selection shared by a run of characters.
type Style struct {
	FontID   string
	FontSize float64
}

// Paragraph is a translated paragraph awaiting typesetting. Its Unicode
// buffer holds the paragraph text in logical order until the shaping stage
// rewrites it into display order for right-to-left languages.
type Paragraph struct {
	Unicode      string
	Style        Style
	Compositions []*Composition

	// Vertical marks top-to-bottom layout (CJK); vertical paragraphs are
	// never candidates for Arabic shaping.
	Vertical bool
}

// UnicodeText returns the paragraph's unicode buffer.
func (p *Paragraph) UnicodeText() string {
	return p.Unicode
}

// SetUnicodeText replaces the paragraph's unicode buffer.
func (p *Paragraph) SetUnicodeText(s string) {
	p.Unicode = s
}

// Composition is one entry of a paragraph's composition list. Exactly one
// of its pointer fields is set; today the model only carries same-style
// unicode runs, rendered characters being produced later by the typesetter.
type Composition struct {
	SameStyleUnicodeChars *SameStyleUnicodeChars
}

// SameStyleUnicodeChars is a run of characters sharing one style. Its
// unicode buffer is rewritten in place by the shaping stage, like the
// paragraph-level buffer.
type SameStyleUnicodeChars struct {
	Unicode string
	Style   Style
}

// UnicodeText returns the run's unicode buffer.
func (c *SameStyleUnicodeChars) UnicodeText() string {
	return c.Unicode
}

// SetUnicodeText replaces the run's unicode buffer.
func (c *SameStyleUnicodeChars) SetUnicodeText(s string) {
	c.Unicode = s
}
