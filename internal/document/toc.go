package document

// TOCEntry is one table of contents line.
type TOCEntry struct {
	Text   string `json:"text" yaml:"text"`
	Anchor string `json:"anchor" yaml:"anchor"`
}

// Href returns the fragment link targeting the entry's section.
func (e TOCEntry) Href() string {
	return "#" + e.Anchor
}

// TOC is the ordered table of contents of a document.
type TOC []TOCEntry

// NewTOC builds one entry per section, in section order. Text and anchor are
// read from the section itself so a link always matches its target id.
func NewTOC(sections []Section) TOC {
	toc := make(TOC, 0, len(sections))
	for _, s := range sections {
		toc = append(toc, TOCEntry{
			Text:   s.Title,
			Anchor: s.Anchor,
		})
	}
	return toc
}

// Document is a rendered fragment reorganized into sections.
type Document struct {
	Sections []Section
	TOC      TOC
}

// Empty reports whether the document has no level-1 headings.
func (d Document) Empty() bool {
	return len(d.Sections) == 0
}

// Build sequences an HTML fragment, groups it into sections and derives the
// table of contents.
func Build(fragment string, policy AnchorPolicy) (Document, error) {
	blocks, err := Sequence(fragment)
	if err != nil {
		return Document{}, err
	}
	return FromBlocks(blocks, policy), nil
}

// FromBlocks groups an already sequenced fragment.
func FromBlocks(blocks []Block, policy AnchorPolicy) Document {
	sections := BuildSections(blocks)
	if policy == AnchorSuffix {
		sections = Disambiguate(sections)
	}
	return Document{
		Sections: sections,
		TOC:      NewTOC(sections),
	}
}
