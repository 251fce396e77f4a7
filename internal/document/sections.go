package document

import "fmt"

// ChildKind classifies a block placed inside a section.
type ChildKind int

const (
	// ChildContent is a non-heading block carried through unchanged.
	ChildContent ChildKind = iota
	// ChildSubHeading is an h2..h6 heading re-tagged by depth.
	ChildSubHeading
)

// Child is one block owned by a section.
type Child struct {
	Kind  ChildKind
	Depth int    // 1..5 for sub-headings (h2 -> 1, h6 -> 5), 0 for content
	HTML  string // inner HTML for sub-headings, outer HTML for content
}

// Label returns the presentation tag of the child, "sub-heading-N" or "content".
func (c Child) Label() string {
	if c.Kind == ChildSubHeading {
		return fmt.Sprintf("sub-heading-%d", c.Depth)
	}
	return "content"
}

// Section groups a level-1 heading with every block that follows it up to,
// but excluding, the next level-1 heading.
type Section struct {
	Heading  string // inner HTML of the h1
	Title    string // heading text without markup
	Anchor   string
	Children []Child
}

// BuildSections groups a flat block sequence into sections in a single pass.
// Blocks that precede the first level-1 heading belong to no section and are
// dropped. The result is never nil.
func BuildSections(blocks []Block) []Section {
	sections := []Section{}
	current := -1

	for _, b := range blocks {
		if b.IsSectionStart() {
			sections = append(sections, Section{
				Heading: b.Inner,
				Title:   StripMarkup(b.Inner),
				Anchor:  Anchor(b.Inner),
			})
			current = len(sections) - 1
			continue
		}
		if current < 0 {
			continue
		}
		sections[current].Children = append(sections[current].Children, childOf(b))
	}
	return sections
}

func childOf(b Block) Child {
	if b.Kind == KindHeading {
		return Child{
			Kind:  ChildSubHeading,
			Depth: b.Level - 1,
			HTML:  b.Inner,
		}
	}
	return Child{
		Kind: ChildContent,
		HTML: b.Outer,
	}
}

// Flatten turns sections back into a flat block sequence without their
// level-1 headings. Sub-headings regain their original level.
func Flatten(sections []Section) []Block {
	var blocks []Block
	for _, s := range sections {
		for _, c := range s.Children {
			if c.Kind == ChildSubHeading {
				level := c.Depth + 1
				tag := fmt.Sprintf("h%d", level)
				blocks = append(blocks, Block{
					Kind:  KindHeading,
					Level: level,
					Tag:   tag,
					Inner: c.HTML,
					Outer: fmt.Sprintf("<%s>%s</%s>", tag, c.HTML, tag),
				})
				continue
			}
			blocks = append(blocks, Block{
				Kind:  KindContent,
				Outer: c.HTML,
			})
		}
	}
	return blocks
}
