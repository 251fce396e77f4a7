package document

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind classifies a rendered block.
type Kind int

const (
	// KindContent is any top-level element that is not a heading.
	KindContent Kind = iota
	// KindHeading is an h1..h6 element.
	KindHeading
)

func (k Kind) String() string {
	if k == KindHeading {
		return "heading"
	}
	return "content"
}

// Block is one top-level element of a rendered markdown fragment.
type Block struct {
	Kind  Kind
	Level int    // 1..6 for headings, 0 for content
	Tag   string // element name, e.g. "h2" or "pre"
	Inner string // inner HTML
	Outer string // outer HTML
}

// IsSectionStart reports whether the block opens a new section.
func (b Block) IsSectionStart() bool {
	return b.Kind == KindHeading && b.Level == 1
}

// Sequence parses an HTML fragment and returns its direct child elements in
// document order. Headings nested inside other elements are not classified.
func Sequence(fragment string) ([]Block, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		block, err := newBlock(n)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func newBlock(n *html.Node) (Block, error) {
	inner, err := innerHTML(n)
	if err != nil {
		return Block{}, err
	}
	outer, err := outerHTML(n)
	if err != nil {
		return Block{}, err
	}

	block := Block{
		Kind:  KindContent,
		Tag:   n.Data,
		Inner: inner,
		Outer: outer,
	}
	if level := headingLevel(n); level > 0 {
		block.Kind = KindHeading
		block.Level = level
	}
	return block, nil
}

func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// parseFragment parses markup as the children of a <div>.
func parseFragment(fragment string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, fmt.Errorf("parse html fragment: %w", err)
	}
	return nodes, nil
}

func outerHTML(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", fmt.Errorf("render <%s>: %w", n.Data, err)
	}
	return sb.String(), nil
}

func innerHTML(n *html.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", fmt.Errorf("render <%s> child: %w", n.Data, err)
		}
	}
	return sb.String(), nil
}
