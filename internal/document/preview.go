package document

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

const (
	previewHeadingClass = "preview-heading"
	previewCodeClass    = "preview-code-block"
)

var (
	headingSelector = cascadia.MustCompile("h1, h2, h3, h4, h5, h6")
	codeSelector    = cascadia.MustCompile("pre")
)

// Decorate tags every heading and preformatted block of a fragment with the
// live-preview classes. No elements are added or removed.
func Decorate(fragment string) (string, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			for _, h := range headingSelector.MatchAll(n) {
				addClass(h, previewHeadingClass)
			}
			for _, pre := range codeSelector.MatchAll(n) {
				addClass(pre, previewCodeClass)
			}
		}
		s, err := outerHTML(n)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// Preview returns the decorated fragment in its original flat order, wrapped
// in a single container.
func Preview(fragment string) (string, error) {
	decorated, err := Decorate(fragment)
	if err != nil {
		return "", err
	}
	return "<div>" + decorated + "</div>", nil
}

func addClass(n *html.Node, class string) {
	for i, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, existing := range strings.Fields(attr.Val) {
			if existing == class {
				return
			}
		}
		n.Attr[i].Val = strings.TrimSpace(attr.Val + " " + class)
		return
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}
