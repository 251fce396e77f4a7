package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// AnchorPolicy decides what happens when two sections derive the same anchor.
type AnchorPolicy string

const (
	// AnchorPreserve keeps colliding anchors as they are.
	AnchorPreserve AnchorPolicy = "preserve"
	// AnchorSuffix appends -1, -2, ... to the second and later duplicates.
	AnchorSuffix AnchorPolicy = "suffix"
)

// ParseAnchorPolicy parses a policy name. An empty name selects AnchorSuffix.
func ParseAnchorPolicy(s string) (AnchorPolicy, error) {
	switch AnchorPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", AnchorSuffix:
		return AnchorSuffix, nil
	case AnchorPreserve:
		return AnchorPreserve, nil
	}
	return "", fmt.Errorf("unknown anchor policy %q", s)
}

var (
	stripPolicy = bluemonday.StrictPolicy()

	// Matches the whitespace class of browser regular expressions, which
	// includes vertical tab and Unicode space separators.
	whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r \p{Z}\x{FEFF}]+`)
)

// StripMarkup removes all tags from an HTML snippet and decodes entities.
func StripMarkup(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// Anchor derives a fragment identifier from a heading's inner HTML: markup is
// stripped, each whitespace run becomes a single '-', and the result is
// lowercased.
func Anchor(headingHTML string) string {
	text := StripMarkup(headingHTML)
	return strings.ToLower(whitespaceRun.ReplaceAllString(text, "-"))
}

// Disambiguate returns a copy of sections in which every anchor is unique.
// The first occurrence keeps its anchor. Each later duplicate gets the next
// suffix -N after the last one handed out for the same base, skipping
// anchors already taken, so suffixes for a base only grow.
func Disambiguate(sections []Section) []Section {
	out := make([]Section, len(sections))
	used := make(map[string]bool, len(sections))
	counts := make(map[string]int, len(sections))

	for i, s := range sections {
		base := s.Anchor
		anchor := base
		if used[anchor] {
			n := counts[base]
			for {
				n++
				candidate := fmt.Sprintf("%s-%d", base, n)
				if !used[candidate] {
					anchor = candidate
					break
				}
			}
			counts[base] = n
		}
		used[anchor] = true

		s.Anchor = anchor
		out[i] = s
	}
	return out
}
