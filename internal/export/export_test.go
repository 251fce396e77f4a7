package export

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdpress/internal/document"
)

func TestHTMLExporter_Render(t *testing.T) {
	doc := document.Document{
		Sections: []document.Section{
			{
				Heading: "A",
				Title:   "A",
				Anchor:  "a",
				Children: []document.Child{
					{Kind: document.ChildContent, HTML: "<p>text1</p>"},
					{Kind: document.ChildSubHeading, Depth: 1, HTML: "B"},
					{Kind: document.ChildContent, HTML: "<p>text2</p>"},
				},
			},
			{
				Heading: "C",
				Title:   "C",
				Anchor:  "c",
				Children: []document.Child{
					{Kind: document.ChildSubHeading, Depth: 5, HTML: "<em>deep</em>"},
				},
			},
		},
	}
	doc.TOC = document.NewTOC(doc.Sections)

	out, err := NewHTMLExporter().RenderBytes(doc)
	require.NoError(t, err)
	page := string(out)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `<link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">`)
	assert.Contains(t, page, `<script src="https://cdnjs.cloudflare.com/ajax/libs/mathjax/2.7.7/MathJax.js?config=TeX-AMS_HTML"></script>`)
	assert.Contains(t, page, `<title>Markdown Export</title>`)

	assert.Contains(t, page, `<li><a href="#a">A</a></li>`)
	assert.Contains(t, page, `<li><a href="#c">C</a></li>`)
	assert.NotContains(t, page, NoHeadingsPlaceholder)

	assert.Contains(t, page, `id="a">`)
	assert.Contains(t, page, `<h5 class="text-2xl font-bold text-blue-400">A</h5>`)
	assert.Contains(t, page, `<div class="mb-2"><p>text1</p></div>`)
	assert.Contains(t, page, `<h6 class="text-xl font-semibold text-blue-300">B</h6>`)
	assert.Contains(t, page, `<h6 class="text-xs font-semibold text-gray-400"><em>deep</em></h6>`)
	assert.Contains(t, page, `MathJax.Hub.Queue(["Typeset", MathJax.Hub]);`)

	// Section order follows document order.
	assert.Less(t, strings.Index(page, `id="a"`), strings.Index(page, `id="c"`))
	assert.Less(t, strings.Index(page, "text1"), strings.Index(page, ">B</h6>"))
	assert.Less(t, strings.Index(page, ">B</h6>"), strings.Index(page, "text2"))
}

func TestHTMLExporter_RenderEmptyDocument(t *testing.T) {
	out, err := NewHTMLExporter().RenderBytes(document.Document{})
	require.NoError(t, err)
	page := string(out)

	assert.Contains(t, page, "<li>"+NoHeadingsPlaceholder+"</li>")
	assert.NotContains(t, page, "bg-gray-800")
}

func TestHTMLExporter_EscapesTOCText(t *testing.T) {
	doc := document.Document{
		Sections: []document.Section{{Heading: "x &lt; y", Title: "x < y", Anchor: "x-<-y"}},
	}
	doc.TOC = document.NewTOC(doc.Sections)

	out, err := NewHTMLExporter().RenderBytes(doc)
	require.NoError(t, err)

	assert.Contains(t, string(out), ">x &lt; y</a>")
	assert.Contains(t, string(out), `<h5 class="text-2xl font-bold text-blue-400">x &lt; y</h5>`)
}

func TestHTMLExporter_TOCLinksMatchSectionIDs(t *testing.T) {
	anchors := []string{"café-noir", `say-"hi"`, "c++", "a&b"}
	var sections []document.Section
	for _, a := range anchors {
		sections = append(sections, document.Section{Heading: a, Title: a, Anchor: a})
	}
	doc := document.Document{Sections: sections, TOC: document.NewTOC(sections)}

	out, err := NewHTMLExporter().RenderBytes(doc)
	require.NoError(t, err)
	page := string(out)

	var hrefs, ids []string
	for _, m := range regexp.MustCompile(`href="#([^"]*)"`).FindAllStringSubmatch(page, -1) {
		hrefs = append(hrefs, m[1])
	}
	for _, m := range regexp.MustCompile(` id="([^"]*)"`).FindAllStringSubmatch(page, -1) {
		ids = append(ids, m[1])
	}
	require.Len(t, hrefs, len(anchors))
	assert.Equal(t, hrefs, ids)

	assert.Contains(t, page, `href="#café-noir"`)
	assert.Contains(t, page, `id="café-noir"`)
	assert.Contains(t, page, `href="#say-&#34;hi&#34;"`)
	assert.Contains(t, page, `id="say-&#34;hi&#34;"`)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		ext     string
		want    string
		wantErr error
	}{
		{name: "plain", in: "notes", ext: "html", want: "notes.html"},
		{name: "trimmed", in: "  notes ", ext: "pdf", want: "notes.pdf"},
		{name: "extension not doubled", in: "notes.HTML", ext: "html", want: "notes.html"},
		{name: "default", in: DefaultFilename, ext: "html", want: "exported-document.html"},
		{name: "empty", in: "", ext: "html", wantErr: ErrFilenameRequired},
		{name: "whitespace", in: "   ", ext: "html", wantErr: ErrFilenameRequired},
		{name: "only extension", in: ".pdf", ext: "pdf", wantErr: ErrFilenameRequired},
		{name: "path separator", in: "../etc/passwd", ext: "html", wantErr: ErrInvalidFilename},
		{name: "backslash", in: `a\b`, ext: "html", wantErr: ErrInvalidFilename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filename(tt.in, tt.ext)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
