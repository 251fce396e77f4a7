package export

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"io"

	"mdpress/internal/document"
)

// subHeadingClasses holds the Tailwind classes for sub-heading depths 1..5.
var subHeadingClasses = [...]string{
	"text-xl font-semibold text-blue-300",
	"text-lg font-semibold text-blue-200",
	"text-base font-semibold text-blue-100",
	"text-sm font-semibold text-gray-300",
	"text-xs font-semibold text-gray-400",
}

const sectionHeadingClass = "text-2xl font-bold text-blue-400"

// NoHeadingsPlaceholder is listed in the navigation panel of a document
// without level-1 headings.
const NoHeadingsPlaceholder = "No headings available in the document."

// page holds template data for an exported document.
type page struct {
	Title    string
	TOC      []tocItem
	Sections []sectionView
}

type tocItem struct {
	Href template.HTMLAttr
	Text string
}

type sectionView struct {
	ID           template.HTMLAttr
	HeadingClass string
	Heading      template.HTML
	Children     []childView
}

type childView struct {
	SubHeading bool
	Class      string
	HTML       template.HTML
}

// HTMLExporter writes a document as a standalone HTML page with its own
// styles, a table of contents panel and the MathJax bootstrap.
type HTMLExporter struct {
	template *template.Template
	title    string
}

// NewHTMLExporter creates an exporter for pages titled "Markdown Export".
func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{
		template: template.Must(template.New("export").Parse(exportTemplate)),
		title:    "Markdown Export",
	}
}

// Render writes the page for doc to w.
func (e *HTMLExporter) Render(w io.Writer, doc document.Document) error {
	if err := e.template.Execute(w, e.page(doc)); err != nil {
		return fmt.Errorf("execute export template: %w", err)
	}
	return nil
}

// RenderBytes renders the page into memory so that nothing reaches the
// caller when rendering fails part way.
func (e *HTMLExporter) RenderBytes(doc document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *HTMLExporter) page(doc document.Document) page {
	p := page{Title: e.title}
	for _, entry := range doc.TOC {
		p.TOC = append(p.TOC, tocItem{Href: hrefAttr(entry.Anchor), Text: entry.Text})
	}
	for _, s := range doc.Sections {
		view := sectionView{
			ID:           idAttr(s.Anchor),
			HeadingClass: sectionHeadingClass,
			Heading:      template.HTML(s.Heading),
		}
		for _, c := range s.Children {
			view.Children = append(view.Children, childViewOf(c))
		}
		p.Sections = append(p.Sections, view)
	}
	return p
}

// idAttr and hrefAttr escape an anchor the same way so a TOC link and its
// section carry byte-identical values. html/template would percent-encode
// the href and entity-encode the id.
func idAttr(anchor string) template.HTMLAttr {
	return template.HTMLAttr(`id="` + html.EscapeString(anchor) + `"`)
}

func hrefAttr(anchor string) template.HTMLAttr {
	return template.HTMLAttr(`href="#` + html.EscapeString(anchor) + `"`)
}

func childViewOf(c document.Child) childView {
	if c.Kind != document.ChildSubHeading {
		return childView{HTML: template.HTML(c.HTML)}
	}
	depth := c.Depth
	if depth < 1 {
		depth = 1
	}
	if depth > len(subHeadingClasses) {
		depth = len(subHeadingClasses)
	}
	return childView{
		SubHeading: true,
		Class:      subHeadingClasses[depth-1],
		HTML:       template.HTML(c.HTML),
	}
}

const exportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">
  <title>{{.Title}}</title>
  <style>
    body { background-color: #1f2937; color: #e5e7eb; font-family: Arial, sans-serif; }
    pre { background-color: #374151; padding: 1em; border-radius: 0.5em; overflow-x: auto; }
    .toc { position: fixed; top: 20px; left: 20px; width: 200px; max-height: calc(100vh - 40px); overflow-y: auto; padding: 10px; background: rgba(31, 41, 55, 0.9); border-radius: 0.5em; box-shadow: 0 4px 8px rgba(0, 0, 0, 0.5); }
    .content { margin-left: 240px; padding: 20px; }
    a { color: #60a5fa; transition: color 0.3s; }
    a:hover { color: #93c5fd; }
  </style>
  <script src="https://cdnjs.cloudflare.com/ajax/libs/mathjax/2.7.7/MathJax.js?config=TeX-AMS_HTML"></script>
</head>
<body>
  <div class="toc">
    <h5 class="text-lg font-bold mb-2">Table of Contents</h5>
    <ul class="list-disc pl-5">
{{- range .TOC}}
      <li><a {{.Href}}>{{.Text}}</a></li>
{{- else}}
      <li>` + NoHeadingsPlaceholder + `</li>
{{- end}}
    </ul>
  </div>
  <div class="content">
    <main>
{{- range .Sections}}
      <div class="bg-gray-800 shadow-md rounded-lg mb-4 p-4 border border-gray-700" {{.ID}}>
        <h5 class="{{.HeadingClass}}">{{.Heading}}</h5>
{{- range .Children}}
{{- if .SubHeading}}
        <h6 class="{{.Class}}">{{.HTML}}</h6>
{{- else}}
        <div class="mb-2">{{.HTML}}</div>
{{- end}}
{{- end}}
      </div>
{{- end}}
    </main>
  </div>
  <script>
    MathJax.Hub.Queue(["Typeset", MathJax.Hub]);
    MathJax.Hub.Config({
      tex2jax: {
        inlineMath: [['$', '$']],
        displayMath: [['$$', '$$'], ['\\[', '\\]']]
      },
      "HTML-CSS": { availableFonts: ["TeX"] }
    });
  </script>
</body>
</html>
`
