package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	ghhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown text into an HTML fragment.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a renderer with GitHub flavored markdown, emoji
// shortcodes and raw HTML passthrough enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Table,
				extension.TaskList,
				extension.Strikethrough,
				extension.Linkify,
				emoji.Emoji,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithUnsafe(),
			),
		),
	}
}

// Render converts markdown text to an HTML fragment.
func (r *Renderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderEscaped escapes math delimiters and then renders the text.
func (r *Renderer) RenderEscaped(text string) (string, error) {
	return r.Render(Escape(text))
}
