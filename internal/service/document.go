package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_pdf_renderer.go -package=mocks mdpress/internal/service PDFRenderer
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_service.go -package=mocks -mock_names=DocumentService=MockDocumentService mdpress/internal/service DocumentService

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mdpress/internal/contextutil"
	"mdpress/internal/document"
	"mdpress/internal/export"
	"mdpress/internal/pdf"
)

// Content types of exported files.
const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypePDF  = "application/pdf"
)

// filenamePrompt is shown when the user clears the filename field.
const filenamePrompt = "Please enter a filename."

// MarkdownRenderer turns editor text into an HTML fragment.
// This interface is defined from the service layer's perspective (consumer-first).
type MarkdownRenderer interface {
	// RenderEscaped escapes math delimiters and renders the text.
	RenderEscaped(text string) (string, error)
}

// PDFRenderer converts markdown into PDF bytes through a remote service.
type PDFRenderer interface {
	Render(ctx context.Context, req pdf.Request) ([]byte, error)
}

// PreviewResponse is a rendered live preview.
type PreviewResponse struct {
	HTML     string
	Sections int
}

// ExportRequest asks for a standalone HTML export.
type ExportRequest struct {
	Markdown string
	Filename string
}

// PDFRequest asks for a PDF export.
type PDFRequest struct {
	Markdown string
	Filename string
	Engine   string
	CSS      string
}

// ExportResult is a finished export ready to be downloaded.
type ExportResult struct {
	ID          string
	Filename    string
	ContentType string
	Body        []byte
	Sections    int
}

// DocumentService renders, structures and exports editor documents.
type DocumentService interface {
	// Preview renders the live preview fragment for text.
	Preview(ctx context.Context, text string) (PreviewResponse, error)
	// ExportHTML renders text as a standalone HTML page.
	ExportHTML(ctx context.Context, req ExportRequest) (ExportResult, error)
	// ExportPDF converts text to PDF through the rendering service.
	ExportPDF(ctx context.Context, req PDFRequest) (ExportResult, error)
	// TOC returns the table of contents of text.
	TOC(ctx context.Context, text string) (document.TOC, error)
}

// documentService implements DocumentService.
type documentService struct {
	renderer MarkdownRenderer
	pdf      PDFRenderer
	exporter *export.HTMLExporter
	policy   document.AnchorPolicy
	newID    func() string
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(renderer MarkdownRenderer, pdfRenderer PDFRenderer, policy document.AnchorPolicy) DocumentService {
	if policy == "" {
		policy = document.AnchorSuffix
	}
	return &documentService{
		renderer: renderer,
		pdf:      pdfRenderer,
		exporter: export.NewHTMLExporter(),
		policy:   policy,
		newID:    uuid.NewString,
	}
}

// Preview renders the flat, decorated preview of text.
func (s *documentService) Preview(ctx context.Context, text string) (PreviewResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	fragment, err := s.renderer.RenderEscaped(text)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "error", err)
		return PreviewResponse{}, WrapError(err, "failed to render markdown")
	}

	html, err := document.Preview(fragment)
	if err != nil {
		return PreviewResponse{}, WrapError(err, "failed to decorate preview")
	}

	blocks, err := document.Sequence(fragment)
	if err != nil {
		return PreviewResponse{}, WrapError(err, "failed to sequence blocks")
	}

	return PreviewResponse{
		HTML:     html,
		Sections: len(document.BuildSections(blocks)),
	}, nil
}

// ExportHTML renders text as a standalone page.
func (s *documentService) ExportHTML(ctx context.Context, req ExportRequest) (ExportResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	name, err := exportFilename(req.Filename, "html")
	if err != nil {
		logger.WarnContext(ctx, "rejected export filename", "filename", req.Filename, "error", err)
		return ExportResult{}, err
	}

	doc, err := s.build(req.Markdown)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build document", "error", err)
		return ExportResult{}, err
	}

	body, err := s.exporter.RenderBytes(doc)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render export page", "error", err)
		return ExportResult{}, WrapError(err, "failed to render export page")
	}

	result := ExportResult{
		ID:          s.newID(),
		Filename:    name,
		ContentType: ContentTypeHTML,
		Body:        body,
		Sections:    len(doc.Sections),
	}
	logger.InfoContext(ctx, "html export rendered", "export_id", result.ID, "filename", name, "sections", result.Sections, "bytes", len(body))
	return result, nil
}

// ExportPDF sends the raw text to the PDF service. Failures are logged and
// nothing is returned for download.
func (s *documentService) ExportPDF(ctx context.Context, req PDFRequest) (ExportResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	name, err := exportFilename(req.Filename, "pdf")
	if err != nil {
		logger.WarnContext(ctx, "rejected export filename", "filename", req.Filename, "error", err)
		return ExportResult{}, err
	}

	pdfReq := pdf.Request{
		Markdown: req.Markdown,
		Engine:   req.Engine,
		CSS:      req.CSS,
	}
	if err := pdfReq.Validate(); err != nil {
		switch {
		case errors.Is(err, pdf.ErrMarkdownRequired):
			return ExportResult{}, &ValidationError{Field: "markdown", Message: "cannot be empty"}
		default:
			return ExportResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	if err := pdfReq.LintCSS(); err != nil {
		logger.WarnContext(ctx, "custom stylesheet does not parse, sending it unchanged", "error", err)
	}

	id := s.newID()
	body, err := s.pdf.Render(ctx, pdfReq)
	if err != nil {
		logger.ErrorContext(ctx, "pdf export failed", "export_id", id, "error", err)
		return ExportResult{}, fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	logger.InfoContext(ctx, "pdf export rendered", "export_id", id, "filename", name, "bytes", len(body))
	return ExportResult{
		ID:          id,
		Filename:    name,
		ContentType: ContentTypePDF,
		Body:        body,
	}, nil
}

// TOC returns the entries in document order. A document without h1 headings
// yields an empty table.
func (s *documentService) TOC(ctx context.Context, text string) (document.TOC, error) {
	doc, err := s.build(text)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to build document", "error", err)
		return nil, err
	}
	if doc.TOC == nil {
		return document.TOC{}, nil
	}
	return doc.TOC, nil
}

func (s *documentService) build(text string) (document.Document, error) {
	fragment, err := s.renderer.RenderEscaped(text)
	if err != nil {
		return document.Document{}, WrapError(err, "failed to render markdown")
	}
	doc, err := document.Build(fragment, s.policy)
	if err != nil {
		return document.Document{}, WrapError(err, "failed to structure document")
	}
	return doc, nil
}

func exportFilename(name, ext string) (string, error) {
	filename, err := export.Filename(name, ext)
	switch {
	case errors.Is(err, export.ErrFilenameRequired):
		return "", &ValidationError{Field: "filename", Message: filenamePrompt}
	case errors.Is(err, export.ErrInvalidFilename):
		return "", &ValidationError{Field: "filename", Message: "must not contain path separators"}
	case err != nil:
		return "", err
	}
	return filename, nil
}
