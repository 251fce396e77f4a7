package handlers

import (
	"mime"
	"net/http"
	"strconv"

	"mdpress/internal/contextutil"
	"mdpress/internal/export"
	"mdpress/internal/service"
)

// Export formats served by ExportHandler.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// ExportIDHeader carries the id of an export so it can be found in the logs.
const ExportIDHeader = "X-Export-ID"

// ExportHandler returns a document as a downloadable file.
type ExportHandler struct {
	documentService service.DocumentService
	source          TextSource
	format          string
}

// NewExportHandler creates a new ExportHandler for format.
func NewExportHandler(documentService service.DocumentService, source TextSource, format string) *ExportHandler {
	return &ExportHandler{
		documentService: documentService,
		source:          source,
		format:          format,
	}
}

// ServeHTTP handles export requests. An absent filename falls back to the
// default name; an empty one is rejected with a prompt.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	req, err := decodeDocumentRequest(r)
	if err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	filename := export.DefaultFilename
	if req.Filename != nil {
		filename = *req.Filename
	}
	text := markdownOrSource(req, h.source)

	var result service.ExportResult
	switch h.format {
	case FormatHTML:
		result, err = h.documentService.ExportHTML(ctx, service.ExportRequest{
			Markdown: text,
			Filename: filename,
		})
	case FormatPDF:
		result, err = h.documentService.ExportPDF(ctx, service.PDFRequest{
			Markdown: text,
			Filename: filename,
			Engine:   req.Engine,
			CSS:      req.CSS,
		})
	default:
		logger.ErrorContext(ctx, "unknown export format", "format", h.format)
		writeError(w, http.StatusNotFound, "Unknown export format")
		return
	}
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export document")
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Body)))
	w.Header().Set(ExportIDHeader, result.ID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Body); err != nil {
		logger.ErrorContext(ctx, "failed to write export", "export_id", result.ID, "error", err)
	}
}
