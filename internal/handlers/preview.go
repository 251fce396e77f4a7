package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mdpress/internal/contextutil"
	"mdpress/internal/document"
	"mdpress/internal/editor"
	"mdpress/internal/export"
	"mdpress/internal/service"
)

// PreviewHandler renders the live preview of a document.
type PreviewHandler struct {
	documentService service.DocumentService
	source          TextSource
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(documentService service.DocumentService, source TextSource) *PreviewHandler {
	return &PreviewHandler{
		documentService: documentService,
		source:          source,
	}
}

// PreviewResponse represents the HTTP response payload for a preview.
type PreviewResponse struct {
	HTML     string `json:"html"`
	Sections int    `json:"sections"`
}

// ServeHTTP handles HTTP requests for previews.
func (h *PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.documentService.Preview(ctx, markdownOrSource(req, h.source))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to render preview")
		return
	}

	writeJSON(w, http.StatusOK, PreviewResponse{
		HTML:     resp.HTML,
		Sections: resp.Sections,
	})
}

// TOCHandler returns the table of contents of a document.
type TOCHandler struct {
	documentService service.DocumentService
	source          TextSource
}

// NewTOCHandler creates a new TOCHandler.
func NewTOCHandler(documentService service.DocumentService, source TextSource) *TOCHandler {
	return &TOCHandler{
		documentService: documentService,
		source:          source,
	}
}

// TOCResponse represents the table of contents. Placeholder is set when the
// document has no level-1 headings.
//
// swagger:model TOCResponse
type TOCResponse struct {
	Entries     document.TOC `json:"entries"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// ServeHTTP handles HTTP requests for the table of contents.
//
// swagger:route POST /api/toc toc
//
// # Table of contents
//
// Returns one entry per level-1 heading, in document order.
//
// ---
// produces:
// - application/json
// responses:
//
//	'200':
//	  schema:
//	    "$ref": "#/definitions/TOCResponse"
func (h *TOCHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	toc, err := h.documentService.TOC(ctx, markdownOrSource(req, h.source))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to build table of contents")
		return
	}

	resp := TOCResponse{Entries: toc}
	if len(toc) == 0 {
		resp.Entries = document.TOC{}
		resp.Placeholder = export.NoHeadingsPlaceholder
	}
	writeJSON(w, http.StatusOK, resp)
}

// Subscriber is the source of live preview updates.
type Subscriber interface {
	Subscribe() (<-chan editor.Update, func())
}

// StreamHandler pushes preview updates to the browser with Server-Sent Events.
type StreamHandler struct {
	documentService service.DocumentService
	source          TextSource
	updates         Subscriber
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(documentService service.DocumentService, source TextSource, updates Subscriber) *StreamHandler {
	return &StreamHandler{
		documentService: documentService,
		source:          source,
		updates:         updates,
	}
}

// ServeHTTP streams updates until the client disconnects or the session closes.
// The current preview is sent first so a new page starts in sync.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	updates, unsubscribe := h.updates.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if h.source != nil {
		if resp, err := h.documentService.Preview(ctx, h.source.Value()); err != nil {
			logger.ErrorContext(ctx, "failed to render initial preview", "error", err)
		} else if err := writeEvent(w, editor.Update{Event: editor.EventPreview, HTML: resp.HTML}); err != nil {
			return
		}
	}
	if err := writeEvent(w, editor.Update{Event: editor.EventRetypeset, Scope: editor.PreviewScope}); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case u, ok := <-updates:
			if !ok {
				return
			}
			if err := writeEvent(w, u); err != nil {
				logger.WarnContext(ctx, "failed to write preview event", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}

// writeEvent writes u as one SSE message named after its event.
func writeEvent(w http.ResponseWriter, u editor.Update) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", u.Event, data)
	return err
}
