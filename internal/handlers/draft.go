package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"mdpress/internal/contextutil"
	"mdpress/internal/service"
)

// Editor is the editing session behind the draft endpoints.
type Editor interface {
	Value() string
	Change(text string)
	Pending() bool
}

// DraftHandler reads and updates the editor text. GET with a key query
// parameter reads the persisted draft under that key instead.
type DraftHandler struct {
	editor Editor
	drafts service.DraftService
}

// NewDraftHandler creates a new DraftHandler. A nil drafts service disables
// keyed lookups.
func NewDraftHandler(editor Editor, drafts service.DraftService) *DraftHandler {
	return &DraftHandler{editor: editor, drafts: drafts}
}

// DraftRequest is the body of a draft update.
type DraftRequest struct {
	Markdown *string `json:"markdown"`
}

// DraftResponse reports the editor text. Pending is true while the latest
// change has not been persisted yet.
type DraftResponse struct {
	Markdown string `json:"markdown"`
	Pending  bool   `json:"pending"`
}

// StoredDraftResponse is a persisted draft looked up by key.
//
// swagger:model StoredDraftResponse
type StoredDraftResponse struct {
	Key       string    `json:"key"`
	Markdown  string    `json:"markdown"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServeHTTP handles GET and PUT on the draft.
func (h *DraftHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Has("key") {
			h.serveStored(w, r)
			return
		}
		writeJSON(w, http.StatusOK, h.response())
	case http.MethodPut:
		var req DraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WarnContext(ctx, "invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Markdown == nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "markdown is required", Field: "markdown"})
			return
		}
		h.editor.Change(*req.Markdown)
		logger.DebugContext(ctx, "draft changed", "length", len(*req.Markdown))
		writeJSON(w, http.StatusAccepted, h.response())
	default:
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// serveStored answers GET /api/draft?key=...
//
// swagger:route GET /api/draft drafts getStoredDraft
//
// Read a persisted draft by key.
//
// Responses:
//
//	200: StoredDraftResponse
//	400: ErrorResponse
//	404: ErrorResponse
func (h *DraftHandler) serveStored(w http.ResponseWriter, r *http.Request) {
	if h.drafts == nil {
		writeError(w, http.StatusNotFound, "Draft not found")
		return
	}
	draft, err := h.drafts.Find(r.Context(), r.URL.Query().Get("key"))
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to load draft")
		return
	}
	writeJSON(w, http.StatusOK, StoredDraftResponse{
		Key:       draft.Key,
		Markdown:  draft.Content,
		UpdatedAt: draft.UpdatedAt,
	})
}

func (h *DraftHandler) response() DraftResponse {
	return DraftResponse{
		Markdown: h.editor.Value(),
		Pending:  h.editor.Pending(),
	}
}
