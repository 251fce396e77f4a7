package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"mdpress/internal/contextutil"
	"mdpress/internal/service"
)

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable message, shown to the user as is
	Error string `json:"error"`

	// Offending request field for validation errors
	Field string `json:"field,omitempty"`
}

// DocumentRequest is the JSON body accepted by the preview, toc and export
// endpoints. A missing markdown field means the editor's current text.
type DocumentRequest struct {
	Markdown *string `json:"markdown,omitempty"`
	Filename *string `json:"filename,omitempty"`
	Engine   string  `json:"engine,omitempty"`
	CSS      string  `json:"css,omitempty"`
}

// TextSource supplies the editor's current text.
type TextSource interface {
	Value() string
}

// decodeDocumentRequest reads an optional JSON body. An empty body is an
// empty request.
func decodeDocumentRequest(r *http.Request) (DocumentRequest, error) {
	var req DocumentRequest
	if r.Body == nil {
		return req, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return DocumentRequest{}, err
	}
	return req, nil
}

// markdownOrSource returns the request text, falling back to the editor text.
func markdownOrSource(req DocumentRequest, source TextSource) string {
	if req.Markdown != nil {
		return *req.Markdown
	}
	if source == nil {
		return ""
	}
	return source.Value()
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: validationErr.Message,
			Field: validationErr.Field,
		})
		return
	}

	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Draft not found")
		return
	}

	if errors.Is(err, service.ErrExternalService) {
		writeError(w, http.StatusBadGateway, "External service error")
		return
	}

	writeError(w, http.StatusInternalServerError, defaultMsg)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
