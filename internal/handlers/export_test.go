package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"mdpress/internal/service"
	"mdpress/internal/service/mocks"
)

// staticSource is a TextSource with fixed text.
type staticSource string

func (s staticSource) Value() string { return string(s) }

func ptr(s string) *string { return &s }

func TestNewExportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocumentService := mocks.NewMockDocumentService(ctrl)
	handler := NewExportHandler(mockDocumentService, staticSource(""), FormatHTML)

	if handler == nil {
		t.Fatal("NewExportHandler() returned nil")
	}
	if handler.documentService != mockDocumentService {
		t.Error("NewExportHandler() documentService not set correctly")
	}
}

func TestExportHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	htmlResult := service.ExportResult{
		ID:          "c0ffee00-0000-4000-8000-000000000000",
		Filename:    "notes.html",
		ContentType: service.ContentTypeHTML,
		Body:        []byte("<!DOCTYPE html>"),
	}

	tests := []struct {
		name            string
		format          string
		method          string
		body            interface{}
		mockSetup       func(*mocks.MockDocumentService)
		wantStatus      int
		wantDisposition string
		wantError       string
	}{
		{
			name:   "html export",
			format: FormatHTML,
			method: http.MethodPost,
			body:   DocumentRequest{Markdown: ptr("# A"), Filename: ptr("notes")},
			mockSetup: func(m *mocks.MockDocumentService) {
				m.EXPECT().
					ExportHTML(gomock.Any(), service.ExportRequest{Markdown: "# A", Filename: "notes"}).
					Return(htmlResult, nil)
			},
			wantStatus:      http.StatusOK,
			wantDisposition: `attachment; filename=notes.html`,
		},
		{
			name:   "absent filename and markdown use defaults",
			format: FormatHTML,
			method: http.MethodPost,
			body:   DocumentRequest{},
			mockSetup: func(m *mocks.MockDocumentService) {
				m.EXPECT().
					ExportHTML(gomock.Any(), service.ExportRequest{Markdown: "# From editor", Filename: "exported-document"}).
					Return(service.ExportResult{Filename: "exported-document.html", ContentType: service.ContentTypeHTML}, nil)
			},
			wantStatus:      http.StatusOK,
			wantDisposition: `attachment; filename=exported-document.html`,
		},
		{
			name:   "empty filename prompts",
			format: FormatHTML,
			method: http.MethodPost,
			body:   DocumentRequest{Filename: ptr("")},
			mockSetup: func(m *mocks.MockDocumentService) {
				m.EXPECT().
					ExportHTML(gomock.Any(), service.ExportRequest{Markdown: "# From editor", Filename: ""}).
					Return(service.ExportResult{}, &service.ValidationError{Field: "filename", Message: "Please enter a filename."})
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Please enter a filename.",
		},
		{
			name:   "pdf export",
			format: FormatPDF,
			method: http.MethodPost,
			body:   DocumentRequest{Markdown: ptr("# A"), Filename: ptr("doc"), Engine: "weasyprint", CSS: "h1 { color: red; }"},
			mockSetup: func(m *mocks.MockDocumentService) {
				m.EXPECT().
					ExportPDF(gomock.Any(), service.PDFRequest{Markdown: "# A", Filename: "doc", Engine: "weasyprint", CSS: "h1 { color: red; }"}).
					Return(service.ExportResult{ID: "id", Filename: "doc.pdf", ContentType: service.ContentTypePDF, Body: []byte("%PDF")}, nil)
			},
			wantStatus:      http.StatusOK,
			wantDisposition: `attachment; filename=doc.pdf`,
		},
		{
			name:   "pdf service failure",
			format: FormatPDF,
			method: http.MethodPost,
			body:   DocumentRequest{Markdown: ptr("# A")},
			mockSetup: func(m *mocks.MockDocumentService) {
				m.EXPECT().
					ExportPDF(gomock.Any(), service.PDFRequest{Markdown: "# A", Filename: "exported-document"}).
					Return(service.ExportResult{}, service.ErrExternalService)
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "unexpected error",
			format: FormatHTML,
			method: http.MethodPost,
			body:   DocumentRequest{Markdown: ptr("# A")},
			mockSetup: func(m *mocks.MockDocumentService) {
				m.EXPECT().
					ExportHTML(gomock.Any(), gomock.Any()).
					Return(service.ExportResult{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid JSON body",
			format:     FormatHTML,
			method:     http.MethodPost,
			body:       "invalid json",
			mockSetup:  func(m *mocks.MockDocumentService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "method not allowed",
			format:     FormatPDF,
			method:     http.MethodGet,
			mockSetup:  func(m *mocks.MockDocumentService) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDocumentService := mocks.NewMockDocumentService(ctrl)
			tt.mockSetup(mockDocumentService)

			handler := NewExportHandler(mockDocumentService, staticSource("# From editor"), tt.format)

			var bodyBytes []byte
			if s, ok := tt.body.(string); ok {
				bodyBytes = []byte(s)
			} else if tt.body != nil {
				bodyBytes, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(tt.method, "/api/export/"+tt.format, bytes.NewBuffer(bodyBytes))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantDisposition != "" {
				if got := w.Header().Get("Content-Disposition"); got != tt.wantDisposition {
					t.Errorf("Content-Disposition = %q, want %q", got, tt.wantDisposition)
				}
			}
			if tt.wantError != "" {
				var resp ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decode error response: %v", err)
				}
				if resp.Error != tt.wantError {
					t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
				}
			}
		})
	}
}

func TestExportHandler_Headers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocumentService := mocks.NewMockDocumentService(ctrl)
	mockDocumentService.EXPECT().
		ExportHTML(gomock.Any(), gomock.Any()).
		Return(service.ExportResult{
			ID:          "export-1",
			Filename:    "my notes.html",
			ContentType: service.ContentTypeHTML,
			Body:        []byte("<html></html>"),
		}, nil)

	handler := NewExportHandler(mockDocumentService, staticSource(""), FormatHTML)
	req := httptest.NewRequest(http.MethodPost, "/api/export/html", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	headers := map[string]string{
		"Content-Type":        service.ContentTypeHTML,
		"Content-Disposition": `attachment; filename="my notes.html"`,
		"Content-Length":      "13",
		ExportIDHeader:        "export-1",
	}
	for header, want := range headers {
		if got := w.Header().Get(header); got != want {
			t.Errorf("header %s = %q, want %q", header, got, want)
		}
	}
	if w.Body.String() != "<html></html>" {
		t.Errorf("body = %q", w.Body.String())
	}
}
