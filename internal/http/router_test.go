package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"mdpress/internal/editor"
	"mdpress/internal/service"
	"mdpress/internal/service/mocks"
	"mdpress/internal/storage"
)

// stubSession satisfies Session without debouncing.
type stubSession struct {
	text string
	hub  *editor.Hub
}

func (s *stubSession) Value() string                             { return s.text }
func (s *stubSession) Change(text string)                        { s.text = text }
func (s *stubSession) Pending() bool                             { return false }
func (s *stubSession) Subscribe() (<-chan editor.Update, func()) { return s.hub.Subscribe() }

// noDrafts is a draft store that has never saved anything.
type noDrafts struct{}

func (noDrafts) Find(ctx context.Context, key string) (storage.Draft, bool, error) {
	return storage.Draft{}, false, nil
}

type okDatabase struct{}

func (okDatabase) Ping(ctx context.Context) error { return nil }

func newTestDeps(ctrl *gomock.Controller) (*Deps, *mocks.MockDocumentService) {
	mockDocumentService := mocks.NewMockDocumentService(ctrl)
	return &Deps{
		DocumentService: mockDocumentService,
		DraftService:    service.NewDraftService(noDrafts{}),
		Session:         &stubSession{text: "# Draft", hub: editor.NewHub(1)},
		Database:        okDatabase{},
		IndexHTML:       "<html><body>Test</body></html>",
	}, mockDocumentService
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _ := newTestDeps(ctrl)
	router := NewRouter(deps)

	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		mockSetup  func(*mocks.MockDocumentService)
		wantStatus int
	}{
		{
			name:       "GET root serves HTML",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /api/health",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /api/draft",
			method:     http.MethodGet,
			path:       "/api/draft",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /api/draft with unknown key",
			method:     http.MethodGet,
			path:       "/api/draft?key=missing",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "PUT /api/draft",
			method:     http.MethodPut,
			path:       "/api/draft",
			body:       `{"markdown":"# x"}`,
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "POST /api/draft method not allowed",
			method:     http.MethodPost,
			path:       "/api/draft",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "POST /api/preview",
			method: http.MethodPost,
			path:   "/api/preview",
			mockSetup: func(m *mocks.MockDocumentService) {
				m.EXPECT().Preview(gomock.Any(), "# Draft").Return(service.PreviewResponse{HTML: "<div></div>"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/toc exists",
			method:     http.MethodPost,
			path:       "/api/toc",
			body:       "invalid json",
			wantStatus: http.StatusBadRequest, // Bad request due to invalid body, but route exists
		},
		{
			name:   "POST /api/export/html",
			method: http.MethodPost,
			path:   "/api/export/html",
			mockSetup: func(m *mocks.MockDocumentService) {
				m.EXPECT().
					ExportHTML(gomock.Any(), service.ExportRequest{Markdown: "# Draft", Filename: "exported-document"}).
					Return(service.ExportResult{Filename: "exported-document.html", ContentType: service.ContentTypeHTML}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/export/pdf exists",
			method:     http.MethodPost,
			path:       "/api/export/pdf",
			body:       "{",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "GET /api/export/html method not allowed",
			method:     http.MethodGet,
			path:       "/api/export/html",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/chat",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, mockDocumentService := newTestDeps(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockDocumentService)
			}
			router := NewRouter(deps)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_RootServesHTML(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _ := newTestDeps(ctrl)
	htmlContent := "<html><body>Test HTML</body></html>"
	deps.IndexHTML = htmlContent

	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Router GET / status = %v, want %v", w.Code, http.StatusOK)
	}

	if w.Body.String() != htmlContent {
		t.Errorf("Router GET / body = %v, want %v", w.Body.String(), htmlContent)
	}

	if w.Header().Get("Content-Type") != "text/html; charset=utf-8" {
		t.Errorf("Router GET / Content-Type = %v, want text/html; charset=utf-8", w.Header().Get("Content-Type"))
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deps, _ := newTestDeps(ctrl)
	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodOptions, "/api/export/pdf", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Check CORS headers are present
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("Router should apply CORS middleware")
	}
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %v, want %v", w.Code, http.StatusNoContent)
	}
}
