package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mdpress/internal/handlers"
	"mdpress/internal/service"
)

// Session is the editing session shared by the draft, preview and export routes.
type Session interface {
	handlers.Editor
	handlers.Subscriber
}

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DocumentService service.DocumentService
	DraftService    service.DraftService
	Session         Session
	Database        handlers.Pinger
	IndexHTML       string // Embedded HTML content
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	draftHandler := handlers.NewDraftHandler(deps.Session, deps.DraftService)
	previewHandler := handlers.NewPreviewHandler(deps.DocumentService, deps.Session)
	streamHandler := handlers.NewStreamHandler(deps.DocumentService, deps.Session, deps.Session)
	tocHandler := handlers.NewTOCHandler(deps.DocumentService, deps.Session)
	htmlExportHandler := handlers.NewExportHandler(deps.DocumentService, deps.Session, handlers.FormatHTML)
	pdfExportHandler := handlers.NewExportHandler(deps.DocumentService, deps.Session, handlers.FormatPDF)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		if deps.Database != nil {
			r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.Database))
		}
		r.Method(http.MethodGet, "/draft", draftHandler)
		r.Method(http.MethodPut, "/draft", draftHandler)
		r.Method(http.MethodGet, "/preview/stream", streamHandler)
		r.Method(http.MethodPost, "/preview", previewHandler)
		r.Method(http.MethodPost, "/toc", tocHandler)
		r.Method(http.MethodPost, "/export/html", htmlExportHandler)
		r.Method(http.MethodPost, "/export/pdf", pdfExportHandler)
	})

	// Serve HTML page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
