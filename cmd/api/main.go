package main

import (
	"context"
	_ "embed"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mdpress/internal/config"
	"mdpress/internal/editor"
	"mdpress/internal/http"
	"mdpress/internal/markdown"
	"mdpress/internal/pdf"
	"mdpress/internal/service"
	"mdpress/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API backs a browser Markdown editor with a live, math-aware preview
// and standalone HTML and PDF exports.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: mdpress API
//   description: |
//     Markdown editing API. Drafts are persisted after a short quiet period,
//     previews are pushed to the browser over Server-Sent Events and documents
//     can be exported as a sectioned HTML page or as PDF.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json
//   - text/html
//   - application/pdf

//go:embed index.html
var indexHTML string

// subscriberBuffer is the number of updates a slow browser may lag behind.
const subscriberBuffer = 16

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	draftRepo := storage.NewDraftRepo(db)

	// Rendering pipeline and external PDF service
	renderer := markdown.NewRenderer()
	pdfClient := pdf.NewClient(cfg.PDFServiceURL, cfg.PDFTimeout)
	documentService := service.NewDocumentService(renderer, pdfClient, cfg.AnchorPolicy)

	// Editing session: restore the saved draft, then debounce later changes
	hub := editor.NewHub(subscriberBuffer)
	preview := func(text string) (string, error) {
		resp, err := documentService.Preview(context.Background(), text)
		return resp.HTML, err
	}
	session := editor.NewSession(draftRepo, preview, hub, hub, editor.SessionConfig{
		Key:   cfg.DraftKey,
		Delay: cfg.DebounceDelay,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := session.Restore(ctx); err != nil {
		slog.Error("Failed to restore draft, starting empty", "error", err)
	}

	// Create router with dependencies
	deps := &http.Deps{
		DocumentService: documentService,
		DraftService:    service.NewDraftService(draftRepo),
		Session:         session,
		Database:        draftRepo,
		IndexHTML:       indexHTML,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Starting API server", "addr", addr)
		slog.Debug("PDF service configuration", "url", cfg.PDFServiceURL, "timeout", cfg.PDFTimeout)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	// Preview streams never finish on their own, end them so Shutdown can
	// drain the remaining requests. Draft updates answered during the drain
	// are flushed afterwards.
	session.CloseStreams()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	if session.Flush() {
		slog.Info("Saved pending draft")
	}
}
