package editor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a change is committed.
const DefaultDelay = 300 * time.Millisecond

// DefaultKey is the store key of the editor text.
const DefaultKey = "markdownContent"

// DraftStore persists editor text under a key.
type DraftStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, content string) error
}

// PreviewFunc renders editor text into a live preview fragment.
type PreviewFunc func(text string) (string, error)

// SessionConfig holds the tunables of a session.
type SessionConfig struct {
	Key   string
	Delay time.Duration
}

// Session owns the editor text. Changes update the text at once and are
// committed after a quiet period: the latest text is persisted, the preview
// is re-rendered and math typesetting is requested. Intermediate states of a
// burst are never committed.
type Session struct {
	mu   sync.RWMutex
	text string

	key        string
	store      DraftStore
	preview    PreviewFunc
	hub        *Hub
	typesetter Typesetter
	debouncer  *Debouncer
	logger     *slog.Logger
}

// NewSession creates a session. A nil typesetter disables retypesetting.
func NewSession(store DraftStore, preview PreviewFunc, hub *Hub, typesetter Typesetter, cfg SessionConfig) *Session {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if typesetter == nil {
		typesetter = NopTypesetter{}
	}
	return &Session{
		key:        cfg.Key,
		store:      store,
		preview:    preview,
		hub:        hub,
		typesetter: typesetter,
		debouncer:  NewDebouncer(cfg.Delay),
		logger:     slog.Default(),
	}
}

// Restore loads the persisted text. A missing draft leaves the text empty.
func (s *Session) Restore(ctx context.Context) (string, error) {
	content, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return "", fmt.Errorf("restore draft: %w", err)
	}
	if !ok {
		return "", nil
	}

	s.mu.Lock()
	s.text = content
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "draft restored", "key", s.key, "length", len(content))
	return content, nil
}

// Value returns the current editor text.
func (s *Session) Value() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

// Change replaces the editor text and schedules a commit.
func (s *Session) Change(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()

	s.debouncer.Trigger(s.commit)
}

// Pending reports whether a change is waiting to be committed.
func (s *Session) Pending() bool {
	return s.debouncer.Pending()
}

// Subscribe registers for preview and retypeset updates.
func (s *Session) Subscribe() (<-chan Update, func()) {
	return s.hub.Subscribe()
}

// CloseStreams ends every preview subscription. Changes are still accepted
// and committed afterwards, they just reach no subscriber.
func (s *Session) CloseStreams() {
	s.hub.Close()
}

// Flush commits a pending change right away. It reports whether there was
// one.
func (s *Session) Flush() bool {
	return s.debouncer.Flush()
}

// Close commits any pending change and closes subscriber channels.
func (s *Session) Close() {
	s.Flush()
	s.CloseStreams()
}

func (s *Session) commit() {
	ctx := context.Background()
	text := s.Value()

	if err := s.store.Set(ctx, s.key, text); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist draft", "key", s.key, "error", err)
	}

	if s.preview == nil {
		return
	}
	html, err := s.preview(text)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render preview", "error", err)
		return
	}
	s.hub.Publish(Update{Event: EventPreview, HTML: html})
	s.typesetter.Retypeset(PreviewScope)
}
