package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_draft_service.go -package=mocks mdpress/internal/service DraftService

import (
	"context"
	"fmt"
	"strings"

	"mdpress/internal/contextutil"
	"mdpress/internal/storage"
)

// DraftFinder looks up persisted drafts by key.
type DraftFinder interface {
	Find(ctx context.Context, key string) (storage.Draft, bool, error)
}

// DraftService reads persisted drafts, independently of the live session.
type DraftService interface {
	// Find returns the draft stored under key, or ErrNotFound.
	Find(ctx context.Context, key string) (storage.Draft, error)
}

type draftService struct {
	store DraftFinder
}

// NewDraftService creates a new DraftService.
func NewDraftService(store DraftFinder) DraftService {
	return &draftService{store: store}
}

func (s *draftService) Find(ctx context.Context, key string) (storage.Draft, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(key) == "" {
		return storage.Draft{}, &ValidationError{Field: "key", Message: "cannot be empty"}
	}

	draft, ok, err := s.store.Find(ctx, key)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load draft", "key", key, "error", err)
		return storage.Draft{}, WrapError(err, "failed to load draft")
	}
	if !ok {
		logger.DebugContext(ctx, "draft not found", "key", key)
		return storage.Draft{}, fmt.Errorf("draft %q: %w", key, ErrNotFound)
	}
	return draft, nil
}
