package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DraftRepo is a key-value store for editor text.
type DraftRepo struct {
	db *sql.DB
}

// NewDraftRepo creates a new DraftRepo.
func NewDraftRepo(db *sql.DB) *DraftRepo {
	return &DraftRepo{db: db}
}

// Find returns the draft stored under key. The boolean is false when no
// draft exists.
func (r *DraftRepo) Find(ctx context.Context, key string) (Draft, bool, error) {
	var draft Draft
	err := r.db.QueryRowContext(ctx,
		"SELECT key, content, updated_at FROM drafts WHERE key = ?",
		key,
	).Scan(&draft.Key, &draft.Content, &draft.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Draft{}, false, nil
	}
	if err != nil {
		return Draft{}, false, fmt.Errorf("query draft %q: %w", key, err)
	}
	return draft, true, nil
}

// Get returns the text stored under key.
func (r *DraftRepo) Get(ctx context.Context, key string) (string, bool, error) {
	draft, ok, err := r.Find(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	return draft.Content, true, nil
}

// Set stores content under key, replacing any previous value.
func (r *DraftRepo) Set(ctx context.Context, key, content string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO drafts (key, content, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET content = excluded.content, updated_at = CURRENT_TIMESTAMP`,
		key, content,
	)
	if err != nil {
		return fmt.Errorf("upsert draft %q: %w", key, err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (r *DraftRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
