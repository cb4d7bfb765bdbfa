package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_preference_store.go -package=mocks photospro/internal/storage PreferenceStore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// PreferenceStore holds user preference flags outside the record collections.
type PreferenceStore interface {
	// GetBool returns the flag stored under key, or def if it was never set.
	GetBool(ctx context.Context, key string, def bool) (bool, error)
	// SetBool stores the flag under key.
	SetBool(ctx context.Context, key string, value bool) error
}

// PreferenceRepo provides methods for preference operations.
// It implements the PreferenceStore interface.
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new PreferenceRepo.
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetBool returns the flag stored under key, or def if it was never set.
func (r *PreferenceRepo) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("failed to query preference %s: %w", key, err)
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("failed to parse preference %s: %w", key, err)
	}
	return v, nil
}

// SetBool stores the flag under key.
func (r *PreferenceRepo) SetBool(ctx context.Context, key string, value bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (key) DO UPDATE SET
		 value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, strconv.FormatBool(value),
	)
	if err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}
