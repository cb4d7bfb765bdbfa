package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_blob_store.go -package=mocks photospro/internal/storage BlobStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a key has never been written.
	ErrNotFound = errors.New("record not found")
)

// BlobStore is a durable key-value slot store. Each Put replaces the whole
// value for its key in a single statement.
type BlobStore interface {
	// Get returns the value stored under key.
	// Returns nil and ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// BlobRepo stores blobs in SQLite.
// It implements the BlobStore interface.
type BlobRepo struct {
	db *sql.DB
}

// NewBlobRepo creates a new BlobRepo.
func NewBlobRepo(db *sql.DB) *BlobRepo {
	return &BlobRepo{db: db}
}

// Get returns the value stored under key.
func (r *BlobRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, "SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query blob %s: %w", key, err)
	}
	return value, nil
}

// Put stores value under key using INSERT ... ON CONFLICT, so a reader never
// observes a partially written blob.
func (r *BlobRepo) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blobs (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (key) DO UPDATE SET
		 value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to put blob %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (r *BlobRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM blobs WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// Keys returns all stored keys ordered by name.
func (r *BlobRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key FROM blobs ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}
