// Package persist encodes whole record collections into blobs. A collection is
// always written and read as one JSON array under its key.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"photospro/internal/contextutil"
	"photospro/internal/storage"
)

// Adapter saves and loads collections through a BlobStore.
type Adapter struct {
	blobs storage.BlobStore
}

// NewAdapter creates a new Adapter.
func NewAdapter(blobs storage.BlobStore) *Adapter {
	return &Adapter{blobs: blobs}
}

// Save encodes records as a JSON array and replaces the blob under key.
func Save[T any](ctx context.Context, a *Adapter, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := a.blobs.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Load decodes the collection stored under key. It returns an empty slice
// when the key is absent, unreadable, or fails to decode; the last two cases
// are logged because they hide data loss from the caller.
func Load[T any](ctx context.Context, a *Adapter, key string) []T {
	logger := contextutil.LoggerFromContext(ctx)

	data, err := a.blobs.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		logger.DebugContext(ctx, "collection not saved yet", "key", key)
		return []T{}
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to read collection, starting empty", "key", key, "error", err)
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.ErrorContext(ctx, "failed to decode collection, starting empty",
			"key", key, "bytes", len(data), "error", err)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}
