package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"photospro/internal/contextutil"
	"photospro/internal/records"
	"photospro/internal/store"
)

// RecordService exposes one collection to callers outside the store,
// translating store failures into the service error taxonomy.
type RecordService[T records.Record] struct {
	c *store.Collection[T]
}

// NewRecordService creates a RecordService over c.
func NewRecordService[T records.Record](c *store.Collection[T]) *RecordService[T] {
	return &RecordService[T]{c: c}
}

// Kind returns the collection kind.
func (s *RecordService[T]) Kind() records.Kind { return s.c.Kind() }

// List returns every record in insertion order.
func (s *RecordService[T]) List() []T { return s.c.List() }

// Get returns the record with id or ErrNotFound.
func (s *RecordService[T]) Get(id uuid.UUID) (T, error) {
	r, ok := s.c.Get(id)
	if !ok {
		return r, fmt.Errorf("%s %s: %w", s.c.Kind().Path(), id, ErrNotFound)
	}
	return r, nil
}

// Save upserts r under id. The record's own ID must equal id, otherwise
// ErrInvalidInput is returned.
func (s *RecordService[T]) Save(ctx context.Context, id uuid.UUID, r T) error {
	if r.RecordID() != id {
		return fmt.Errorf("body id %s does not match path id %s: %w", r.RecordID(), id, ErrInvalidInput)
	}

	err := s.c.Upsert(ctx, r)
	var verr *store.ValidationError
	switch {
	case err == nil:
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "record saved", "kind", s.c.Kind().Key(), "id", id)
		return nil
	case errors.As(err, &verr):
		return &ValidationError{Field: verr.Field, Message: verr.Message}
	default:
		return storageError(err, "failed to save record")
	}
}

// Delete removes the record with id. Unknown ids are not an error.
func (s *RecordService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.c.Delete(ctx, id); err != nil {
		return storageError(err, "failed to delete record")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "record deleted", "kind", s.c.Kind().Key(), "id", id)
	return nil
}
