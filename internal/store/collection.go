package store

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"photospro/internal/contextutil"
	"photospro/internal/persist"
	"photospro/internal/records"
)

// Collection holds the records of one kind in insertion order.
type Collection[T records.Record] struct {
	s        *Store
	k        records.Kind
	items    []T
	validate func(T, bool) error
}

func newCollection[T records.Record](ctx context.Context, s *Store, kind records.Kind, validate func(T, bool) error) *Collection[T] {
	return &Collection[T]{
		s:        s,
		k:        kind,
		items:    persist.Load[T](ctx, s.adapter, kind.Key()),
		validate: validate,
	}
}

// Kind returns the collection kind.
func (c *Collection[T]) Kind() records.Kind { return c.k }

// List returns the records in insertion order. The returned slice is a copy;
// sorting or filtering it does not affect the store.
func (c *Collection[T]) List() []T {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	return slices.Clone(c.items)
}

// Get returns the record with id, if present.
func (c *Collection[T]) Get(id uuid.UUID) (T, bool) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	return len(c.items)
}

// Upsert replaces the record with the same ID in place, or appends it if the
// ID is new, then persists the whole collection. On a write error the
// in-memory change is kept and the error is returned.
func (c *Collection[T]) Upsert(ctx context.Context, r T) error {
	if err := c.validate(r, c.s.opts.Validate); err != nil {
		return err
	}

	c.s.mu.Lock()
	if i := c.indexLocked(r.RecordID()); i >= 0 {
		c.items[i] = r
	} else {
		c.items = append(c.items, r)
	}
	err := c.persistLocked(ctx, "upsert")
	c.s.mu.Unlock()

	if err != nil {
		return err
	}
	c.s.notify(c.k)
	return nil
}

// Delete removes the record with id and persists. Deleting an unknown id is
// a no-op and writes nothing.
func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	c.s.mu.Lock()
	i := c.indexLocked(id)
	if i < 0 {
		c.s.mu.Unlock()
		return nil
	}
	c.items = slices.Delete(c.items, i, i+1)
	err := c.persistLocked(ctx, "delete")
	c.s.mu.Unlock()

	if err != nil {
		return err
	}
	c.s.notify(c.k)
	return nil
}

func (c *Collection[T]) resetLocked(ctx context.Context) error {
	c.items = []T{}
	return c.persistLocked(ctx, "reset")
}

func (c *Collection[T]) indexLocked(id uuid.UUID) int {
	return slices.IndexFunc(c.items, func(r T) bool { return r.RecordID() == id })
}

func (c *Collection[T]) persistLocked(ctx context.Context, op string) error {
	mutationsTotal.WithLabelValues(c.k.Key(), op).Inc()

	if err := persist.Save(ctx, c.s.adapter, c.k.Key(), c.items); err != nil {
		persistFailuresTotal.WithLabelValues(c.k.Key()).Inc()
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to persist collection",
			"kind", c.k.Key(), "op", op, "error", err)
		return err
	}
	return nil
}
