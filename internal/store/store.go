// Package store owns the five record collections in memory, mirrors every
// mutation to persistent storage, and notifies observers after each
// successful write.
package store

import (
	"context"
	"errors"
	"sync"

	"photospro/internal/contextutil"
	"photospro/internal/persist"
	"photospro/internal/records"
)

// Options tunes store behavior.
type Options struct {
	// Validate enables range checks on ratings (1..5) and durations (>= 0)
	// at the upsert boundary. Enum labels are always checked.
	Validate bool
}

// collection is the untyped view the Store uses to reset every kind.
type collection interface {
	Kind() records.Kind
	resetLocked(ctx context.Context) error
}

// Store is the single owner of all record collections. A Store is ready as
// soon as New returns; there is no loading state.
//
// One mutex guards all five collections. Operations on different kinds are
// not ordered with respect to each other and there are no cross-kind
// transactions.
type Store struct {
	mu      sync.RWMutex
	adapter *persist.Adapter
	opts    Options

	listenersMu sync.Mutex
	listeners   map[int]func(records.Kind)
	nextID      int

	portfolio *Collection[records.Portfolio]
	sessions  *Collection[records.PhotoSession]
	clients   *Collection[records.Client]
	tasks     *Collection[records.Task]
	finances  *Collection[records.Finance]
	all       []collection
}

// New loads every collection from adapter and returns a ready Store.
// A collection that is missing or cannot be decoded starts empty.
func New(ctx context.Context, adapter *persist.Adapter, opts Options) *Store {
	s := &Store{
		adapter:   adapter,
		opts:      opts,
		listeners: make(map[int]func(records.Kind)),
	}

	s.portfolio = newCollection(ctx, s, records.KindPortfolio, validatePortfolio)
	s.sessions = newCollection(ctx, s, records.KindSessions, validateSession)
	s.clients = newCollection(ctx, s, records.KindClients, validateClient)
	s.tasks = newCollection(ctx, s, records.KindTasks, validateTask)
	s.finances = newCollection(ctx, s, records.KindFinances, validateFinance)
	s.all = []collection{s.portfolio, s.sessions, s.clients, s.tasks, s.finances}

	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "store loaded",
		"portfolio", s.portfolio.Len(),
		"sessions", s.sessions.Len(),
		"clients", s.clients.Len(),
		"tasks", s.tasks.Len(),
		"finances", s.finances.Len(),
	)

	return s
}

func (s *Store) Portfolio() *Collection[records.Portfolio]   { return s.portfolio }
func (s *Store) Sessions() *Collection[records.PhotoSession] { return s.sessions }
func (s *Store) Clients() *Collection[records.Client]        { return s.clients }
func (s *Store) Tasks() *Collection[records.Task]            { return s.tasks }
func (s *Store) Finances() *Collection[records.Finance]      { return s.finances }

// Counts returns the number of records in each collection.
func (s *Store) Counts() map[records.Kind]int {
	return map[records.Kind]int{
		records.KindPortfolio: s.portfolio.Len(),
		records.KindSessions:  s.sessions.Len(),
		records.KindClients:   s.clients.Len(),
		records.KindTasks:     s.tasks.Len(),
		records.KindFinances:  s.finances.Len(),
	}
}

// Reset empties all five collections and persists each as empty. It is
// irreversible; callers confirm with the user first. Every collection is
// attempted even if an earlier write fails.
func (s *Store) Reset(ctx context.Context) error {
	var errs []error
	var changed []records.Kind

	s.mu.Lock()
	for _, c := range s.all {
		if err := c.resetLocked(ctx); err != nil {
			errs = append(errs, err)
			continue
		}
		changed = append(changed, c.Kind())
	}
	s.mu.Unlock()

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "store reset", "failed", len(errs))

	for _, k := range changed {
		s.notify(k)
	}
	return errors.Join(errs...)
}

// OnChange registers fn to be called after any successful write to a
// collection. fn runs synchronously on the mutating goroutine, after the
// store lock is released, so it may read from the store.
func (s *Store) OnChange(fn func(records.Kind)) (cancel func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) notify(kind records.Kind) {
	s.listenersMu.Lock()
	fns := make([]func(records.Kind), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(kind)
	}
}
