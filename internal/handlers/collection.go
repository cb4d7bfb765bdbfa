package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"photospro/internal/contextutil"
	"photospro/internal/records"
	"photospro/internal/service"
	"photospro/internal/store"
)

// CollectionHandler serves CRUD routes for one record collection.
type CollectionHandler[T records.Record] struct {
	svc       *service.RecordService[T]
	newRecord func() T
	project   func([]T, url.Values) ([]T, error)
}

// NewCollectionHandler creates a handler for one collection. project turns
// the raw list into the filtered and sorted list shown to users.
func NewCollectionHandler[T records.Record](svc *service.RecordService[T], newRecord func() T, project func([]T, url.Values) ([]T, error)) *CollectionHandler[T] {
	return &CollectionHandler[T]{
		svc:       svc,
		newRecord: newRecord,
		project:   project,
	}
}

// NewPortfolioHandler serves the portfolio collection of s.
func NewPortfolioHandler(s *store.Store) *CollectionHandler[records.Portfolio] {
	return NewCollectionHandler(service.NewRecordService(s.Portfolio()), records.NewPortfolio, projectPortfolio)
}

func NewSessionsHandler(s *store.Store) *CollectionHandler[records.PhotoSession] {
	return NewCollectionHandler(service.NewRecordService(s.Sessions()), records.NewPhotoSession, projectSessions)
}

func NewClientsHandler(s *store.Store) *CollectionHandler[records.Client] {
	return NewCollectionHandler(service.NewRecordService(s.Clients()), records.NewClient, projectClients)
}

func NewTasksHandler(s *store.Store) *CollectionHandler[records.Task] {
	return NewCollectionHandler(service.NewRecordService(s.Tasks()), records.NewTask, projectTasks)
}

func NewFinancesHandler(s *store.Store) *CollectionHandler[records.Finance] {
	return NewCollectionHandler(service.NewRecordService(s.Finances()), records.NewFinance, projectFinances)
}

// Mount registers the collection routes on r.
func (h *CollectionHandler[T]) Mount(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/new", h.New)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Put)
	r.Delete("/{id}", h.Delete)
}

// List returns the projected list, or the stored order with raw=true.
func (h *CollectionHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	items := h.svc.List()
	if q.Get("raw") != "true" {
		projected, err := h.project(items, q)
		if err != nil {
			handleServiceError(w, ctx, err, "Failed to list records")
			return
		}
		items = projected
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

// Get returns one record.
func (h *CollectionHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.Get(id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get record")
		return
	}
	writeJSON(ctx, w, http.StatusOK, rec)
}

// New returns a record with default values and a fresh ID. Nothing is stored
// until the client PUTs it back.
func (h *CollectionHandler[T]) New(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.newRecord())
}

// Put creates or replaces the record at the path id.
func (h *CollectionHandler[T]) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var rec T
	if err := decodeBody(w, r, &rec); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.Save(ctx, id, rec); err != nil {
		handleServiceError(w, ctx, err, "Failed to save record")
		return
	}
	writeJSON(ctx, w, http.StatusOK, rec)
}

// Delete removes the record. It succeeds whether or not the record existed.
func (h *CollectionHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete record")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid record id")
		return uuid.Nil, false
	}
	return id, true
}
