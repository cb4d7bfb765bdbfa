package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"photospro/internal/persist"
	"photospro/internal/records"
	"photospro/internal/storage"
	"photospro/internal/storage/mocks"
)

// openStore opens a store over a SQLite file at path.
func openStore(t *testing.T, path string, opts Options) *Store {
	t.Helper()

	db, err := storage.New(path)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}

	return New(context.Background(), persist.NewAdapter(storage.NewBlobRepo(db)), opts)
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	return openStore(t, path, Options{}), path
}

func titles(items []records.Task) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew_EmptyDatabase(t *testing.T) {
	s, _ := newTestStore(t)

	for kind, n := range s.Counts() {
		if n != 0 {
			t.Errorf("Counts()[%s] = %d, want 0", kind, n)
		}
	}
	if got := s.Portfolio().List(); got == nil {
		t.Error("List() returned nil, want empty slice")
	}
}

func TestStore_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	p := records.NewPortfolio()
	p.Title = "Golden hour"
	p.IsFavorite = true
	sess := records.NewPhotoSession()
	sess.Title = "Forest editorial"
	c := records.NewClient()
	c.Name = "Anna"
	task := records.NewTask()
	task.Title = "Cull RAW files"
	f := records.NewFinance()
	f.Title = "Wedding deposit"
	f.Amount = 500

	if err := s.Portfolio().Upsert(ctx, p); err != nil {
		t.Fatalf("Portfolio().Upsert() error = %v", err)
	}
	if err := s.Sessions().Upsert(ctx, sess); err != nil {
		t.Fatalf("Sessions().Upsert() error = %v", err)
	}
	if err := s.Clients().Upsert(ctx, c); err != nil {
		t.Fatalf("Clients().Upsert() error = %v", err)
	}
	if err := s.Tasks().Upsert(ctx, task); err != nil {
		t.Fatalf("Tasks().Upsert() error = %v", err)
	}
	if err := s.Finances().Upsert(ctx, f); err != nil {
		t.Fatalf("Finances().Upsert() error = %v", err)
	}

	reopened := openStore(t, path, Options{})

	gotP, ok := reopened.Portfolio().Get(p.ID)
	if !ok || gotP.Title != "Golden hour" || !gotP.IsFavorite {
		t.Errorf("Portfolio().Get() = %+v, %v", gotP, ok)
	}
	if !gotP.CreatedDate.Equal(p.CreatedDate.Time) {
		t.Errorf("CreatedDate = %v, want %v", gotP.CreatedDate, p.CreatedDate)
	}
	if got, ok := reopened.Sessions().Get(sess.ID); !ok || got.Title != "Forest editorial" {
		t.Errorf("Sessions().Get() = %+v, %v", got, ok)
	}
	if got, ok := reopened.Clients().Get(c.ID); !ok || got.Name != "Anna" {
		t.Errorf("Clients().Get() = %+v, %v", got, ok)
	}
	if got, ok := reopened.Tasks().Get(task.ID); !ok || got.Title != "Cull RAW files" {
		t.Errorf("Tasks().Get() = %+v, %v", got, ok)
	}
	if got, ok := reopened.Finances().Get(f.ID); !ok || got.Amount != 500 {
		t.Errorf("Finances().Get() = %+v, %v", got, ok)
	}
}

func TestCollection_UpsertReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	a, b, c := records.NewTask(), records.NewTask(), records.NewTask()
	a.Title, b.Title, c.Title = "A", "B", "C"
	for _, task := range []records.Task{a, b, c} {
		if err := s.Tasks().Upsert(ctx, task); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	b.Title = "B2"
	if err := s.Tasks().Upsert(ctx, b); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	// Upserting the same value again changes nothing.
	if err := s.Tasks().Upsert(ctx, b); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	want := []string{"A", "B2", "C"}
	if got := titles(s.Tasks().List()); !equalStrings(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if got := titles(openStore(t, path, Options{}).Tasks().List()); !equalStrings(got, want) {
		t.Errorf("List() after restart = %v, want %v", got, want)
	}
}

func TestCollection_EditTaskScenario(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	task := records.NewTask()
	task.Title = "Edit Wedding Photos"
	task.Category = records.TaskEditing
	task.Priority = records.TaskPriorityHigh
	task.Status = records.TaskInProgress
	task.EstimatedDuration = 240
	if err := s.Tasks().Upsert(ctx, task); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	actual := 200
	task.Status = records.TaskCompleted
	task.ActualDuration = &actual
	task.CompletedDate = records.TimePtr(task.CreatedDate.Add(3 * time.Hour))
	if err := s.Tasks().Upsert(ctx, task); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got := openStore(t, path, Options{}).Tasks().List()
	if len(got) != 1 {
		t.Fatalf("List() len = %d, want 1", len(got))
	}
	if got[0].Status != records.TaskCompleted {
		t.Errorf("Status = %q, want %q", got[0].Status, records.TaskCompleted)
	}
	if got[0].ActualDuration == nil || *got[0].ActualDuration != 200 {
		t.Errorf("ActualDuration = %v, want 200", got[0].ActualDuration)
	}
	if got[0].CompletedDate == nil {
		t.Error("CompletedDate = nil, want set")
	}
}

func TestCollection_Delete(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	a, b := records.NewTask(), records.NewTask()
	a.Title, b.Title = "A", "B"
	for _, task := range []records.Task{a, b} {
		if err := s.Tasks().Upsert(ctx, task); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	if err := s.Tasks().Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := s.Tasks().Get(a.ID); ok {
		t.Error("Get() found deleted record")
	}
	if got := titles(openStore(t, path, Options{}).Tasks().List()); !equalStrings(got, []string{"B"}) {
		t.Errorf("List() after restart = %v, want [B]", got)
	}
}

func TestCollection_DeleteUnknownIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mocks.NewMockBlobStore(ctrl)
	blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).Times(5)
	// No Put is expected: deleting an unknown id must not write.

	s := New(context.Background(), persist.NewAdapter(blobs), Options{})

	if err := s.Clients().Delete(context.Background(), uuid.New()); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}
	if s.Clients().Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Clients().Len())
	}
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.Portfolio().Upsert(ctx, records.NewPortfolio()); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := s.Clients().Upsert(ctx, records.NewClient()); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Finances().Upsert(ctx, records.NewFinance()); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	for kind, n := range s.Counts() {
		if n != 0 {
			t.Errorf("Counts()[%s] = %d after reset, want 0", kind, n)
		}
	}
	for kind, n := range openStore(t, path, Options{}).Counts() {
		if n != 0 {
			t.Errorf("Counts()[%s] = %d after restart, want 0", kind, n)
		}
	}
}

func TestStore_ResetContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mocks.NewMockBlobStore(ctrl)
	blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).Times(5)

	writeErr := errors.New("disk full")
	blobs.EXPECT().Put(gomock.Any(), records.KindClients.Key(), gomock.Any()).Return(writeErr)
	blobs.EXPECT().Put(gomock.Any(), gomock.Not(records.KindClients.Key()), []byte("[]")).Return(nil).Times(4)

	s := New(context.Background(), persist.NewAdapter(blobs), Options{})

	var notified []records.Kind
	s.OnChange(func(k records.Kind) { notified = append(notified, k) })

	err := s.Reset(context.Background())
	if !errors.Is(err, writeErr) {
		t.Fatalf("Reset() error = %v, want %v", err, writeErr)
	}
	if len(notified) != 4 {
		t.Errorf("notified %v, want the four kinds that persisted", notified)
	}
}

func TestNew_CorruptBlobIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	db, err := storage.New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		t.Fatal(err)
	}
	repo := storage.NewBlobRepo(db)

	s := New(ctx, persist.NewAdapter(repo), Options{})
	client := records.NewClient()
	client.Name = "Survivor"
	if err := s.Clients().Upsert(ctx, client); err != nil {
		t.Fatal(err)
	}
	if err := s.Tasks().Upsert(ctx, records.NewTask()); err != nil {
		t.Fatal(err)
	}

	if err := repo.Put(ctx, records.KindTasks.Key(), []byte(`{not json`)); err != nil {
		t.Fatal(err)
	}

	reopened := New(ctx, persist.NewAdapter(repo), Options{})
	if n := reopened.Tasks().Len(); n != 0 {
		t.Errorf("Tasks().Len() = %d, want 0 for corrupt blob", n)
	}
	if got, ok := reopened.Clients().Get(client.ID); !ok || got.Name != "Survivor" {
		t.Errorf("Clients().Get() = %+v, %v, want intact client", got, ok)
	}
}

func TestNew_UnknownLabelEmptiesCollection(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	blobs := mocks.NewMockBlobStore(ctrl)

	blobs.EXPECT().Get(gomock.Any(), records.KindTasks.Key()).
		Return([]byte(`[{"id":"`+uuid.NewString()+`","status":"Someday"}]`), nil)
	blobs.EXPECT().Get(gomock.Any(), gomock.Not(records.KindTasks.Key())).
		Return(nil, storage.ErrNotFound).Times(4)

	s := New(ctx, persist.NewAdapter(blobs), Options{})
	if n := s.Tasks().Len(); n != 0 {
		t.Errorf("Tasks().Len() = %d, want 0", n)
	}
}

func TestCollection_UpsertPersistFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	blobs := mocks.NewMockBlobStore(ctrl)
	blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).Times(5)

	writeErr := errors.New("read-only file system")
	blobs.EXPECT().Put(gomock.Any(), records.KindFinances.Key(), gomock.Any()).Return(writeErr)

	s := New(ctx, persist.NewAdapter(blobs), Options{})

	called := false
	s.OnChange(func(records.Kind) { called = true })

	f := records.NewFinance()
	err := s.Finances().Upsert(ctx, f)
	if !errors.Is(err, writeErr) {
		t.Fatalf("Upsert() error = %v, want %v", err, writeErr)
	}
	if called {
		t.Error("OnChange callback fired for a failed write")
	}
	if _, ok := s.Finances().Get(f.ID); !ok {
		t.Error("in-memory change was discarded after failed write")
	}
}

func TestStore_OnChange(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	var got []records.Kind
	cancel := s.OnChange(func(k records.Kind) {
		// Reading from the store inside a callback must not deadlock.
		_ = s.Sessions().Len()
		got = append(got, k)
	})

	sess := records.NewPhotoSession()
	if err := s.Sessions().Upsert(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if err := s.Sessions().Delete(ctx, sess.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.Sessions().Delete(ctx, sess.ID); err != nil {
		t.Fatal(err)
	}

	cancel()
	if err := s.Clients().Upsert(ctx, records.NewClient()); err != nil {
		t.Fatal(err)
	}

	want := []records.Kind{records.KindSessions, records.KindSessions}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notifications[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCollection_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		validate  bool
		mutate    func(*records.Client)
		wantField string
	}{
		{
			name:     "default client passes",
			validate: true,
			mutate:   func(*records.Client) {},
		},
		{
			name:     "rating out of range stored when validation off",
			validate: false,
			mutate:   func(c *records.Client) { c.Rating = 9 },
		},
		{
			name:      "rating out of range rejected when validation on",
			validate:  true,
			mutate:    func(c *records.Client) { c.Rating = 0 },
			wantField: "rating",
		},
		{
			name:      "nil id rejected when validation on",
			validate:  true,
			mutate:    func(c *records.Client) { c.ID = uuid.Nil },
			wantField: "id",
		},
		{
			name:      "unknown label always rejected",
			validate:  false,
			mutate:    func(c *records.Client) { c.Status = "Former" },
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openStore(t, filepath.Join(t.TempDir(), "store.db"), Options{Validate: tt.validate})

			c := records.NewClient()
			tt.mutate(&c)
			err := s.Clients().Upsert(ctx, c)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Upsert() error = %v", err)
				}
				if s.Clients().Len() != 1 {
					t.Errorf("Len() = %d, want 1", s.Clients().Len())
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Upsert() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
			if s.Clients().Len() != 0 {
				t.Errorf("Len() = %d, want 0 after rejected upsert", s.Clients().Len())
			}
		})
	}
}

func TestValidateTask_Durations(t *testing.T) {
	negative := -5

	tests := []struct {
		name    string
		task    func() records.Task
		wantErr string
	}{
		{
			name: "valid",
			task: records.NewTask,
		},
		{
			name: "negative estimate",
			task: func() records.Task {
				task := records.NewTask()
				task.EstimatedDuration = -1
				return task
			},
			wantErr: "validation error on tasks.estimatedDuration: must not be negative, got -1",
		},
		{
			name: "negative actual",
			task: func() records.Task {
				task := records.NewTask()
				task.ActualDuration = &negative
				return task
			},
			wantErr: "validation error on tasks.actualDuration: must not be negative, got -5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTask(tt.task(), true)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validateTask() error = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("validateTask() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	const workers = 8
	const perWorker = 10

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				task := records.NewTask()
				task.Title = fmt.Sprintf("w%d-%d", w, i)
				if err := s.Tasks().Upsert(ctx, task); err != nil {
					t.Errorf("Upsert() error = %v", err)
					return
				}
				_ = s.Tasks().List()
				_ = s.Counts()
			}
		}(w)
	}
	wg.Wait()

	if n := s.Tasks().Len(); n != workers*perWorker {
		t.Errorf("Len() = %d, want %d", n, workers*perWorker)
	}
	if n := openStore(t, path, Options{}).Tasks().Len(); n != workers*perWorker {
		t.Errorf("Len() after restart = %d, want %d", n, workers*perWorker)
	}
}
