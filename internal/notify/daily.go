package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DailyOptions configures a DailyScheduler.
type DailyOptions struct {
	Hour       int
	Minute     int
	Permission PermissionStatus
	// GrantOnRequest is the answer given when permission is requested while
	// not yet determined.
	GrantOnRequest bool
	// Deliver receives each due reminder. Defaults to logging it.
	Deliver func(ctx context.Context, r Reminder)
	Logger  *slog.Logger
}

// DailyScheduler fires a reminder once a day at a fixed local time from a
// background goroutine. It implements Scheduler.
type DailyScheduler struct {
	hour, minute int
	grant        bool
	deliver      func(ctx context.Context, r Reminder)
	logger       *slog.Logger

	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	mu         sync.Mutex
	permission PermissionStatus
	stop       context.CancelFunc
	done       chan struct{}
}

// NewDailyScheduler creates a scheduler with nothing scheduled.
func NewDailyScheduler(opts DailyOptions) *DailyScheduler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	permission := opts.Permission
	if permission == "" {
		permission = PermissionNotDetermined
	}
	d := &DailyScheduler{
		hour:       opts.Hour,
		minute:     opts.Minute,
		grant:      opts.GrantOnRequest,
		deliver:    opts.Deliver,
		logger:     logger,
		now:        time.Now,
		after:      time.After,
		permission: permission,
	}
	if d.deliver == nil {
		d.deliver = d.logReminder
	}
	return d
}

func (d *DailyScheduler) logReminder(ctx context.Context, r Reminder) {
	d.logger.InfoContext(ctx, "reminder", "title", r.Title, "body", r.Body, "sound", r.Sound)
}

func (d *DailyScheduler) Permission() PermissionStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.permission
}

func (d *DailyScheduler) RequestPermission(ctx context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.permission == PermissionNotDetermined {
		if d.grant {
			d.permission = PermissionAuthorized
		} else {
			d.permission = PermissionDenied
		}
		d.logger.InfoContext(ctx, "notification permission requested", "status", d.permission)
	}
	return d.permission == PermissionAuthorized
}

func (d *DailyScheduler) ScheduleDaily(withVibration bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	d.stop = cancel
	d.done = done

	go d.run(ctx, done, DailyReminder(withVibration))

	d.logger.Info("daily reminder scheduled", "hour", d.hour, "minute", d.minute, "sound", withVibration)
}

func (d *DailyScheduler) RemoveScheduled() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopLocked() {
		d.logger.Info("scheduled reminders removed")
	}
}

// Scheduled reports whether a reminder is pending.
func (d *DailyScheduler) Scheduled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stop != nil
}

// Close cancels any pending reminder and waits for the goroutine to exit.
func (d *DailyScheduler) Close() {
	d.mu.Lock()
	done := d.done
	d.stopLocked()
	d.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (d *DailyScheduler) stopLocked() bool {
	if d.stop == nil {
		return false
	}
	d.stop()
	d.stop = nil
	d.done = nil
	return true
}

func (d *DailyScheduler) run(ctx context.Context, done chan struct{}, r Reminder) {
	defer close(done)
	for {
		wait := NextRun(d.now(), d.hour, d.minute).Sub(d.now())
		select {
		case <-ctx.Done():
			return
		case <-d.after(wait):
			d.deliver(ctx, r)
		}
	}
}

// NextRun returns the first time at hour:minute strictly after now, in now's
// location.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
