package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_settings_service.go -package=mocks -mock_names=SettingsService=MockSettingsService photospro/internal/service SettingsService

import (
	"context"
	"log/slog"

	"photospro/internal/contextutil"
	"photospro/internal/notify"
	"photospro/internal/storage"
)

// Preference keys. They match the keys the mobile client stores.
const (
	KeyNotificationsEnabled = "isNotificationEnabled"
	KeyVibrationEnabled     = "isVibrationEnabled"
)

// Resetter empties every record collection.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Preferences is the current state of the user's settings.
type Preferences struct {
	NotificationsEnabled bool                    `json:"isNotificationEnabled"`
	VibrationEnabled     bool                    `json:"isVibrationEnabled"`
	Permission           notify.PermissionStatus `json:"permission"`
}

// SettingsService manages reminder preferences and the full data reset.
type SettingsService interface {
	// Preferences returns the stored preferences.
	Preferences(ctx context.Context) (Preferences, error)
	// SetVibration stores the vibration flag and reschedules an active reminder.
	SetVibration(ctx context.Context, enabled bool) (Preferences, error)
	// ToggleNotifications turns the daily reminder on or off, asking for
	// permission when needed. It returns whether reminders ended up enabled.
	// ErrPermissionDenied is returned when the user has blocked them.
	ToggleNotifications(ctx context.Context, enabled bool) (bool, error)
	// ResetAll disables reminders and erases every record.
	ResetAll(ctx context.Context) error
}

type settingsService struct {
	prefs     storage.PreferenceStore
	scheduler notify.Scheduler
	store     Resetter
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(prefs storage.PreferenceStore, scheduler notify.Scheduler, store Resetter) SettingsService {
	return &settingsService{
		prefs:     prefs,
		scheduler: scheduler,
		store:     store,
	}
}

func (s *settingsService) Preferences(ctx context.Context) (Preferences, error) {
	notifications, err := s.prefs.GetBool(ctx, KeyNotificationsEnabled, false)
	if err != nil {
		return Preferences{}, storageError(err, "failed to read notification preference")
	}
	vibration, err := s.prefs.GetBool(ctx, KeyVibrationEnabled, true)
	if err != nil {
		return Preferences{}, storageError(err, "failed to read vibration preference")
	}
	return Preferences{
		NotificationsEnabled: notifications,
		VibrationEnabled:     vibration,
		Permission:           s.scheduler.Permission(),
	}, nil
}

func (s *settingsService) SetVibration(ctx context.Context, enabled bool) (Preferences, error) {
	if err := s.prefs.SetBool(ctx, KeyVibrationEnabled, enabled); err != nil {
		return Preferences{}, storageError(err, "failed to save vibration preference")
	}

	prefs, err := s.Preferences(ctx)
	if err != nil {
		return Preferences{}, err
	}
	if prefs.NotificationsEnabled {
		s.scheduler.ScheduleDaily(enabled)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "vibration preference updated", "enabled", enabled)
	return prefs, nil
}

func (s *settingsService) ToggleNotifications(ctx context.Context, want bool) (bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var enabled bool
	var denied bool
	switch s.scheduler.Permission() {
	case notify.PermissionAuthorized:
		enabled = want
	case notify.PermissionNotDetermined:
		granted := s.scheduler.RequestPermission(ctx)
		enabled = granted && want
	default:
		denied = true
	}

	if err := s.prefs.SetBool(ctx, KeyNotificationsEnabled, enabled); err != nil {
		return false, storageError(err, "failed to save notification preference")
	}

	if !enabled {
		s.scheduler.RemoveScheduled()
	} else {
		vibration, err := s.prefs.GetBool(ctx, KeyVibrationEnabled, true)
		if err != nil {
			return enabled, storageError(err, "failed to read vibration preference")
		}
		s.scheduler.ScheduleDaily(vibration)
	}

	logger.InfoContext(ctx, "notifications toggled",
		slog.Bool("requested", want),
		slog.Bool("enabled", enabled),
		slog.String("permission", string(s.scheduler.Permission())),
	)

	if denied {
		return false, ErrPermissionDenied
	}
	return enabled, nil
}

func (s *settingsService) ResetAll(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.prefs.SetBool(ctx, KeyNotificationsEnabled, false); err != nil {
		logger.ErrorContext(ctx, "failed to disable notifications during reset", "error", err)
		return storageError(err, "failed to disable notifications")
	}
	s.scheduler.RemoveScheduled()

	if err := s.store.Reset(ctx); err != nil {
		logger.ErrorContext(ctx, "reset incomplete", "error", err)
		return storageError(err, "failed to reset records")
	}

	logger.WarnContext(ctx, "all records erased")
	return nil
}
