// Package notify schedules the daily planning reminder.
package notify

import (
	"context"
	"fmt"
)

// PermissionStatus is whether the user allows reminders to be delivered.
type PermissionStatus string

const (
	PermissionNotDetermined PermissionStatus = "notDetermined"
	PermissionDenied        PermissionStatus = "denied"
	PermissionAuthorized    PermissionStatus = "authorized"
)

// ParsePermission resolves a configured permission status.
func ParsePermission(s string) (PermissionStatus, error) {
	switch p := PermissionStatus(s); p {
	case PermissionNotDetermined, PermissionDenied, PermissionAuthorized:
		return p, nil
	}
	return "", fmt.Errorf("invalid notification permission %q (want authorized, denied or notDetermined)", s)
}

// Reminder is the content delivered each day.
type Reminder struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	// Sound is set when the user keeps vibration enabled.
	Sound bool `json:"sound"`
}

// DailyReminder returns the planning reminder.
func DailyReminder(withVibration bool) Reminder {
	return Reminder{
		Title: "Plan your photosessions!",
		Body:  "Add them to calendar or add new photos and clients",
		Sound: withVibration,
	}
}

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_scheduler.go -package=mocks photospro/internal/notify Scheduler

// Scheduler delivers the daily reminder.
type Scheduler interface {
	// Permission returns the current permission status.
	Permission() PermissionStatus
	// RequestPermission asks the user for permission and reports whether it
	// was granted. After the call the status is no longer notDetermined.
	RequestPermission(ctx context.Context) bool
	// ScheduleDaily replaces any scheduled reminder with a repeating daily one.
	ScheduleDaily(withVibration bool)
	// RemoveScheduled cancels all pending reminders.
	RemoveScheduled()
}
