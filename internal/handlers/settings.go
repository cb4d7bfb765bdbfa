package handlers

import (
	"net/http"

	"photospro/internal/contextutil"
	"photospro/internal/service"
)

// SettingsHandler handles HTTP requests for preferences and the data reset.
type SettingsHandler struct {
	settings service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// ToggleRequest is the body of the notification and vibration switches.
type ToggleRequest struct {
	Enabled *bool `json:"enabled"`
}

// ToggleResponse reports the resulting notification state.
type ToggleResponse struct {
	Enabled bool `json:"enabled"`
}

// Get returns the current preferences.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prefs, err := h.settings.Preferences(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to read settings")
		return
	}
	writeJSON(ctx, w, http.StatusOK, prefs)
}

// PutNotifications turns the daily reminder on or off.
func (h *SettingsHandler) PutNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	enabled, ok := h.readToggle(w, r)
	if !ok {
		return
	}
	got, err := h.settings.ToggleNotifications(ctx, enabled)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update notifications")
		return
	}
	writeJSON(ctx, w, http.StatusOK, ToggleResponse{Enabled: got})
}

// PutVibration sets whether reminders play a sound.
func (h *SettingsHandler) PutVibration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	enabled, ok := h.readToggle(w, r)
	if !ok {
		return
	}
	prefs, err := h.settings.SetVibration(ctx, enabled)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update vibration")
		return
	}
	writeJSON(ctx, w, http.StatusOK, prefs)
}

// Reset erases every record. The caller must pass confirm=true; the store
// itself never asks.
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.URL.Query().Get("confirm") != "true" {
		logger.WarnContext(ctx, "reset requested without confirmation")
		writeError(w, http.StatusBadRequest, "Reset erases all data; repeat with confirm=true")
		return
	}

	if err := h.settings.ResetAll(ctx); err != nil {
		handleServiceError(w, ctx, err, "Failed to reset data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SettingsHandler) readToggle(w http.ResponseWriter, r *http.Request) (bool, bool) {
	ctx := r.Context()

	var req ToggleRequest
	if err := decodeBody(w, r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false, false
	}
	if req.Enabled == nil {
		writeError(w, http.StatusBadRequest, "enabled is required")
		return false, false
	}
	return *req.Enabled, true
}
