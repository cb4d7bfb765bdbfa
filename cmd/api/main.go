package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photospro/internal/config"
	"photospro/internal/http"
	"photospro/internal/notify"
	"photospro/internal/persist"
	"photospro/internal/records"
	"photospro/internal/service"
	"photospro/internal/storage"
	"photospro/internal/store"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Load every collection
	st := store.New(ctx, persist.NewAdapter(storage.NewBlobRepo(db)), store.Options{Validate: cfg.StoreValidate})
	st.OnChange(func(k records.Kind) {
		slog.Debug("Collection changed", "kind", k.Key())
	})

	scheduler := notify.NewDailyScheduler(notify.DailyOptions{
		Hour:           cfg.NotifyHour,
		Minute:         cfg.NotifyMinute,
		Permission:     cfg.NotifyPermission,
		GrantOnRequest: cfg.NotifyGrant,
	})
	defer scheduler.Close()

	prefs := storage.NewPreferenceRepo(db)
	settings := service.NewSettingsService(prefs, scheduler, st)

	// Resume the daily reminder if it was left on
	if p, err := settings.Preferences(ctx); err != nil {
		slog.Warn("Failed to read preferences", "error", err)
	} else if p.NotificationsEnabled && p.Permission == notify.PermissionAuthorized {
		scheduler.ScheduleDaily(p.VibrationEnabled)
	}

	router := http.NewRouter(&http.Deps{
		Store:    st,
		Settings: settings,
		DB:       db,
	})

	srv := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
	slog.Info("API server stopped")
}
