package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"photospro/internal/notify"
)

var envVars = []string{
	"DB_PATH", "API_PORT", "LOG_LEVEL", "LOG_FORMAT", "STORE_VALIDATE",
	"NOTIFY_HOUR", "NOTIFY_MINUTE", "NOTIFY_PERMISSION", "NOTIFY_GRANT",
}

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantErr     bool
		checkConfig func(*Config) bool
	}{
		{
			name:    "defaults",
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "9000" &&
					cfg.LogLevel == slog.LevelInfo &&
					cfg.LogFormat == "text" &&
					!cfg.StoreValidate &&
					cfg.NotifyHour == 10 &&
					cfg.NotifyMinute == 0 &&
					cfg.NotifyPermission == notify.PermissionNotDetermined &&
					cfg.NotifyGrant
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"API_PORT":          "8080",
				"LOG_LEVEL":         "DEBUG",
				"LOG_FORMAT":        "JSON",
				"STORE_VALIDATE":    "true",
				"NOTIFY_HOUR":       "7",
				"NOTIFY_MINUTE":     "30",
				"NOTIFY_PERMISSION": "authorized",
				"NOTIFY_GRANT":      "false",
			},
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "8080" &&
					cfg.LogLevel == slog.LevelDebug &&
					cfg.LogFormat == "json" &&
					cfg.StoreValidate &&
					cfg.NotifyHour == 7 &&
					cfg.NotifyMinute == 30 &&
					cfg.NotifyPermission == notify.PermissionAuthorized &&
					!cfg.NotifyGrant
			},
		},
		{name: "invalid log level", env: map[string]string{"LOG_LEVEL": "loud"}, wantErr: true},
		{name: "invalid log format", env: map[string]string{"LOG_FORMAT": "xml"}, wantErr: true},
		{name: "invalid port", env: map[string]string{"API_PORT": "http"}, wantErr: true},
		{name: "port out of range", env: map[string]string{"API_PORT": "70000"}, wantErr: true},
		{name: "invalid bool", env: map[string]string{"STORE_VALIDATE": "sometimes"}, wantErr: true},
		{name: "hour out of range", env: map[string]string{"NOTIFY_HOUR": "24"}, wantErr: true},
		{name: "minute not a number", env: map[string]string{"NOTIFY_MINUTE": "half"}, wantErr: true},
		{name: "unknown permission", env: map[string]string{"NOTIFY_PERMISSION": "provisional"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "data", "test.db"))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.checkConfig != nil && !tt.checkConfig(cfg) {
				t.Errorf("Load() config = %+v", cfg)
			}
		})
	}
}

func TestLoad_CreatesDataDirectory(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv("DB_PATH", filepath.Join(dir, "photospro.db"))

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(child, 0755); err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(root, "dotenv.db")
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("DB_PATH="+dbPath+"\nNOTIFY_HOUR=9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, child)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != dbPath || cfg.NotifyHour != 9 {
		t.Errorf("Load() did not read parent .env: %+v", cfg)
	}
}
