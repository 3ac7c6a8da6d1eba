package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want %+v", cfg, Default())
	}
	if cfg.Capacity != 5000 {
		t.Fatalf("Capacity = %d, want 5000", cfg.Capacity)
	}
	if !cfg.StopPipeline {
		t.Fatalf("StopPipeline = false, want true")
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "streamtabs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("capacity = 12\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("  ")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Capacity != 12 {
		t.Fatalf("Capacity = %d, want 12", cfg.Capacity)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
capacity = 250
refresh_ms = 20
theme = "  Kanagawa  "
log_file = "  ~/logs/streamtabs.log  "
log_level = " DEBUG "
stop_pipeline = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Capacity != 250 {
		t.Fatalf("Capacity = %d, want 250", cfg.Capacity)
	}
	if cfg.Refresh != 20*time.Millisecond {
		t.Fatalf("Refresh = %v, want 20ms", cfg.Refresh)
	}
	if cfg.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "Kanagawa")
	}
	if want := filepath.Join(home, "logs", "streamtabs.log"); cfg.LogFile != want {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, want)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.StopPipeline {
		t.Fatalf("StopPipeline = true, want false")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "   "
log_level = ""
log_file = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want %+v", cfg, Default())
	}
}

func TestLoad_RejectsOutOfRangeNumbers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"zero capacity", "capacity = 0", "capacity must be positive"},
		{"negative capacity", "capacity = -3", "capacity must be positive"},
		{"zero refresh", "refresh_ms = 0", "refresh_ms must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ReportsEveryInvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("capacity = 0\nrefresh_ms = -1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error")
	}
	for _, want := range []string{"capacity must be positive", "refresh_ms must be positive", path} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("Load error = %q, want it to mention %q", err.Error(), want)
		}
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`capacity = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
