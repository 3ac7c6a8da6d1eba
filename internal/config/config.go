package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable settings of streamtabs.
type Config struct {
	Capacity     int
	Refresh      time.Duration
	Theme        string
	LogFile      string
	LogLevel     string
	StopPipeline bool
}

const (
	defaultConfigPath = "~/.config/streamtabs/config.toml"
	defaultCapacity   = 5000
	defaultRefreshMS  = 50
	defaultTheme      = "Nightfox"
	defaultLogLevel   = "info"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Capacity:     defaultCapacity,
		Refresh:      defaultRefreshMS * time.Millisecond,
		Theme:        defaultTheme,
		LogLevel:     defaultLogLevel,
		StopPipeline: true,
	}
}

// fileConfig mirrors config.toml. Pointers tell an absent key from a zero.
type fileConfig struct {
	Capacity     *int   `toml:"capacity"`
	RefreshMS    *int   `toml:"refresh_ms"`
	Theme        string `toml:"theme"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level"`
	StopPipeline *bool  `toml:"stop_pipeline"`
}

// Load reads the config file at path, or the default location when path is
// blank. A missing file yields Default().
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	resolved, err := ExpandPath(path)
	if err != nil {
		return Config{}, fmt.Errorf("config path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
	}

	cfg := Default()
	if err := file.applyTo(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", resolved, err)
	}
	return cfg, nil
}

// applyTo overlays the keys present in the file onto cfg. Every invalid key
// is reported, not just the first.
func (f fileConfig) applyTo(cfg *Config) error {
	var errs []error

	if f.Capacity != nil {
		if *f.Capacity > 0 {
			cfg.Capacity = *f.Capacity
		} else {
			errs = append(errs, fmt.Errorf("capacity must be positive, got %d", *f.Capacity))
		}
	}
	if f.RefreshMS != nil {
		if *f.RefreshMS > 0 {
			cfg.Refresh = time.Duration(*f.RefreshMS) * time.Millisecond
		} else {
			errs = append(errs, fmt.Errorf("refresh_ms must be positive, got %d", *f.RefreshMS))
		}
	}
	if theme := strings.TrimSpace(f.Theme); theme != "" {
		cfg.Theme = theme
	}
	if level := strings.TrimSpace(f.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if logFile := strings.TrimSpace(f.LogFile); logFile != "" {
		expanded, err := ExpandPath(logFile)
		if err != nil {
			errs = append(errs, fmt.Errorf("log_file: %w", err))
		} else {
			cfg.LogFile = expanded
		}
	}
	if f.StopPipeline != nil {
		cfg.StopPipeline = *f.StopPipeline
	}

	return errors.Join(errs...)
}

// ExpandPath resolves a leading ~ against the home directory and makes path
// absolute.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is empty")
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}
