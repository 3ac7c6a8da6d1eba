package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/streamtabs/internal/config"
	"github.com/five82/streamtabs/internal/logging"
	"github.com/five82/streamtabs/internal/logtail"
	"github.com/five82/streamtabs/internal/pipeline"
	"github.com/five82/streamtabs/internal/prefs"
	"github.com/five82/streamtabs/internal/state"
	"github.com/five82/streamtabs/internal/ui"
)

// Options configure a streamtabs session. Zero values defer to the config file.
type Options struct {
	Filters    []string
	ConfigPath string

	Capacity int
	Theme    string
	LogFile  string
	LogLevel string

	// FollowPath reads lines from a file instead of Input, like tail -F.
	FollowPath string
	Backfill   int

	// Input defaults to os.Stdin.
	Input io.Reader
}

// Run shows the tab viewer until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	prefsPath, err := prefs.Path("")
	if err != nil {
		logger.Warn("theme will not be remembered", zap.Error(err))
		prefsPath = ""
	}
	theme := resolveTheme(opts.Theme, prefs.Load(prefsPath).Theme, cfg.Theme)
	if !ui.HasTheme(theme) {
		logger.Warn("unknown theme, using default", zap.String("theme", theme))
	}

	store, err := state.New(state.Options{Filters: opts.Filters, Capacity: cfg.Capacity})
	if err != nil {
		return err
	}

	src, err := openSource(opts, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	logger.Info("starting",
		zap.Strings("filters", opts.Filters),
		zap.Int("capacity", cfg.Capacity),
		zap.String("follow", opts.FollowPath))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return Ingest(gctx, store, src, logger.Named("ingest"))
	})
	g.Go(func() error {
		// Leaving the UI ends the session; ingestion follows.
		defer cancel()
		return ui.Run(gctx, ui.Options{
			Store:     store,
			Logger:    logger.Named("ui"),
			Refresh:   cfg.Refresh,
			ThemeName: theme,
			PrefsPath: prefsPath,
		})
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if quitRequested(store) && cfg.StopPipeline && opts.FollowPath == "" {
		pipeline.StopGroup(logger.Named("pipeline"))
	}
	logger.Info("stopped")
	return nil
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if opts.Capacity > 0 {
		cfg.Capacity = opts.Capacity
	}
	if opts.LogFile != "" {
		path, err := config.ExpandPath(opts.LogFile)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = path
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(opts.LogLevel))
	}
	return nil
}

// resolveTheme picks the command-line theme, then the one last chosen in the
// viewer, then the configured one.
func resolveTheme(flag, remembered, configured string) string {
	if flag != "" {
		return flag
	}
	if remembered != "" && ui.HasTheme(remembered) {
		return remembered
	}
	return configured
}

func openSource(opts Options, logger *zap.Logger) (logtail.Source, error) {
	if opts.FollowPath != "" {
		path, err := config.ExpandPath(opts.FollowPath)
		if err != nil {
			return nil, fmt.Errorf("follow %s: %w", opts.FollowPath, err)
		}
		src, err := logtail.Follow(path, logtail.FollowOptions{
			Backfill: opts.Backfill,
			Logger:   logger.Named("follow"),
		})
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	return logtail.NewReader(in), nil
}

func quitRequested(store *state.Store) bool {
	select {
	case <-store.Done():
		return true
	default:
		return false
	}
}
