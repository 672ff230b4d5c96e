package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/storage"
)

// defaultTUILog receives logs while the TUI owns the terminal.
const defaultTUILog = "~/.breakout/wallpaper.log"

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds the shared logger. Logs go to --log-file when set,
// otherwise to fallback ("" means stderr). The returned cleanup is never nil.
func newLogger(fallback string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	cleanup := func() {}

	path := flagLogFile
	if path == "" {
		path = fallback
	}
	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wallpaper",
		Level:           level,
	})
	return logger, cleanup, nil
}

// openStore opens the settings database. Commands that can work without it
// get a nil store and a warning; see mustStore for the others.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open settings database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadConfig resolves the configuration: YAML file (or embedded default),
// then stored settings, then the --preset flag.
func loadConfig(store *storage.Store, logger *log.Logger) (config.Wallpaper, error) {
	cfg, err := config.LoadWallpaper(flagConfig)
	if err != nil {
		return config.Wallpaper{}, err
	}

	if store != nil {
		settings, err := store.Settings()
		if err != nil {
			return config.Wallpaper{}, err
		}
		// A bad stored value is skipped rather than fatal; `wallpaper set`
		// or `unset` can fix it.
		if err := config.ApplyOverrides(&cfg, settings); err != nil {
			logger.Error("ignoring stored settings", "error", err)
		}
	}

	if flagPreset != "" {
		preset, ok := config.ParsePreset(flagPreset)
		if !ok {
			return config.Wallpaper{}, fmt.Errorf("unknown preset %q (run 'wallpaper presets')", flagPreset)
		}
		config.ApplyPreset(&cfg, preset)
	}

	return cfg, nil
}

// mustStore opens the settings database for commands that cannot work
// without it.
func mustStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening settings database: %w", err)
	}
	return store, nil
}
