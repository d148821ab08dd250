package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/pokedex/internal/catalog"
	"github.com/alexisbeaulieu97/pokedex/internal/config"
	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/theme"
)

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", displayPath(flags.configPath), err,
			"Fix the reported field or run without --config to use the defaults.")
	}

	if flags.baseURL != "" {
		cfg.API.BaseURL = strings.TrimRight(flags.baseURL, "/")
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, newCommandError("load configuration", "--base-url "+flags.baseURL, err,
				"Pass an absolute URL such as "+catalog.DefaultBaseURL+".")
		}
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	return cfg, nil
}

func displayPath(path string) string {
	if path == "" {
		if def, err := config.DefaultPath(); err == nil {
			return def
		}
		return "default configuration"
	}
	return path
}

// newLogger builds the command logger. fallback receives output when no
// log file is configured; log files are always JSON.
func newLogger(cfg *config.Config, fallback io.Writer, format logger.Format) (*logger.Logger, io.Closer, error) {
	writer := fallback
	var closer io.Closer = nopCloser{}

	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closer = file
		format = logger.FormatJSON
	}

	log, err := logger.New(writer, cfg.Log.Level, format)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newCatalogClient(cfg *config.Config, log *logger.Logger) *catalog.Client {
	return catalog.NewClient(catalog.Options{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout.Std(),
		UserAgent:         cfg.API.UserAgent,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Logger:            log,
	})
}

// knownCategories lists every value --type accepts: the sentinel, the
// configured filters and the themed categories.
func knownCategories(cfg *config.Config) []string {
	seen := map[string]struct{}{pokedex.AllCategories: {}}
	names := []string{pokedex.AllCategories}
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, f := range cfg.UI.Filters {
		add(f.Category)
	}
	for _, name := range theme.Categories() {
		add(name)
	}
	return names
}

// resolveCategory validates a --type value. Empty means the configured
// default filter.
func resolveCategory(cfg *config.Config, value string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		if cfg.UI.DefaultFilter != "" {
			return cfg.UI.DefaultFilter, nil
		}
		return pokedex.AllCategories, nil
	}

	known := knownCategories(cfg)
	for _, candidate := range known {
		if candidate == name {
			return name, nil
		}
	}

	suggestion := "Run 'pokedex types' to list the available types."
	if closest := suggest(name, known); closest != "" {
		suggestion = fmt.Sprintf("Did you mean %q? %s", closest, suggestion)
	}
	return "", newCommandError("select type", value, fmt.Errorf("unknown type %q", value), suggestion)
}
