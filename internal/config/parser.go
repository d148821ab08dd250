package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	pokedexerrors "github.com/alexisbeaulieu97/pokedex/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pokedex", "config.yaml"), nil
}

// Load reads the configuration at path. An empty path loads the default
// location and falls back to Default() when no file exists there; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		return ParseConfig(path)
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := ParseConfig(defaultPath)
	if err != nil {
		var parseErr *pokedexerrors.ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// ParseConfig loads a YAML or TOML file from disk, fills in defaults,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pokedexerrors.NewParseError(path, 0, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, pokedexerrors.NewParseError(path, extractYAMLLine(err), err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, pokedexerrors.NewParseError(path, extractTOMLLine(err), err)
		}
	default:
		return nil, pokedexerrors.NewValidationError("path", fmt.Sprintf("unsupported configuration file extension %q", ext), nil)
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills every unset field from Default().
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = def.API.BaseURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = def.API.Timeout
	}
	if cfg.API.RequestsPerSecond == 0 {
		cfg.API.RequestsPerSecond = def.API.RequestsPerSecond
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = def.API.UserAgent
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if len(cfg.UI.Filters) == 0 {
		cfg.UI.Filters = def.UI.Filters
	}
	if cfg.UI.DefaultFilter == "" {
		cfg.UI.DefaultFilter = def.UI.DefaultFilter
	}
	if cfg.UI.Unicode == nil {
		cfg.UI.Unicode = def.UI.Unicode
	}
}

func extractYAMLLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func extractTOMLLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		line, _ := decodeErr.Position()
		return line
	}
	return 0
}
