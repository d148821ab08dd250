package config

import (
	"time"

	"github.com/alexisbeaulieu97/pokedex/internal/catalog"
)

// Config represents the full pokedex configuration document.
type Config struct {
	API APIConfig `yaml:"api" toml:"api"`
	Log LogConfig `yaml:"log" toml:"log"`
	UI  UIConfig  `yaml:"ui" toml:"ui"`
}

// APIConfig controls how the catalog is fetched.
type APIConfig struct {
	BaseURL           string   `yaml:"base_url" toml:"base_url" validate:"required,url"`
	Timeout           Duration `yaml:"timeout" toml:"timeout" validate:"gte=0"`
	RequestsPerSecond float64  `yaml:"requests_per_second" toml:"requests_per_second" validate:"gte=0,lte=100"`
	UserAgent         string   `yaml:"user_agent" toml:"user_agent" validate:"required,max=200"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" toml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	// File receives log output while the terminal UI owns the screen.
	File string `yaml:"file" toml:"file"`
}

// UIConfig controls the interactive browser.
type UIConfig struct {
	Filters       []Filter `yaml:"filters" toml:"filters" validate:"required,min=1,max=10,dive"`
	DefaultFilter string   `yaml:"default_filter" toml:"default_filter" validate:"omitempty,category"`
	Unicode       *bool    `yaml:"unicode" toml:"unicode"`
}

// Filter is one entry of the filter bar.
type Filter struct {
	Label    string `yaml:"label" toml:"label" validate:"required,max=32"`
	Category string `yaml:"category" toml:"category" validate:"required,category"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalText parses durations for both YAML and TOML.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// DefaultFilters mirrors the classic five-button filter bar.
func DefaultFilters() []Filter {
	return []Filter{
		{Label: "All", Category: "all"},
		{Label: "🌿 Grass", Category: "grass"},
		{Label: "🔥 Fire", Category: "fire"},
		{Label: "💧 Water", Category: "water"},
		{Label: "⚡ Electric", Category: "electric"},
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	unicode := true
	return &Config{
		API: APIConfig{
			BaseURL:           catalog.DefaultBaseURL,
			Timeout:           Duration(30 * time.Second),
			RequestsPerSecond: 10,
			UserAgent:         "pokedex/1.0",
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Filters:       DefaultFilters(),
			DefaultFilter: "all",
			Unicode:       &unicode,
		},
	}
}

// UseUnicode reports whether emoji labels should be rendered.
func (u UIConfig) UseUnicode() bool {
	return u.Unicode == nil || *u.Unicode
}
