package config

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDurationUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		var out struct {
			Timeout Duration `yaml:"timeout"`
		}
		require.NoError(t, yaml.Unmarshal([]byte("timeout: 1m30s\n"), &out))
		require.Equal(t, 90*time.Second, out.Timeout.Std())
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()
		var out struct {
			Timeout Duration `toml:"timeout"`
		}
		require.NoError(t, toml.Unmarshal([]byte(`timeout = "250ms"`), &out))
		require.Equal(t, 250*time.Millisecond, out.Timeout.Std())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		var d Duration
		require.Error(t, d.UnmarshalText([]byte("eventually")))
	})
}

func TestDurationMarshalText(t *testing.T) {
	t.Parallel()

	text, err := Duration(30 * time.Second).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "30s", string(text))
}

func TestUseUnicode(t *testing.T) {
	t.Parallel()

	off := false
	on := true
	require.True(t, UIConfig{}.UseUnicode(), "unset means enabled")
	require.True(t, UIConfig{Unicode: &on}.UseUnicode())
	require.False(t, UIConfig{Unicode: &off}.UseUnicode())
}

func TestDefaultFilters(t *testing.T) {
	t.Parallel()

	filters := DefaultFilters()
	categories := make([]string, 0, len(filters))
	for _, f := range filters {
		categories = append(categories, f.Category)
	}
	require.Equal(t, []string{"all", "grass", "fire", "water", "electric"}, categories)

	filters[0].Label = "changed"
	require.Equal(t, "All", DefaultFilters()[0].Label, "each call returns a fresh slice")
}
