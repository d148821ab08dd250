package browser

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
)

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(Options{})

	assert.Equal(t, DefaultFilters(), m.filters)
	assert.Equal(t, 0, m.filterIndex)
	assert.Equal(t, pokedex.AllCategories, m.State().SelectedCategory)
	assert.Equal(t, ViewBrowse, m.GetViewMode())
	assert.False(t, m.State().Loading)
}

func TestNewModel_DefaultFilter(t *testing.T) {
	m := NewModel(Options{DefaultFilter: "water"})

	assert.Equal(t, "water", m.ActiveFilter().Category)
	assert.Equal(t, "water", m.State().SelectedCategory)
}

func TestInit_RequestsFirstPage(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, fetcher)

	events := drain(t, m.Init())
	require.Contains(t, events, pokedex.Event(pokedex.Started{}))
	assert.Empty(t, fetcher.calls, "Init must not fetch by itself")

	m = send(t, m, pokedex.Started{})
	assert.Equal(t, []uint32{0}, fetcher.calls)
	assert.Equal(t, 10, m.State().Catalog.Len())
	assert.False(t, m.State().Loading)
	assert.Equal(t, 1, m.Fetches())
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := NewModel(Options{})

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model, ok := updated.(Model)
	require.True(t, ok)
	assert.Nil(t, cmd)
	assert.Equal(t, 100, model.width)
	assert.Equal(t, 40, model.height)
	assert.Equal(t, 100, model.viewport.Width)
	assert.Less(t, model.viewport.Height, 40)
}

func TestUpdate_SpinnerTickOnlyWhileLoading(t *testing.T) {
	m := newTestModel(t, &fakeFetcher{})

	_, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd, "idle spinner should stop ticking")

	updated, _ := m.Update(pokedex.Started{})
	m = updated.(Model)
	require.True(t, m.State().Loading)

	_, cmd = m.Update(m.spinner.Tick())
	assert.NotNil(t, cmd)
}

func TestUpdate_PrimaryActionLoadsNextPage(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, fetcher)
	m = send(t, m, pokedex.Started{})

	for _, k := range []string{"enter", " ", "m"} {
		m = send(t, m, keyMsg(k))
	}

	assert.Equal(t, []uint32{0, 1, 2, 3}, fetcher.calls)
	assert.Equal(t, uint32(3), m.State().PageCursor)
	assert.Equal(t, 40, m.State().Catalog.Len())
}

func TestUpdate_PrimaryActionIgnoredWhileLoading(t *testing.T) {
	m := newTestModel(t, &fakeFetcher{})

	updated, cmd := m.Update(pokedex.Started{})
	m = updated.(Model)
	require.NotNil(t, cmd)

	updated, cmd = m.Update(keyMsg("enter"))
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Fetches())
	assert.Equal(t, uint32(0), m.State().PageCursor)
}

func TestUpdate_FailureThenRetry(t *testing.T) {
	fetcher := &fakeFetcher{failOn: map[uint32]error{1: errBoom}}
	m := newTestModel(t, fetcher)
	m = send(t, m, pokedex.Started{})
	m = send(t, m, keyMsg("enter"))

	state := m.State()
	assert.Equal(t, errBoom.Error(), state.LastError)
	assert.Equal(t, uint32(1), state.PageCursor)
	assert.Equal(t, 10, state.Catalog.Len())
	assert.Equal(t, pokedex.LabelRetry, pokedex.ButtonLabel(state))

	delete(fetcher.failOn, 1)
	m = send(t, m, keyMsg("enter"))

	state = m.State()
	assert.Empty(t, state.LastError)
	assert.Equal(t, uint32(1), state.PageCursor, "retry refetches the same page")
	assert.Equal(t, 20, state.Catalog.Len())
	assert.Equal(t, []uint32{0, 1, 1}, fetcher.calls)
}

func TestUpdate_StaleCompletionIgnored(t *testing.T) {
	m := newTestModel(t, &fakeFetcher{})
	m = send(t, m, pokedex.Started{})

	updated, cmd := m.Update(pokedex.PageFailed{Page: 0, Err: errBoom})
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.False(t, m.State().HasError())
}

func TestUpdate_FilterKeys(t *testing.T) {
	m := newTestModel(t, &fakeFetcher{})
	m = send(t, m, pokedex.Started{})

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"number picks filter", "3", "fire"},
		{"tab cycles forward", "tab", "water"},
		{"shift+tab cycles back", "shift+tab", "fire"},
		{"number out of range is ignored", "9", "fire"},
		{"first filter resets", "1", pokedex.AllCategories},
		{"shift+tab wraps", "shift+tab", "electric"},
		{"tab wraps", "tab", pokedex.AllCategories},
	}

	for _, tt := range tests {
		m = send(t, m, keyMsg(tt.key))
		assert.Equal(t, tt.expected, m.State().SelectedCategory, tt.name)
		assert.Equal(t, tt.expected, m.ActiveFilter().Category, tt.name)
	}
	assert.Equal(t, 1, m.Fetches(), "filtering never fetches")
}

func TestUpdate_FilterNarrowsVisible(t *testing.T) {
	m := newTestModel(t, &fakeFetcher{})
	m = send(t, m, pokedex.Started{})
	m = send(t, m, keyMsg("3"))

	visible := m.State().Visible()
	require.Len(t, visible, 5)
	for _, entry := range visible {
		assert.True(t, entry.HasCategory("fire"))
	}
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newTestModel(t, &fakeFetcher{})

	m = send(t, m, keyMsg("?"))
	assert.Equal(t, ViewHelp, m.GetViewMode())
	assert.True(t, m.help.ShowAll)

	// Keys other than help, esc and quit are swallowed by the overlay.
	m = send(t, m, keyMsg("enter"))
	assert.Equal(t, 0, m.Fetches())

	m = send(t, m, keyMsg("esc"))
	assert.Equal(t, ViewBrowse, m.GetViewMode())
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t, &fakeFetcher{})

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdate_NilFetcher(t *testing.T) {
	m := newTestModel(t, nil)

	updated, cmd := m.Update(pokedex.Started{})
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Fetches())
}
