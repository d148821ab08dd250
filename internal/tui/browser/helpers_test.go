package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pokedex/internal/catalog"
	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
)

// fakeFetcher serves ten entries per page and fails pages listed in failOn.
type fakeFetcher struct {
	mu     sync.Mutex
	failOn map[uint32]error
	calls  []uint32
}

func (f *fakeFetcher) FetchPage(_ context.Context, page uint32) ([]catalog.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, page)
	if err, ok := f.failOn[page]; ok {
		return nil, err
	}
	first, last := catalog.PageRange(page)
	entries := make([]catalog.Entry, 0, catalog.BatchSize)
	for id := first; id <= last; id++ {
		category := "grass"
		if id%2 == 0 {
			category = "fire"
		}
		entries = append(entries, catalog.Entry{
			ID:         id,
			Name:       fmt.Sprintf("mon-%d", id),
			ImageURL:   fmt.Sprintf("https://img.test/%d.png", id),
			Categories: []string{category},
			Stats:      []catalog.Stat{{Name: "hp", Value: int(id)}},
		})
	}
	return entries, nil
}

var errBoom = errors.New("request failed for id 11: boom")

func newTestModel(t *testing.T, fetcher pokedex.Fetcher) Model {
	t.Helper()
	m := NewModel(Options{Fetcher: fetcher, UseUnicode: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

// drain runs cmd and every command batched inside it, returning the
// pokedex events produced.
func drain(t *testing.T, cmd tea.Cmd) []pokedex.Event {
	t.Helper()
	if cmd == nil {
		return nil
	}
	var events []pokedex.Event
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			events = append(events, drain(t, c)...)
		}
	case pokedex.Event:
		events = append(events, msg)
	}
	return events
}

// send feeds msg to the model and then feeds back every pokedex event its
// commands produce until none remain.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)
	for _, ev := range drain(t, cmd) {
		model = send(t, model, ev)
	}
	return model
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
