package browser

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
)

// startCmd emits the startup event so Init stays free of side effects.
func startCmd() tea.Cmd {
	return func() tea.Msg {
		return pokedex.Started{}
	}
}

// fetchPageCmd fetches one page asynchronously and reports the outcome as a
// pokedex event.
func fetchPageCmd(ctx context.Context, fetcher pokedex.Fetcher, page uint32) tea.Cmd {
	return func() tea.Msg {
		entries, err := fetcher.FetchPage(ctx, page)
		if err != nil {
			return pokedex.PageFailed{Page: page, Err: err}
		}
		return pokedex.PageLoaded{Page: page, Entries: entries}
	}
}
