package browser

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.layout()
		return m, cmd

	case pokedex.Event:
		cmd := m.reduce(msg)
		return m, cmd
	}

	return m, nil
}

// reduce applies one event, logs the transition and turns a fetch effect
// into a command.
func (m *Model) reduce(ev pokedex.Event) tea.Cmd {
	before := m.state.Catalog.Len()
	next, req := pokedex.Reduce(m.state, ev)
	settled := m.state.Loading && !next.Loading

	switch ev := ev.(type) {
	case pokedex.PageLoaded:
		if settled {
			m.logger.WithFields(map[string]any{
				"page":  ev.Page,
				"added": next.Catalog.Len() - before,
				"total": next.Catalog.Len(),
			}).Info("page merged")
		}
	case pokedex.PageFailed:
		if settled {
			m.logger.WithFields(map[string]any{"page": ev.Page}).Error(ev.Err, "page fetch failed")
		}
	}

	m.state = next
	m.layout()

	if req == nil {
		return nil
	}
	if m.fetcher == nil {
		m.logger.Warn("no fetcher configured")
		return nil
	}

	m.fetches++
	m.logger.WithFields(map[string]any{"page": req.Page}).Debug("fetch started")
	return tea.Batch(fetchPageCmd(m.ctx, m.fetcher, req.Page), m.spinner.Tick)
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.viewMode == ViewHelp {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.viewMode = ViewBrowse
			m.help.ShowAll = false
			m.layout()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
		m.help.ShowAll = true
		return m, nil

	case key.Matches(msg, m.keys.Primary):
		return m, m.reduce(pokedex.PrimaryAction{})

	case key.Matches(msg, m.keys.Filter):
		m.selectFilter(int(msg.String()[0]-'1'))
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		m.cycleFilter(1)
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.PrevFilter):
		m.cycleFilter(-1)
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.scrolls()...):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}
