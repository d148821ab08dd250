package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/components"
)

// Status texts shown in place of the card grid.
const (
	LoadingText   = "Loading Pokémon..."
	NoMatchesText = "No Pokémon match this type yet. Try loading more!"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.viewMode == ViewHelp {
		return m.renderHelpView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// layout sizes the viewport to the space left by header and footer and
// refreshes its content. Called after every state or size change.
func (m *Model) layout() {
	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
	height := m.height - chrome
	if height < 1 {
		height = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = height
	m.viewport.SetContent(m.renderContent())
}

func (m Model) renderHeader() string {
	title := "Pokédex"
	if !m.useUnicode {
		title = "Pokedex"
	}
	line := titleStyle.Render(title)
	if m.state.Loading {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, m.spinner.View())
	}

	return headerStyle.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left,
		line,
		m.renderFilterBar(),
	))
}

func (m Model) renderFilterBar() string {
	buttons := make([]string, 0, len(m.filters))
	for i, f := range m.filters {
		style := filterStyle
		if i == m.filterIndex {
			style = activeFilterStyle
		}
		label := f.Label
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, f.Label)
		}
		buttons = append(buttons, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// renderContent renders what scrolls: a status placeholder or the card grid.
func (m Model) renderContent() string {
	v := m.state.View()

	switch v.Status {
	case pokedex.StatusLoading:
		return statusStyle.Render(m.spinner.View() + " " + LoadingText)
	case pokedex.StatusError:
		return errorBannerStyle.Render(v.Error)
	case pokedex.StatusNoMatches:
		return statusStyle.Render(NoMatchesText)
	default:
		return renderGrid(v.Visible, m.width)
	}
}

func (m Model) renderFooter() string {
	v := m.state.View()

	var sections []string

	// The placeholder already shows the error while nothing is loaded.
	if v.Error != "" && v.Total > 0 {
		sections = append(sections, errorBannerStyle.Render(v.Error))
	}

	button := disabledButtonStyle.Render(v.ButtonLabel)
	if v.ButtonEnabled {
		button = buttonStyle.Render(v.ButtonLabel)
	}

	summary := components.NewSummary(components.SummaryData{
		Loaded:  v.Total,
		Visible: len(v.Visible),
		Page:    m.state.PageCursor,
		Filter:  v.Filter,
		Loading: v.Loading,
		Failed:  v.Error != "",
	}).View()
	if !m.useUnicode {
		summary = strings.ReplaceAll(summary, "·", "-")
	}

	sections = append(sections,
		lipgloss.JoinHorizontal(lipgloss.Center, button, "  ", summaryStyle.Render(summary)),
		m.help.View(m.keys),
	)

	return footerStyle.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHelpView() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Keyboard shortcuts"),
		"",
		m.help.View(m.keys),
		"",
		summaryStyle.Render("Press ? or esc to go back"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBoxStyle.Render(content))
}
