package browser

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#EF5350") // Pokédex red
	accentColor  = lipgloss.Color("#FFCB05") // Yellow
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")
	textColor    = lipgloss.Color("252")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingRight(2)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor)

	filterStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1).
			MarginRight(1)

	activeFilterStyle = filterStyle.
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(accentColor).
				Bold(true)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 2)

	disabledButtonStyle = buttonStyle.
				Foreground(mutedColor).
				Background(lipgloss.Color("237")).
				Bold(false)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				Padding(0, 1).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(errorColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingLeft(2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(textColor)

	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 3)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Card styles
	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(cardWidth)

	cardNumberStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	cardCaptionStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	cardArtworkStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Faint(true)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Width(statLabelWidth)

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Right).
			Width(statValueWidth)

	tagStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1)
)
