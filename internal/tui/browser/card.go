package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/pokedex/internal/catalog"
	"github.com/alexisbeaulieu97/pokedex/internal/theme"
)

const (
	cardWidth      = 28
	cardInnerWidth = cardWidth - 2
	statLabelWidth = 18
	statValueWidth = cardInnerWidth - statLabelWidth
	cardGap        = 1
	maxCardStats   = 3
	tagsCaption    = "Type Resistances"
)

// DisplayNumber renders an identifier zero-padded to three digits.
func DisplayNumber(id uint32) string {
	return fmt.Sprintf("#%03d", id)
}

// StatLabel turns "special-attack" into "Special Attack".
func StatLabel(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "-", " "))
}

// DisplayName upper-cases an entry name.
func DisplayName(name string) string {
	return cases.Upper(language.Und).String(name)
}

func renderCard(entry catalog.Entry) string {
	tokens := theme.For(entry.PrimaryCategory())
	border := lipgloss.Color(tokens.CardBorder)

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(border)
	lines := []string{
		cardNumberStyle.Render(DisplayNumber(entry.ID)),
		nameStyle.Render(DisplayName(entry.Name)),
		cardArtworkStyle.Render(truncateLeft(entry.Artwork(), cardInnerWidth)),
		cardCaptionStyle.Render(tagsCaption),
		renderTags(entry.Categories),
	}

	stats := entry.Stats
	if len(stats) > maxCardStats {
		stats = stats[:maxCardStats]
	}
	for _, stat := range stats {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			statLabelStyle.Render(StatLabel(stat.Name)),
			statValueStyle.Render(fmt.Sprintf("%d", stat.Value)),
		))
	}

	return cardStyle.BorderForeground(border).Render(strings.Join(lines, "\n"))
}

func renderTags(categories []string) string {
	tags := make([]string, 0, len(categories))
	for _, category := range categories {
		tokens := theme.For(category)
		tags = append(tags, tagStyle.
			Background(lipgloss.Color(tokens.TagBgStart)).
			Foreground(lipgloss.Color(tokens.TagText)).
			Render(DisplayName(category)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tags...)
}

// renderGrid lays cards out in rows that fit width.
func renderGrid(entries []catalog.Entry, width int) string {
	perRow := (width + cardGap) / (cardWidth + 2 + cardGap)
	if perRow < 1 {
		perRow = 1
	}

	rows := make([]string, 0, len(entries)/perRow+1)
	for start := 0; start < len(entries); start += perRow {
		end := start + perRow
		if end > len(entries) {
			end = len(entries)
		}
		cards := make([]string, 0, 2*(end-start))
		for i, entry := range entries[start:end] {
			if i > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, renderCard(entry))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncateLeft keeps the tail of s so URLs still show their file name.
func truncateLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return "…" + string(runes[len(runes)-width+1:])
}
