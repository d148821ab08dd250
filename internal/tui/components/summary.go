package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts for the catalog status line.
type SummaryData struct {
	Loaded  int
	Visible int
	Page    uint32
	Filter  string
	Loading bool
	Failed  bool
}

// Summary renders a one-line textual catalog summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	if s.data.Loaded == 0 && !s.data.Loading && !s.data.Failed {
		return ""
	}

	parts := []string{fmt.Sprintf("Page %d", uint64(s.data.Page)+1)}

	if s.data.Filter == "" || s.data.Filter == "all" {
		parts = append(parts, fmt.Sprintf("%d loaded", s.data.Loaded))
	} else {
		parts = append(parts, fmt.Sprintf("%d of %d match %s", s.data.Visible, s.data.Loaded, s.data.Filter))
	}

	switch {
	case s.data.Loading:
		parts = append(parts, "fetching")
	case s.data.Failed:
		parts = append(parts, "last fetch failed")
	}

	return strings.Join(parts, " · ")
}
