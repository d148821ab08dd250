package pokedex

import "github.com/alexisbeaulieu97/pokedex/internal/catalog"

// Button labels for the primary action.
const (
	LabelLoading  = "Loading…"
	LabelRetry    = "Retry"
	LabelShowMore = "Show More"
)

// Status tells the presentation layer which placeholder, if any, replaces the list.
type Status int

const (
	// StatusLoading: nothing accumulated yet and no error.
	StatusLoading Status = iota
	// StatusError: nothing accumulated and the last fetch failed.
	StatusError
	// StatusNoMatches: entries exist but none pass the filter.
	StatusNoMatches
	// StatusReady: at least one entry is visible.
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusNoMatches:
		return "no-matches"
	case StatusReady:
		return "ready"
	default:
		return "loading"
	}
}

// View is the read-only projection handed to the presentation layer.
type View struct {
	Status        Status
	Loading       bool
	Error         string
	Filter        string
	Visible       []catalog.Entry
	Total         int
	ButtonLabel   string
	ButtonEnabled bool
}

// Visible returns the accumulated entries that pass the current filter, in
// insertion order.
func (s State) Visible() []catalog.Entry {
	return FilterEntries(s.Catalog.entries, s.SelectedCategory)
}

// FilterEntries keeps entries carrying an exact match for category. The
// AllCategories sentinel (or an empty category) keeps everything.
func FilterEntries(entries []catalog.Entry, category string) []catalog.Entry {
	visible := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if category == AllCategories || category == "" || entry.HasCategory(category) {
			visible = append(visible, entry)
		}
	}
	return visible
}

// View derives everything the presentation layer needs from the state.
func (s State) View() View {
	visible := s.Visible()

	v := View{
		Loading:       s.Loading,
		Error:         s.LastError,
		Filter:        s.SelectedCategory,
		Visible:       visible,
		Total:         s.Catalog.Len(),
		ButtonLabel:   ButtonLabel(s),
		ButtonEnabled: !s.Loading,
	}

	switch {
	case s.Catalog.Len() == 0 && s.HasError():
		v.Status = StatusError
	case s.Catalog.Len() == 0:
		v.Status = StatusLoading
	case len(visible) == 0:
		v.Status = StatusNoMatches
	default:
		v.Status = StatusReady
	}

	return v
}

// ButtonLabel returns the primary action label for the state.
func ButtonLabel(s State) string {
	switch {
	case s.Loading:
		return LabelLoading
	case s.HasError():
		return LabelRetry
	default:
		return LabelShowMore
	}
}
