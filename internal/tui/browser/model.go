package browser

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
)

// Filter is one button of the filter bar.
type Filter struct {
	Label    string
	Category string
}

// DefaultFilters is the filter bar used when none is configured.
func DefaultFilters() []Filter {
	return []Filter{
		{Label: "All", Category: pokedex.AllCategories},
		{Label: "🌿 Grass", Category: "grass"},
		{Label: "🔥 Fire", Category: "fire"},
		{Label: "💧 Water", Category: "water"},
		{Label: "⚡ Electric", Category: "electric"},
	}
}

// Options configures a browser model.
type Options struct {
	Fetcher       pokedex.Fetcher
	Filters       []Filter
	DefaultFilter string
	Logger        *logger.Logger
	Context       context.Context
	UseUnicode    bool
}

// Model is the catalog browser
type Model struct {
	state   pokedex.State
	fetcher pokedex.Fetcher
	ctx     context.Context
	logger  *logger.Logger

	filters     []Filter
	filterIndex int

	viewMode ViewMode
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model

	width  int
	height int

	useUnicode bool
	fetches    int
}

// NewModel creates a browser in the startup state
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	filters := opts.Filters
	if len(filters) == 0 {
		filters = DefaultFilters()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	if !opts.UseUnicode {
		s.Spinner = spinner.Line
	}
	s.Style = spinnerStyle

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpDescStyle

	m := Model{
		state:      pokedex.NewState(),
		fetcher:    opts.Fetcher,
		ctx:        ctx,
		logger:     log.With("component", "browser"),
		filters:    filters,
		viewMode:   ViewBrowse,
		keys:       keys,
		help:       h,
		spinner:    s,
		viewport:   viewport.New(80, 16),
		width:      80,
		height:     24,
		useUnicode: opts.UseUnicode,
	}

	for i, f := range filters {
		if f.Category == opts.DefaultFilter {
			m.filterIndex = i
			m.state, _ = pokedex.Reduce(m.state, pokedex.CategorySelected{Name: f.Category})
			break
		}
	}

	m.layout()
	return m
}

// Init starts the spinner and requests the first page
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, startCmd())
}

// State returns the pagination state
func (m Model) State() pokedex.State {
	return m.state
}

// Fetches returns how many page fetches were started
func (m Model) Fetches() int {
	return m.fetches
}

// ActiveFilter returns the selected filter button
func (m Model) ActiveFilter() Filter {
	return m.filters[m.filterIndex]
}

// GetViewMode returns the current view mode
func (m Model) GetViewMode() ViewMode {
	return m.viewMode
}

func (m *Model) selectFilter(index int) {
	if index < 0 || index >= len(m.filters) {
		return
	}
	m.filterIndex = index
	m.reduce(pokedex.CategorySelected{Name: m.filters[index].Category})
}

func (m *Model) cycleFilter(delta int) {
	n := len(m.filters)
	m.selectFilter(((m.filterIndex+delta)%n + n) % n)
}
