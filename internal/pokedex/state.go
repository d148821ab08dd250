// Package pokedex holds the pagination, accumulation and filter state of the
// catalog browser. All changes go through Reduce, one event at a time.
package pokedex

import (
	"math"

	"github.com/alexisbeaulieu97/pokedex/internal/catalog"
)

// AllCategories is the filter sentinel meaning "no filter".
const AllCategories = "all"

const unknownFetchError = "unknown fetch error"

// Phase is the coarse state of the pagination machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// State is the single mutable root of the browser.
type State struct {
	PageCursor       uint32
	Catalog          Catalog
	Loading          bool
	LastError        string
	SelectedCategory string
}

// NewState returns the startup state: page 0, nothing loaded, no filter.
func NewState() State {
	return State{SelectedCategory: AllCategories}
}

// HasError reports whether a fetch failure is pending.
func (s State) HasError() bool {
	return s.LastError != ""
}

// Phase derives the machine phase from the loading flag and error slot.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.HasError():
		return PhaseError
	default:
		return PhaseIdle
	}
}

// Event is anything Reduce reacts to.
type Event interface {
	event()
}

// Started requests the fetch of the current page at startup.
type Started struct{}

// PageLoaded carries a successfully fetched page.
type PageLoaded struct {
	Page    uint32
	Entries []catalog.Entry
}

// PageFailed carries the error of a failed page fetch.
type PageFailed struct {
	Page uint32
	Err  error
}

// PrimaryAction is the "show more" / "retry" button.
type PrimaryAction struct{}

// CategorySelected changes the filter. An empty name resets it.
type CategorySelected struct {
	Name string
}

func (Started) event()          {}
func (PageLoaded) event()       {}
func (PageFailed) event()       {}
func (PrimaryAction) event()    {}
func (CategorySelected) event() {}

// FetchRequest is the effect returned by Reduce when a page must be fetched.
type FetchRequest struct {
	Page uint32
}

// Reduce applies one event and returns the next state plus the fetch to
// start, if any. At most one fetch is ever outstanding: every transition
// that starts one sets Loading, and no transition starts one while Loading.
func Reduce(s State, ev Event) (State, *FetchRequest) {
	switch ev := ev.(type) {
	case Started:
		if s.Loading || s.HasError() {
			return s, nil
		}
		return s.startFetch()

	case PageLoaded:
		if !s.Loading || ev.Page != s.PageCursor {
			return s, nil
		}
		next := s
		next.Catalog = s.Catalog.clone()
		next.Catalog.Merge(ev.Entries)
		next.Loading = false
		next.LastError = ""
		return next, nil

	case PageFailed:
		if !s.Loading || ev.Page != s.PageCursor {
			return s, nil
		}
		next := s
		next.Loading = false
		next.LastError = unknownFetchError
		if ev.Err != nil && ev.Err.Error() != "" {
			next.LastError = ev.Err.Error()
		}
		return next, nil

	case PrimaryAction:
		if s.Loading {
			return s, nil
		}
		if s.HasError() {
			next := s
			next.LastError = ""
			return next.startFetch()
		}
		if s.PageCursor == math.MaxUint32 {
			return s, nil
		}
		next := s
		next.PageCursor++
		return next.startFetch()

	case CategorySelected:
		next := s
		next.SelectedCategory = ev.Name
		if next.SelectedCategory == "" {
			next.SelectedCategory = AllCategories
		}
		return next, nil
	}

	return s, nil
}

func (s State) startFetch() (State, *FetchRequest) {
	s.Loading = true
	return s, &FetchRequest{Page: s.PageCursor}
}
