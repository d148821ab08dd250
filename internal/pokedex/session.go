package pokedex

import (
	"context"

	"github.com/alexisbeaulieu97/pokedex/internal/catalog"
	"github.com/alexisbeaulieu97/pokedex/internal/logger"
)

// Fetcher fetches one page of the catalog.
type Fetcher interface {
	FetchPage(ctx context.Context, page uint32) ([]catalog.Entry, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, page uint32) ([]catalog.Entry, error)

// FetchPage calls f.
func (f FetcherFunc) FetchPage(ctx context.Context, page uint32) ([]catalog.Entry, error) {
	return f(ctx, page)
}

// Session drives the reducer synchronously: every fetch a transition asks
// for runs to completion before Dispatch returns.
type Session struct {
	state   State
	fetcher Fetcher
	logger  *logger.Logger
}

// NewSession creates a session in the startup state.
func NewSession(fetcher Fetcher, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		state:   NewState(),
		fetcher: fetcher,
		logger:  log.With("component", "session"),
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Dispatch reduces ev and, if that starts a fetch, runs it and reduces the
// outcome. It returns the fetch error, if any, after it has been recorded in
// the state.
func (s *Session) Dispatch(ctx context.Context, ev Event) error {
	next, req := Reduce(s.state, ev)
	s.state = next
	if req == nil {
		return nil
	}

	s.logger.Debug("fetch started")
	entries, err := s.fetcher.FetchPage(ctx, req.Page)
	if err != nil {
		s.logger.WithFields(map[string]any{"page": req.Page}).Error(err, "fetch failed")
		s.state, _ = Reduce(s.state, PageFailed{Page: req.Page, Err: err})
		return err
	}

	before := s.state.Catalog.Len()
	s.state, _ = Reduce(s.state, PageLoaded{Page: req.Page, Entries: entries})
	s.logger.WithFields(map[string]any{
		"page":  req.Page,
		"added": s.state.Catalog.Len() - before,
		"total": s.state.Catalog.Len(),
	}).Info("page merged")
	return nil
}
