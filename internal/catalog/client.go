package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	apperrors "github.com/alexisbeaulieu97/pokedex/pkg/errors"
)

const (
	// DefaultBaseURL is the public PokéAPI creature endpoint.
	DefaultBaseURL   = "https://pokeapi.co/api/v2/pokemon"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pokedex/1.0"
	maxErrorBody     = 256
)

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// RequestsPerSecond caps outgoing requests; zero or less disables the limit.
	RequestsPerSecond float64
	HTTPClient        *http.Client
	Logger            *logger.Logger
}

// Client fetches catalog entries one id at a time.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
	logger      *logger.Logger
}

// NewClient creates a catalog client from options, filling in defaults.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		rateLimiter: rate.NewLimiter(limit, 1),
		userAgent:   userAgent,
		logger:      log.With("component", "catalog"),
	}
}

// BaseURL returns the endpoint entries are fetched from.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchPage fetches the ten entries of a zero-based page sequentially.
// The first failure aborts the page; no partial page is ever returned.
func (c *Client) FetchPage(ctx context.Context, page uint32) ([]Entry, error) {
	first, last := PageRange(page)
	log := c.logger.WithFields(map[string]any{
		"page":           page,
		"correlation_id": uuid.NewString(),
	})
	log.Debugf("fetching ids %d..%d", first, last)

	entries := make([]Entry, 0, BatchSize)
	for id := first; ; id++ {
		entry, err := c.fetchEntry(ctx, id, log)
		if err != nil {
			log.Error(err, "page fetch aborted")
			return nil, err
		}
		entries = append(entries, entry)
		if id == last {
			break
		}
	}

	SortByID(entries)
	log.Infof("fetched %d entries", len(entries))
	return entries, nil
}

// FetchEntry fetches and normalizes a single entry.
func (c *Client) FetchEntry(ctx context.Context, id uint32) (Entry, error) {
	return c.fetchEntry(ctx, id, c.logger)
}

func (c *Client) fetchEntry(ctx context.Context, id uint32, log *logger.Logger) (Entry, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return Entry{}, apperrors.NewTransportError(id, fmt.Errorf("rate limiter: %w", err))
	}

	url := fmt.Sprintf("%s/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Entry{}, apperrors.NewTransportError(id, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	log.Debugf("GET %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Entry{}, apperrors.NewTransportError(id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// The exchange completed; a non-2xx answer is a body we cannot use.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		detail := strings.TrimSpace(string(body))
		if detail == "" {
			return Entry{}, apperrors.NewDecodeError(id, fmt.Errorf("unexpected status %s", resp.Status))
		}
		return Entry{}, apperrors.NewDecodeError(id, fmt.Errorf("unexpected status %s: %s", resp.Status, detail))
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Entry{}, apperrors.NewDecodeError(id, err)
	}
	if err := validatePayload(&p); err != nil {
		return Entry{}, apperrors.NewDecodeError(id, err)
	}
	if p.ID != id {
		return Entry{}, apperrors.NewDecodeError(id, fmt.Errorf("response describes id %d", p.ID))
	}

	return p.toEntry(), nil
}
