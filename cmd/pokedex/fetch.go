package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pokedex/internal/catalog"
	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/browser"
	apperrors "github.com/alexisbeaulieu97/pokedex/pkg/errors"
)

type fetchOptions struct {
	pages      int
	category   string
	jsonOutput bool
}

func newFetchCmd(flags *rootFlags) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Load catalog pages and print them",
		Long: `Load one or more pages of the catalog without the interactive browser and
print the entries that match the selected type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.pages, "pages", "p", 1, "Number of pages to load")
	cmd.Flags().StringVarP(&opts.category, "type", "t", "", "Only print entries of this type")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runFetch(cmd *cobra.Command, flags *rootFlags, opts *fetchOptions) error {
	if opts.pages < 1 || int64(opts.pages) > math.MaxUint32 {
		return newCommandError("fetch catalog", fmt.Sprintf("--pages %d", opts.pages),
			fmt.Errorf("page count out of range"), "Pass --pages 1 or more.")
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	category, err := resolveCategory(cfg, opts.category)
	if err != nil {
		return err
	}

	log, closer, err := newLogger(cfg, cmd.ErrOrStderr(), logger.FormatConsole)
	if err != nil {
		return newCommandError("fetch catalog", "opening log output", err, "Check log.file in your configuration.")
	}
	defer closer.Close()

	session := pokedex.NewSession(newCatalogClient(cfg, log), log)
	ctx := cmd.Context()

	if err := dispatchWithRetry(ctx, session, pokedex.Started{}, log); err != nil {
		return fetchFailure(session.State(), err)
	}
	for i := 1; i < opts.pages; i++ {
		if err := dispatchWithRetry(ctx, session, pokedex.PrimaryAction{}, log); err != nil {
			return fetchFailure(session.State(), err)
		}
	}

	if err := session.Dispatch(ctx, pokedex.CategorySelected{Name: category}); err != nil {
		return err
	}

	state := session.State()
	if opts.jsonOutput {
		return renderFetchJSON(cmd, state)
	}
	return renderFetchTable(cmd, state)
}

// dispatchWithRetry dispatches ev and, if the fetch it started fails, presses
// the primary action once more, which retries the same page.
func dispatchWithRetry(ctx context.Context, session *pokedex.Session, ev pokedex.Event, log *logger.Logger) error {
	err := session.Dispatch(ctx, ev)
	if err == nil || ctx.Err() != nil {
		return err
	}
	log.WithFields(map[string]any{"page": session.State().PageCursor}).Warn("retrying page")
	return session.Dispatch(ctx, pokedex.PrimaryAction{})
}

func fetchFailure(state pokedex.State, err error) error {
	suggestion := "Try again later."
	switch {
	case apperrors.IsTransport(err):
		suggestion = "Check your network connection and api.base_url, then try again."
	case apperrors.IsDecode(err):
		suggestion = "The catalog returned unexpected data; check that api.base_url points at a compatible endpoint."
	}
	return newCommandError("fetch catalog",
		fmt.Sprintf("page %d (%d entries loaded before the failure)", uint64(state.PageCursor)+1, state.Catalog.Len()),
		err, suggestion)
}

func renderFetchTable(cmd *cobra.Command, state pokedex.State) error {
	view := state.View()
	out := cmd.OutOrStdout()

	if view.Status == pokedex.StatusNoMatches {
		fmt.Fprintln(out, browser.NoMatchesText)
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NO\tNAME\tTYPES\tSTATS")
	for _, entry := range view.Visible {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			browser.DisplayNumber(entry.ID),
			entry.Name,
			strings.Join(entry.Categories, "/"),
			formatStats(entry.Stats),
		)
	}
	return writer.Flush()
}

func formatStats(stats []catalog.Stat) string {
	if len(stats) > 3 {
		stats = stats[:3]
	}
	parts := make([]string, 0, len(stats))
	for _, stat := range stats {
		parts = append(parts, fmt.Sprintf("%s %d", browser.StatLabel(stat.Name), stat.Value))
	}
	return strings.Join(parts, ", ")
}

type fetchJSONPayload struct {
	Version string          `json:"version"`
	Pages   uint64          `json:"pages"`
	Loaded  int             `json:"loaded"`
	Filter  string          `json:"filter"`
	Count   int             `json:"count"`
	Entries []catalog.Entry `json:"entries"`
}

func renderFetchJSON(cmd *cobra.Command, state pokedex.State) error {
	view := state.View()
	payload := fetchJSONPayload{
		Version: "1.0",
		Pages:   uint64(state.PageCursor) + 1,
		Loaded:  view.Total,
		Filter:  view.Filter,
		Count:   len(view.Visible),
		Entries: view.Visible,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
