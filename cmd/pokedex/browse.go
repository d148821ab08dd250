package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/pokedex/internal/config"
	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/browser"
)

var errNotTerminal = errors.New("standard output is not a terminal")

type browseOptions struct {
	category string
}

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive catalog browser",
		Long:  `Launch the interactive TUI to page through the catalog and filter it by type.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "type", "t", "", "Start with this type filter selected")

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags, opts *browseOptions) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	category, err := resolveCategory(cfg, opts.category)
	if err != nil {
		return err
	}

	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start browser", "interactive mode", errNotTerminal,
			"Run 'pokedex fetch' for plain output, or run from an interactive terminal.")
	}

	// The browser owns the screen, so logs go to the configured file or nowhere.
	log, closer, err := newLogger(cfg, io.Discard, logger.FormatJSON)
	if err != nil {
		return newCommandError("start browser", "opening log output", err, "Check log.file in your configuration.")
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	client := newCatalogClient(cfg, log)
	model := browser.NewModel(browser.Options{
		Fetcher:       client,
		Filters:       browserFilters(cfg, category),
		DefaultFilter: category,
		Logger:        log,
		Context:       ctx,
		UseUnicode:    cfg.UI.UseUnicode(),
	})

	log.WithFields(map[string]any{"base_url": client.BaseURL(), "filter": category}).Info("launching browser")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	log.Info("browser closed")
	return nil
}

// browserFilters converts the configured filter bar, adding a button for
// category when it is not already there.
func browserFilters(cfg *config.Config, category string) []browser.Filter {
	filters := make([]browser.Filter, 0, len(cfg.UI.Filters)+1)
	present := false
	for _, f := range cfg.UI.Filters {
		filters = append(filters, browser.Filter{Label: f.Label, Category: f.Category})
		if f.Category == category {
			present = true
		}
	}
	if !present {
		filters = append(filters, browser.Filter{
			Label:    cases.Title(language.Und).String(category),
			Category: category,
		})
	}
	return filters
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
