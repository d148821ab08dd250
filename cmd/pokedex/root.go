package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	baseURL    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	browse := &browseOptions{}

	cmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse the Pokémon catalog from your terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the browser
			return runBrowse(cmd, flags, browse)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML config file")
	cmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "Override the catalog endpoint")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVarP(&browse.category, "type", "t", "", "Start with this type filter selected")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newFetchCmd(flags))
	cmd.AddCommand(newTypesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
