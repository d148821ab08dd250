package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pokedex/internal/theme"
)

func newTypesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the types accepted by --type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			labels := make(map[string]string, len(cfg.UI.Filters))
			for _, f := range cfg.UI.Filters {
				labels[f.Category] = f.Label
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "TYPE\tCOLOR\tFILTER")
			for _, name := range knownCategories(cfg) {
				color := "-"
				if theme.Known(name) {
					color = theme.For(name).CardBorder
				}
				label := labels[name]
				if label == "" {
					label = "-"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\n", name, color, label)
			}
			return writer.Flush()
		},
	}

	return cmd
}
