package cli

import (
	"github.com/islandu/pcset/catalog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCatalogCommand(app *application) *cobra.Command {
	var cardinality int

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the set classes of the twelve-tone system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filtered := cmd.Flags().Changed("cardinality")
			if filtered && (cardinality < 0 || cardinality > 12) {
				return errors.Errorf("cardinality must be between 0 and 12, got %d", cardinality)
			}

			c, err := catalog.Build(cmd.Context(), catalog.WithConcurrency(app.cfg.Concurrency))
			if err != nil {
				return errors.Wrap(err, "could not build set-class catalog")
			}

			entries := c.Entries()
			if filtered {
				entries = c.ByCardinality(cardinality)
			}
			app.log.Debug("catalog built", zap.Int("classes", c.Len()), zap.Int("listed", len(entries)))

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"#", "Set class", "Interval-class vector", "Members", "Z-related"})
			for i, e := range entries {
				tw.AppendRow(table.Row{i + 1, e.Name(), e.Vector.String(), e.Members, zNames(c.ZRelated(e))})
			}
			tw.AppendFooter(table.Row{"", "", "", "Total", len(entries)})
			tw.Render()

			return nil
		},
	}

	cmd.Flags().IntVarP(&cardinality, "cardinality", "n", 0, "only list classes of this size")

	return cmd
}
