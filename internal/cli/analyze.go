package cli

import (
	"strings"

	"github.com/islandu/pcset/catalog"
	"github.com/islandu/pcset/pcset"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAnalyzeCommand(app *application) *cobra.Command {
	var ordered bool

	cmd := &cobra.Command{
		Use:   "analyze <pc>...",
		Short: "Analyze one pitch-class set",
		Example: `  pcset analyze 10 4 9 6
  pcset analyze "{0, 4, 7}"
  pcset analyze --ordered 7 10 2 6 9 0 4 8 11 1 3 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   *pcset.PCSet
				seg *pcset.Segment
				err error
			)
			if ordered {
				seg, err = pcset.ParseSegment(args...)
				if err == nil {
					s = seg.Set()
				}
			} else {
				s, err = pcset.ParseSet(args...)
			}
			if err != nil {
				return err
			}

			app.log.Debug("building catalog", zap.Int("concurrency", app.cfg.Concurrency))
			c, err := catalog.Build(cmd.Context(), catalog.WithConcurrency(app.cfg.Concurrency))
			if err != nil {
				return errors.Wrap(err, "could not build set-class catalog")
			}

			entry, ok := c.Lookup(s)
			if !ok {
				return errors.Errorf("no set class found for %s", s)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Property", "Value"})
			if seg != nil {
				tw.AppendRow(table.Row{"Segment", seg.String()})
				tw.AppendRow(table.Row{"Retrograde", seg.Retrograde().String()})
				tw.AppendRow(table.Row{"Row", seg.IsRow()})
				tw.AppendSeparator()
			}
			tw.AppendRow(table.Row{"Set", s.String()})
			tw.AppendRow(table.Row{"Cardinality", s.Len()})
			tw.AppendRow(table.Row{"Normal order", list(s.NormalOrder())})
			tw.AppendRow(table.Row{"Prime form", list(s.PrimeForm())})
			tw.AppendRow(table.Row{"Set class", entry.Name()})
			tw.AppendRow(table.Row{"Interval-class vector", s.IntervalClassVector().String()})
			tw.AppendRow(table.Row{"Class members", entry.Members})
			tw.AppendRow(table.Row{"Complement", s.Complement().String()})
			tw.AppendRow(table.Row{"Z-related", zNames(c.ZRelated(entry))})
			tw.Render()

			return nil
		},
	}

	cmd.Flags().BoolVar(&ordered, "ordered", false, "treat the input as an ordered segment")

	return cmd
}

func zNames(entries []catalog.Entry) string {
	if len(entries) == 0 {
		return "-"
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return strings.Join(names, ", ")
}
