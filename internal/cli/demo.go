package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/islandu/pcset/pcset"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	demoA = []int{10, 4, 9, 6}
	demoB = []int{4, 1, 8, 2}
)

func newDemoCommand(app *application) *cobra.Command {
	var first, second string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Compare two pitch-class sets",
		Long: `Prints the rendering, prime forms, interval-class vectors, union,
difference and intersection of two sets. Without flags the sets
{10, 4, 9, 6} and {4, 1, 8, 2} are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := pcset.New(demoA...), pcset.New(demoB...)

			var err error
			if first != "" {
				if a, err = pcset.ParseSet(first); err != nil {
					return errors.Wrap(err, "--first")
				}
			}
			if second != "" {
				if b, err = pcset.ParseSet(second); err != nil {
					return errors.Wrap(err, "--second")
				}
			}

			app.log.Debug("running demo", zap.Stringer("first", a), zap.Stringer("second", b))
			writeDemo(cmd.OutOrStdout(), a, b)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "first set, e.g. \"10,4,9,6\"")
	cmd.Flags().StringVar(&second, "second", "", "second set, e.g. \"4,1,8,2\"")

	return cmd
}

func writeDemo(w io.Writer, a, b *pcset.PCSet) {
	fmt.Fprintln(w, "Console representations of 2 test PCSet objects:")
	fmt.Fprintln(w, a)
	fmt.Fprintln(w, b)
	fmt.Fprintln(w, "Prime forms of 2 test PCSet objects:")
	fmt.Fprintln(w, list(a.PrimeForm()))
	fmt.Fprintln(w, list(b.PrimeForm()))
	fmt.Fprintln(w, "Interval-class vectors of 2 test PCSet objects:")
	fmt.Fprintln(w, ints(a.IntervalClassVector().Slice()))
	fmt.Fprintln(w, ints(b.IntervalClassVector().Slice()))
	fmt.Fprintln(w, "Union of 2 test PCSet objects:")
	fmt.Fprintln(w, a.Union(b))
	fmt.Fprintln(w, "Difference of 2 test PCSet objects:")
	fmt.Fprintln(w, a.Difference(b))
	fmt.Fprintln(w, "Intersection of 2 test PCSet objects:")
	fmt.Fprintln(w, a.Intersection(b))
}

// list renders pitch classes as [0, 1, 4, 6]
func list(pcs []pcset.PitchClass) string {
	values := make([]int, len(pcs))
	for i, pc := range pcs {
		values[i] = int(pc)
	}
	return ints(values)
}

func ints(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
