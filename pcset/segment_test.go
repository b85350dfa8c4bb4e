package pcset_test

import (
	"testing"

	"github.com/islandu/pcset/pcset"
	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	t.Run("keeps first occurrence and order", func(t *testing.T) {
		g := pcset.NewSegment(4, 1, 16, 8, 2, 1)

		assert.Equal(t, pcs(4, 1, 8, 2), g.PitchClasses())
		assert.Equal(t, "<4 1 8 2>", g.String())
		assert.Equal(t, 2, g.IndexOf(8))
		assert.Equal(t, -1, g.IndexOf(0))
	})

	t.Run("append", func(t *testing.T) {
		g := pcset.NewSegment()

		assert.True(t, g.Append(13))
		assert.False(t, g.Append(1))
		assert.Equal(t, 1, g.Len())
	})

	t.Run("operators return new segments", func(t *testing.T) {
		g := pcset.NewSegment(0, 11, 3)

		assert.Equal(t, pcs(2, 1, 5), g.Transpose(2).PitchClasses())
		assert.Equal(t, pcs(0, 1, 9), g.Invert(0).PitchClasses())
		assert.Equal(t, pcs(3, 11, 0), g.Retrograde().PitchClasses())
		assert.Equal(t, pcs(0, 11, 3), g.PitchClasses())
		assert.Equal(t, g.PitchClasses(), g.Retrograde().Retrograde().PitchClasses())
	})

	t.Run("row", func(t *testing.T) {
		// Berg, Violin Concerto
		row := pcset.NewSegment(7, 10, 2, 6, 9, 0, 4, 8, 11, 1, 3, 5)

		assert.True(t, row.IsRow())
		assert.True(t, row.Set().Equal(pcset.Aggregate()))
		assert.False(t, pcset.NewSegment(0, 1).IsRow())
		assert.Equal(t, pcs(0, 3, 7), pcset.NewSegment(7, 10, 2).Set().PrimeForm())
	})
}
