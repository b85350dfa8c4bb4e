package pcset_test

import (
	"testing"

	"github.com/islandu/pcset/pcset"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitchClass(t *testing.T) {
	pc, err := pcset.ParsePitchClass(" 14 ")
	require.NoError(t, err)
	assert.Equal(t, pcset.PitchClass(2), pc)

	pc, err = pcset.ParsePitchClass("-1")
	require.NoError(t, err)
	assert.Equal(t, pcset.PitchClass(11), pc)

	_, err = pcset.ParsePitchClass("C#")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pcset.ErrInvalidPitchClass))
	assert.Equal(t, pcset.ErrInvalidPitchClass, errors.Cause(err))
}

func TestParseSet(t *testing.T) {
	t.Run("mixed separators", func(t *testing.T) {
		s, err := pcset.ParseSet("{10, 4}", "9", "6,22")
		require.NoError(t, err)
		assert.Equal(t, "PCSet: {4, 6, 9, 10}", s.String())
	})

	t.Run("no arguments", func(t *testing.T) {
		s, err := pcset.ParseSet()
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("invalid member", func(t *testing.T) {
		s, err := pcset.ParseSet("1", "x")
		require.Error(t, err)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, pcset.ErrInvalidPitchClass))
	})
}

func TestParseSegment(t *testing.T) {
	g, err := pcset.ParseSegment("[3 2", "1]")
	require.NoError(t, err)
	assert.Equal(t, pcs(3, 2, 1), g.PitchClasses())

	_, err = pcset.ParseSegment("2.5")
	assert.True(t, errors.Is(err, pcset.ErrInvalidPitchClass))
}
