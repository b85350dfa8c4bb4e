package pcset_test

import (
	"math/rand"
	"testing"

	"github.com/islandu/pcset/pcset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCSet_NormalOrder(t *testing.T) {
	tt := []struct {
		name string
		in   []int
		want []pcset.PitchClass
	}{
		{name: "empty", in: nil, want: pcs()},
		{name: "singleton", in: []int{7}, want: pcs(7)},
		{name: "wraps around the octave", in: []int{10, 4, 9, 6}, want: pcs(4, 6, 9, 10)},
		{name: "dominant seventh", in: []int{7, 11, 2, 5}, want: pcs(11, 2, 5, 7)},
		{name: "tie on the outer span", in: []int{0, 4, 7, 8}, want: pcs(4, 7, 8, 0)},
		{name: "symmetric set starts on smallest", in: []int{8, 0, 4}, want: pcs(0, 4, 8)},
		{name: "diminished seventh", in: []int{10, 1, 4, 7}, want: pcs(1, 4, 7, 10)},
		{name: "tritone pair of dyads", in: []int{7, 6, 1, 0}, want: pcs(0, 1, 6, 7)},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pcset.New(tc.in...).NormalOrder())
		})
	}
}

func TestPCSet_NormalOrderIgnoresInputOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(12))
	inputs := [][]int{
		{10, 4, 9, 6},
		{4, 1, 8, 2},
		{0, 2, 4, 6, 8, 10},
		{0, 1, 3, 4, 6, 7, 9, 10},
		{11, 3, 5, 8, 0},
	}

	for _, in := range inputs {
		want := pcset.New(in...).NormalOrder()
		for i := 0; i < 20; i++ {
			shuffled := append([]int(nil), in...)
			rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			assert.Equal(t, want, pcset.New(shuffled...).NormalOrder(), "input %v", shuffled)
		}
	}
}

func TestPCSet_NormalOrderIsARotation(t *testing.T) {
	for mask := 0; mask < allMasks; mask++ {
		s := fromMask(mask)
		got := s.NormalOrder()
		require.Len(t, got, s.Len())
		require.True(t, pcset.FromPitchClasses(got...).Equal(s), "mask %d", mask)
	}
}

func TestPCSet_PrimeForm(t *testing.T) {
	tt := []struct {
		name string
		in   []int
		want []pcset.PitchClass
	}{
		{name: "fixture a", in: []int{10, 4, 9, 6}, want: pcs(0, 1, 4, 6)},
		{name: "fixture b", in: []int{4, 1, 8, 2}, want: pcs(0, 1, 3, 7)},
		{name: "major triad", in: []int{0, 4, 7}, want: pcs(0, 3, 7)},
		{name: "minor triad", in: []int{9, 0, 4}, want: pcs(0, 3, 7)},
		{name: "dominant seventh", in: []int{7, 11, 2, 5}, want: pcs(0, 2, 5, 8)},
		{name: "augmented triad", in: []int{1, 5, 9}, want: pcs(0, 4, 8)},
		{name: "whole tone", in: []int{1, 3, 5, 7, 9, 11}, want: pcs(0, 2, 4, 6, 8, 10)},
		{name: "singleton", in: []int{5}, want: pcs(0)},
		{name: "aggregate", in: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, want: pcs(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pcset.New(tc.in...).PrimeForm())
		})
	}
}

func TestPCSet_PrimeFormInvariance(t *testing.T) {
	for mask := 1; mask < allMasks; mask += 3 {
		s := fromMask(mask)
		want := s.PrimeForm()
		require.Equal(t, pcset.PitchClass(0), want[0])

		for n := 0; n < pcset.Modulus; n++ {
			require.Equal(t, want, s.Clone().Transpose(n).PrimeForm(), "T%d of mask %d", n, mask)
			require.Equal(t, want, s.Clone().Invert(n).PrimeForm(), "I%d of mask %d", n, mask)
		}
	}
}

func TestPCSet_PrimeFormIsAscending(t *testing.T) {
	for mask := 1; mask < allMasks; mask++ {
		prime := fromMask(mask).PrimeForm()
		for i := 1; i < len(prime); i++ {
			require.Less(t, prime[i-1], prime[i], "mask %d", mask)
		}
	}
}
