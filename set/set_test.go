package set_test

import (
	"testing"

	"github.com/islandu/pcset/set"
	"github.com/stretchr/testify/assert"
)

func TestIsSubset(t *testing.T) {
	t.Run("mixed implementations", func(t *testing.T) {
		a := set.NewHashSet(1, 2)
		b := set.NewOrderedSet(3, 2, 1)

		assert.True(t, set.IsSubset[int](a, b))
		assert.False(t, set.IsSubset[int](b, a))
	})

	t.Run("empty set is a subset of anything", func(t *testing.T) {
		assert.True(t, set.IsSubset[int](set.NewHashSet[int](), set.NewHashSet(5)))
		assert.True(t, set.IsSubset[int](set.NewHashSet[int](), set.NewHashSet[int]()))
	})
}

func TestEqual(t *testing.T) {
	t.Run("insertion order does not matter", func(t *testing.T) {
		a := set.NewOrderedSet("foo", "bar")
		b := set.NewOrderedSet("bar", "foo")

		assert.True(t, set.Equal[string](a, b))
	})

	t.Run("different size", func(t *testing.T) {
		assert.False(t, set.Equal[string](set.NewHashSet("foo"), set.NewHashSet("foo", "bar")))
	})
}
