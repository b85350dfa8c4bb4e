package set

type nothing struct{}

// Set is a membership collection of unique items
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	Len() int
	InsertSet(sourceSet Set[T]) (modified bool)
}

// IsSubset reports whether every item of a is also in b
func IsSubset[T comparable](a, b Set[T]) bool {
	if a.Len() > b.Len() {
		return false
	}

	for _, item := range a.Items() {
		if !b.Has(item) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b hold the same items
func Equal[T comparable](a, b Set[T]) bool {
	return a.Len() == b.Len() && IsSubset(a, b)
}
