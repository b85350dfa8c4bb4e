package set

// HashSet - is an unordered set
type HashSet[T comparable] struct {
	m map[T]nothing
}

var _ Set[int] = (*HashSet[int])(nil)

func NewHashSet[T comparable](items ...T) *HashSet[T] {
	s := &HashSet[T]{
		m: make(map[T]nothing, len(items)),
	}
	s.InsertSlice(items)
	return s
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = nothing{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) Clear() {
	s.m = make(map[T]nothing)
}

// Items returns the items in no particular order
func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Remove(item T) bool {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true
	}

	return false
}

func (s *HashSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

func (s *HashSet[T]) Clone() *HashSet[T] {
	result := &HashSet[T]{m: make(map[T]nothing, len(s.m))}
	for item := range s.m {
		result.m[item] = nothing{}
	}
	return result
}

// Union returns a new set holding the items of both sets
func (s *HashSet[T]) Union(other Set[T]) *HashSet[T] {
	result := s.Clone()
	result.InsertSet(other)
	return result
}

// Intersection returns a new set holding the items present in both sets
func (s *HashSet[T]) Intersection(other Set[T]) *HashSet[T] {
	result := NewHashSet[T]()
	for item := range s.m {
		if other.Has(item) {
			result.m[item] = nothing{}
		}
	}
	return result
}

// Difference returns a new set holding the items of s that are not in other
func (s *HashSet[T]) Difference(other Set[T]) *HashSet[T] {
	result := NewHashSet[T]()
	for item := range s.m {
		if !other.Has(item) {
			result.m[item] = nothing{}
		}
	}
	return result
}

func (s *HashSet[T]) IsSubset(other Set[T]) bool {
	return IsSubset[T](s, other)
}

func (s *HashSet[T]) IsSuperset(other Set[T]) bool {
	return IsSubset[T](other, s)
}

func (s *HashSet[T]) Equal(other Set[T]) bool {
	return Equal[T](s, other)
}
