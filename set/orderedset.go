package set

import (
	"github.com/denismitr/dll"
)

// OrderedSet keeps items in insertion order
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T], len(items)),
		list: dll.New[T](),
	}
	s.InsertSlice(items)
	return s
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) Clear() {
	s.m = make(map[T]*dll.Element[T])
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		if el == s.list.Head() {
			// dll.Remove leaves the new head linked back to el,
			// so a removed head is dropped by relinking the rest.
			rest := s.Items()[1:]
			s.Clear()
			s.InsertSlice(rest)
			return true
		}

		delete(s.m, el.Value())
		s.list.Remove(el)
		return true
	}

	return false
}

// Items returns the items in insertion order
func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

// IndexOf returns the position of item or -1
func (s *OrderedSet[T]) IndexOf(item T) int {
	el, ok := s.m[item]
	if !ok {
		return -1
	}

	idx := 0
	for curr := s.list.Head(); curr != el; curr = curr.Next() {
		idx++
	}
	return idx
}

// Reverse flips the order of the items in place
func (s *OrderedSet[T]) Reverse() {
	s.list.Reverse()
}

func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	return NewOrderedSet(s.Items()...)
}

func (s *OrderedSet[T]) Len() int {
	return s.list.Len()
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
