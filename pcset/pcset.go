package pcset

import (
	"sort"
	"strings"

	"github.com/islandu/pcset/set"
)

// PCSet is an unordered set of pitch classes.
// It is not safe for concurrent mutation.
type PCSet struct {
	pcs *set.HashSet[PitchClass]
}

// New creates a set from the given integers, each reduced modulo 12
func New(pcs ...int) *PCSet {
	return &PCSet{pcs: set.NewHashSet(toPitchClasses(pcs)...)}
}

// FromPitchClasses creates a set from already reduced pitch classes
func FromPitchClasses(pcs ...PitchClass) *PCSet {
	s := &PCSet{pcs: set.NewHashSet[PitchClass]()}
	for _, pc := range pcs {
		s.pcs.Insert(PC(pc))
	}
	return s
}

// Aggregate returns the set of all twelve pitch classes
func Aggregate() *PCSet {
	return New(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
}

// Add inserts p mod 12. Adding a present pitch class does nothing.
func (s *PCSet) Add(p int) *PCSet {
	s.pcs.Insert(PC(p))
	return s
}

// Remove deletes p mod 12 and reports whether it was present.
// Removing an absent pitch class is a no-op.
func (s *PCSet) Remove(p int) bool {
	return s.pcs.Remove(PC(p))
}

func (s *PCSet) Has(p int) bool {
	return s.pcs.Has(PC(p))
}

// Len is the cardinality of the set
func (s *PCSet) Len() int {
	return s.pcs.Len()
}

// PitchClasses returns the members in ascending order
func (s *PCSet) PitchClasses() []PitchClass {
	items := s.pcs.Items()
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

func (s *PCSet) Clone() *PCSet {
	return &PCSet{pcs: s.pcs.Clone()}
}

// Transpose replaces the content with T(n) of it and returns the receiver
func (s *PCSet) Transpose(n int) *PCSet {
	return s.remap(func(p PitchClass) PitchClass { return p.Add(n) })
}

// Invert replaces the content with I(n) of it and returns the receiver
func (s *PCSet) Invert(n int) *PCSet {
	return s.remap(func(p PitchClass) PitchClass { return p.Invert(n) })
}

func (s *PCSet) remap(f func(PitchClass) PitchClass) *PCSet {
	mapped := set.NewHashSet[PitchClass]()
	for _, p := range s.pcs.Items() {
		mapped.Insert(f(p))
	}
	s.pcs = mapped
	return s
}

func (s *PCSet) IsSubset(other *PCSet) bool {
	return s.pcs.IsSubset(other.pcs)
}

func (s *PCSet) IsSuperset(other *PCSet) bool {
	return s.pcs.IsSuperset(other.pcs)
}

func (s *PCSet) Union(other *PCSet) *PCSet {
	return &PCSet{pcs: s.pcs.Union(other.pcs)}
}

func (s *PCSet) Intersection(other *PCSet) *PCSet {
	return &PCSet{pcs: s.pcs.Intersection(other.pcs)}
}

// Difference returns the members of s that are not in other
func (s *PCSet) Difference(other *PCSet) *PCSet {
	return &PCSet{pcs: s.pcs.Difference(other.pcs)}
}

// Complement returns the pitch classes of the aggregate missing from s
func (s *PCSet) Complement() *PCSet {
	return Aggregate().Difference(s)
}

func (s *PCSet) Equal(other *PCSet) bool {
	return s.pcs.Equal(other.pcs)
}

// IsTnEquivalent reports whether other is a transposition of s
func (s *PCSet) IsTnEquivalent(other *PCSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	return comparePacking(offsets(s.NormalOrder()), offsets(other.NormalOrder())) == 0
}

// IsTnIEquivalent reports whether s and other belong to the same set class
func (s *PCSet) IsTnIEquivalent(other *PCSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	return comparePacking(s.PrimeForm(), other.PrimeForm()) == 0
}

func (s *PCSet) String() string {
	return "PCSet: {" + join(s.PitchClasses(), ", ") + "}"
}

func join(pcs []PitchClass, sep string) string {
	var b strings.Builder
	for i, pc := range pcs {
		if i != 0 {
			b.WriteString(sep)
		}
		b.WriteString(pc.String())
	}
	return b.String()
}
