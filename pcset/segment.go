package pcset

import (
	"github.com/islandu/pcset/set"
)

// Segment is an ordered collection of distinct pitch classes, such as a
// twelve-tone row. Repeated pitch classes keep their first position.
type Segment struct {
	pcs *set.OrderedSet[PitchClass]
}

func NewSegment(pcs ...int) *Segment {
	return &Segment{pcs: set.NewOrderedSet(toPitchClasses(pcs)...)}
}

func segmentOf(pcs []PitchClass) *Segment {
	return &Segment{pcs: set.NewOrderedSet(pcs...)}
}

// Append adds p mod 12 at the end unless it is already present
func (g *Segment) Append(p int) bool {
	return g.pcs.Insert(PC(p))
}

func (g *Segment) Len() int {
	return g.pcs.Len()
}

// PitchClasses returns the members in segment order
func (g *Segment) PitchClasses() []PitchClass {
	return g.pcs.Items()
}

// IndexOf returns the order position of p mod 12, or -1
func (g *Segment) IndexOf(p int) int {
	return g.pcs.IndexOf(PC(p))
}

func (g *Segment) Transpose(n int) *Segment {
	return g.remap(func(p PitchClass) PitchClass { return p.Add(n) })
}

func (g *Segment) Invert(n int) *Segment {
	return g.remap(func(p PitchClass) PitchClass { return p.Invert(n) })
}

func (g *Segment) remap(f func(PitchClass) PitchClass) *Segment {
	items := g.pcs.Items()
	for i, p := range items {
		items[i] = f(p)
	}
	return segmentOf(items)
}

// Retrograde returns the segment in reverse order
func (g *Segment) Retrograde() *Segment {
	reversed := g.pcs.Clone()
	reversed.Reverse()
	return &Segment{pcs: reversed}
}

// Set drops the ordering
func (g *Segment) Set() *PCSet {
	return FromPitchClasses(g.pcs.Items()...)
}

// IsRow reports whether all twelve pitch classes are present
func (g *Segment) IsRow() bool {
	return g.Len() == Modulus
}

func (g *Segment) String() string {
	return "<" + join(g.PitchClasses(), " ") + ">"
}
