// Package catalog enumerates the set classes of the twelve-tone system,
// that is every pitch-class set up to transposition and inversion.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/islandu/pcset/list"
	"github.com/islandu/pcset/pcset"
	"github.com/pkg/errors"
)

// Entry describes one set class
type Entry struct {
	PrimeForm []pcset.PitchClass
	Vector    pcset.Vector
	// Members is the number of distinct sets belonging to the class
	Members int
}

func (e Entry) Cardinality() int {
	return len(e.PrimeForm)
}

func (e Entry) Name() string {
	return Name(e.PrimeForm)
}

// Catalog is read-only once built and safe to share
type Catalog struct {
	entries  []Entry
	index    map[string]int
	byVector map[pcset.Vector][]int
}

// Build classifies all 4096 subsets of the aggregate
func Build(ctx context.Context, options ...Option) (*Catalog, error) {
	cfg := buildConfig{concurrency: 1}
	for _, opt := range options {
		opt(&cfg)
	}

	result, err := list.MapReduce(
		ctx,
		masks(),
		classify,
		collect,
		list.WithInitialValue(make(classes)),
		list.WithConcurrency[classes](cfg.concurrency),
	)
	if err != nil {
		return nil, errors.Wrap(err, "catalog build stopped")
	}

	return newCatalog(result), nil
}

func newCatalog(found classes) *Catalog {
	c := &Catalog{
		entries:  make([]Entry, 0, len(found)),
		index:    make(map[string]int, len(found)),
		byVector: make(map[pcset.Vector][]int),
	}

	for _, e := range found {
		c.entries = append(c.entries, *e)
	}
	sort.Slice(c.entries, func(i, j int) bool {
		return less(c.entries[i].PrimeForm, c.entries[j].PrimeForm)
	})

	for i, e := range c.entries {
		c.index[e.Name()] = i
		c.byVector[e.Vector] = append(c.byVector[e.Vector], i)
	}

	return c
}

// less orders by cardinality, then lexicographically
func less(a, b []pcset.PitchClass) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns every set class sorted by cardinality and prime form
func (c *Catalog) Entries() []Entry {
	result := make([]Entry, len(c.entries))
	copy(result, c.entries)
	return result
}

func (c *Catalog) ByCardinality(n int) []Entry {
	var result []Entry
	for _, e := range c.entries {
		if e.Cardinality() == n {
			result = append(result, e)
		}
	}
	return result
}

// Lookup finds the set class of s
func (c *Catalog) Lookup(s *pcset.PCSet) (Entry, bool) {
	idx, ok := c.index[Name(s.PrimeForm())]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// ZRelated returns the other set classes sharing the interval-class vector of e
func (c *Catalog) ZRelated(e Entry) []Entry {
	var result []Entry
	for _, idx := range c.byVector[e.Vector] {
		other := c.entries[idx]
		if other.Cardinality() == e.Cardinality() && other.Name() != e.Name() {
			result = append(result, other)
		}
	}
	return result
}

// Name renders a prime form as (0146), writing 10 and 11 as T and E
func Name(prime []pcset.PitchClass) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, pc := range prime {
		switch pc {
		case 10:
			b.WriteByte('T')
		case 11:
			b.WriteByte('E')
		default:
			b.WriteString(pc.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}
