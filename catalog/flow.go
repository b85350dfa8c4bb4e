package catalog

import (
	"github.com/islandu/pcset/pcset"
)

const subsets = 1 << pcset.Modulus

type (
	buildConfig struct {
		concurrency int
	}

	// Option configures Build
	Option func(bc *buildConfig)

	classified struct {
		key    string
		prime  []pcset.PitchClass
		vector pcset.Vector
	}

	classes map[string]*Entry
)

// WithConcurrency sets the number of classifying workers
func WithConcurrency(c int) Option {
	return func(bc *buildConfig) {
		bc.concurrency = c
	}
}

// masks lists every subset of the aggregate as a bitmask
func masks() []int {
	result := make([]int, subsets)
	for mask := range result {
		result[mask] = mask
	}
	return result
}

func classify(_ int, mask int) (classified, error) {
	s := pcset.New()
	for pc := 0; pc < pcset.Modulus; pc++ {
		if mask&(1<<pc) != 0 {
			s.Add(pc)
		}
	}

	prime := s.PrimeForm()
	return classified{
		key:    Name(prime),
		prime:  prime,
		vector: s.IntervalClassVector(),
	}, nil
}

func collect(acc classes, _ int, c classified) (classes, error) {
	if e, ok := acc[c.key]; ok {
		e.Members++
		return acc, nil
	}

	acc[c.key] = &Entry{PrimeForm: c.prime, Vector: c.vector, Members: 1}
	return acc, nil
}
