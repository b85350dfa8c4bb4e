package pcset_test

import "github.com/islandu/pcset/pcset"

// fromMask builds the set whose bit i marks pitch class i
func fromMask(mask int) *pcset.PCSet {
	s := pcset.New()
	for pc := 0; pc < pcset.Modulus; pc++ {
		if mask&(1<<pc) != 0 {
			s.Add(pc)
		}
	}
	return s
}

func pcs(values ...int) []pcset.PitchClass {
	result := make([]pcset.PitchClass, len(values))
	for i, v := range values {
		result[i] = pcset.PitchClass(v)
	}
	return result
}

const allMasks = 1 << pcset.Modulus
