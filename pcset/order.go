package pcset

// comparePacking orders two equally sized candidates given as offsets from
// their first element. The outer span decides first, then the span to the
// second-to-last element and so on toward the start. It returns -1 when a
// is packed more tightly than b, 1 when b is, and 0 on a full tie.
func comparePacking(a, b []PitchClass) int {
	for i := len(a) - 1; i > 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// offsets transposes an ordering so that it starts on 0
func offsets(ordering []PitchClass) []PitchClass {
	result := make([]PitchClass, len(ordering))
	if len(ordering) == 0 {
		return result
	}

	for i, pc := range ordering {
		result[i] = PitchClass(Interval(ordering[0], pc))
	}
	return result
}

func rotate(pcs []PitchClass, front int) []PitchClass {
	result := make([]PitchClass, 0, len(pcs))
	result = append(result, pcs[front:]...)
	return append(result, pcs[:front]...)
}

// NormalOrder returns the most compact rotation of the set.
// Rotations tied on every span resolve to the one starting on
// the smallest pitch class.
func (s *PCSet) NormalOrder() []PitchClass {
	sorted := s.PitchClasses()
	if len(sorted) < 2 {
		return sorted
	}

	best, bestOffsets := 0, offsets(sorted)
	for i := 1; i < len(sorted); i++ {
		candidate := offsets(rotate(sorted, i))
		if comparePacking(candidate, bestOffsets) < 0 {
			best, bestOffsets = i, candidate
		}
	}

	return rotate(sorted, best)
}

// PrimeForm returns the representative of the set class of s,
// an ascending sequence starting on 0.
func (s *PCSet) PrimeForm() []PitchClass {
	original := offsets(s.NormalOrder())
	inverted := offsets(s.Clone().Invert(0).NormalOrder())

	if comparePacking(inverted, original) < 0 {
		return inverted
	}
	return original
}
