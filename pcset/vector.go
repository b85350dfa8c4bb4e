package pcset

import (
	"strconv"
	"strings"
)

// Vector counts interval classes 1 through 6
type Vector [6]int

// IntervalClassVector tallies the interval class of every unordered pair
func (s *PCSet) IntervalClassVector() Vector {
	var v Vector
	pcs := s.PitchClasses()
	for i := 0; i < len(pcs); i++ {
		for j := i + 1; j < len(pcs); j++ {
			v[IntervalClass(pcs[i], pcs[j])-1]++
		}
	}
	return v
}

func (v Vector) Slice() []int {
	return v[:]
}

// String renders the vector as <111111>. Entries above 9 switch the
// rendering to a comma separated list.
func (v Vector) String() string {
	sep := ""
	for _, n := range v {
		if n > 9 {
			sep = ","
			break
		}
	}

	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return "<" + strings.Join(parts, sep) + ">"
}
