package pcset

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Modulus is the number of pitch classes in the octave
const Modulus = 12

// PitchClass is a pitch reduced modulo the octave, always in [0, 11]
type PitchClass int

// PC reduces any integer to its pitch class
func PC[T constraints.Integer](v T) PitchClass {
	r := v % Modulus
	if r < 0 {
		r += Modulus
	}
	return PitchClass(r)
}

// Add returns the pitch class n semitones above p
func (p PitchClass) Add(n int) PitchClass {
	return PC(int(p) + n)
}

// Invert returns the reflection of p about index n
func (p PitchClass) Invert(n int) PitchClass {
	return PC(n - int(p))
}

func (p PitchClass) String() string {
	return strconv.Itoa(int(p))
}

// Interval is the ascending distance from a to b
func Interval(a, b PitchClass) int {
	return int(PC(int(b) - int(a)))
}

// IntervalClass folds the interval between a and b into [0, 6]
func IntervalClass(a, b PitchClass) int {
	d := Interval(a, b)
	if d > Modulus/2 {
		d = Modulus - d
	}
	return d
}

func toPitchClasses[T constraints.Integer](values []T) []PitchClass {
	result := make([]PitchClass, len(values))
	for i, v := range values {
		result[i] = PC(v)
	}
	return result
}
