package pcset

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePitchClass reads a decimal integer and reduces it to a pitch class
func ParsePitchClass(s string) (PitchClass, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPitchClass, "%q is not an integer", s)
	}

	return PC(v), nil
}

// ParseSet builds a set from integers given as separate arguments or
// separated by commas or spaces inside one argument.
func ParseSet(args ...string) (*PCSet, error) {
	values, err := parseAll(args)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse pitch-class set")
	}
	return New(values...), nil
}

// ParseSegment is ParseSet for ordered segments
func ParseSegment(args ...string) (*Segment, error) {
	values, err := parseAll(args)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse segment")
	}
	return NewSegment(values...), nil
}

func parseAll(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, isSeparator) {
			pc, err := ParsePitchClass(field)
			if err != nil {
				return nil, err
			}
			values = append(values, int(pc))
		}
	}
	return values, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ',', ' ', '\t', '{', '}', '[', ']':
		return true
	}
	return false
}
