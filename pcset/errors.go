package pcset

import "github.com/pkg/errors"

var (
	ErrInvalidPitchClass = errors.New("invalid pitch class")
)
