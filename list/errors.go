package list

import "github.com/pkg/errors"

var (
	// ErrSkip returned by a mapper drops the item without failing the flow
	ErrSkip = errors.New("must skip item")
)
