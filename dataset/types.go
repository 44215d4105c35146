package dataset

import "errors"

var (
	// ErrNoWeights signals an input that contains no weight tokens at all.
	ErrNoWeights = errors.New("dataset: input contains no weights")

	// ErrBadWeight signals a token that does not parse as a positive
	// rational number. The wrapping error names the token and its
	// 1-based position.
	ErrBadWeight = errors.New("dataset: malformed weight")
)
