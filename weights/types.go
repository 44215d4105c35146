// Package weights defines the sentinel errors of the weight model.
package weights

import "errors"

// Sentinel errors for weight model construction.
var (
	// ErrEmptyInput indicates the weight sequence has no entries.
	ErrEmptyInput = errors.New("weights: input must contain at least one weight")
	// ErrNonPositiveWeight indicates a weight that is zero, negative, or nil.
	ErrNonPositiveWeight = errors.New("weights: all weights must be strictly positive")
)
