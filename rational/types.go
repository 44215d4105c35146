// Package rational defines sentinel errors for exact fraction parsing.
package rational

import "errors"

// Sentinel errors for rational parsing and validation.
var (
	// ErrMalformed indicates the input is not a fraction or decimal literal.
	ErrMalformed = errors.New("rational: malformed literal")
	// ErrDivisionByZero indicates a slash-fraction with a zero denominator.
	ErrDivisionByZero = errors.New("rational: zero denominator")
	// ErrThresholdRange indicates a threshold outside the open interval (0,1).
	ErrThresholdRange = errors.New("rational: threshold must lie strictly between 0 and 1")
)
