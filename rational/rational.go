package rational

import (
	"math/big"
	"strings"
)

// Parse converts a slash-fraction literal ("5/7") or a decimal literal
// ("0.01", "3") into an exact *big.Rat. Decimal parsing introduces no
// rounding: denominators are powers of ten.
//
// Errors:
//   - ErrDivisionByZero — slash-fraction with a zero denominator.
//   - ErrMalformed      — anything else that is not a valid literal.
func Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrMalformed
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, okN := new(big.Int).SetString(strings.TrimSpace(num), 10)
		d, okD := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !okN || !okD {
			return nil, ErrMalformed
		}
		if d.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return new(big.Rat).SetFrac(n, d), nil
	}

	// Decimal (or plain integer) literal. big.Rat parses these exactly.
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, ErrMalformed
	}
	return r, nil
}

// ParseThreshold parses a threshold literal and requires it to lie in the
// open interval (0,1); the endpoints are degenerate for both problem kinds.
func ParseThreshold(s string) (*big.Rat, error) {
	r, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if !InUnitInterval(r) {
		return nil, ErrThresholdRange
	}
	return r, nil
}

// InUnitInterval reports whether 0 < r < 1.
func InUnitInterval(r *big.Rat) bool {
	return r.Sign() > 0 && r.Cmp(one) < 0
}

var one = big.NewRat(1, 1)

// FloorRat returns the largest integer not greater than r.
func FloorRat(r *big.Rat) *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m) // Euclidean: 0 <= m < denom, so q == floor
	return q
}

// CeilRat returns the smallest integer not less than r.
func CeilRat(r *big.Rat) *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m)
	if m.Sign() != 0 {
		q.Add(q, intOne)
	}
	return q
}

var intOne = big.NewInt(1)

// FloorProduct returns floor(r*n) as an int64.
// The caller guarantees the result fits; the engine only ever multiplies
// unit-interval thresholds by ticket totals.
func FloorProduct(r *big.Rat, n int64) int64 {
	p := new(big.Rat).Mul(r, new(big.Rat).SetInt64(n))
	return FloorRat(p).Int64()
}

// CeilProduct returns ceil(r*n) as an int64.
func CeilProduct(r *big.Rat, n int64) int64 {
	p := new(big.Rat).Mul(r, new(big.Rat).SetInt64(n))
	return CeilRat(p).Int64()
}
