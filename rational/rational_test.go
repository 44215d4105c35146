package rational_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/sortition/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_SlashFraction verifies exact slash-fraction parsing, including
// automatic reduction.
func TestParse_SlashFraction(t *testing.T) {
	r, err := rational.Parse("5/7")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(big.NewRat(5, 7)), "5/7 must parse exactly")

	r, err = rational.Parse("6/8")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(big.NewRat(3, 4)), "6/8 must reduce to 3/4")
}

// TestParse_Decimal verifies that decimal literals parse without rounding.
func TestParse_Decimal(t *testing.T) {
	r, err := rational.Parse("0.01")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(big.NewRat(1, 100)), "0.01 must parse as exactly 1/100")

	r, err = rational.Parse("3")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(big.NewRat(3, 1)), "plain integers are accepted")
}

// TestParse_ZeroDenominator ensures a zero denominator errors with
// ErrDivisionByZero rather than the generic malformed error.
func TestParse_ZeroDenominator(t *testing.T) {
	_, err := rational.Parse("1/0")
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
}

// TestParse_Malformed covers junk inputs.
func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"", "abc", "1/2/3", "1.2.3", "/2"} {
		_, err := rational.Parse(s)
		assert.ErrorIs(t, err, rational.ErrMalformed, "input %q", s)
	}
}

// TestParseThreshold_Range rejects thresholds outside (0,1) and accepts the
// interior.
func TestParseThreshold_Range(t *testing.T) {
	for _, s := range []string{"0", "1", "3/2", "-1/2", "1.0"} {
		_, err := rational.ParseThreshold(s)
		assert.ErrorIs(t, err, rational.ErrThresholdRange, "input %q", s)
	}

	r, err := rational.ParseThreshold("2/3")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(big.NewRat(2, 3)))
}

// TestFloorCeilProduct exercises exact integer rounding of r·n, including
// the exact-integer boundary where floor and ceil coincide.
func TestFloorCeilProduct(t *testing.T) {
	half := big.NewRat(1, 2)

	assert.Equal(t, int64(2), rational.FloorProduct(half, 5), "floor(5/2)")
	assert.Equal(t, int64(3), rational.CeilProduct(half, 5), "ceil(5/2)")

	// Exact boundary: 1/2 · 4 == 2 on the nose.
	assert.Equal(t, int64(2), rational.FloorProduct(half, 4))
	assert.Equal(t, int64(2), rational.CeilProduct(half, 4))
}

// TestFloorCeilRat covers rational-to-integer rounding.
func TestFloorCeilRat(t *testing.T) {
	r := big.NewRat(7, 3)
	assert.Equal(t, int64(2), rational.FloorRat(r).Int64())
	assert.Equal(t, int64(3), rational.CeilRat(r).Int64())

	whole := big.NewRat(6, 3)
	assert.Equal(t, int64(2), rational.FloorRat(whole).Int64())
	assert.Equal(t, int64(2), rational.CeilRat(whole).Int64())
}
