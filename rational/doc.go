// Package rational provides exact fraction parsing and floor/ceil helpers
// over math/big.Rat for the sortition engine.
//
// Every threshold comparison in the engine is security-relevant, so no
// floating-point value may ever participate in one. This package is the
// single entry point for turning external text (CLI flags, dataset lines)
// into exact rationals:
//
//   - slash fractions: "5/7"
//   - decimal literals: "0.01" (denominators are powers of ten — exact)
//
// plus the handful of exact integer-rounding operations the constraint
// oracle needs (floor/ceil of tn·N and of scaled weight totals).
//
// Arithmetic itself (Add, Mul, Cmp, …) is big.Rat's own; nothing here
// wraps or re-implements it.
package rational
