// Package weights normalizes a sequence of positive exact weights into an
// immutable sorted model with O(1) prefix/suffix share queries.
//
// The model is the substrate both halves of the engine stand on:
//
//   - the constraint oracle scans prefixes (heaviest-first) and suffixes
//     (lightest-first) of the sorted order, so sortedness and exact prefix
//     sums are precomputed once here;
//   - the knapsack audit needs integer item weights, so the model also
//     carries an integer-normalized copy of the weights (multiplied by the
//     lcm of denominators, divided by the gcd of numerators).
//
// Equal weights are ordered by ascending original index. This tie-break is
// load-bearing: it makes every downstream allocation a pure function of
// the multiset of weights plus input positions, independent of how
// equal-weight parties happened to be ordered.
//
// Build: O(n log n). All share queries: O(1).
package weights
