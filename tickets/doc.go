// Package tickets solves the Weight Restriction (WR) and Weight
// Qualification (WQ) allocation problems with exact rational arithmetic.
//
// 🚀 What do WR and WQ ask?
//
//	Given parties with weights, a weighted threshold tw and a nominal
//	threshold tn (both in (0,1)), find the fewest indivisible tickets N
//	and a per-party allocation such that:
//	  • WR: no coalition with weight share < tw ever holds >= tn of N
//	  • WQ: every coalition with weight share >= tw always holds >= tn of N
//	These convert a weighted trust structure into an equivalent unweighted
//	one, used to size committees in stake-weighted consensus sampling.
//
// ✨ Key properties:
//
//   - Exact – all feasibility comparisons run on big.Rat; no float ever
//     participates in a threshold decision
//   - Critical-coalition reduction – the 2^n constraint space collapses
//     to at most n sorted prefixes/suffixes, scanned in O(n)
//   - Audited – accepted totals additionally pass an exact knapsack bound
//     covering every coalition, with no assumption on allocation shape
//   - Minimal – the returned total N always has N-1 infeasible, checkable
//     via AllocateTotal
//   - Deterministic – equal-weight ties break on original input index;
//     a solve is a pure function of (weights, tw, tn, kind)
//
// ⚙️ Usage:
//
//	m, _ := weights.NewModel(ws)
//	p, _ := tickets.NewProblem(m, tw, tn, tickets.WeightQualification)
//	res, err := tickets.Solve(p, tickets.DefaultOptions())
//	// res.Total, res.Tickets
//	err = tickets.Verify(p, res.Tickets) // independent re-check
//
// Boundary conventions (documented, tested): weight share exactly equal
// to tw qualifies under WQ and is not restricted under WR; WR bounds are
// strict (< tn), WQ bounds inclusive (>= tn); every party holds at least
// one ticket, so N >= n.
//
// Weight separation, the third problem variant, is deliberately absent.
//
// Performance:
//
//   - Critical scan: O(n)
//   - Construction per candidate total: O(n log n)
//   - Knapsack audit: O(n · tn·N) pseudo-polynomial
package tickets
