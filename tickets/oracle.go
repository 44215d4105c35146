package tickets

import (
	"math/big"

	"github.com/katalvlaran/sortition/rational"
)

// Constraint oracle.
//
// The 2^n coalition constraint space collapses to at most n critical
// coalitions, all monotone in the weight-sorted order:
//
//   - WR: the binding coalitions are suffixes of the descending-weight
//     order (the k lightest parties) whose weight share stays strictly
//     below tw; each may hold at most ceil(tn*N)-1 tickets.
//   - WQ: the binding coalitions are prefixes (the k heaviest parties)
//     whose weight share reaches tw; each must hold at least ceil(tn*N)
//     tickets.
//
// The reduction presumes ticket counts monotone in weight, which the
// allocator guarantees by construction. scanCritical is the fast check;
// audit is the exact knapsack backstop that assumes nothing about the
// assignment shape.

// restrictedLimit is the most tickets a restricted WR coalition may hold:
// the largest integer strictly below tn*total.
func (p *Problem) restrictedLimit(total int64) int64 {
	return rational.CeilProduct(p.tn, total) - 1
}

// qualifiedNeed is the fewest tickets a qualifying WQ coalition must hold:
// the smallest integer at or above tn*total.
func (p *Problem) qualifiedNeed(total int64) int64 {
	return rational.CeilProduct(p.tn, total)
}

// scanCritical checks every critical coalition of the sorted-order ticket
// vector ts against the problem constraint. It returns nil on success, or
// the first violated coalition in scan order (smallest first).
//
// Complexity: O(n) plus the O(1) share lookups of the weight model.
func (p *Problem) scanCritical(ts []int64, total int64) *VerificationError {
	n := p.model.Len()
	switch p.kind {
	case WeightRestriction:
		limit := p.restrictedLimit(total)
		sum := int64(0)
		for k := 1; k <= n; k++ {
			share := p.model.SuffixShare(k)
			if share.Cmp(p.tw) >= 0 {
				// Suffix shares only grow with k; nothing further is
				// restricted. Reaching tw exactly already disqualifies.
				return nil
			}
			sum += ts[n-k]
			if sum > limit {
				return &VerificationError{
					Critical:    true,
					Size:        k,
					WeightShare: share,
					TicketShare: big.NewRat(sum, total),
				}
			}
		}
		return nil

	case WeightQualification:
		need := p.qualifiedNeed(total)
		sum := int64(0)
		for k := 1; k <= n; k++ {
			sum += ts[k-1]
			share := p.model.PrefixShare(k)
			if share.Cmp(p.tw) < 0 {
				continue
			}
			// Reaching tw exactly counts as qualifying.
			if sum < need {
				return &VerificationError{
					Critical:    true,
					Size:        k,
					WeightShare: share,
					TicketShare: big.NewRat(sum, total),
				}
			}
		}
		return nil

	default:
		return nil
	}
}

// audit runs the exact knapsack bound over all coalitions, with no
// monotonicity assumption on ts. It returns nil when the constraint holds
// for every subset of parties, or the offending coalition otherwise.
//
// WR asks directly for the maximum tickets obtainable with scaled weight
// strictly below tw*W. WQ is checked through complements: a coalition has
// weight share >= tw exactly when its complement has share <= 1-tw, and it
// holds at least ceil(tn*N) tickets exactly when the complement holds at
// most N-ceil(tn*N).
func (p *Problem) audit(ts []int64, total int64) *VerificationError {
	switch p.kind {
	case WeightRestriction:
		// Largest integer scaled weight strictly below tw*W.
		budget := new(big.Rat).Mul(p.tw, new(big.Rat).SetInt(p.model.ScaledTotal()))
		capW := rational.CeilRat(budget)
		capW.Sub(capW, big.NewInt(1))

		limit := p.restrictedLimit(total)
		profit, set := p.maxTicketsWithin(ts, capW, limit)
		if profit <= limit {
			return nil
		}
		return &VerificationError{
			Size:        len(set),
			WeightShare: p.coalitionShare(set),
			TicketShare: big.NewRat(profit, total),
		}

	case WeightQualification:
		// Complement budget: scaled weight at most (1-tw)*W, inclusive.
		rest := new(big.Rat).SetInt64(1)
		rest.Sub(rest, p.tw)
		rest.Mul(rest, new(big.Rat).SetInt(p.model.ScaledTotal()))
		capW := rational.FloorRat(rest)

		limit := total - p.qualifiedNeed(total)
		profit, set := p.maxTicketsWithin(ts, capW, limit)
		if profit <= limit {
			return nil
		}
		// The offending coalition is the complement of the found set.
		comp := complementOf(set, p.model.Len())
		share := new(big.Rat).SetInt64(1)
		share.Sub(share, p.coalitionShare(set))
		return &VerificationError{
			Size:        len(comp),
			WeightShare: share,
			TicketShare: big.NewRat(total-profit, total),
		}

	default:
		return nil
	}
}

// coalitionShare returns the exact weight share of a set of sorted
// positions.
func (p *Problem) coalitionShare(set []int) *big.Rat {
	sum := new(big.Rat)
	for _, i := range set {
		sum.Add(sum, p.model.At(i))
	}
	return sum.Quo(sum, p.model.Total())
}

// complementOf returns the sorted positions not present in set.
func complementOf(set []int, n int) []int {
	in := make([]bool, n)
	for _, i := range set {
		in[i] = true
	}
	out := make([]int, 0, n-len(set))
	for i := 0; i < n; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}
	return out
}
