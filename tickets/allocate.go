package tickets

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/sortition/rational"
)

// Allocator.
//
// Solve searches the smallest total N >= n for which a concrete assignment
// exists, then returns it. A candidate total is checked constructively:
// largest-remainder apportionment proportional to weight, a one-ticket
// floor per party, bounded boundary repairs driven by the first violated
// critical coalition, and finally the exact knapsack audit.
//
// Feasibility is NOT monotone in N, so no binary search: under WQ, two
// disjoint qualifying coalitions each need ceil(tn*N) tickets, and with
// tn=1/2 that rules out every odd total while even ones work. The search
// therefore walks totals upward and stops at the first feasible one,
// which is the exact minimum for this construction.

// Solve finds the minimum feasible ticket total and one assignment for it.
// The returned tickets are in original input order.
//
// Errors:
//   - ErrNilProblem           — p is nil.
//   - ErrInfeasibleThresholds — no total within the search bound works.
//
// Complexity: O(bound) construction rounds; each round is O(n log n) for
// the apportionment plus O(n*tn*N) for the audit.
func Solve(p *Problem, opts Options) (Result, error) {
	if p == nil || p.model == nil {
		return Result{}, ErrNilProblem
	}

	bound := p.searchBound(opts)
	for total := int64(p.model.Len()); total <= bound; total++ {
		ts, err := p.allocateSorted(total, opts)
		if err != nil {
			continue
		}
		return Result{Total: total, Tickets: p.model.Unsort(ts)}, nil
	}
	return Result{}, ErrInfeasibleThresholds
}

// AllocateTotal constructs an assignment at one exact total, in original
// input order. It fails with ErrInfeasibleTotal when the construction
// cannot satisfy the constraint at that total — which is how minimality of
// a Solve result is checked: AllocateTotal at Total-1 must fail.
func AllocateTotal(p *Problem, total int64) ([]int64, error) {
	if p == nil || p.model == nil {
		return nil, ErrNilProblem
	}
	ts, err := p.allocateSorted(total, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return p.model.Unsort(ts), nil
}

// searchBound derives the defensive upper bound of the total search.
// Options.TicketCap overrides it.
//
// Two demands drive how large a feasible total can get. The threshold gap
// contributes ceil(2n/|tn-tw|) (quadratic fallback when the thresholds
// coincide). The one-ticket floor contributes independently of the gap:
// under WQ a qualifying coalition needs ceil(tn*N) tickets while up to
// n-1 outsiders hold one each, so N scales like n/(1-tn); under WR a
// restricted suffix of k floor-ticket parties needs ceil(tn*N)-1 >= k,
// so N scales like n/tn. The bound sums all terms.
func (p *Problem) searchBound(opts Options) int64 {
	n := int64(p.model.Len())
	if opts.TicketCap > 0 {
		if opts.TicketCap < n {
			return n
		}
		return opts.TicketCap
	}

	nRat := new(big.Rat).SetInt64(n)
	bound := n
	bound += rational.CeilRat(new(big.Rat).Quo(nRat, p.tn)).Int64()
	headroom := new(big.Rat).SetInt64(1)
	headroom.Sub(headroom, p.tn)
	bound += rational.CeilRat(new(big.Rat).Quo(nRat, headroom)).Int64()

	gap := new(big.Rat).Sub(p.tn, p.tw)
	if gap.Sign() == 0 {
		return bound + 2*n*n
	}
	gap.Abs(gap)
	over := new(big.Rat).SetInt64(2 * n)
	over.Quo(over, gap)
	return bound + rational.CeilRat(over).Int64()
}

// allocateSorted builds an assignment at the given total, in sorted order.
//
// Steps: largest-remainder apportionment, one-ticket floor, critical-
// coalition boundary repairs, knapsack audit. Every step preserves
// sum == total and ticket monotonicity along (weight desc, index asc).
func (p *Problem) allocateSorted(total int64, opts Options) ([]int64, error) {
	n := p.model.Len()
	if total < int64(n) {
		return nil, ErrInfeasibleTotal
	}

	ts := p.apportion(total)
	if err := p.floorOne(ts); err != nil {
		return nil, err
	}
	if err := p.repair(ts, total); err != nil {
		return nil, err
	}
	if !opts.SkipAudit {
		if v := p.audit(ts, total); v != nil {
			return nil, ErrInfeasibleTotal
		}
	}
	return ts, nil
}

// apportion distributes the total proportionally to weight: floors of the
// exact quotas, then one extra ticket each to the largest fractional
// remainders, ties broken by ascending original index.
//
// Monotonicity holds by arithmetic: equal floors with unequal weights
// force a strictly larger remainder on the heavier party, so the lighter
// one can only be rounded up together with it.
func (p *Problem) apportion(total int64) []int64 {
	n := p.model.Len()
	ts := make([]int64, n)
	rems := make([]*big.Rat, n)

	totalRat := new(big.Rat).SetInt64(total)
	w := p.model.Total()
	assigned := int64(0)
	for i := 0; i < n; i++ {
		quota := new(big.Rat).Mul(totalRat, p.model.At(i))
		quota.Quo(quota, w)
		base := rational.FloorRat(quota).Int64()
		ts[i] = base
		assigned += base
		rems[i] = quota.Sub(quota, new(big.Rat).SetInt64(base))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		c := rems[order[a]].Cmp(rems[order[b]])
		if c != 0 {
			return c > 0
		}
		return p.model.OriginalIndex(order[a]) < p.model.OriginalIndex(order[b])
	})
	for k := int64(0); k < total-assigned; k++ {
		ts[order[k]]++
	}
	return ts
}

// floorOne raises every zero-ticket party to one ticket and reclaims the
// difference from the lightest parties that can spare a ticket without
// breaking monotonicity.
func (p *Problem) floorOne(ts []int64) error {
	owed := 0
	for i := range ts {
		if ts[i] == 0 {
			ts[i] = 1
			owed++
		}
	}
	for ; owed > 0; owed-- {
		d := donorAfter(ts, 0)
		if d < 0 {
			return ErrInfeasibleTotal
		}
		ts[d]--
	}
	return nil
}

// donorAfter returns the largest position >= from whose count can drop by
// one while keeping ts monotone non-increasing and at least one, or -1.
func donorAfter(ts []int64, from int) int {
	n := len(ts)
	for m := n - 1; m >= from; m-- {
		if ts[m] <= 1 {
			continue
		}
		if m == n-1 || ts[m] > ts[m+1] {
			return m
		}
	}
	return -1
}

// receiverBefore returns the largest position < limit that can gain a
// ticket while keeping ts monotone non-increasing. Position 0 always can.
func receiverBefore(ts []int64, limit int) int {
	for r := limit - 1; r > 0; r-- {
		if ts[r] < ts[r-1] {
			return r
		}
	}
	return 0
}

// repair moves single tickets across the binding coalition boundary until
// every critical coalition satisfies its bound. WR violations shed tickets
// from the over-ticketed suffix onto the heaviest party; WQ violations
// pull tickets from outside the deficient prefix into it. Either way each
// move strictly tightens the violated side and never loosens a satisfied
// one, so the loop terminates; the iteration cap is defensive.
func (p *Problem) repair(ts []int64, total int64) error {
	n := len(ts)
	for iter := int64(0); iter <= 2*total; iter++ {
		v := p.scanCritical(ts, total)
		if v == nil {
			return nil
		}
		k := v.Size

		switch p.kind {
		case WeightRestriction:
			// Suffix of the k lightest holds too many tickets. The
			// heaviest party sits outside every restricted suffix.
			d := donorAfter(ts, n-k)
			if d < 0 {
				return ErrInfeasibleTotal
			}
			ts[d]--
			ts[0]++

		case WeightQualification:
			// Prefix of the k heaviest holds too few tickets.
			d := donorAfter(ts, k)
			if d < 0 {
				return ErrInfeasibleTotal
			}
			r := receiverBefore(ts, k)
			ts[d]--
			ts[r]++

		default:
			return ErrInfeasibleTotal
		}
	}
	return ErrInfeasibleTotal
}
