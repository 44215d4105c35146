package tickets

import "math/big"

// maxTicketsWithin solves the bounded knapsack question behind the audit:
// over all coalitions whose scaled weight is at most capW, what is the
// largest ticket total? The search saturates one past bound — once any
// coalition beats the bound the exact optimum no longer matters, only the
// witness.
//
// ts is the sorted-order ticket vector (the profits); item weights come
// from the model's integer-normalized weights. Returns the best profit
// and the witness coalition as sorted positions.
//
// The DP is profit-indexed: dp[q] is the minimum scaled weight of a
// coalition holding at least q tickets. One row per item is kept so the
// witness can be reconstructed.
//
// Complexity: O(n * bound) time and memory.
func (p *Problem) maxTicketsWithin(ts []int64, capW *big.Int, bound int64) (int64, []int) {
	n := p.model.Len()
	if capW.Sign() < 0 || bound < 0 {
		// Nothing fits, or any nonempty coalition already violates; find
		// the lightest positive-ticket party as a witness in the latter
		// case.
		if bound < 0 && capW.Sign() >= 0 {
			for i := n - 1; i >= 0; i-- {
				if ts[i] > 0 && p.model.ScaledAt(i).Cmp(capW) <= 0 {
					return ts[i], []int{i}
				}
			}
		}
		return 0, nil
	}

	// A single in-budget party beating the bound short-circuits the DP.
	for i := 0; i < n; i++ {
		if ts[i] > bound && p.model.ScaledAt(i).Cmp(capW) <= 0 {
			return ts[i], []int{i}
		}
	}

	m := bound + 1 // profit index m means "at least bound+1 tickets"
	rows := make([][]*big.Int, n+1)
	rows[0] = make([]*big.Int, m+1)
	rows[0][0] = new(big.Int)

	for i := 0; i < n; i++ {
		prev := rows[i]
		cur := make([]*big.Int, m+1)
		copy(cur, prev)
		rows[i+1] = cur

		t := ts[i]
		if t == 0 {
			continue // zero-ticket parties never improve a coalition
		}
		w := p.model.ScaledAt(i)
		for q := m; q >= 1; q-- {
			from := q - t
			if from < 0 {
				from = 0
			}
			if prev[from] == nil {
				continue
			}
			cand := new(big.Int).Add(prev[from], w)
			if cur[q] == nil || cand.Cmp(cur[q]) < 0 {
				cur[q] = cand
			}
		}
	}

	best := int64(0)
	for q := m; q >= 1; q-- {
		if rows[n][q] != nil && rows[n][q].Cmp(capW) <= 0 {
			best = q
			break
		}
	}
	if best == 0 {
		return 0, nil
	}

	// Walk the rows back to recover the witness coalition.
	set := make([]int, 0, n)
	q := best
	for i := n; i >= 1 && q > 0; i-- {
		if rows[i-1][q] != nil && rows[i-1][q].Cmp(rows[i][q]) == 0 {
			continue // row i-1 already achieved this cell: item unused
		}
		set = append(set, i-1)
		q -= ts[i-1]
		if q < 0 {
			q = 0
		}
	}

	// Saturated cells undercount; report the witness's actual tickets.
	actual := int64(0)
	for _, i := range set {
		actual += ts[i]
	}
	// Reverse into ascending position order for stable diagnostics.
	for l, r := 0, len(set)-1; l < r; l, r = l+1, r-1 {
		set[l], set[r] = set[r], set[l]
	}
	return actual, set
}
