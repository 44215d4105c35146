package weights

import (
	"math/big"
	"sort"
)

// Model is an immutable, indexed view of a party weight sequence.
//
// Parties are held sorted by descending weight, ties broken by ascending
// original index, so every derived quantity is deterministic regardless of
// how equal-weight parties were ordered in the input. Exact prefix sums
// make prefix/suffix weight shares O(1) after the O(n log n) build.
type Model struct {
	sorted      []*big.Rat // weights in descending order
	perm        []int      // perm[i] = original index of sorted position i
	pos         []int      // pos[orig] = sorted position of original index orig
	prefix      []*big.Rat // prefix[k] = sum of the k heaviest weights; prefix[0] = 0
	total       *big.Rat   // W = prefix[n]
	scaled      []*big.Int // integer weights in sorted order (lcm/gcd normalized)
	scaledTotal *big.Int
}

// NewModel validates and indexes a weight sequence.
//
// Errors:
//   - ErrEmptyInput        — the sequence is empty.
//   - ErrNonPositiveWeight — any weight is nil, zero, or negative.
//
// Complexity: O(n log n) time, O(n) memory.
func NewModel(ws []*big.Rat) (*Model, error) {
	n := len(ws)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for _, w := range ws {
		if w == nil || w.Sign() <= 0 {
			return nil, ErrNonPositiveWeight
		}
	}

	m := &Model{
		sorted: make([]*big.Rat, n),
		perm:   make([]int, n),
		pos:    make([]int, n),
		prefix: make([]*big.Rat, n+1),
	}

	for i := range m.perm {
		m.perm[i] = i
	}
	// Descending by weight, stable on original index for equal weights.
	sort.SliceStable(m.perm, func(a, b int) bool {
		return ws[m.perm[a]].Cmp(ws[m.perm[b]]) > 0
	})

	for i, orig := range m.perm {
		m.sorted[i] = new(big.Rat).Set(ws[orig])
		m.pos[orig] = i
	}

	m.prefix[0] = new(big.Rat)
	for k := 1; k <= n; k++ {
		m.prefix[k] = new(big.Rat).Add(m.prefix[k-1], m.sorted[k-1])
	}
	m.total = m.prefix[n]

	m.buildScaled()
	return m, nil
}

// buildScaled converts the sorted weights to integers: multiply by the lcm
// of all denominators, then divide out the gcd of the numerators. The
// knapsack audit needs integer capacities and item weights.
func (m *Model) buildScaled() {
	l := big.NewInt(1)
	tmp := new(big.Int)
	for _, w := range m.sorted {
		d := w.Denom()
		tmp.GCD(nil, nil, l, d)
		l.Div(new(big.Int).Mul(l, d), tmp)
	}

	n := len(m.sorted)
	m.scaled = make([]*big.Int, n)
	g := new(big.Int)
	for i, w := range m.sorted {
		s := new(big.Int).Div(l, w.Denom())
		s.Mul(s, w.Num())
		m.scaled[i] = s
		g.GCD(nil, nil, g, s)
	}
	m.scaledTotal = new(big.Int)
	for _, s := range m.scaled {
		s.Div(s, g)
		m.scaledTotal.Add(m.scaledTotal, s)
	}
}

// Len returns the number of parties.
func (m *Model) Len() int { return len(m.sorted) }

// Total returns the total weight W.
func (m *Model) Total() *big.Rat { return new(big.Rat).Set(m.total) }

// At returns the weight at sorted position i (0 = heaviest).
func (m *Model) At(i int) *big.Rat { return new(big.Rat).Set(m.sorted[i]) }

// OriginalIndex maps a sorted position back to the party's input index.
func (m *Model) OriginalIndex(i int) int { return m.perm[i] }

// SortedPos maps an input index to the party's sorted position.
func (m *Model) SortedPos(orig int) int { return m.pos[orig] }

// PrefixShare returns the weight share of the k heaviest parties,
// prefix_sum(k)/W, in O(1).
func (m *Model) PrefixShare(k int) *big.Rat {
	return new(big.Rat).Quo(m.prefix[k], m.total)
}

// SuffixShare returns the weight share of the k lightest parties in O(1).
func (m *Model) SuffixShare(k int) *big.Rat {
	n := len(m.sorted)
	rest := new(big.Rat).Sub(m.total, m.prefix[n-k])
	return rest.Quo(rest, m.total)
}

// ScaledAt returns the integer-normalized weight at sorted position i.
func (m *Model) ScaledAt(i int) *big.Int { return new(big.Int).Set(m.scaled[i]) }

// ScaledTotal returns the sum of the integer-normalized weights.
func (m *Model) ScaledTotal() *big.Int { return new(big.Int).Set(m.scaledTotal) }

// Unsort permutes a sorted-order vector back into original input order.
// It panics if len(ts) differs from the party count.
func (m *Model) Unsort(ts []int64) []int64 {
	if len(ts) != len(m.perm) {
		panic("weights: Unsort length mismatch")
	}
	out := make([]int64, len(ts))
	for i, t := range ts {
		out[m.perm[i]] = t
	}
	return out
}
