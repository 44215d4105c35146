package tickets_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/sortition/tickets"
	"github.com/katalvlaran/sortition/weights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func rats(ps ...[2]int64) []*big.Rat {
	out := make([]*big.Rat, len(ps))
	for i, p := range ps {
		out[i] = big.NewRat(p[0], p[1])
	}
	return out
}

func mustProblem(t *testing.T, ws []*big.Rat, tw, tn *big.Rat, kind tickets.Kind) *tickets.Problem {
	t.Helper()
	m, err := weights.NewModel(ws)
	require.NoError(t, err)
	p, err := tickets.NewProblem(m, tw, tn, kind)
	require.NoError(t, err)
	return p
}

// TestSolve_EqualWeightsWR reproduces the canonical equal-weight WR case:
// four parties, tw=1/3, tn=1/2 give the minimum total 4 with one ticket
// each (the one-ticket floor is what keeps N at the party count).
func TestSolve_EqualWeightsWR(t *testing.T) {
	p := mustProblem(t, rats([2]int64{1, 1}, [2]int64{1, 1}, [2]int64{1, 1}, [2]int64{1, 1}),
		rat(1, 3), rat(1, 2), tickets.WeightRestriction)

	res, err := tickets.Solve(p, tickets.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Total)
	assert.Equal(t, []int64{1, 1, 1, 1}, res.Tickets)
}

// TestSolve_SkewedWQ reproduces the skewed WQ case: weights 0.5/0.3/0.2
// with tw=1/3, tn=1/2. The heavy party alone crosses tw, so it must hold
// at least half of all tickets; so must its complement, forcing N=4.
func TestSolve_SkewedWQ(t *testing.T) {
	p := mustProblem(t, rats([2]int64{1, 2}, [2]int64{3, 10}, [2]int64{1, 5}),
		rat(1, 3), rat(1, 2), tickets.WeightQualification)

	res, err := tickets.Solve(p, tickets.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Total)
	assert.Equal(t, []int64{2, 1, 1}, res.Tickets)
	assert.Equal(t, int64(4), res.Sum())
}

// TestSolve_SkewedWR checks a WR instance where only the lightest party is
// restricted: weights 0.5/0.3/0.2, tw=1/4, tn=1/2. One ticket each already
// keeps the 0.2 party below half, so the floor total 3 suffices.
func TestSolve_SkewedWR(t *testing.T) {
	p := mustProblem(t, rats([2]int64{1, 2}, [2]int64{3, 10}, [2]int64{1, 5}),
		rat(1, 4), rat(1, 2), tickets.WeightRestriction)

	res, err := tickets.Solve(p, tickets.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.Equal(t, []int64{1, 1, 1}, res.Tickets)
}

// TestSolve_RepairWQ exercises the boundary-repair path: weights
// 0.6/0.3/0.1, tw=3/5, tn=4/5. The 0.6 party must always hold 80% of the
// tickets while the two others keep their one-ticket floor, which first
// works out at N=10 with tickets [8,1,1].
func TestSolve_RepairWQ(t *testing.T) {
	p := mustProblem(t, rats([2]int64{3, 5}, [2]int64{3, 10}, [2]int64{1, 10}),
		rat(3, 5), rat(4, 5), tickets.WeightQualification)

	res, err := tickets.Solve(p, tickets.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Total)
	assert.Equal(t, []int64{8, 1, 1}, res.Tickets)
	assert.NoError(t, tickets.Verify(p, res.Tickets))
}

// TestSolve_FloorDominatedWQ: weights 100/1/1, tw=1/10, tn=9/10. The
// heavy party alone qualifies, so with the two floor tickets outside it
// needs N - 2 >= ceil(9N/10), first true at N=20 with tickets [18,1,1].
// The search bound must reach totals driven by the one-ticket floor, far
// past anything the threshold gap alone suggests.
func TestSolve_FloorDominatedWQ(t *testing.T) {
	p := mustProblem(t, rats([2]int64{100, 1}, [2]int64{1, 1}, [2]int64{1, 1}),
		rat(1, 10), rat(9, 10), tickets.WeightQualification)

	res, err := tickets.Solve(p, tickets.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(20), res.Total)
	assert.Equal(t, []int64{18, 1, 1}, res.Tickets)
	assert.NoError(t, tickets.Verify(p, res.Tickets))

	_, err = tickets.AllocateTotal(p, res.Total-1)
	assert.ErrorIs(t, err, tickets.ErrInfeasibleTotal)
}

// TestSolve_FloorDominatedWR is the WR mirror: weights 10/1/1, tw=1/2,
// tn=1/10. The two light parties form a restricted pair whose floor
// tickets demand 2 <= ceil(N/10)-1, first true at N=21 with [19,1,1].
func TestSolve_FloorDominatedWR(t *testing.T) {
	p := mustProblem(t, rats([2]int64{10, 1}, [2]int64{1, 1}, [2]int64{1, 1}),
		rat(1, 2), rat(1, 10), tickets.WeightRestriction)

	res, err := tickets.Solve(p, tickets.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(21), res.Total)
	assert.Equal(t, []int64{19, 1, 1}, res.Tickets)
	assert.NoError(t, tickets.Verify(p, res.Tickets))

	_, err = tickets.AllocateTotal(p, res.Total-1)
	assert.ErrorIs(t, err, tickets.ErrInfeasibleTotal)
}

// TestSolve_Determinism runs the same instance repeatedly and expects
// byte-identical results.
func TestSolve_Determinism(t *testing.T) {
	ws := rats([2]int64{7, 13}, [2]int64{5, 13}, [2]int64{1, 13}, [2]int64{1, 13})
	first := tickets.Result{}
	for i := 0; i < 5; i++ {
		p := mustProblem(t, ws, rat(1, 3), rat(1, 2), tickets.WeightRestriction)
		res, err := tickets.Solve(p, tickets.DefaultOptions())
		require.NoError(t, err)
		if i == 0 {
			first = res
			continue
		}
		assert.Equal(t, first, res, "solve %d diverged", i)
	}
}

// TestSolve_EqualWeightOrderIndependence permutes equal-weight parties and
// expects the same total and the same sorted ticket multiset.
func TestSolve_EqualWeightOrderIndependence(t *testing.T) {
	a := mustProblem(t, rats([2]int64{1, 4}, [2]int64{1, 2}, [2]int64{1, 4}),
		rat(1, 3), rat(1, 2), tickets.WeightQualification)
	b := mustProblem(t, rats([2]int64{1, 2}, [2]int64{1, 4}, [2]int64{1, 4}),
		rat(1, 3), rat(1, 2), tickets.WeightQualification)

	ra, err := tickets.Solve(a, tickets.DefaultOptions())
	require.NoError(t, err)
	rb, err := tickets.Solve(b, tickets.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, rb.Total, ra.Total)
	// Party identities differ, but the heavy party's count must agree.
	assert.Equal(t, rb.Tickets[0], ra.Tickets[1], "heavy party allocation")
}

// TestSolve_SumAndMonotonicity checks the structural invariants on a batch
// of instances: tickets sum to the total, every party holds at least one,
// and counts are monotone in weight.
func TestSolve_SumAndMonotonicity(t *testing.T) {
	cases := []struct {
		name string
		ws   []*big.Rat
		tw   *big.Rat
		tn   *big.Rat
		kind tickets.Kind
	}{
		{"wr descending ints", rats([2]int64{5, 1}, [2]int64{4, 1}, [2]int64{3, 1}, [2]int64{2, 1}, [2]int64{1, 1}), rat(1, 3), rat(1, 2), tickets.WeightRestriction},
		{"wq ascending ints", rats([2]int64{1, 1}, [2]int64{2, 1}, [2]int64{3, 1}, [2]int64{4, 1}, [2]int64{5, 1}), rat(2, 3), rat(1, 2), tickets.WeightQualification},
		{"wr fractions", rats([2]int64{7, 13}, [2]int64{5, 13}, [2]int64{1, 13}), rat(1, 4), rat(2, 5), tickets.WeightRestriction},
		{"wq heavy head", rats([2]int64{3, 5}, [2]int64{3, 10}, [2]int64{1, 10}), rat(3, 5), rat(4, 5), tickets.WeightQualification},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustProblem(t, tc.ws, tc.tw, tc.tn, tc.kind)
			res, err := tickets.Solve(p, tickets.DefaultOptions())
			require.NoError(t, err)

			sum := int64(0)
			for _, n := range res.Tickets {
				sum += n
				assert.GreaterOrEqual(t, n, int64(1), "one-ticket floor")
			}
			assert.Equal(t, res.Total, sum, "sum invariant")

			for i := range tc.ws {
				for j := range tc.ws {
					if tc.ws[i].Cmp(tc.ws[j]) > 0 {
						assert.GreaterOrEqual(t, res.Tickets[i], res.Tickets[j],
							"party %d outweighs party %d", i, j)
					}
				}
			}

			assert.NoError(t, tickets.Verify(p, res.Tickets), "own output must verify")
		})
	}
}

// TestSolve_Minimality asserts that one ticket fewer than the solved total
// admits no assignment.
func TestSolve_Minimality(t *testing.T) {
	for _, kind := range []tickets.Kind{tickets.WeightRestriction, tickets.WeightQualification} {
		p := mustProblem(t, rats([2]int64{1, 2}, [2]int64{3, 10}, [2]int64{1, 5}),
			rat(1, 3), rat(1, 2), kind)

		res, err := tickets.Solve(p, tickets.DefaultOptions())
		require.NoError(t, err, "kind %s", kind)

		_, err = tickets.AllocateTotal(p, res.Total-1)
		assert.ErrorIs(t, err, tickets.ErrInfeasibleTotal, "kind %s: total-1 must fail", kind)

		got, err := tickets.AllocateTotal(p, res.Total)
		require.NoError(t, err)
		assert.Equal(t, res.Tickets, got, "kind %s: reconstruction at the total must agree", kind)
	}
}

// TestSolve_InfeasibleThresholds uses two equal parties that each qualify
// at tw=1/2 yet each demand 3/4 of the tickets — impossible at any total.
func TestSolve_InfeasibleThresholds(t *testing.T) {
	p := mustProblem(t, rats([2]int64{1, 1}, [2]int64{1, 1}),
		rat(1, 2), rat(3, 4), tickets.WeightQualification)

	_, err := tickets.Solve(p, tickets.DefaultOptions())
	assert.ErrorIs(t, err, tickets.ErrInfeasibleThresholds)
}

// TestSolve_TicketCap caps the search below the true minimum and expects
// infeasibility to surface instead of a silent overrun.
func TestSolve_TicketCap(t *testing.T) {
	p := mustProblem(t, rats([2]int64{1, 2}, [2]int64{3, 10}, [2]int64{1, 5}),
		rat(1, 3), rat(1, 2), tickets.WeightQualification)

	opts := tickets.DefaultOptions()
	opts.TicketCap = 3 // the instance needs 4
	_, err := tickets.Solve(p, opts)
	assert.ErrorIs(t, err, tickets.ErrInfeasibleThresholds)
}

// TestSolve_SkipAudit keeps the critical-scan-only mode working; on this
// instance it lands on the same allocation, which still fully verifies.
func TestSolve_SkipAudit(t *testing.T) {
	p := mustProblem(t, rats([2]int64{1, 2}, [2]int64{3, 10}, [2]int64{1, 5}),
		rat(1, 3), rat(1, 2), tickets.WeightQualification)

	opts := tickets.DefaultOptions()
	opts.SkipAudit = true
	res, err := tickets.Solve(p, opts)
	require.NoError(t, err)
	assert.NoError(t, tickets.Verify(p, res.Tickets))
}

// TestNewProblem_DegenerateThresholds rejects thresholds at or beyond the
// unit interval endpoints.
func TestNewProblem_DegenerateThresholds(t *testing.T) {
	m, err := weights.NewModel(rats([2]int64{1, 1}, [2]int64{1, 1}))
	require.NoError(t, err)

	for _, bad := range [][2]*big.Rat{
		{rat(0, 1), rat(1, 2)},
		{rat(1, 1), rat(1, 2)},
		{rat(1, 2), rat(0, 1)},
		{rat(1, 2), rat(1, 1)},
		{rat(-1, 2), rat(1, 2)},
		{rat(1, 2), rat(3, 2)},
	} {
		_, err := tickets.NewProblem(m, bad[0], bad[1], tickets.WeightRestriction)
		assert.ErrorIs(t, err, tickets.ErrInfeasibleThresholds,
			"tw=%s tn=%s", bad[0].RatString(), bad[1].RatString())
	}

	_, err = tickets.NewProblem(nil, rat(1, 3), rat(1, 2), tickets.WeightRestriction)
	assert.ErrorIs(t, err, tickets.ErrNilProblem)
}

// TestNewProblem_UnknownKind rejects variants outside WR/WQ at
// construction; nothing downstream may ever see an unchecked kind.
func TestNewProblem_UnknownKind(t *testing.T) {
	m, err := weights.NewModel(rats([2]int64{1, 1}, [2]int64{1, 1}))
	require.NoError(t, err)

	for _, kind := range []tickets.Kind{tickets.Kind(-1), tickets.Kind(2), tickets.Kind(7)} {
		_, err := tickets.NewProblem(m, rat(1, 3), rat(1, 2), kind)
		assert.ErrorIs(t, err, tickets.ErrUnknownKind, "kind %d", int(kind))
	}
}

// TestSolve_SingleParty: one party, nothing restricted or deficient; the
// floor total 1 must come back immediately.
func TestSolve_SingleParty(t *testing.T) {
	for _, kind := range []tickets.Kind{tickets.WeightRestriction, tickets.WeightQualification} {
		p := mustProblem(t, rats([2]int64{7, 3}), rat(1, 3), rat(1, 2), kind)
		res, err := tickets.Solve(p, tickets.DefaultOptions())
		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, int64(1), res.Total)
		assert.Equal(t, []int64{1}, res.Tickets)
	}
}
