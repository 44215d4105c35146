package tickets

import "fmt"

// Verify independently re-checks an assignment (in original input order)
// against the problem constraint. It re-derives the critical coalition set
// from the weight model — no state is shared with Solve — scans it in
// sorted order reporting the first violation, then runs the exhaustive
// knapsack audit so that corruptions invisible to any prefix or suffix are
// still caught. Verify never mutates or repairs the assignment.
//
// Errors:
//   - ErrNilProblem          — p is nil.
//   - ErrVerificationFailed  — via *VerificationError carrying the
//     offending coalition's weight share and ticket share, or wrapped
//     directly for malformed assignments (wrong length, negative counts,
//     zero total).
func Verify(p *Problem, tickets []int64) error {
	if p == nil || p.model == nil {
		return ErrNilProblem
	}
	n := p.model.Len()
	if len(tickets) != n {
		return fmt.Errorf("%w: assignment has %d entries for %d parties",
			ErrVerificationFailed, len(tickets), n)
	}

	total := int64(0)
	for orig, t := range tickets {
		if t < 0 {
			return fmt.Errorf("%w: party %d holds a negative ticket count",
				ErrVerificationFailed, orig)
		}
		total += t
	}
	if total <= 0 {
		return fmt.Errorf("%w: assignment allocates no tickets", ErrVerificationFailed)
	}

	sorted := make([]int64, n)
	for orig, t := range tickets {
		sorted[p.model.SortedPos(orig)] = t
	}

	if v := p.scanCritical(sorted, total); v != nil {
		return v
	}
	if v := p.audit(sorted, total); v != nil {
		return v
	}
	return nil
}
