// Package tickets: core types, options, and sentinel errors for the
// allocation engine.
package tickets

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/sortition/rational"
	"github.com/katalvlaran/sortition/weights"
)

// Sentinel errors for the allocation engine.
var (
	// ErrNilProblem indicates a nil problem or weight model.
	ErrNilProblem = errors.New("tickets: problem and weight model must be non-nil")
	// ErrInfeasibleThresholds indicates no ticket total within the search
	// bound satisfies the constraint, or a degenerate threshold at 0 or 1.
	ErrInfeasibleThresholds = errors.New("tickets: thresholds admit no feasible allocation within the search bound")
	// ErrInfeasibleTotal indicates no valid assignment exists at one exact
	// requested total.
	ErrInfeasibleTotal = errors.New("tickets: no valid assignment at the requested total")
	// ErrVerificationFailed indicates an assignment violates the problem
	// constraint; a VerificationError carries the offending coalition.
	ErrVerificationFailed = errors.New("tickets: assignment violates the coalition constraint")
	// ErrUnknownKind indicates a Kind outside the two supported problem
	// variants. Weight separation in particular is not implemented.
	ErrUnknownKind = errors.New("tickets: unknown problem kind")
)

// Kind selects the problem variant.
type Kind int

const (
	// WeightRestriction (WR): every coalition with weight share < tw must
	// hold ticket share strictly below tn.
	WeightRestriction Kind = iota
	// WeightQualification (WQ): every coalition with weight share >= tw
	// must hold ticket share at least tn.
	WeightQualification
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case WeightRestriction:
		return "WR"
	case WeightQualification:
		return "WQ"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Problem is one immutable solve instance: a weight model, the weighted
// threshold tw, the nominal threshold tn, and the problem kind.
type Problem struct {
	model *weights.Model
	tw    *big.Rat
	tn    *big.Rat
	kind  Kind
}

// NewProblem validates thresholds and binds them to a weight model.
//
// Errors:
//   - ErrNilProblem           — m, tw, or tn is nil.
//   - ErrInfeasibleThresholds — tw or tn outside the open interval (0,1).
//   - ErrUnknownKind          — kind is neither WeightRestriction nor
//     WeightQualification.
func NewProblem(m *weights.Model, tw, tn *big.Rat, kind Kind) (*Problem, error) {
	if m == nil || tw == nil || tn == nil {
		return nil, ErrNilProblem
	}
	if kind != WeightRestriction && kind != WeightQualification {
		return nil, ErrUnknownKind
	}
	if !rational.InUnitInterval(tw) || !rational.InUnitInterval(tn) {
		return nil, ErrInfeasibleThresholds
	}
	return &Problem{
		model: m,
		tw:    new(big.Rat).Set(tw),
		tn:    new(big.Rat).Set(tn),
		kind:  kind,
	}, nil
}

// Model returns the underlying weight model.
func (p *Problem) Model() *weights.Model { return p.model }

// TW returns the weighted threshold.
func (p *Problem) TW() *big.Rat { return new(big.Rat).Set(p.tw) }

// TN returns the nominal threshold.
func (p *Problem) TN() *big.Rat { return new(big.Rat).Set(p.tn) }

// Kind returns the problem variant.
func (p *Problem) Kind() Kind { return p.kind }

// Options holds tunable parameters for Solve.
type Options struct {
	// TicketCap overrides the derived upper bound of the total-ticket
	// search. 0 keeps the closed-form bound derived from n, tn, and
	// |tn-tw|.
	TicketCap int64
	// SkipAudit drops the exhaustive knapsack audit of accepted totals,
	// leaving only the critical-coalition scan. Faster; the returned total
	// may be one the full audit would have rejected.
	SkipAudit bool
}

// DefaultOptions returns the default Solve configuration: derived search
// bound, audit enabled.
func DefaultOptions() Options {
	return Options{}
}

// Result is a solved allocation: the minimal total and one ticket count
// per party, in original input order.
type Result struct {
	// Total is the number of tickets allocated, sum(Tickets).
	Total int64
	// Tickets holds the per-party counts, indexed like the input weights.
	Tickets []int64
}

// Sum recounts the per-party tickets. It equals Total for every Result
// the solver returns.
func (r Result) Sum() int64 {
	var s int64
	for _, t := range r.Tickets {
		s += t
	}
	return s
}

// VerificationError reports the coalition that violates the constraint.
// It unwraps to ErrVerificationFailed.
type VerificationError struct {
	// Critical is true when the coalition is a sorted prefix/suffix of
	// Size parties; false when the exhaustive audit found an arbitrary
	// offending coalition of Size parties.
	Critical bool
	// Size is the number of parties in the offending coalition.
	Size int
	// WeightShare is the coalition's share of total weight.
	WeightShare *big.Rat
	// TicketShare is the coalition's share of total tickets.
	TicketShare *big.Rat
}

// Error implements error.
func (e *VerificationError) Error() string {
	shape := "coalition"
	if e.Critical {
		shape = "critical coalition"
	}
	return fmt.Sprintf("tickets: %s of %d parties with weight share %s holds ticket share %s",
		shape, e.Size, e.WeightShare.RatString(), e.TicketShare.RatString())
}

// Unwrap ties VerificationError to the ErrVerificationFailed sentinel.
func (e *VerificationError) Unwrap() error { return ErrVerificationFailed }
