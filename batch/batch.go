package batch

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sortition/tickets"
)

// ErrNoJobs signals a Run call with an empty job slice.
var ErrNoJobs = errors.New("batch: no jobs")

// Job is one solver instance: a problem plus its options.
type Job struct {
	// Name labels the job in outcomes and logs. Optional.
	Name string

	// Problem is the instance to solve. Required.
	Problem *tickets.Problem

	// Options configure the solve; the zero value means defaults.
	Options tickets.Options
}

// Outcome pairs a job with its result. Exactly one of Result/Err is
// meaningful: Err == nil means Result holds a valid allocation.
type Outcome struct {
	Name   string
	Result tickets.Result
	Err    error
}

// Run solves all jobs concurrently, at most limit at a time (limit <= 0
// means one worker per job), and returns outcomes in job order. Per-job
// failures land in the matching Outcome rather than aborting the batch;
// only context cancellation stops early, and its error is returned.
func Run(ctx context.Context, jobs []Job, limit int) ([]Outcome, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	out := make([]Outcome, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			job := jobs[i]
			res, err := tickets.Solve(job.Problem, job.Options)
			out[i] = Outcome{Name: job.Name, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
