package testutil

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"wcg/internal/sentinel"
	dErrors "wcg/pkg/domain-errors"
)

// ConcurrentResult tracks outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes int32
	Errors    int32
	Conflicts int32
	NotFounds int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.Conflicts + r.NotFounds
}

// RunConcurrent executes fn in parallel goroutines and sorts the outcomes.
// Duplicate registrations count as conflicts and removals of unknown citizens as
// not-founds, whether reported by a store sentinel or a domain error.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var g errgroup.Group
	var successes, errs, conflicts, notFounds atomic.Int32

	for i := range goroutines {
		g.Go(func() error {
			err := fn(i)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, sentinel.ErrAlreadyExists), dErrors.HasCode(err, dErrors.CodeAlreadyRegistered):
				conflicts.Add(1)
			case errors.Is(err, sentinel.ErrNotFound), dErrors.HasCode(err, dErrors.CodeNotFound):
				notFounds.Add(1)
			default:
				errs.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return &ConcurrentResult{
		Successes: successes.Load(),
		Errors:    errs.Load(),
		Conflicts: conflicts.Load(),
		NotFounds: notFounds.Load(),
	}
}
