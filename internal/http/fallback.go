package http

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoCandidates is returned when a fallback is attempted over an empty list.
var ErrNoCandidates = errors.New("no candidates to try")

// AttemptFunc performs one attempt against the candidate at index i.
type AttemptFunc[T any] func(ctx context.Context, i int) (T, error)

// AcceptFunc decides whether a successful attempt result is usable.
// A rejected result counts as a failure and the next candidate is tried.
type AcceptFunc[T any] func(T) bool

// FailureFunc is called for each failed candidate.
type FailureFunc func(i int, err error)

// FirstSuccess tries candidates 0..n-1 in order, once each, and returns the
// first accepted result with its index. There is no delay between attempts.
// When every candidate fails the errors are joined.
func FirstSuccess[T any](ctx context.Context, n int, attempt AttemptFunc[T], accept AcceptFunc[T], onFailure FailureFunc) (T, int, error) {
	var zero T
	if n <= 0 {
		return zero, -1, ErrNoCandidates
	}

	var errs []error
	for i := 0; i < n; i++ {
		result, err := attempt(ctx, i)
		if err == nil && accept != nil && !accept(result) {
			err = fmt.Errorf("candidate %d: result rejected", i)
		}
		if err == nil {
			return result, i, nil
		}

		errs = append(errs, err)
		if onFailure != nil {
			onFailure(i, err)
		}
	}

	return zero, -1, errors.Join(errs...)
}
