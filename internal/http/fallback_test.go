package http

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFirstSuccess_FirstCandidateWins(t *testing.T) {
	calls := 0
	got, idx, err := FirstSuccess(context.Background(), 2, func(ctx context.Context, i int) (string, error) {
		calls++
		return "primary", nil
	}, nil, nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "primary" || idx != 0 {
		t.Errorf("FirstSuccess() = %q, %d; want 'primary', 0", got, idx)
	}
	if calls != 1 {
		t.Errorf("attempts = %d, want 1", calls)
	}
}

func TestFirstSuccess_FallsThroughOnError(t *testing.T) {
	var failed []int
	got, idx, err := FirstSuccess(context.Background(), 3, func(ctx context.Context, i int) (string, error) {
		if i < 2 {
			return "", errors.New("boom")
		}
		return "third", nil
	}, nil, func(i int, err error) {
		failed = append(failed, i)
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "third" || idx != 2 {
		t.Errorf("FirstSuccess() = %q, %d; want 'third', 2", got, idx)
	}
	if len(failed) != 2 || failed[0] != 0 || failed[1] != 1 {
		t.Errorf("failures = %v, want [0 1]", failed)
	}
}

func TestFirstSuccess_RejectedResultIsFailure(t *testing.T) {
	nonEmpty := func(s string) bool { return s != "" }
	got, idx, err := FirstSuccess(context.Background(), 2, func(ctx context.Context, i int) (string, error) {
		if i == 0 {
			return "", nil
		}
		return "ok", nil
	}, nonEmpty, nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" || idx != 1 {
		t.Errorf("FirstSuccess() = %q, %d; want 'ok', 1", got, idx)
	}
}

func TestFirstSuccess_AllFail(t *testing.T) {
	errA := errors.New("first down")
	errB := errors.New("second down")
	_, idx, err := FirstSuccess(context.Background(), 2, func(ctx context.Context, i int) (int, error) {
		if i == 0 {
			return 0, errA
		}
		return 0, errB
	}, nil, nil)

	if err == nil {
		t.Fatal("expected error when all candidates fail")
	}
	if idx != -1 {
		t.Errorf("index = %d, want -1", idx)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("error %v should join both failures", err)
	}
}

func TestFirstSuccess_NoCandidates(t *testing.T) {
	_, _, err := FirstSuccess(context.Background(), 0, func(ctx context.Context, i int) (int, error) {
		t.Fatal("attempt should not be called")
		return 0, nil
	}, nil, nil)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("error = %v, want ErrNoCandidates", err)
	}
}

func TestFirstSuccess_CancelledContextStillTriesEveryCandidate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, _, err := FirstSuccess(ctx, 2, func(ctx context.Context, i int) (string, error) {
		calls++
		return "", ctx.Err()
	}, nil, nil)

	if err == nil || !strings.Contains(err.Error(), "canceled") {
		t.Errorf("error = %v, want context canceled", err)
	}
	if calls != 2 {
		t.Errorf("attempts = %d, want 2", calls)
	}
}
