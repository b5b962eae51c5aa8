package poller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeOp struct {
	done bool
	uri  string
}

func TestWaitPollsUntilDone(t *testing.T) {
	// done:false twice, then done:true with a result URI.
	states := []fakeOp{
		{done: false},
		{done: false},
		{done: true, uri: "https://media.example/out.mp4"},
	}

	refreshes := 0
	op, err := Wait(context.Background(), Config{Interval: time.Millisecond}, states[0],
		func(op fakeOp) bool { return op.done },
		func(ctx context.Context, op fakeOp) (fakeOp, error) {
			refreshes++
			return states[refreshes], nil
		})
	if err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}

	if refreshes != 2 {
		t.Errorf("refresh count = %d, want exactly 2", refreshes)
	}
	if op.uri != "https://media.example/out.mp4" {
		t.Errorf("result URI = %q", op.uri)
	}
}

func TestWaitDoneImmediatelySkipsPolling(t *testing.T) {
	start := time.Now()
	op, err := Wait(context.Background(), Config{Interval: time.Hour}, fakeOp{done: true, uri: "u"},
		func(op fakeOp) bool { return op.done },
		func(ctx context.Context, op fakeOp) (fakeOp, error) {
			t.Fatal("refresh must not be called for an already-done operation")
			return op, nil
		})
	if err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if op.uri != "u" {
		t.Errorf("result = %+v", op)
	}
	if time.Since(start) > time.Second {
		t.Error("Wait slept despite the operation being done on submit")
	}
}

func TestWaitMaxAttempts(t *testing.T) {
	refreshes := 0
	_, err := Wait(context.Background(), Config{Interval: time.Millisecond, MaxAttempts: 3}, fakeOp{},
		func(op fakeOp) bool { return op.done },
		func(ctx context.Context, op fakeOp) (fakeOp, error) {
			refreshes++
			return op, nil
		})
	if err == nil {
		t.Fatal("expected error after attempt ceiling")
	}
	if refreshes != 3 {
		t.Errorf("refresh count = %d, want 3", refreshes)
	}
	if !strings.Contains(err.Error(), "still pending") {
		t.Errorf("error = %v", err)
	}
}

func TestWaitRefreshError(t *testing.T) {
	boom := errors.New("transport down")
	_, err := Wait(context.Background(), Config{Interval: time.Millisecond}, fakeOp{},
		func(op fakeOp) bool { return op.done },
		func(ctx context.Context, op fakeOp) (fakeOp, error) { return op, boom })
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped transport error", err)
	}
}

func TestWaitContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Wait(ctx, Config{Interval: time.Hour}, fakeOp{},
		func(op fakeOp) bool { return op.done },
		func(ctx context.Context, op fakeOp) (fakeOp, error) { return op, nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
