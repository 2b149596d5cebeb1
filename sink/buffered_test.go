package sink

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/drainkit/drainkit/errors"
)

func TestBuffered_WriteReceive_Order(t *testing.T) {
	b := NewBuffered[int](8)
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		if err := b.Write(ctx, i); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i <= 5; i++ {
		v, ok, err := b.Receive(ctx)
		if err != nil || !ok {
			t.Fatalf("Receive %d: ok=%v err=%v", i, ok, err)
		}
		if v != i {
			t.Errorf("expected %d, got %d", i, v)
		}
	}
}

func TestBuffered_WriteBlocksWhenFull(t *testing.T) {
	b := NewBuffered[int](1)
	ctx := context.Background()
	if err := b.Write(ctx, 1); err != nil {
		t.Fatal(err)
	}

	unblocked := make(chan error, 1)
	go func() { unblocked <- b.Write(ctx, 2) }()

	select {
	case err := <-unblocked:
		t.Fatalf("write should block on a full sink, returned %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	if _, _, err := b.Receive(ctx); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-unblocked:
		if err != nil {
			t.Fatalf("blocked write should succeed after a receive: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("write did not unblock after a receive")
	}
}

func TestBuffered_WriteAfterComplete(t *testing.T) {
	b := NewBuffered[int](4)
	b.Complete()
	err := b.Write(context.Background(), 1)
	if !errors.IsSinkClosed(err) {
		t.Errorf("expected SINK_CLOSED, got %v", err)
	}
}

func TestBuffered_BlockedWriteObservesComplete(t *testing.T) {
	b := NewBuffered[int](0)
	unblocked := make(chan error, 1)
	go func() { unblocked <- b.Write(context.Background(), 1) }()

	time.Sleep(20 * time.Millisecond)
	b.Complete()

	select {
	case err := <-unblocked:
		if !errors.IsSinkClosed(err) {
			t.Errorf("expected SINK_CLOSED, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("blocked write did not observe completion")
	}
}

func TestBuffered_BlockedWriteObservesCancellation(t *testing.T) {
	b := NewBuffered[int](0)
	ctx, cancel := context.WithCancel(context.Background())
	unblocked := make(chan error, 1)
	go func() { unblocked <- b.Write(ctx, 1) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-unblocked:
		if !stderrors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("blocked write did not observe cancellation")
	}
}

func TestBuffered_TryEnsureWritable(t *testing.T) {
	b := NewBuffered[int](1)
	if err := b.TryEnsureWritable(context.Background()); err != nil {
		t.Errorf("open sink should be writable: %v", err)
	}
	b.Complete()
	if err := b.TryEnsureWritable(context.Background()); !errors.IsSinkClosed(err) {
		t.Errorf("expected SINK_CLOSED, got %v", err)
	}
}

func TestBuffered_CompleteIdempotent(t *testing.T) {
	b := NewBuffered[int](1)
	if err := b.Complete(); err != nil {
		t.Fatal(err)
	}
	if err := b.Complete(); err != nil {
		t.Fatal(err)
	}
	if !b.Completed() {
		t.Error("sink should report completed")
	}
}

func TestBuffered_ReceiveResidualAfterComplete(t *testing.T) {
	b := NewBuffered[int](4)
	ctx := context.Background()
	b.Write(ctx, 1)
	b.Write(ctx, 2)
	b.Complete()

	got := make([]int, 0, 2)
	for {
		v, ok, err := b.Receive(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected residual [1 2], got %v", got)
	}
}

func TestBuffered_ReceiveCancelled(t *testing.T) {
	b := NewBuffered[int](1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := b.Receive(ctx)
	if ok || !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected cancelled receive, got ok=%v err=%v", ok, err)
	}
}

func TestNewBuffered_NegativeCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative capacity")
		}
	}()
	NewBuffered[int](-1)
}
