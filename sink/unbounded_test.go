package sink

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/drainkit/drainkit/errors"
)

func TestUnbounded_WriteNeverBlocks(t *testing.T) {
	u := NewUnbounded[int]()
	ctx := context.Background()
	for i := 0; i < 10000; i++ {
		if err := u.Write(ctx, i); err != nil {
			t.Fatal(err)
		}
	}
	if u.Len() != 10000 {
		t.Errorf("expected 10000 buffered, got %d", u.Len())
	}
}

func TestUnbounded_ReceiveOrder(t *testing.T) {
	u := NewUnbounded[string]()
	ctx := context.Background()
	u.Write(ctx, "a")
	u.Write(ctx, "b")
	u.Write(ctx, "c")

	for _, want := range []string{"a", "b", "c"} {
		v, ok, err := u.Receive(ctx)
		if err != nil || !ok {
			t.Fatalf("Receive: ok=%v err=%v", ok, err)
		}
		if v != want {
			t.Errorf("expected %q, got %q", want, v)
		}
	}
}

func TestUnbounded_ReceiveWaitsForWrite(t *testing.T) {
	u := NewUnbounded[int]()
	ctx := context.Background()

	got := make(chan int, 1)
	go func() {
		v, _, _ := u.Receive(ctx)
		got <- v
	}()

	time.Sleep(20 * time.Millisecond)
	u.Write(ctx, 42)

	select {
	case v := <-got:
		if v != 42 {
			t.Errorf("expected 42, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("receive did not observe write")
	}
}

func TestUnbounded_WriteAfterComplete(t *testing.T) {
	u := NewUnbounded[int]()
	u.Complete()
	if err := u.Write(context.Background(), 1); !errors.IsSinkClosed(err) {
		t.Errorf("expected SINK_CLOSED, got %v", err)
	}
}

func TestUnbounded_ResidualAfterComplete(t *testing.T) {
	u := NewUnbounded[int]()
	ctx := context.Background()
	u.Write(ctx, 1)
	u.Write(ctx, 2)
	u.Complete()

	count := 0
	for {
		_, ok, err := u.Receive(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 residual items, got %d", count)
	}
}

func TestUnbounded_ReceiveCancelled(t *testing.T) {
	u := NewUnbounded[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := u.Receive(ctx)
	if ok || !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected cancelled receive, got ok=%v err=%v", ok, err)
	}
}

func TestUnbounded_TryEnsureWritable(t *testing.T) {
	u := NewUnbounded[int]()
	if err := u.TryEnsureWritable(context.Background()); err != nil {
		t.Errorf("open sink should be writable: %v", err)
	}
	u.Complete()
	if err := u.TryEnsureWritable(context.Background()); !errors.IsSinkClosed(err) {
		t.Errorf("expected SINK_CLOSED, got %v", err)
	}
}
