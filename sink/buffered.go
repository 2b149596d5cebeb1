package sink

import (
	"context"
	"sync"

	"github.com/drainkit/drainkit/errors"
)

// Buffered is a channel-backed sink with a fixed capacity.
// A capacity of zero makes every write a rendezvous with a reader.
type Buffered[T any] struct {
	ch   chan T
	done chan struct{}
	once sync.Once
}

// NewBuffered creates a sink holding up to capacity items.
// Panics if capacity is negative.
func NewBuffered[T any](capacity int) *Buffered[T] {
	if capacity < 0 {
		panic("sink: NewBuffered requires capacity >= 0")
	}
	return &Buffered[T]{
		ch:   make(chan T, capacity),
		done: make(chan struct{}),
	}
}

// Write enqueues item, blocking while the sink is full.
func (b *Buffered[T]) Write(ctx context.Context, item T) error {
	select {
	case <-b.done:
		return errors.SinkClosed()
	default:
	}
	select {
	case b.ch <- item:
		return nil
	case <-b.done:
		return errors.SinkClosed()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryEnsureWritable reports whether the sink still accepts writes.
func (b *Buffered[T]) TryEnsureWritable(ctx context.Context) error {
	select {
	case <-b.done:
		return errors.SinkClosed()
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Complete marks the sink as finished. Idempotent.
func (b *Buffered[T]) Complete() error {
	b.once.Do(func() { close(b.done) })
	return nil
}

// Completed reports whether the sink has been completed.
func (b *Buffered[T]) Completed() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// Len returns the number of items currently buffered.
func (b *Buffered[T]) Len() int { return len(b.ch) }

// Receive returns the next item. Once the sink is completed, residual
// buffered items are still delivered; after those it returns ok=false.
func (b *Buffered[T]) Receive(ctx context.Context) (T, bool, error) {
	var zero T
	select {
	case v := <-b.ch:
		return v, true, nil
	default:
	}
	select {
	case v := <-b.ch:
		return v, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case <-b.done:
		// Drain whatever landed before completion.
		select {
		case v := <-b.ch:
			return v, true, nil
		default:
			return zero, false, nil
		}
	}
}
