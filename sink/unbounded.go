package sink

import (
	"context"
	"sync"

	"github.com/drainkit/drainkit/errors"
)

// Unbounded is a sink whose buffer grows as needed. Writes never block
// on capacity, so it exerts no backpressure on producers.
type Unbounded[T any] struct {
	mu     sync.Mutex
	buf    []T
	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewUnbounded creates an unbounded sink.
func NewUnbounded[T any]() *Unbounded[T] {
	return &Unbounded[T]{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Write enqueues item without blocking.
func (u *Unbounded[T]) Write(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-u.done:
		return errors.SinkClosed()
	default:
	}
	u.mu.Lock()
	u.buf = append(u.buf, item)
	u.mu.Unlock()
	select {
	case u.notify <- struct{}{}:
	default:
	}
	return nil
}

// TryEnsureWritable reports whether the sink still accepts writes.
func (u *Unbounded[T]) TryEnsureWritable(ctx context.Context) error {
	select {
	case <-u.done:
		return errors.SinkClosed()
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Complete marks the sink as finished. Idempotent.
func (u *Unbounded[T]) Complete() error {
	u.once.Do(func() { close(u.done) })
	return nil
}

// Completed reports whether the sink has been completed.
func (u *Unbounded[T]) Completed() bool {
	select {
	case <-u.done:
		return true
	default:
		return false
	}
}

// Len returns the number of items currently buffered.
func (u *Unbounded[T]) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.buf)
}

// Receive returns the next item. Once the sink is completed, residual
// buffered items are still delivered; after those it returns ok=false.
func (u *Unbounded[T]) Receive(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		u.mu.Lock()
		if len(u.buf) > 0 {
			v := u.buf[0]
			u.buf = u.buf[1:]
			u.mu.Unlock()
			return v, true, nil
		}
		u.mu.Unlock()

		select {
		case <-u.notify:
		case <-ctx.Done():
			return zero, false, ctx.Err()
		case <-u.done:
			// A write may have raced with completion; take one more look.
			u.mu.Lock()
			if len(u.buf) > 0 {
				v := u.buf[0]
				u.buf = u.buf[1:]
				u.mu.Unlock()
				return v, true, nil
			}
			u.mu.Unlock()
			return zero, false, nil
		}
	}
}
