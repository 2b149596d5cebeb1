package drain

import (
	"context"
	stderrors "errors"
	"sync/atomic"

	"github.com/drainkit/drainkit/errors"
	"github.com/drainkit/drainkit/sink"
)

// claimFunc hands out the next deferred item, or false on exhaustion.
type claimFunc[T any] func() (Item[T], bool)

// workerState is one worker's final report. more is true only when the
// worker left its loop because of cancellation while the source could
// still have yielded items.
type workerState struct {
	more bool
	err  error
}

// readiness is the shared sink-readiness gate. The probe runs once; every
// worker awaits the same result before its first claim, so no worker
// races ahead of a sink-closed detection.
type readiness struct {
	done chan struct{}
	err  error
}

func probeWritable[T any](ctx context.Context, w sink.Writer[T]) *readiness {
	r := &readiness{done: make(chan struct{})}
	go func() {
		defer close(r.done)
		r.err = w.TryEnsureWritable(ctx)
	}()
	return r
}

// runWorker drains the claim function into the sink with a one-item
// pipeline: the write of the previous item stays in flight while the
// next item is being forced, and is awaited exactly once before the next
// write is issued. After the loop the final pending write is awaited so
// no claimed and forced item is silently dropped.
func runWorker[T any](
	ctx context.Context,
	w sink.Writer[T],
	claim claimFunc[T],
	ready *readiness,
	written *atomic.Int64,
	rec Recorder,
) (more bool, err error) {
	select {
	case <-ready.done:
		if ready.err != nil {
			return false, ready.err
		}
	case <-ctx.Done():
		return true, nil
	}

	// pending holds this worker's one in-flight write, seeded with an
	// already-satisfied empty write for the first iteration.
	pending := make(chan error, 1)
	pending <- nil

	for {
		if ctx.Err() != nil {
			more = true
			break
		}
		item, ok := claim()
		if !ok {
			break
		}
		if rec != nil {
			rec.ItemClaimed(ctx)
		}

		// Forcing happens outside the cursor lock and overlaps with the
		// previous write, which is awaited only afterwards.
		val, ferr := item(ctx)
		if werr := <-pending; werr != nil {
			return false, classifyWriteError(werr)
		}
		if ferr != nil {
			if ctx.Err() != nil && stderrors.Is(ferr, ctx.Err()) {
				return true, nil
			}
			return false, errors.ProductionFault(ferr)
		}

		go func(v T) {
			werr := w.Write(ctx, v)
			if werr == nil {
				written.Add(1)
				if rec != nil {
					rec.ItemWritten(ctx)
				}
			}
			pending <- werr
		}(val)
	}

	if werr := <-pending; werr != nil {
		return more, classifyWriteError(werr)
	}
	return more, nil
}

// classifyWriteError keeps cancellation and already-coded errors as-is
// and wraps anything else a custom sink may return.
func classifyWriteError(err error) error {
	if isCancellation(err) {
		return err
	}
	if errors.CodeOf(err) != "" {
		return err
	}
	return errors.WriteFault(err)
}

func isCancellation(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}
