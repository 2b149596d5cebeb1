package drain

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/drainkit/drainkit/errors"
	"github.com/drainkit/drainkit/logger"
	"github.com/drainkit/drainkit/sink"
)

// Option configures a drain operation.
type Option func(*settings)

type settings struct {
	log *logger.Logger
	rec Recorder
}

// WithLogger sets the logger for the operation. Defaults to the global
// logger tagged with the drain component.
func WithLogger(l *logger.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithRecorder sets a metrics recorder for the operation.
func WithRecorder(r Recorder) Option {
	return func(s *settings) { s.rec = r }
}

// All drains the source into the sink with cfg.MaxConcurrency workers.
//
// The returned error is the operation's outcome: nil when the source was
// exhausted and every item written, a CANCELLED error when the operation
// was told to stop mid-stream, and any other error when a worker
// faulted. With CompleteOnFinish set the sink is completed once all
// workers have joined, regardless of outcome.
func All[T any](ctx context.Context, w sink.Writer[T], src Source[T], cfg Config, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Cancelled(err)
	}

	st := settings{}
	for _, opt := range opts {
		opt(&st)
	}
	if st.log == nil {
		st.log = logger.WithComponent("drain")
	}
	log := st.log.WithFields(map[string]interface{}{
		logger.FieldOperationID: uuid.NewString(),
	})

	start := time.Now()

	// The readiness probe is issued now but awaited inside each worker,
	// before its first claim.
	ready := probeWritable(ctx, w)

	var claim claimFunc[T]
	if cfg.MaxConcurrency == 1 {
		claim = soloClaim(src)
	} else {
		cur := &cursor[T]{src: src}
		claim = cur.claim
	}

	log.Debug("drain started", logger.Fields(logger.FieldWorkers, cfg.MaxConcurrency))

	var written atomic.Int64
	states := make([]workerState, cfg.MaxConcurrency)
	var wg sync.WaitGroup
	for i := range states {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if st.rec != nil {
				st.rec.WorkerStarted(ctx)
				defer st.rec.WorkerStopped(ctx)
			}
			more, err := runWorker(ctx, w, claim, ready, &written, st.rec)
			states[i] = workerState{more: more, err: err}
		}(i)
	}
	wg.Wait()

	if cfg.CompleteOnFinish {
		// The sink always gets its completion chance, fault or not, so
		// downstream readers are not left waiting forever.
		if cerr := w.Complete(); cerr != nil {
			log.Warn("completing sink failed", logger.MergeWithError(nil, cerr))
		}
	}

	err := resolve(ctx, states)
	elapsed := time.Since(start)
	outcome := outcomeLabel(err)
	if st.rec != nil {
		st.rec.OperationDone(ctx, outcome, elapsed)
	}

	fields := logger.Fields(
		logger.FieldOutcome, outcome,
		logger.FieldItemsWritten, written.Load(),
		logger.FieldDuration, elapsed.Milliseconds(),
	)
	switch {
	case err == nil:
		log.Debug("drain completed", fields)
	case errors.IsCancelled(err):
		log.Info("drain cancelled", fields)
	default:
		log.Error("drain faulted", logger.MergeWithError(fields, err))
	}
	return err
}

// soloClaim reads the source directly; with a single worker there is no
// concurrent access to guard.
func soloClaim[T any](src Source[T]) claimFunc[T] {
	exhausted := false
	return func() (Item[T], bool) {
		if exhausted {
			return nil, false
		}
		item, ok := src.Next()
		if !ok {
			exhausted = true
		}
		return item, ok
	}
}

// resolve folds the joined worker states into the aggregate outcome.
// Any non-cancellation fault wins; otherwise a worker that stopped with
// the source unexhausted makes the whole operation cancelled, even
// though no individual worker raised an error.
func resolve(ctx context.Context, states []workerState) error {
	cancelled := false
	for _, s := range states {
		if s.err != nil {
			if isCancellation(s.err) {
				cancelled = true
				continue
			}
			return s.err
		}
		if s.more {
			cancelled = true
		}
	}
	if cancelled {
		return errors.Cancelled(context.Cause(ctx))
	}
	return nil
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "completed"
	case errors.IsCancelled(err):
		return "cancelled"
	default:
		return "faulted"
	}
}
