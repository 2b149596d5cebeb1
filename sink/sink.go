package sink

import "context"

// Writer is the destination contract a drain operation writes into.
//
// Implementations must serialize their internal state so that multiple
// concurrent writers observe capacity one at a time.
type Writer[T any] interface {
	// Write enqueues one item. It blocks while the sink is full, returns
	// a SINK_CLOSED error once the sink has been completed, and returns
	// ctx.Err() if ctx is done before the item is enqueued. An item is
	// either enqueued whole or not at all.
	Write(ctx context.Context, item T) error

	// TryEnsureWritable reports whether the sink will accept writes.
	// It returns a SINK_CLOSED error if the sink has been permanently
	// completed, and ctx.Err() if ctx is done first.
	TryEnsureWritable(ctx context.Context) error

	// Complete marks that no further writes will occur and releases the
	// sink to downstream readers. Idempotent.
	Complete() error
}
