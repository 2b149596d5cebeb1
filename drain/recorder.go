package drain

import (
	"context"
	"time"
)

// Recorder receives progress callbacks from a drain operation.
// observability.DrainMetrics satisfies it; a nil Recorder disables
// recording entirely.
type Recorder interface {
	// WorkerStarted is called when a worker begins draining.
	WorkerStarted(ctx context.Context)
	// WorkerStopped is called when a worker finishes, fault or not.
	WorkerStopped(ctx context.Context)
	// ItemClaimed is called after each successful claim from the source.
	ItemClaimed(ctx context.Context)
	// ItemWritten is called after each write is accepted by the sink.
	ItemWritten(ctx context.Context)
	// OperationDone is called once per operation with its outcome label
	// ("completed", "cancelled" or "faulted") and elapsed time.
	OperationDone(ctx context.Context, outcome string, elapsed time.Duration)
}
