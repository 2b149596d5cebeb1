// Package drain fans a single logical sequence of deferred items into
// one shared sink using a fixed-size pool of concurrent workers.
//
// Workers race to claim items from the source through a shared cursor,
// force each claimed item outside the cursor lock, and write the result
// to the sink. Each worker pipelines its own produce/write loop: while
// one write is in flight, the worker is already forcing the next item,
// so at most one write per worker is ever pending.
//
// Ordering: items are claimed in source order, and a single worker's
// writes land in claim order relative to each other, but writes from
// distinct workers interleave without ordering guarantees. With
// MaxConcurrency of one the sink receives items in exact source order.
//
// Cancellation is cooperative: every worker checks the context before
// each claim, and a write blocked on backpressure observes it while
// suspended. A cancelled operation reports a CANCELLED outcome even
// when every worker exited cleanly.
//
// # Usage
//
//	b := sink.NewBuffered[int](8)
//	src := drain.FromSlice([]int{1, 2, 3, 4, 5})
//	err := drain.All(ctx, b, src, drain.Config{
//	    MaxConcurrency:   4,
//	    CompleteOnFinish: true,
//	})
package drain
