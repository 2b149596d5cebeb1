// Package sink provides the destination side of a drain operation: an
// ordered FIFO that accepts writes under backpressure, exposes a
// readiness probe, and can be completed exactly once to signal that no
// further writes will occur.
//
// Buffered is the channel-backed implementation with a fixed capacity
// (zero means rendezvous). Unbounded never exerts backpressure and
// grows its buffer as needed. Both keep residual items readable after
// completion so downstream consumers can finish draining.
package sink
