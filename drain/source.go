package drain

import (
	"context"
	"iter"
)

// Item is one deferred element of a source. Forcing it may block, for
// example while an asynchronous computation finishes, and must observe
// ctx while doing so.
type Item[T any] func(ctx context.Context) (T, error)

// Source is a forward-only sequence of deferred items. Next advances the
// sequence and returns the next item, or ok=false once exhausted. A
// Source is never rewound and is not safe for concurrent callers; the
// drain serializes access through its shared cursor.
type Source[T any] interface {
	Next() (Item[T], bool)
}

// --- Shape adapters ---

// FromSlice adapts a slice of plain values.
func FromSlice[T any](items []T) Source[T] {
	return &sliceSource[T]{items: items}
}

type sliceSource[T any] struct {
	items []T
	index int
}

func (s *sliceSource[T]) Next() (Item[T], bool) {
	if s.index >= len(s.items) {
		return nil, false
	}
	v := s.items[s.index]
	s.index++
	return func(context.Context) (T, error) { return v, nil }, true
}

// FromFuncs adapts a slice of asynchronous computations. Each function
// runs when its item is forced, on the claiming worker.
func FromFuncs[T any](fns []func(context.Context) (T, error)) Source[T] {
	return &funcSource[T]{fns: fns}
}

type funcSource[T any] struct {
	fns   []func(context.Context) (T, error)
	index int
}

func (s *funcSource[T]) Next() (Item[T], bool) {
	if s.index >= len(s.fns) {
		return nil, false
	}
	fn := s.fns[s.index]
	s.index++
	return Item[T](fn), true
}

// FromFactories adapts a slice of zero-argument factory functions.
func FromFactories[T any](fns []func() T) Source[T] {
	return &factorySource[T]{fns: fns}
}

type factorySource[T any] struct {
	fns   []func() T
	index int
}

func (s *factorySource[T]) Next() (Item[T], bool) {
	if s.index >= len(s.fns) {
		return nil, false
	}
	fn := s.fns[s.index]
	s.index++
	return func(context.Context) (T, error) { return fn(), nil }, true
}

// FromSeq adapts an iterator sequence, which may be infinite.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	return &seqSource[T]{next: next, stop: stop}
}

type seqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

func (s *seqSource[T]) Next() (Item[T], bool) {
	v, ok := s.next()
	if !ok {
		s.stop()
		return nil, false
	}
	return func(context.Context) (T, error) { return v, nil }, true
}

// FromChannel adapts a channel feed. Next blocks until the feed yields
// or is closed, and it holds the shared cursor while waiting: if the
// feed goes idle and is never closed, every worker stays blocked on the
// cursor and the drain cannot finish, even after its context is
// cancelled. Use this adapter only with feeds that stay ahead of the
// workers and are eventually closed by their producer.
func FromChannel[T any](ch <-chan T) Source[T] {
	return chanSource[T](ch)
}

type chanSource[T any] <-chan T

func (s chanSource[T]) Next() (Item[T], bool) {
	v, ok := <-s
	if !ok {
		return nil, false
	}
	return func(context.Context) (T, error) { return v, nil }, true
}
