package drain

import "sync"

// cursor shares one forward-only source between workers. The lock is
// scoped to advancing the source and reading the next deferred item;
// forcing the item happens on the claiming worker, outside the lock.
type cursor[T any] struct {
	mu        sync.Mutex
	src       Source[T]
	exhausted bool
}

// claim hands the next item to exactly one caller. Once the source
// reports exhaustion, claim returns false permanently and never touches
// the source again.
func (c *cursor[T]) claim() (Item[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exhausted {
		return nil, false
	}
	item, ok := c.src.Next()
	if !ok {
		c.exhausted = true
		return nil, false
	}
	return item, true
}
