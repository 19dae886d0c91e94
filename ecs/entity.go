package ecs

// Entity is an opaque identity represented as a non-negative index.
// An entity carries no data of its own; it exists only insofar as some store
// reports it as a member.
type Entity int

// Allocator hands out entity indices. The engine never allocates indices on its
// own; World.NewEntity and World.DestroyEntity delegate to the configured Allocator.
type Allocator interface {
	Next() Entity
	Release(e Entity)
}

// Counter is a monotonic allocator starting at 0. Released indices are never reused.
type Counter struct {
	next Entity
}

// Next returns the next unused index.
func (c *Counter) Next() Entity {
	e := c.next
	c.next++
	return e
}

// Release is a no-op for a Counter.
func (c *Counter) Release(Entity) {}

// Allocated returns how many indices have been handed out so far.
func (c *Counter) Allocated() int {
	return int(c.next)
}

// FreeList is an allocator that recycles released indices, most recently released first.
type FreeList struct {
	next Entity
	free []Entity
}

// Next returns a recycled index if one is available, otherwise a fresh one.
func (f *FreeList) Next() Entity {
	if n := len(f.free); n > 0 {
		e := f.free[n-1]
		f.free = f.free[:n-1]
		return e
	}
	e := f.next
	f.next++
	return e
}

// Release returns e to the free list. Releasing an index that was never handed
// out, or releasing the same index twice, corrupts the allocator.
func (f *FreeList) Release(e Entity) {
	if e < 0 || e >= f.next {
		return
	}
	f.free = append(f.free, e)
}

// Free returns the number of indices waiting to be recycled.
func (f *FreeList) Free() int {
	return len(f.free)
}
