package ecs

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Cache is a fixed-capacity store that evicts its least recently used member
// when a write would exceed capacity. Fetch and Write both count as use.
//
// Membership can shrink between calls without any Delete being issued, so code
// relying on Count or Members of a Cache must tolerate members disappearing.
// Members are enumerated from least to most recently used.
type Cache[C any] struct {
	lru       *simplelru.LRU[Entity, C]
	capacity  int
	onEvict   func(Entity, C)
	logger    zerolog.Logger
	evictions uint64
	deleting  bool
}

// CacheOption configures a Cache.
type CacheOption[C any] func(*Cache[C])

// WithEvictHook registers fn to be called with every member dropped to make room.
// Explicit deletes do not trigger it.
func WithEvictHook[C any](fn func(Entity, C)) CacheOption[C] {
	return func(c *Cache[C]) {
		c.onEvict = fn
	}
}

// WithCacheLogger logs evictions at trace level.
func WithCacheLogger[C any](logger zerolog.Logger) CacheOption[C] {
	return func(c *Cache[C]) {
		c.logger = logger
	}
}

// NewCache creates a cache holding at most capacity members.
func NewCache[C any](capacity int, opts ...CacheOption[C]) (*Cache[C], error) {
	if capacity <= 0 {
		return nil, eris.Wrapf(ErrInvalidCapacity, "cache capacity %d", capacity)
	}

	c := &Cache[C]{
		capacity: capacity,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	lru, err := simplelru.NewLRU[Entity, C](capacity, c.evicted)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create lru")
	}
	c.lru = lru
	return c, nil
}

func (c *Cache[C]) evicted(e Entity, v C) {
	if c.deleting {
		return
	}
	c.evictions++
	c.logger.Trace().Int("entity", int(e)).Int("capacity", c.capacity).Msg("evicted")
	if c.onEvict != nil {
		c.onEvict(e, v)
	}
}

// Fetch returns the component at e and marks it as recently used.
func (c *Cache[C]) Fetch(e Entity) C {
	v, _ := c.lru.Get(e)
	return v
}

// Write inserts or overwrites the component at e, evicting the least recently
// used member if the cache is full.
func (c *Cache[C]) Write(e Entity, v C) {
	c.lru.Add(e, v)
}

// Probe reports whether e is a member without affecting recency.
func (c *Cache[C]) Probe(e Entity) bool {
	return c.lru.Contains(e)
}

// Delete removes e.
func (c *Cache[C]) Delete(e Entity) {
	c.deleting = true
	c.lru.Remove(e)
	c.deleting = false
}

// Members appends members from least to most recently used.
func (c *Cache[C]) Members(dst []Entity) []Entity {
	return append(dst, c.lru.Keys()...)
}

// Len returns the number of members.
func (c *Cache[C]) Len() int {
	return c.lru.Len()
}

// Capacity returns the maximum number of members.
func (c *Cache[C]) Capacity() int {
	return c.capacity
}

// Evictions returns how many members have been dropped to make room.
func (c *Cache[C]) Evictions() uint64 {
	return c.evictions
}
