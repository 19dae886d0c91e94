package ecs

// Store is the storage capability for a single component type C.
//
// Fetch is only defined for members: callers must establish membership through
// Members or Probe first. Backends do not check this; a fetch of a non-member
// may return a zero value, a stale value, or panic.
//
// Members appends the current member indices to dst and returns the extended
// slice. The order is backend-defined but stable for the duration of one call.
type Store[C any] interface {
	Fetch(e Entity) C
	Write(e Entity, c C)
	Probe(e Entity) bool
	Delete(e Entity)
	Members(dst []Entity) []Entity
	Len() int
}

// AnyStore is the type-erased view of a Store used for world-level operations
// that do not need the component value, such as destroying an entity across
// every store or collecting statistics.
type AnyStore interface {
	Probe(e Entity) bool
	Delete(e Entity)
	Members(dst []Entity) []Entity
	Len() int
}

var (
	_ Store[int] = (*Dense[int])(nil)
	_ Store[int] = (*Sparse[int])(nil)
	_ Store[int] = (*Map[int])(nil)
	_ Store[int] = (*Cache[int])(nil)
	_ Store[int] = (*Unique[int])(nil)
)
