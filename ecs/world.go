package ecs

import (
	"reflect"
	"slices"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// World binds every component type in use to exactly one store and threads
// access to those stores through the engine operations. A World is not safe for
// concurrent use: one goroutine drives it for its whole lifetime.
type World struct {
	bindings map[reflect.Type]*binding
	ordered  []*binding
	globals  map[reflect.Type]*globalEntry
	alloc    Allocator
	scratch  [][]Entity
	logger   zerolog.Logger
}

// binding associates a component type with its store. store holds the typed
// Store[C]; erased and fetch serve callers that do not know C.
type binding struct {
	typ     reflect.Type
	backend string
	store   any
	erased  AnyStore
	fetch   func(Entity) any
	write   func(Entity, any)
}

// Option configures a World.
type Option func(*World)

// WithAllocator sets the allocator used by NewEntity and DestroyEntity.
func WithAllocator(alloc Allocator) Option {
	return func(w *World) {
		w.alloc = alloc
	}
}

// WithLogger sets the logger used for registration and lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// NewWorld creates an empty World. Without options it uses a Counter allocator
// and a disabled logger.
func NewWorld(opts ...Option) *World {
	w := &World{
		bindings: make(map[reflect.Type]*binding),
		globals:  make(map[reflect.Type]*globalEntry),
		alloc:    &Counter{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Register binds component type C to store s for the lifetime of the World.
func Register[C any](w *World, s Store[C]) error {
	t := reflect.TypeFor[C]()
	if s == nil {
		return eris.Wrapf(ErrNilStore, "component %s", t)
	}
	if _, exists := w.bindings[t]; exists {
		return eris.Wrapf(ErrAlreadyRegistered, "component %s", t)
	}

	b := &binding{
		typ:     t,
		backend: backendName(s, t),
		store:   s,
		erased:  s,
		fetch:   func(e Entity) any { return s.Fetch(e) },
		write:   func(e Entity, v any) { s.Write(e, v.(C)) },
	}
	w.bindings[t] = b
	w.ordered = append(w.ordered, b)

	w.logger.Debug().
		Str("component", t.String()).
		Str("backend", b.backend).
		Msg("registered component store")
	return nil
}

// backendName renders the store's type with its type arguments replaced by the
// short component name, e.g. "*ecs.Dense[main.Trail]".
func backendName(s any, t reflect.Type) string {
	name := reflect.TypeOf(s).String()
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i] + "[" + t.String() + "]"
	}
	return name
}

// RegisterComponent binds component type C to a new Dense store.
func RegisterComponent[C any](w *World) error {
	return Register[C](w, NewDense[C]())
}

// Lookup returns the store bound to C.
func Lookup[C any](w *World) (Store[C], error) {
	t := reflect.TypeFor[C]()
	b, ok := w.bindings[t]
	if !ok {
		return nil, eris.Wrapf(ErrNotRegistered, "component %s", t)
	}
	return b.store.(Store[C]), nil
}

// StoreOf returns the store bound to C. Using an unregistered component type is
// a programming error, so StoreOf panics with ErrNotRegistered rather than
// returning it.
func StoreOf[C any](w *World) Store[C] {
	s, err := Lookup[C](w)
	if err != nil {
		panic(err)
	}
	return s
}

// NewEntity draws a fresh index from the World's allocator. The entity has no
// components until Set is called for it.
func (w *World) NewEntity() Entity {
	return w.alloc.Next()
}

// DestroyEntity deletes e from every registered store and releases its index
// back to the allocator.
func (w *World) DestroyEntity(e Entity) {
	removed := 0
	for _, b := range w.ordered {
		if b.erased.Probe(e) {
			b.erased.Delete(e)
			removed++
		}
	}
	w.alloc.Release(e)

	w.logger.Trace().Int("entity", int(e)).Int("components", removed).Msg("destroyed entity")
}

// ComponentValue is one component held by an entity, as reported by Components.
type ComponentValue struct {
	Type  reflect.Type
	Value any
}

// Components returns every component e currently holds, in registration order.
// It boxes each value and is meant for debugging and tooling, not hot paths.
func (w *World) Components(e Entity) []ComponentValue {
	var out []ComponentValue
	for _, b := range w.ordered {
		if b.erased.Probe(e) {
			out = append(out, ComponentValue{Type: b.typ, Value: b.fetch(e)})
		}
	}
	return out
}

// SetComponent writes value as e's component of value's dynamic type. It is
// the untyped counterpart of Set, for tooling that only holds boxed values.
func (w *World) SetComponent(e Entity, value any) error {
	t := reflect.TypeOf(value)
	b, ok := w.bindings[t]
	if !ok {
		return eris.Wrapf(ErrNotRegistered, "component %v", t)
	}
	b.write(e, value)
	return nil
}

// Entities appends to dst every entity that holds at least one component, in
// ascending order and without duplicates.
func (w *World) Entities(dst []Entity) []Entity {
	start := len(dst)
	for _, b := range w.ordered {
		dst = b.erased.Members(dst)
	}
	tail := dst[start:]
	slices.Sort(tail)
	tail = slices.Compact(tail)
	return dst[:start+len(tail)]
}

// MembershipHash returns a hash of which entities hold which components. It
// changes when any entity gains or loses a component and ignores component
// values and member order. buf is scratch space and is returned for reuse.
func (w *World) MembershipHash(buf []Entity) (uint64, []Entity) {
	var h uint64
	for i, b := range w.ordered {
		salt := uint64(i+1) * 0x9e3779b97f4a7c15
		buf = b.erased.Members(buf[:0])
		for _, e := range buf {
			h += mix64(salt ^ uint64(e))
		}
	}
	return h, buf
}

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// ComponentTypes returns the registered component types in registration order.
func (w *World) ComponentTypes() []reflect.Type {
	types := make([]reflect.Type, len(w.ordered))
	for i, b := range w.ordered {
		types[i] = b.typ
	}
	return types
}

// Logger returns the World's logger.
func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

// snapshot copies the members of s into a recycled scratch buffer. Every
// snapshot must be handed back through recycle once the caller is done.
func (w *World) snapshot(s AnyStore) []Entity {
	var buf []Entity
	if n := len(w.scratch); n > 0 {
		buf = w.scratch[n-1]
		w.scratch = w.scratch[:n-1]
	}
	return s.Members(buf[:0])
}

// join snapshots the members common to every store. The smallest store drives
// the enumeration and the rest are probed once per candidate.
func (w *World) join(stores ...AnyStore) []Entity {
	primary := 0
	for i := 1; i < len(stores); i++ {
		if stores[i].Len() < stores[primary].Len() {
			primary = i
		}
	}

	members := w.snapshot(stores[primary])
	n := 0
outer:
	for _, e := range members {
		for i, s := range stores {
			if i != primary && !s.Probe(e) {
				continue outer
			}
		}
		members[n] = e
		n++
	}
	return members[:n]
}

func (w *World) recycle(buf []Entity) {
	w.scratch = append(w.scratch, buf[:0])
}
