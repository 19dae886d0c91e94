package ecs

import "reflect"

// globalEntry holds the boxed pointer to a Global's value.
type globalEntry struct {
	typ reflect.Type
	ptr any
}

// Global provides access to a single value of type C owned by the World rather
// than by any entity. Use it for clocks, configuration, input state and other
// world-wide data. All Global[C] handles for the same World share one value.
type Global[C any] struct {
	ptr *C
}

// NewGlobal returns the World's Global for C, creating it if needed. When the
// value does not exist yet it is initialized from initializer, or the zero
// value if none is given. An existing value is left untouched.
func NewGlobal[C any](w *World, initializer ...C) *Global[C] {
	t := reflect.TypeFor[C]()

	entry, ok := w.globals[t]
	if !ok {
		var value C
		if len(initializer) > 0 {
			value = initializer[0]
		}
		entry = &globalEntry{typ: t, ptr: &value}
		w.globals[t] = entry
		w.logger.Debug().Str("global", t.String()).Msg("created global")
	}

	return &Global[C]{ptr: entry.ptr.(*C)}
}

// Get returns a pointer to the shared value. Writes through it are visible to
// every handle.
func (g *Global[C]) Get() *C {
	return g.ptr
}

// Set replaces the shared value.
func (g *Global[C]) Set(value C) {
	*g.ptr = value
}

// HasGlobal reports whether a Global for C has been created in w.
func HasGlobal[C any](w *World) bool {
	_, ok := w.globals[reflect.TypeFor[C]()]
	return ok
}
