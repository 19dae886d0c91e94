package ecs

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// Get returns e's component of type C. The entity must hold one: Get does not
// check membership, and the result for a non-member is undefined. Use TryGet
// when membership is not already established.
func Get[C any](w *World, e Entity) C {
	return StoreOf[C](w).Fetch(e)
}

// TryGet returns e's component of type C and whether e holds one.
func TryGet[C any](w *World, e Entity) (C, bool) {
	s := StoreOf[C](w)
	if !s.Probe(e) {
		var zero C
		return zero, false
	}
	return s.Fetch(e), true
}

// MustGet is the checked form of Get, returning ErrNotMember for entities that
// lack the component.
func MustGet[C any](w *World, e Entity) (C, error) {
	c, ok := TryGet[C](w, e)
	if !ok {
		return c, eris.Wrapf(ErrNotMember, "entity %d, component %s", e, reflect.TypeFor[C]())
	}
	return c, nil
}

// Set writes c as e's component of type C, adding or overwriting it.
func Set[C any](w *World, e Entity, c C) {
	StoreOf[C](w).Write(e, c)
}

// Exists reports whether e holds a component of type C.
func Exists[C any](w *World, e Entity) bool {
	return StoreOf[C](w).Probe(e)
}

// Destroy removes e's component of type C. It is a no-op if e has none.
func Destroy[C any](w *World, e Entity) {
	StoreOf[C](w).Delete(e)
}

// Modify replaces e's component of type C with f applied to it. Like Get, it
// requires e to hold the component.
func Modify[C any](w *World, e Entity, f func(C) C) {
	s := StoreOf[C](w)
	s.Write(e, f(s.Fetch(e)))
}

// Count returns how many entities hold a component of type C.
func Count[C any](w *World) int {
	return StoreOf[C](w).Len()
}
