package ecs

import (
	"iter"

	"github.com/rotisserie/eris"
)

// The bulk operations below all follow the same shape: resolve the stores
// once, snapshot the members of the primary store into a scratch buffer owned
// by the World, then fetch/compute/write per member. Because iteration runs
// over the snapshot, writes and deletes issued during the call do not disturb
// it. Deleting a member of the primary store that has not been visited yet is a
// contract violation, like any other fetch of a non-member.

// Cmap writes f(x) as component Y for every entity holding an X. Entities
// without an X are left untouched; Y is added where it was absent.
func Cmap[X, Y any](w *World, f func(X) Y) {
	sx := StoreOf[X](w)
	sy := StoreOf[Y](w)

	members := w.snapshot(sx)
	defer w.recycle(members)

	for _, e := range members {
		sy.Write(e, f(sx.Fetch(e)))
	}
}

// Cmap2 writes f(a, b) as component Y for every entity holding both an A and a B.
func Cmap2[A, B, Y any](w *World, f func(A, B) Y) {
	sa := StoreOf[A](w)
	sb := StoreOf[B](w)
	sy := StoreOf[Y](w)

	members := w.join(sa, sb)
	defer w.recycle(members)

	for _, e := range members {
		sy.Write(e, f(sa.Fetch(e), sb.Fetch(e)))
	}
}

// Cmap3 writes f(a, b, c) as component Y for every entity holding an A, a B and a C.
func Cmap3[A, B, C, Y any](w *World, f func(A, B, C) Y) {
	sa := StoreOf[A](w)
	sb := StoreOf[B](w)
	sc := StoreOf[C](w)
	sy := StoreOf[Y](w)

	members := w.join(sa, sb, sc)
	defer w.recycle(members)

	for _, e := range members {
		sy.Write(e, f(sa.Fetch(e), sb.Fetch(e), sc.Fetch(e)))
	}
}

// CmapIf is Cmap restricted to entities that also hold a P for which cond
// holds. Entities lacking P are skipped; when cond is false, Y is not written.
func CmapIf[P, X, Y any](w *World, cond func(P) bool, f func(X) Y) {
	sp := StoreOf[P](w)
	sx := StoreOf[X](w)
	sy := StoreOf[Y](w)

	members := w.join(sx, sp)
	defer w.recycle(members)

	for _, e := range members {
		if !cond(sp.Fetch(e)) {
			continue
		}
		sy.Write(e, f(sx.Fetch(e)))
	}
}

// CmapM is the effectful Cmap: f receives the entity and may issue further
// engine operations or side effects before returning the Y to write. The first
// error stops the iteration and is returned; writes made before it remain.
func CmapM[X, Y any](w *World, f func(Entity, X) (Y, error)) error {
	sx := StoreOf[X](w)
	sy := StoreOf[Y](w)

	members := w.snapshot(sx)
	defer w.recycle(members)

	for _, e := range members {
		y, err := f(e, sx.Fetch(e))
		if err != nil {
			return eris.Wrapf(err, "cmap entity %d", e)
		}
		sy.Write(e, y)
	}
	return nil
}

// Ceach runs f for every entity holding an X, writing nothing back. The first
// error stops the iteration and is returned.
func Ceach[X any](w *World, f func(Entity, X) error) error {
	sx := StoreOf[X](w)

	members := w.snapshot(sx)
	defer w.recycle(members)

	for _, e := range members {
		if err := f(e, sx.Fetch(e)); err != nil {
			return eris.Wrapf(err, "each entity %d", e)
		}
	}
	return nil
}

// GetAll returns every C value in the store's enumeration order.
func GetAll[C any](w *World) []C {
	s := StoreOf[C](w)

	members := w.snapshot(s)
	defer w.recycle(members)

	out := make([]C, len(members))
	for i, e := range members {
		out[i] = s.Fetch(e)
	}
	return out
}

// Members returns the entities holding a C in the store's enumeration order.
func Members[C any](w *World) []Entity {
	s := StoreOf[C](w)
	return s.Members(make([]Entity, 0, s.Len()))
}

// Each returns an iterator over the entities holding a C and their values.
// Membership is snapshotted when iteration starts; breaking out of the loop
// early is allowed.
func Each[C any](w *World) iter.Seq2[Entity, C] {
	return func(yield func(Entity, C) bool) {
		s := StoreOf[C](w)

		members := w.snapshot(s)
		defer w.recycle(members)

		for _, e := range members {
			if !yield(e, s.Fetch(e)) {
				return
			}
		}
	}
}
