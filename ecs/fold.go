package ecs

import "github.com/rotisserie/eris"

// Cfold folds f over every X in enumeration order, starting from acc. Each
// step's accumulator is computed before the next step runs.
func Cfold[X, A any](w *World, f func(A, X) A, acc A) A {
	sx := StoreOf[X](w)

	members := w.snapshot(sx)
	defer w.recycle(members)

	for _, e := range members {
		acc = f(acc, sx.Fetch(e))
	}
	return acc
}

// Cfold2 folds f over every entity holding both an X and a Y.
func Cfold2[X, Y, A any](w *World, f func(A, X, Y) A, acc A) A {
	sx := StoreOf[X](w)
	sy := StoreOf[Y](w)

	members := w.join(sx, sy)
	defer w.recycle(members)

	for _, e := range members {
		acc = f(acc, sx.Fetch(e), sy.Fetch(e))
	}
	return acc
}

// CfoldM is the effectful Cfold: f receives the entity and may issue further
// engine operations. The first error stops the fold and is returned together
// with the accumulator reached so far.
func CfoldM[X, A any](w *World, f func(A, Entity, X) (A, error), acc A) (A, error) {
	sx := StoreOf[X](w)

	members := w.snapshot(sx)
	defer w.recycle(members)

	for _, e := range members {
		next, err := f(acc, e, sx.Fetch(e))
		if err != nil {
			return acc, eris.Wrapf(err, "fold entity %d", e)
		}
		acc = next
	}
	return acc, nil
}

// CfoldEach runs CfoldM for its effects only and discards the final accumulator.
func CfoldEach[X, A any](w *World, f func(A, Entity, X) (A, error), acc A) error {
	_, err := CfoldM(w, f, acc)
	return err
}
