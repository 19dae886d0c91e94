package ecs_test

import (
	"testing"

	"github.com/plus3/stratum/ecs"
	"github.com/stretchr/testify/require"
)

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type Frozen bool

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

type Inventory struct {
	Items []string
}

// newTestWorld registers the common components, each on a different backend
// so engine tests run across strategies.
func newTestWorld(t testing.TB) *ecs.World {
	t.Helper()

	w := ecs.NewWorld()
	require.NoError(t, ecs.RegisterComponent[Position](w))
	require.NoError(t, ecs.Register[Velocity](w, ecs.NewSparse[Velocity]()))
	require.NoError(t, ecs.Register[Name](w, ecs.NewMap[Name](64)))
	require.NoError(t, ecs.RegisterComponent[Health](w))
	require.NoError(t, ecs.Register[Frozen](w, ecs.NewSparse[Frozen]()))
	require.NoError(t, ecs.Register[Score](w, ecs.NewMap[Score](64)))
	require.NoError(t, ecs.Register[Tag](w, ecs.NewUnique[Tag]()))
	require.NoError(t, ecs.RegisterComponent[Inventory](w))
	return w
}

// spawn creates an entity and sets each of the given component setters on it.
func spawn(w *ecs.World, sets ...func(*ecs.World, ecs.Entity)) ecs.Entity {
	e := w.NewEntity()
	for _, set := range sets {
		set(w, e)
	}
	return e
}

func with[C any](c C) func(*ecs.World, ecs.Entity) {
	return func(w *ecs.World, e ecs.Entity) {
		ecs.Set(w, e, c)
	}
}
