package ecs_test

import (
	"testing"

	"github.com/plus3/stratum/ecs"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetExists(t *testing.T) {
	w := newTestWorld(t)

	// every backend in the test world must honor the same element contract
	e := w.NewEntity()
	ecs.Set(w, e, Position{X: 1, Y: 2})
	ecs.Set(w, e, Velocity{DX: 3})
	ecs.Set(w, e, Name{Value: "bob"})
	ecs.Set(w, e, Tag("leader"))

	assert.True(t, ecs.Exists[Position](w, e))
	assert.True(t, ecs.Exists[Velocity](w, e))
	assert.True(t, ecs.Exists[Name](w, e))
	assert.True(t, ecs.Exists[Tag](w, e))
	assert.False(t, ecs.Exists[Health](w, e))

	assert.Equal(t, Position{X: 1, Y: 2}, ecs.Get[Position](w, e))
	assert.Equal(t, Velocity{DX: 3}, ecs.Get[Velocity](w, e))
	assert.Equal(t, Name{Value: "bob"}, ecs.Get[Name](w, e))
	assert.Equal(t, Tag("leader"), ecs.Get[Tag](w, e))

	ecs.Set(w, e, Position{X: 9})
	assert.Equal(t, Position{X: 9}, ecs.Get[Position](w, e))
	assert.Equal(t, 1, ecs.Count[Position](w))
}

func TestDestroy(t *testing.T) {
	w := newTestWorld(t)
	e := spawn(w, with(Position{}), with(Velocity{}))

	ecs.Destroy[Position](w, e)
	assert.False(t, ecs.Exists[Position](w, e))
	assert.True(t, ecs.Exists[Velocity](w, e))

	// destroying a missing component is a no-op
	ecs.Destroy[Position](w, e)
	ecs.Destroy[Health](w, e)
	assert.Equal(t, 0, ecs.Count[Position](w))
	assert.Equal(t, 1, ecs.Count[Velocity](w))
}

func TestTryGet(t *testing.T) {
	w := newTestWorld(t)
	e := spawn(w, with(Health{Current: 5, Max: 10}))

	h, ok := ecs.TryGet[Health](w, e)
	assert.True(t, ok)
	assert.Equal(t, Health{Current: 5, Max: 10}, h)

	p, ok := ecs.TryGet[Position](w, e)
	assert.False(t, ok)
	assert.Equal(t, Position{}, p)
}

func TestMustGet(t *testing.T) {
	w := newTestWorld(t)
	e := spawn(w, with(Score(3)))

	s, err := ecs.MustGet[Score](w, e)
	require.NoError(t, err)
	assert.Equal(t, Score(3), s)

	_, err = ecs.MustGet[Name](w, e)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ecs.ErrNotMember))
	assert.Contains(t, err.Error(), "ecs_test.Name")
}

func TestModify(t *testing.T) {
	w := newTestWorld(t)
	e := spawn(w, with(Health{Current: 10, Max: 10}))

	ecs.Modify(w, e, func(h Health) Health {
		h.Current -= 3
		return h
	})
	assert.Equal(t, Health{Current: 7, Max: 10}, ecs.Get[Health](w, e))
}

func TestCount(t *testing.T) {
	w := newTestWorld(t)
	assert.Equal(t, 0, ecs.Count[Position](w))

	for i := 0; i < 10; i++ {
		e := spawn(w, with(Position{}))
		if i%2 == 0 {
			ecs.Set(w, e, Name{Value: "even"})
		}
	}

	assert.Equal(t, 10, ecs.Count[Position](w))
	assert.Equal(t, 5, ecs.Count[Name](w))
	assert.Equal(t, 0, ecs.Count[Velocity](w))
}

func TestUniqueComponent(t *testing.T) {
	w := newTestWorld(t)
	a := spawn(w, with(Tag("first")))
	b := spawn(w, with(Tag("second")))

	assert.False(t, ecs.Exists[Tag](w, a))
	assert.True(t, ecs.Exists[Tag](w, b))
	assert.Equal(t, []ecs.Entity{b}, ecs.Members[Tag](w))
}
