package ecs_test

import (
	"testing"

	"github.com/plus3/stratum/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := &ecs.Counter{}
	for i := 0; i < 5; i++ {
		assert.Equal(t, ecs.Entity(i), c.Next())
	}
	c.Release(2)
	assert.Equal(t, ecs.Entity(5), c.Next())
	assert.Equal(t, 6, c.Allocated())
}

func TestFreeList(t *testing.T) {
	f := &ecs.FreeList{}
	a, b, c := f.Next(), f.Next(), f.Next()
	assert.Equal(t, []ecs.Entity{0, 1, 2}, []ecs.Entity{a, b, c})

	f.Release(a)
	f.Release(c)
	assert.Equal(t, 2, f.Free())

	// most recently released first
	assert.Equal(t, c, f.Next())
	assert.Equal(t, a, f.Next())
	assert.Equal(t, ecs.Entity(3), f.Next())

	// indices never handed out are ignored
	f.Release(-1)
	f.Release(100)
	assert.Equal(t, 0, f.Free())
}
