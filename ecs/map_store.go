package ecs

import "github.com/kamstrup/intmap"

// Map stores components in an open-addressing hash map keyed by entity.
// Memory is proportional to the member count regardless of index spread.
// Members are enumerated in hash order.
type Map[C any] struct {
	m *intmap.Map[Entity, C]
}

// NewMap creates a map store pre-sized for capacity members.
func NewMap[C any](capacity int) *Map[C] {
	return &Map[C]{
		m: intmap.New[Entity, C](capacity),
	}
}

// Fetch returns the component at e, or the zero value for a non-member.
func (s *Map[C]) Fetch(e Entity) C {
	c, _ := s.m.Get(e)
	return c
}

// Write inserts or overwrites the component at e.
func (s *Map[C]) Write(e Entity, c C) {
	s.m.Put(e, c)
}

// Probe reports whether e is a member.
func (s *Map[C]) Probe(e Entity) bool {
	_, ok := s.m.Get(e)
	return ok
}

// Delete removes e.
func (s *Map[C]) Delete(e Entity) {
	s.m.Del(e)
}

// Members appends every key in hash order.
func (s *Map[C]) Members(dst []Entity) []Entity {
	s.m.ForEach(func(e Entity, _ C) bool {
		dst = append(dst, e)
		return true
	})
	return dst
}

// Len returns the number of members.
func (s *Map[C]) Len() int {
	return s.m.Len()
}

// Clear removes every member.
func (s *Map[C]) Clear() {
	s.m.Clear()
}
