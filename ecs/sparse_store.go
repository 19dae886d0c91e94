package ecs

// Sparse is a sparse-set store: members and their values live packed in dense
// arrays, and a sparse index maps entity to dense position. Iteration touches
// only members, which suits components carried by a small fraction of entities.
// Removal swaps the last member into the freed slot, so member order is
// insertion order perturbed by deletes.
type Sparse[C any] struct {
	entities []Entity
	values   []C
	// sparse[e] holds the dense position of e plus one; zero means absent.
	sparse []int32
}

// NewSparse creates an empty sparse store.
func NewSparse[C any]() *Sparse[C] {
	return &Sparse[C]{}
}

// Fetch returns the component at e.
func (s *Sparse[C]) Fetch(e Entity) C {
	return s.values[s.sparse[e]-1]
}

// Write inserts or overwrites the component at e.
func (s *Sparse[C]) Write(e Entity, c C) {
	if int(e) >= len(s.sparse) {
		s.sparse = append(s.sparse, make([]int32, int(e)+1-len(s.sparse))...)
	}

	if pos := s.sparse[e]; pos != 0 {
		s.values[pos-1] = c
		return
	}

	s.entities = append(s.entities, e)
	s.values = append(s.values, c)
	s.sparse[e] = int32(len(s.entities))
}

// Probe reports whether e is a member.
func (s *Sparse[C]) Probe(e Entity) bool {
	return e >= 0 && int(e) < len(s.sparse) && s.sparse[e] != 0
}

// Delete removes e, moving the last member into its place.
func (s *Sparse[C]) Delete(e Entity) {
	if !s.Probe(e) {
		return
	}

	idx := s.sparse[e] - 1
	last := int32(len(s.entities) - 1)
	lastEntity := s.entities[last]

	s.entities[idx] = lastEntity
	s.values[idx] = s.values[last]
	s.sparse[lastEntity] = idx + 1

	var zero C
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	s.sparse[e] = 0
}

// Members appends the packed member list.
func (s *Sparse[C]) Members(dst []Entity) []Entity {
	return append(dst, s.entities...)
}

// Len returns the number of members.
func (s *Sparse[C]) Len() int {
	return len(s.entities)
}
