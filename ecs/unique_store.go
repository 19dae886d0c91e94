package ecs

// Unique holds at most one member. Writing to a different entity moves the
// component there, dropping the previous holder. Useful for tags such as
// "the player" or "the camera target".
type Unique[C any] struct {
	owner Entity
	value C
	set   bool
}

// NewUnique creates an empty unique store.
func NewUnique[C any]() *Unique[C] {
	return &Unique[C]{}
}

func (u *Unique[C]) Fetch(Entity) C {
	return u.value
}

func (u *Unique[C]) Write(e Entity, c C) {
	u.owner = e
	u.value = c
	u.set = true
}

func (u *Unique[C]) Probe(e Entity) bool {
	return u.set && u.owner == e
}

func (u *Unique[C]) Delete(e Entity) {
	if !u.Probe(e) {
		return
	}
	var zero C
	u.value = zero
	u.set = false
}

func (u *Unique[C]) Members(dst []Entity) []Entity {
	if !u.set {
		return dst
	}
	return append(dst, u.owner)
}

func (u *Unique[C]) Len() int {
	if u.set {
		return 1
	}
	return 0
}

// Owner returns the current holder, if any.
func (u *Unique[C]) Owner() (Entity, bool) {
	return u.owner, u.set
}
