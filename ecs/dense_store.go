package ecs

import "slices"

const (
	denseBlockSize = 64
)

// Dense stores components of type C in fixed-size blocks addressed directly by
// entity index. It suits components carried by most entities: fetch and write
// are two array lookups, and members are enumerated in ascending index order.
// Memory grows with the highest index written, not with the member count.
type Dense[C any] struct {
	blocks [][denseBlockSize]C
	filled [][denseBlockSize]bool
	live   []int32
	count  int
}

// NewDense creates an empty dense store.
func NewDense[C any]() *Dense[C] {
	return &Dense[C]{}
}

// Fetch returns the component at e. Indices past the highest written block panic.
func (d *Dense[C]) Fetch(e Entity) C {
	return d.blocks[e/denseBlockSize][e%denseBlockSize]
}

// Write stores c at e, growing the block list as needed.
func (d *Dense[C]) Write(e Entity, c C) {
	blockIdx := int(e) / denseBlockSize
	slotIdx := int(e) % denseBlockSize

	for blockIdx >= len(d.blocks) {
		d.blocks = append(d.blocks, [denseBlockSize]C{})
		d.filled = append(d.filled, [denseBlockSize]bool{})
		d.live = append(d.live, 0)
	}

	d.blocks[blockIdx][slotIdx] = c
	if !d.filled[blockIdx][slotIdx] {
		d.filled[blockIdx][slotIdx] = true
		d.live[blockIdx]++
		d.count++
	}
}

// Probe reports whether e holds a component.
func (d *Dense[C]) Probe(e Entity) bool {
	if e < 0 {
		return false
	}

	blockIdx := int(e) / denseBlockSize
	if blockIdx >= len(d.blocks) {
		return false
	}

	return d.filled[blockIdx][int(e)%denseBlockSize]
}

// Delete clears the slot at e.
func (d *Dense[C]) Delete(e Entity) {
	if !d.Probe(e) {
		return
	}

	blockIdx := int(e) / denseBlockSize
	slotIdx := int(e) % denseBlockSize

	d.filled[blockIdx][slotIdx] = false
	var zero C
	d.blocks[blockIdx][slotIdx] = zero // release references held by the value
	d.live[blockIdx]--
	d.count--
}

// Members appends all filled indices in ascending order. Empty blocks are skipped.
func (d *Dense[C]) Members(dst []Entity) []Entity {
	for blockIdx := range d.filled {
		if d.live[blockIdx] == 0 {
			continue
		}

		base := Entity(blockIdx * denseBlockSize)
		for slotIdx, ok := range d.filled[blockIdx] {
			if ok {
				dst = append(dst, base+Entity(slotIdx))
			}
		}
	}
	return dst
}

// Len returns the number of members.
func (d *Dense[C]) Len() int {
	return d.count
}

// Compact drops trailing blocks that no longer hold any member. The remaining
// blocks are copied to fresh arrays so the dropped ones can be collected.
func (d *Dense[C]) Compact() {
	n := len(d.blocks)
	for n > 0 && d.live[n-1] == 0 {
		n--
	}

	if n == len(d.blocks) {
		return
	}

	if n == 0 {
		d.blocks, d.filled, d.live = nil, nil, nil
		return
	}
	d.blocks = slices.Clone(d.blocks[:n])
	d.filled = slices.Clone(d.filled[:n])
	d.live = slices.Clone(d.live[:n])
}
