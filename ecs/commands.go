package ecs

// Commands buffers world mutations issued by systems and applies them once all
// systems of a tick have run.
type Commands struct {
	spawns   []spawnCommand
	destroys []Entity
	removes  []func(*World)
	sets     []setCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	init func(*World, Entity)
}

type setCommand struct {
	entity Entity
	apply  func(*World)
}

// Defer queues fn to run after every other command in the buffer.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues the creation of a new entity. init receives the fresh entity
// and is expected to Set its initial components.
func (c *Commands) Spawn(init func(w *World, e Entity)) {
	c.spawns = append(c.spawns, spawnCommand{init: init})
}

// DestroyEntity queues the removal of e from every store.
func (c *Commands) DestroyEntity(e Entity) {
	c.destroys = append(c.destroys, e)
}

// QueueSet queues writing v as e's component of type C.
func QueueSet[C any](c *Commands, e Entity, v C) {
	c.sets = append(c.sets, setCommand{
		entity: e,
		apply:  func(w *World) { Set(w, e, v) },
	})
}

// QueueDestroy queues removing e's component of type C.
func QueueDestroy[C any](c *Commands, e Entity) {
	c.removes = append(c.removes, func(w *World) { Destroy[C](w, e) })
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.destroys) + len(c.removes) + len(c.sets) + len(c.defers)
}

// Flush applies the buffered commands to w and resets the buffer. Entity
// destroys run first, then component removals, then sets (skipping entities
// destroyed in this flush), then spawns, then deferred functions.
func (c *Commands) Flush(w *World) {
	var destroyed map[Entity]struct{}
	if len(c.destroys) > 0 {
		destroyed = make(map[Entity]struct{}, len(c.destroys))
	}

	for _, e := range c.destroys {
		if _, dup := destroyed[e]; dup {
			continue
		}
		w.DestroyEntity(e)
		destroyed[e] = struct{}{}
	}

	for _, remove := range c.removes {
		remove(w)
	}

	for _, cmd := range c.sets {
		if _, gone := destroyed[cmd.entity]; gone {
			continue
		}
		cmd.apply(w)
	}

	for _, cmd := range c.spawns {
		cmd.init(w, w.NewEntity())
	}

	for _, fn := range c.defers {
		fn()
	}

	c.Reset()
}

// Reset discards every queued command.
func (c *Commands) Reset() {
	clear(c.spawns)
	clear(c.removes)
	clear(c.sets)
	clear(c.defers)

	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.removes = c.removes[:0]
	c.sets = c.sets[:0]
	c.defers = c.defers[:0]
}
