package main

import (
	"math"
	"math/rand/v2"

	"github.com/plus3/stratum/ecs"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	Current, Max int
}

// Trail remembers where a moving entity was on the previous tick. It lives in
// a bounded Cache store, so only recently moved entities keep one.
type Trail struct {
	X, Y float64
}

// Leader marks the healthiest entity. Only one entity holds it at a time.
type Leader struct {
	Health int
}

const arena = 1000.0

// Simulation owns the world under test and the random source used to populate it.
type Simulation struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Trails    *ecs.Cache[Trail]

	rng     *rand.Rand
	spawned int
	reaped  int
}

func NewSimulation(cfg Config, logger zerolog.Logger) (*Simulation, error) {
	w := ecs.NewWorld(ecs.WithAllocator(&ecs.FreeList{}), ecs.WithLogger(logger))

	trails, err := ecs.NewCache[Trail](cfg.TrailCapacity, ecs.WithCacheLogger[Trail](logger))
	if err != nil {
		return nil, eris.Wrap(err, "creating trail store")
	}

	registrations := []error{
		ecs.RegisterComponent[Position](w),
		ecs.Register[Velocity](w, ecs.NewSparse[Velocity]()),
		ecs.Register[Health](w, ecs.NewMap[Health](cfg.Entities)),
		ecs.Register[Trail](w, trails),
		ecs.Register[Leader](w, ecs.NewUnique[Leader]()),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, eris.Wrap(err, "registering stress components")
		}
	}

	s := &Simulation{
		World:     w,
		Scheduler: ecs.NewScheduler(w),
		Trails:    trails,
		rng:       rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}

	s.Scheduler.Register("trail", ecs.SystemFunc(s.recordTrails))
	s.Scheduler.Register("movement", ecs.SystemFunc(s.move))
	s.Scheduler.Register("fatigue", ecs.SystemFunc(s.fatigue))
	s.Scheduler.Register("reaper", ecs.SystemFunc(s.reap))
	s.Scheduler.Register("leader", ecs.SystemFunc(s.electLeader))

	return s, nil
}

// Populate spawns n entities, each with a random subset of the stress components.
func (s *Simulation) Populate(n int) {
	for i := 0; i < n; i++ {
		s.spawnRandom(s.World, s.World.NewEntity())
	}
}

func (s *Simulation) spawnRandom(w *ecs.World, e ecs.Entity) {
	s.spawned++

	// every entity has at least a position
	ecs.Set(w, e, Position{X: s.rng.Float64() * arena, Y: s.rng.Float64() * arena})

	if s.rng.IntN(2) == 0 {
		ecs.Set(w, e, Velocity{DX: s.rng.NormFloat64(), DY: s.rng.NormFloat64()})
	}
	if s.rng.IntN(4) != 0 {
		hp := 50 + s.rng.IntN(150)
		ecs.Set(w, e, Health{Current: hp, Max: hp})
	}
}

func (s *Simulation) recordTrails(frame *ecs.UpdateFrame) error {
	ecs.Cmap2(frame.World, func(p Position, _ Velocity) Trail {
		return Trail(p)
	})
	return nil
}

func (s *Simulation) move(frame *ecs.UpdateFrame) error {
	dt := frame.DeltaTime
	ecs.Cmap2(frame.World, func(v Velocity, p Position) Position {
		return Position{
			X: wrap(p.X + v.DX*dt*60),
			Y: wrap(p.Y + v.DY*dt*60),
		}
	})
	return nil
}

// fatigue drains health from every entity that is moving fast.
func (s *Simulation) fatigue(frame *ecs.UpdateFrame) error {
	ecs.CmapIf(frame.World,
		func(v Velocity) bool { return math.Hypot(v.DX, v.DY) > 1 },
		func(h Health) Health {
			h.Current--
			return h
		})
	return nil
}

// reap queues the destruction of exhausted entities and a replacement spawn
// for each, keeping the population stable.
func (s *Simulation) reap(frame *ecs.UpdateFrame) error {
	return ecs.Ceach(frame.World, func(e ecs.Entity, h Health) error {
		if h.Current > 0 {
			return nil
		}
		s.reaped++
		frame.Commands.DestroyEntity(e)
		frame.Commands.Spawn(s.spawnRandom)
		return nil
	})
}

type candidate struct {
	entity ecs.Entity
	health int
	found  bool
}

func (s *Simulation) electLeader(frame *ecs.UpdateFrame) error {
	best, err := ecs.CfoldM(frame.World, func(acc candidate, e ecs.Entity, h Health) (candidate, error) {
		if !acc.found || h.Current > acc.health {
			return candidate{entity: e, health: h.Current, found: true}, nil
		}
		return acc, nil
	}, candidate{})
	if err != nil {
		return err
	}
	if best.found {
		ecs.QueueSet(frame.Commands, best.entity, Leader{Health: best.health})
	}
	return nil
}

// TotalHealth sums the current health of every entity.
func (s *Simulation) TotalHealth() int {
	return ecs.Cfold(s.World, func(acc int, h Health) int { return acc + h.Current }, 0)
}

func wrap(v float64) float64 {
	v = math.Mod(v, arena)
	if v < 0 {
		v += arena
	}
	return v
}
