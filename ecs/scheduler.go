package ecs

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type namedSystem struct {
	name   string
	system System
}

// Scheduler runs registered systems in registration order, one tick at a time.
type Scheduler struct {
	world       *World
	frame       *UpdateFrame
	systems     []namedSystem
	systemStats []*systemStatsInternal
	ticks       uint64
}

// NewScheduler creates a scheduler driving w.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{
		world: w,
		frame: newUpdateFrame(w),
	}
}

// Register appends a system. name identifies it in statistics and errors.
func (s *Scheduler) Register(name string, system System) {
	s.systems = append(s.systems, namedSystem{name: name, system: system})
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})

	s.world.logger.Debug().Str("system", name).Msg("registered system")
}

// Once runs every system once with the given delta time, then flushes the
// commands they queued. If a system fails, the remaining systems are skipped,
// the queued commands are discarded and the error is returned.
func (s *Scheduler) Once(dt float64) error {
	frame := s.frame
	frame.DeltaTime = dt
	frame.Tick = s.ticks

	tickStart := time.Now()
	for i, entry := range s.systems {
		start := time.Now()
		err := entry.system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			frame.Commands.Reset()
			s.world.logger.Error().Err(err).Str("system", entry.name).Uint64("tick", s.ticks).Msg("system failed")
			return eris.Wrapf(err, "system %s failed at tick %d", entry.name, s.ticks)
		}
	}

	frame.Commands.Flush(s.world)
	s.ticks++

	s.world.logger.Trace().
		Uint64("tick", frame.Tick).
		Dur("duration", time.Since(tickStart)).
		Msg("tick")
	return nil
}

// Run executes all systems repeatedly at the given interval until the context
// is cancelled or a system fails. Cancellation is observed between ticks only.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Once(dt); err != nil {
				return err
			}
		}
	}
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
