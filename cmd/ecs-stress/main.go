package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/stratum/internal/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("stress test failed")
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	if cfg.StatsdAddress != "" {
		if err := statsd.Init(cfg.StatsdAddress, []string{"app:ecs-stress"}); err != nil {
			return eris.Wrap(err, "initializing statsd")
		}
		defer func() {
			if err := statsd.Close(); err != nil {
				log.Warn().Err(err).Msg("closing statsd client")
			}
		}()
	}

	log.Info().Msg("Starting ECS stress test...")

	sim, err := NewSimulation(cfg, log.Logger)
	if err != nil {
		return err
	}

	log.Info().Int("entities", cfg.Entities).Msg("Populating world")
	sim.Populate(cfg.Entities)
	sim.World.LogStats(zerolog.InfoLevel)

	report := &Report{
		Duration:       cfg.Duration,
		Entities:       cfg.Entities,
		TrailCapacity:  cfg.TrailCapacity,
		GCPauseMetrics: cfg.GCPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Dur("duration", cfg.Duration).Msg("Running simulation")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			if err := sim.Scheduler.Once(deltaTime.Seconds()); err != nil {
				return err
			}
			statsd.EmitTickStat(updateStart, "stage:update")
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

			if ticks := sim.Scheduler.Ticks(); ticks%uint64(cfg.StatsdEvery) == 0 {
				for _, s := range sim.World.Stats().Stores {
					statsd.EmitStoreSize(s.Component, s.Members)
				}
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = int64(sim.Scheduler.Ticks())
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Collect(sim)

	log.Info().Msg("Simulation finished")
	sim.World.LogStats(zerolog.InfoLevel)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return eris.Wrap(err, "generating report")
	}
	fmt.Println("--- End of Report ---")

	log.Info().Msg("Stress test complete")
	return nil
}
