package ecs

import (
	"sort"

	"github.com/rs/zerolog"
)

// WorldStats summarizes the stores and globals of a World.
type WorldStats struct {
	StoreCount   int
	TotalMembers int
	Stores       []StoreStats
	GlobalTypes  []string
}

// StoreStats describes one registered store.
type StoreStats struct {
	Component string
	Backend   string
	Members   int
}

// Stats collects per-store member counts in registration order.
func (w *World) Stats() WorldStats {
	stats := WorldStats{
		StoreCount: len(w.ordered),
		Stores:     make([]StoreStats, len(w.ordered)),
	}

	for i, b := range w.ordered {
		n := b.erased.Len()
		stats.Stores[i] = StoreStats{
			Component: b.typ.String(),
			Backend:   b.backend,
			Members:   n,
		}
		stats.TotalMembers += n
	}

	for t := range w.globals {
		stats.GlobalTypes = append(stats.GlobalTypes, t.String())
	}
	sort.Strings(stats.GlobalTypes)

	return stats
}

// LogStats writes the World's stats as a single structured event at level.
func (w *World) LogStats(level zerolog.Level) {
	stats := w.Stats()

	stores := zerolog.Arr()
	for _, s := range stats.Stores {
		stores = stores.Dict(zerolog.Dict().
			Str("component", s.Component).
			Str("backend", s.Backend).
			Int("members", s.Members))
	}

	w.logger.WithLevel(level).
		Int("total_stores", stats.StoreCount).
		Int("total_members", stats.TotalMembers).
		Array("stores", stores).
		Strs("globals", stats.GlobalTypes).
		Send()
}
