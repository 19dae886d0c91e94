package debugui

import (
	"github.com/plus3/stratum/ecs"
	"github.com/rotisserie/eris"
)

// RegisterDebugUIComponents binds the debug UI component types to stores in w.
// Each panel type is held by a single entity, so panels use Unique stores.
func RegisterDebugUIComponents(w *ecs.World) error {
	registrations := []func() error{
		func() error { return ecs.Register[ImguiItem](w, ecs.NewSparse[ImguiItem]()) },
		func() error { return ecs.Register[EntityBrowserComponent](w, ecs.NewUnique[EntityBrowserComponent]()) },
		func() error {
			return ecs.Register[ComponentInspectorComponent](w, ecs.NewUnique[ComponentInspectorComponent]())
		},
		func() error { return ecs.Register[StoreViewerComponent](w, ecs.NewUnique[StoreViewerComponent]()) },
		func() error {
			return ecs.Register[PerformanceStatsComponent](w, ecs.NewUnique[PerformanceStatsComponent]())
		},
	}

	for _, register := range registrations {
		if err := register(); err != nil {
			return eris.Wrap(err, "registering debug ui components")
		}
	}
	return nil
}

// SpawnDebugUI creates the entity that owns every debug panel and renders them
// each frame through ImguiSystem. scheduler may be nil, in which case the
// performance panel omits per-system timings.
func SpawnDebugUI(w *ecs.World, scheduler *ecs.Scheduler) ecs.Entity {
	e := w.NewEntity()
	ecs.Set(w, e, NewEntityBrowserComponent(100))
	ecs.Set(w, e, NewComponentInspectorComponent())
	ecs.Set(w, e, NewStoreViewerComponent())
	ecs.Set(w, e, NewPerformanceStatsComponent(120))
	ecs.Set(w, e, ImguiItem{
		Render: func() { renderPanels(w, scheduler, e) },
	})
	return e
}

func renderPanels(w *ecs.World, scheduler *ecs.Scheduler, e ecs.Entity) {
	viewer := ecs.Get[StoreViewerComponent](w, e)
	browser := ecs.Get[EntityBrowserComponent](w, e)
	inspector := ecs.Get[ComponentInspectorComponent](w, e)
	perf := ecs.Get[PerformanceStatsComponent](w, e)

	if clicked := viewer.Render(w); clicked != "" {
		browser.FilterByComponent(clicked)
	}
	browser.Render(w)
	selected, ok := browser.SelectedEntity()
	inspector.Render(w, selected, ok)
	perf.Render(w, scheduler)

	ecs.Set(w, e, viewer)
	ecs.Set(w, e, browser)
	ecs.Set(w, e, inspector)
	ecs.Set(w, e, perf)
}
