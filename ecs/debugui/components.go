package debugui

import (
	"github.com/plus3/stratum/ecs"
)

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntity     ecs.Entity
	hasSelection       bool
	filterText         string
	filterComponent    string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntity ecs.Entity
	lastError      error
}

type StoreViewerComponent struct {
	cache             *StoreViewerCache
	selectedComponent string
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         FrameTimer
}
