package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/stratum/ecs"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct {
	X, Y float32
}

type label string

type focus struct{}

func newWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	require.NoError(t, ecs.RegisterComponent[position](w))
	require.NoError(t, ecs.Register[label](w, ecs.NewSparse[label]()))
	return w
}

func TestRegisterAndSpawn(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, RegisterDebugUIComponents(w))

	err := RegisterDebugUIComponents(w)
	assert.True(t, eris.Is(err, ecs.ErrAlreadyRegistered))

	e := SpawnDebugUI(w, nil)
	assert.True(t, ecs.Exists[ImguiItem](w, e))
	assert.True(t, ecs.Exists[EntityBrowserComponent](w, e))
	assert.True(t, ecs.Exists[PerformanceStatsComponent](w, e))
	assert.NotNil(t, ecs.Get[ImguiItem](w, e).Render)
}

func TestStoreViewerRefresh(t *testing.T) {
	w := newWorld(t)
	for i := 0; i < 3; i++ {
		ecs.Set(w, w.NewEntity(), position{})
	}
	ecs.Set(w, 0, label("a"))

	sv := NewStoreViewerComponent()
	sv.refresh(w)
	require.Len(t, sv.cache.stores, 2)
	// sorted by members, descending
	assert.Equal(t, "debugui.position", sv.cache.stores[0].Component)
	assert.Equal(t, 3, sv.cache.stores[0].Members)

	for i := 0; i < 5; i++ {
		ecs.Set(w, ecs.Entity(i), label("b"))
	}
	sv.refresh(w)
	assert.Equal(t, "debugui.label", sv.cache.stores[0].Component)
	assert.Equal(t, 5, sv.cache.stores[0].Members)

	sv.cache.sortColumn = 0
	sv.cache.sortAscending = true
	sv.sortStores()
	assert.Equal(t, "debugui.label", sv.cache.stores[0].Component)
	assert.Equal(t, "debugui.position", sv.cache.stores[1].Component)
}

func TestEntityBrowserCache(t *testing.T) {
	w := newWorld(t)
	for i := 0; i < 25; i++ {
		e := w.NewEntity()
		ecs.Set(w, e, position{X: float32(i)})
		if i%5 == 0 {
			ecs.Set(w, e, label("five"))
		}
	}

	eb := NewEntityBrowserComponent(10)
	eb.rebuildCacheIfNeeded(w)
	require.Len(t, eb.cache.entities, 25)
	assert.Equal(t, []string{"debugui.position", "debugui.label"}, eb.cache.entities[0].ComponentTypes)

	eb.FilterByComponent("debugui.label")
	assert.Len(t, eb.filteredEntities(), 5)

	eb.FilterByComponent("")
	eb.filterText = "2"
	// 2, 12, 20..24
	assert.Len(t, eb.filteredEntities(), 7)

	eb.filterText = ""
	w.DestroyEntity(3)
	eb.rebuildCacheIfNeeded(w)
	assert.Len(t, eb.cache.entities, 24)

	eb.cache.sortColumn = 2
	eb.cache.sortAscending = false
	eb.sortEntities()
	assert.Len(t, eb.cache.entities[0].ComponentTypes, 2)
}

func TestEntityBrowserRebuildsOnMove(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, ecs.Register[focus](w, ecs.NewUnique[focus]()))
	a, b := w.NewEntity(), w.NewEntity()
	ecs.Set(w, a, position{})
	ecs.Set(w, b, position{})
	ecs.Set(w, a, focus{})
	ecs.Set(w, b, label("b"))

	eb := NewEntityBrowserComponent(10)
	eb.rebuildCacheIfNeeded(w)
	require.Len(t, eb.cache.entities, 2)
	assert.Equal(t, []string{"debugui.position", "debugui.focus"}, eb.cache.entities[0].ComponentTypes)

	// member counts stay the same across both moves
	ecs.Set(w, b, focus{})
	ecs.Destroy[label](w, b)
	ecs.Set(w, a, label("a"))
	eb.rebuildCacheIfNeeded(w)
	assert.Equal(t, []string{"debugui.position", "debugui.label"}, eb.cache.entities[0].ComponentTypes)
	assert.Equal(t, []string{"debugui.position", "debugui.focus"}, eb.cache.entities[1].ComponentTypes)

	// value writes leave the cache alone
	cached := eb.cache.entities
	ecs.Set(w, a, position{X: 9})
	eb.rebuildCacheIfNeeded(w)
	assert.Same(t, &cached[0], &eb.cache.entities[0])
}

func TestEntityBrowserPageBounds(t *testing.T) {
	eb := NewEntityBrowserComponent(10)

	start, end := eb.pageBounds(25)
	assert.Equal(t, [2]int{0, 10}, [2]int{start, end})

	eb.currentPage = 2
	start, end = eb.pageBounds(25)
	assert.Equal(t, [2]int{20, 25}, [2]int{start, end})

	// the page is clamped when the list shrinks
	start, end = eb.pageBounds(5)
	assert.Equal(t, [2]int{0, 5}, [2]int{start, end})
	assert.Equal(t, 0, eb.currentPage)

	start, end = eb.pageBounds(0)
	assert.Equal(t, [2]int{0, 0}, [2]int{start, end})
}

func TestSetNumeric(t *testing.T) {
	type sample struct {
		I int8
		U uint16
		F float64
		S string
	}

	v := reflect.New(reflect.TypeFor[sample]()).Elem()
	assert.True(t, setNumeric(v.Field(0), 12))
	assert.True(t, setNumeric(v.Field(1), 7))
	assert.False(t, setNumeric(v.Field(1), -1))
	assert.True(t, setNumeric(v.Field(2), 0.5))
	assert.False(t, setNumeric(v.Field(3), 1))

	assert.Equal(t, sample{I: 12, U: 7, F: 0.5}, v.Interface())
}

func TestPerformanceRecord(t *testing.T) {
	ps := NewPerformanceStatsComponent(4)
	assert.InDelta(t, 2.5, ps.record(0.010), 1e-4)
	assert.InDelta(t, 5.0, ps.record(0.010), 1e-4)
	ps.record(0.010)
	ps.record(0.010)
	// the oldest sample is overwritten
	assert.InDelta(t, 12.5, ps.record(0.020), 1e-4)
}
