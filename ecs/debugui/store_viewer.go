package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stratum/ecs"
)

type StoreInfo struct {
	Component string
	Backend   string
	Members   int
}

type StoreViewerCache struct {
	stores         []StoreInfo
	lastStoreCount int
	sortColumn     int
	sortAscending  bool
}

func NewStoreViewerComponent() StoreViewerComponent {
	return StoreViewerComponent{
		cache: &StoreViewerCache{
			sortColumn:    2,
			sortAscending: false,
		},
	}
}

// Render draws one row per registered store. It returns the component type
// name of the row clicked this frame, or "" if none was.
func (sv *StoreViewerComponent) Render(w *ecs.World) string {
	if !imgui.BeginV("Store Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return ""
	}

	sv.refresh(w)

	maxMembers := 0
	for _, s := range sv.cache.stores {
		maxMembers = max(maxMembers, s.Members)
	}

	var clicked string

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("StoreTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Backend")
		imgui.TableSetupColumn("Members")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.cache.sortColumn = int(spec.ColumnIndex())
			sv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sv.sortStores()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, s := range sv.cache.stores {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := sv.selectedComponent == s.Component
			if imgui.SelectableBoolV(s.Component, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sv.selectedComponent = s.Component
				clicked = s.Component
			}

			imgui.TableNextColumn()
			imgui.Text(s.Backend)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.Members))

			if maxMembers > 0 {
				barWidth := float32(s.Members) / float32(maxMembers) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

// refresh rebuilds the row list when stores were registered since the last
// frame and otherwise only updates member counts.
func (sv *StoreViewerComponent) refresh(w *ecs.World) {
	stats := w.Stats()

	if sv.cache.lastStoreCount != stats.StoreCount || sv.cache.stores == nil {
		sv.cache.lastStoreCount = stats.StoreCount
		sv.cache.stores = make([]StoreInfo, 0, stats.StoreCount)
		for _, s := range stats.Stores {
			sv.cache.stores = append(sv.cache.stores, StoreInfo(s))
		}
		sv.sortStores()
		return
	}

	members := make(map[string]int, len(stats.Stores))
	for _, s := range stats.Stores {
		members[s.Component] = s.Members
	}
	for i := range sv.cache.stores {
		sv.cache.stores[i].Members = members[sv.cache.stores[i].Component]
	}

	if sv.cache.sortColumn == 2 {
		sv.sortStores()
	}
}

func (sv *StoreViewerComponent) sortStores() {
	sort.SliceStable(sv.cache.stores, func(i, j int) bool {
		a, b := sv.cache.stores[i], sv.cache.stores[j]
		if !sv.cache.sortAscending {
			a, b = b, a
		}

		var less bool

		switch sv.cache.sortColumn {
		case 0:
			less = a.Component < b.Component
		case 1:
			less = a.Backend < b.Backend
		default:
			less = a.Members < b.Members
		}
		return less
	})
}

// SelectedComponent returns the component type name last clicked in the table.
func (sv *StoreViewerComponent) SelectedComponent() string {
	return sv.selectedComponent
}
