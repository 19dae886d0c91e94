package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stratum/ecs"
	"github.com/plus3/stratum/ecs/debugui"
	debugui_ebiten "github.com/plus3/stratum/ecs/debugui/ebiten"
)

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	w := ecs.NewWorld()
	if err := debugui.RegisterDebugUIComponents(w); err != nil {
		panic(err)
	}

	// Entities with ImGui render functions
	ecs.Set(w, w.NewEntity(), debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	scheduler := ecs.NewScheduler(w)
	scheduler.Register("imgui", &debugui.ImguiSystem{})
	debugui.SpawnDebugUI(w, scheduler)

	game := debugui_ebiten.NewGame(w, scheduler, imguiBackend)
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
