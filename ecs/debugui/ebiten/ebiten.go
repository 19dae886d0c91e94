// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stratum/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Store it as a world Global so systems and the game loop share one backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Game implements ebiten.Game by running one scheduler tick per Ebiten update,
// bracketed by the ImGui frame so that ImguiSystem's deferred renders land
// inside it.
type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	backend   *ecs.Global[ImguiBackend]

	// DrawWorld draws game content under the ImGui overlay. It may be nil.
	DrawWorld func(screen *ebiten.Image)
}

var _ ebiten.Game = (*Game)(nil)

// NewGame stores backend as a Global of w and returns a Game driving scheduler.
func NewGame(w *ecs.World, scheduler *ecs.Scheduler, backend *ebitenbackend.EbitenBackend) *Game {
	return &Game{
		world:     w,
		scheduler: scheduler,
		backend:   ecs.NewGlobal(w, ImguiBackend{EbitenBackend: backend}),
	}
}

func (g *Game) Update() error {
	g.backend.Get().BeginFrame()
	err := g.scheduler.Once(1.0 / float64(ebiten.TPS()))
	g.backend.Get().EndFrame()
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawWorld != nil {
		g.DrawWorld(screen)
	}
	g.backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
