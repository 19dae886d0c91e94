package ecs_test

import (
	"fmt"

	"github.com/plus3/stratum/ecs"
)

type GameConfig struct {
	MaxPlayers int
	Difficulty string
}

// ExampleRegister binds each component type to the store that suits how it is
// used: dense for components most entities carry, sparse for the rest, and a
// unique store for a marker only one entity may hold at a time.
func ExampleRegister() {
	w := ecs.NewWorld(ecs.WithAllocator(&ecs.FreeList{}))
	ecs.Register[Position](w, ecs.NewDense[Position]())
	ecs.Register[Velocity](w, ecs.NewSparse[Velocity]())
	ecs.Register[Tag](w, ecs.NewUnique[Tag]())

	if err := ecs.Register[Position](w, ecs.NewSparse[Position]()); err != nil {
		fmt.Println("second registration rejected")
	}

	player := w.NewEntity()
	ecs.Set(w, player, Position{X: 1, Y: 1})
	ecs.Set(w, player, Tag("player"))

	other := w.NewEntity()
	ecs.Set(w, other, Position{X: 5, Y: 5})
	ecs.Set(w, other, Velocity{DX: 1})

	for _, c := range w.Components(player) {
		fmt.Printf("%s: %v\n", c.Type, c.Value)
	}

	w.DestroyEntity(player)
	recycled := w.NewEntity()
	fmt.Println("recycled index:", recycled == player, "components:", len(w.Components(recycled)))

	// Output:
	// second registration rejected
	// ecs_test.Position: {1 1}
	// ecs_test.Tag: player
	// recycled index: true components: 0
}

// ExampleNewGlobal demonstrates world-wide values that belong to no entity.
// Every handle for the same type shares one value.
func ExampleNewGlobal() {
	w := ecs.NewWorld()

	config := ecs.NewGlobal(w, GameConfig{
		MaxPlayers: 4,
		Difficulty: "Normal",
	})
	fmt.Printf("Config: %d players, %s difficulty\n", config.Get().MaxPlayers, config.Get().Difficulty)

	config.Get().Difficulty = "Hard"

	sameConfig := ecs.NewGlobal[GameConfig](w)
	fmt.Printf("Same config: %s difficulty\n", sameConfig.Get().Difficulty)

	// Output:
	// Config: 4 players, Normal difficulty
	// Same config: Hard difficulty
}

// ExampleMustGet shows the checked accessor for entities that may lack a component.
func ExampleMustGet() {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Health](w)

	e := w.NewEntity()
	if _, err := ecs.MustGet[Health](w, e); err != nil {
		fmt.Println("missing health")
	}

	ecs.Set(w, e, Health{Current: 3, Max: 3})
	h, _ := ecs.MustGet[Health](w, e)
	fmt.Println(h.Current)

	// Output:
	// missing health
	// 3
}
