package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

// UpdateInput polls the keyboard and updates the singleton InputData.
// Must run before UpdateCharges in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getInput(e)
	if input == nil {
		return
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.MoveX = 0
	if input.Pressed(cfg.ActionMoveLeft) {
		input.MoveX -= 1
	}
	if input.Pressed(cfg.ActionMoveRight) {
		input.MoveX += 1
	}
}

func getInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
