package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

// UpdatePlayers applies movement acceleration and queued jump launches.
// Runs once per physics sub-tick.
func UpdatePlayers(e *ecs.ECS) {
	clk := getClock(e)
	input := getInput(e)
	if clk == nil || input == nil {
		return
	}
	dt := clk.PhysicsDelta

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		// Frozen in place once the death sequence started.
		if entry.HasComponent(components.Death) {
			return
		}
		player := components.Player.Get(entry)
		body := components.Body.Get(entry)

		body.SpeedX += input.MoveX * cfg.Player.MoveAccel * dt

		if player.PendingJump != nil {
			multiplier := *player.PendingJump
			player.PendingJump = nil
			if body.OnGround {
				body.SpeedY = -cfg.Player.BaseJumpSpeed * multiplier
				body.OnGround = false
				PlaySFX(e, cfg.SoundJump)
			}
		}
	})
}
