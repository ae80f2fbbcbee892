package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/gamemath"
)

// Press records the start of a hold on the unscaled clock.
func Press(c *components.ChargeData, now float64) {
	c.Held = true
	c.PressedAt = now
}

// ChargeRatio returns how charged the hold is, in [0, 1]. A charge that was
// never pressed reads as zero.
func ChargeRatio(c *components.ChargeData, conf cfg.ChargeConfig, now float64) float64 {
	if !c.Held || conf.FullChargeDuration <= 0 {
		return 0
	}
	return gamemath.Clamp01((now - c.PressedAt) / conf.FullChargeDuration)
}

// Release ends the hold and converts it into a power multiplier in
// [1, MaxMultiplier]. A release without a prior press counts as a
// zero-duration hold and yields 1.0, as does disabled charging.
func Release(c *components.ChargeData, conf cfg.ChargeConfig, now float64) float64 {
	ratio := ChargeRatio(c, conf, now)
	c.Held = false
	if !conf.Enabled {
		return 1.0
	}
	return gamemath.Lerp(1.0, conf.MaxMultiplier, ratio)
}

// UpdateCharges converts input edges into held charges and queued actions.
// Runs on the frame tick against the unscaled clock, so charging speed is
// unaffected by slow motion.
func UpdateCharges(e *ecs.ECS) {
	clk := getClock(e)
	input := getInput(e)
	if clk == nil || input == nil {
		return
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)

		// Facing and aim follow movement input every frame.
		if input.MoveX < 0 {
			player.Facing = cfg.DirectionLeft
		} else if input.MoveX > 0 {
			player.Facing = cfg.DirectionRight
		}
		player.AimUp = input.Pressed(cfg.ActionAimUp)
		player.AimDown = input.Pressed(cfg.ActionAimDown)

		// Punch charge lives on the fist entity.
		if fist := player.Fist; fist != nil && fist.Valid() {
			charge := components.Charge.Get(fist)
			if input.JustPressed(cfg.ActionPunch) {
				Press(charge, clk.Now)
			}
			if input.JustReleased(cfg.ActionPunch) {
				multiplier := Release(charge, cfg.Charge, clk.Now)
				dirX, dirY := gamemath.PunchAim(player.Facing, player.AimUp, player.AimDown)
				fistData := components.Fist.Get(fist)
				fistData.Pending = &components.PendingPunch{
					Multiplier: multiplier,
					DirX:       dirX,
					DirY:       dirY,
				}
			}
		}

		// Jump charge lives on the player entity.
		charge := components.Charge.Get(entry)
		if input.JustPressed(cfg.ActionJump) {
			Press(charge, clk.Now)
		}
		if input.JustReleased(cfg.ActionJump) {
			multiplier := Release(charge, cfg.JumpCharge, clk.Now)
			player.PendingJump = &multiplier
		}
	})
}
