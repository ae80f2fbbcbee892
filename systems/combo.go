package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

// RegisterHit counts one successful hit into the streak. Every call raises a
// combo-changed event; crossing a new tier additionally marks it as a
// tier-up, at most once per tier.
func RegisterHit(c *components.ComboData, now float64) {
	c.Count++
	c.LastHitAt = now

	tier := c.Count / cfg.Combo.TierInterval
	event := components.ComboEvent{Count: c.Count, Tier: tier}
	if tier > c.HighestTier {
		c.HighestTier = tier
		event.TierUp = true
	}
	c.Pending = append(c.Pending, event)
}

// ResetCombo clears the streak. It is a no-op on an already idle streak, so
// the decay check can call it every frame without spamming observers.
func ResetCombo(c *components.ComboData) {
	if c.Count == 0 {
		return
	}
	c.Count = 0
	c.HighestTier = 0
	c.Pending = append(c.Pending, components.ComboEvent{})
}

// UpdateCombos is the passive decay check: a streak with no hit for the
// configured timeout resets to zero. Runs once per frame tick on the
// unscaled clock.
func UpdateCombos(e *ecs.ECS) {
	clk := getClock(e)
	if clk == nil {
		return
	}
	components.Combo.Each(e.World, func(entry *donburi.Entry) {
		c := components.Combo.Get(entry)
		if c.Count > 0 && clk.Now-c.LastHitAt > cfg.Combo.Timeout {
			ResetCombo(c)
		}
	})
}
