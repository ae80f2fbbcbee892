package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/fonts"
	"github.com/automoto/haymaker/tags"
)

const tierFlashDuration = 0.6

// UpdateHUD drains combo notifications into the HUD cache. The combat core
// never knows the HUD exists; it only appends events.
func UpdateHUD(e *ecs.ECS) {
	clk := getClock(e)
	hud := getHud(e)
	if clk == nil || hud == nil {
		return
	}

	components.Combo.Each(e.World, func(entry *donburi.Entry) {
		combo := components.Combo.Get(entry)
		for _, event := range combo.Pending {
			hud.DisplayCount = event.Count
			if event.Count > 0 {
				hud.Pop = gween.New(1.8, 1.0, 0.18, ease.OutQuad)
			}
			if event.TierUp {
				hud.TierFlash = tierFlashDuration
				PlaySFX(e, cfg.SoundTierUp)
			}
		}
		combo.Pending = combo.Pending[:0]
	})

	hud.PopScale = 1.0
	if hud.Pop != nil {
		value, done := hud.Pop.Update(float32(clk.UnscaledDelta))
		hud.PopScale = float64(value)
		if done {
			hud.Pop = nil
		}
	}
	if hud.TierFlash > 0 {
		hud.TierFlash -= clk.UnscaledDelta
	}
}

// DrawHUD renders the player health bar, the combo counter and the round
// outcome overlay.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := getHud(e)
	if hud == nil {
		return
	}

	// Player health bar, top left.
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		hp := components.Health.Get(entry)
		barW := 120.0
		vector.DrawFilledRect(screen, 12, 12, float32(barW), 10, cfg.BlackOverlay, false)
		remaining := barW * (1 - hp.DamageRatio())
		barColor := cfg.Green
		if hp.DamageRatio() > 0.6 {
			barColor = cfg.LightRed
		}
		vector.DrawFilledRect(screen, 12, 12, float32(remaining), 10, barColor, false)
	})

	// Combo counter, top right.
	if hud.DisplayCount > 0 {
		label := fmt.Sprintf("%d HIT", hud.DisplayCount)
		if hud.DisplayCount > 1 {
			label += "S"
		}
		textColor := cfg.White
		if hud.TierFlash > 0 {
			textColor = cfg.Yellow
		}
		text.Draw(screen, label, fonts.Title, cfg.C.Width-110, 30, textColor)

		// The pop tween drives an underline that shrinks back to rest.
		lineW := 60.0 * hud.PopScale
		vector.DrawFilledRect(screen, float32(cfg.C.Width-110), 36, float32(lineW), 3, textColor, false)
	}

	// Round outcome overlay.
	if session := getSession(e); session != nil && session.Outcome != components.OutcomeNone {
		vector.DrawFilledRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), cfg.BlackOverlay, false)
		label := "VICTORY"
		if session.Outcome == components.OutcomeDefeat {
			label = "DEFEAT"
		}
		text.Draw(screen, label, fonts.Title, cfg.C.Width/2-50, cfg.C.Height/2, cfg.Orange)
	}
}

func getHud(e *ecs.ECS) *components.HudData {
	entry, ok := components.Hud.First(e.World)
	if !ok {
		return nil
	}
	return components.Hud.Get(entry)
}
