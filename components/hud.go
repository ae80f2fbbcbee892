package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HudData caches what the HUD draws, fed by drained combo events. Pop is a
// short scale tween restarted on every combo change.
type HudData struct {
	DisplayCount int
	PopScale     float64
	Pop          *gween.Tween
	TierFlash    float64 // seconds left of tier-up highlight
}

var Hud = donburi.NewComponentType[HudData]()
