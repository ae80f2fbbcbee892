package components

import "github.com/yohamta/donburi"

// ComboEvent is a pending combo notification. One event is raised per count
// change; TierUp marks the events where a new escalation tier was crossed.
// The HUD (and any other observer) drains Pending once per frame.
type ComboEvent struct {
	Count  int
	Tier   int
	TierUp bool
}

// ComboData counts consecutive successful hits. LastHitAt is an unscaled
// clock reading; the streak resets after the configured timeout of silence.
type ComboData struct {
	Count       int
	LastHitAt   float64
	HighestTier int
	Pending     []ComboEvent
}

var Combo = donburi.NewComponentType[ComboData]()
