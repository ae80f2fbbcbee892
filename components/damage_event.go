package components

import "github.com/yohamta/donburi"

// DamageEventData is a one-shot damage application queued on a target.
// The damage system removes it after processing.
type DamageEventData struct {
	Amount     float64
	Heavy      bool    // magnitude exceeded the critical speed
	FromX      float64 // attacker center, for knockback direction
	KnockbackX float64 // px/s, 0 = no knockback
	KnockbackY float64
	Attacker   *donburi.Entry // nil for environmental damage
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
