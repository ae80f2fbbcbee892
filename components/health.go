package components

import "github.com/yohamta/donburi"

// HealthData is a capped damage pool. Current never increases except through
// an explicit reset, and Depleted latches true exactly once, when Current
// first reaches zero.
type HealthData struct {
	Current  float64
	Max      float64
	Depleted bool
}

// DamageRatio returns how much of the pool has been lost, in [0, 1].
func (h *HealthData) DamageRatio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return 1 - h.Current/h.Max
}

var Health = donburi.NewComponentType[HealthData]()
