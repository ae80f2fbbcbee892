package components

import "github.com/yohamta/donburi"

// ChargeData tracks one held action between press and release. PressedAt is
// an unscaled clock reading; it is only meaningful while Held is true.
type ChargeData struct {
	Held      bool
	PressedAt float64
}

var Charge = donburi.NewComponentType[ChargeData]()
