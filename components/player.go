package components

import "github.com/yohamta/donburi"

// PlayerData holds the wielder's facing and queued actions. PendingJump is a
// jump released on the frame tick, consumed by the next physics sub-tick.
type PlayerData struct {
	Facing      float64 // -1 or 1
	AimUp       bool
	AimDown     bool
	PendingJump *float64 // charge multiplier of the queued jump
	Fist        *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()
