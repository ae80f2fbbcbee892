package components

import "github.com/yohamta/donburi"

// PendingPunch is a punch release queued on the frame tick, waiting to be
// applied as an impulse on the next physics sub-tick.
type PendingPunch struct {
	Multiplier float64
	DirX, DirY float64
}

// FistData identifies a fist entity and its wielder. The Swing record is
// exclusively owned by this fist; the hit arbiter reads it, only the impulse
// actuator and token consumption mutate it.
type FistData struct {
	Owner   *donburi.Entry // wielder, supplies aim and takes hit credit
	Swing   SwingData
	Pending *PendingPunch // nil when no release is queued
}

var Fist = donburi.NewComponentType[FistData]()
