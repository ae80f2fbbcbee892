package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DilationPhase is the slow-motion state machine phase.
type DilationPhase int

const (
	DilationIdle DilationPhase = iota
	DilationActive
	DilationRecovering
)

// DilationData is the singleton slow-motion session. It advances only under
// unscaled time. Curve is built from the configured profile on trigger;
// Recover ramps the scale back to 1.0 after the curve completes. A new
// trigger discards whatever is in flight.
type DilationData struct {
	Phase     DilationPhase
	Elapsed   float64 // unscaled seconds in the current phase
	Curve     *gween.Sequence
	Recover   *gween.Tween
	LastScale float64 // scale most recently applied, start of the recovery ramp
}

var Dilation = donburi.NewComponentType[DilationData]()
