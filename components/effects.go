package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks the active camera shake. Durations are unscaled
// seconds so the shake reads the same under slow motion.
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Remaining float64 // seconds left
	Duration  float64 // total seconds of the current shake
	Elapsed   float64 // for oscillation phase
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tints a sprite for a short time after a hit.
type FlashData struct {
	Remaining float64 // seconds left
	R, G, B   float32 // color multipliers
}

var Flash = donburi.NewComponentType[FlashData]()
