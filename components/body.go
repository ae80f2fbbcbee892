package components

import "github.com/yohamta/donburi"

// BodyData is a dynamic body moved by the fixed-step physics tick. Speeds
// are px/s, accelerations px/s^2. A body with Gravity 0 is joint-driven and
// ignores friction clamping (fists).
type BodyData struct {
	SpeedX, SpeedY float64
	Gravity        float64
	Friction       float64
	MaxSpeed       float64 // horizontal clamp, 0 = unclamped
	MaxFallSpeed   float64 // vertical clamp, 0 = unclamped

	OnGround bool
}

var Body = donburi.NewComponentType[BodyData]()
