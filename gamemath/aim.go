package gamemath

import "math"

// PunchAim returns a unit aim vector from facing and vertical modifiers.
// facingX is the attacker's facing direction (-1 or 1). Holding up or down
// tilts the punch to a 45 degree diagonal.
func PunchAim(facingX float64, upHeld, downHeld bool) (aimX, aimY float64) {
	if upHeld && !downHeld {
		return Normalize(facingX, -1.0)
	}
	if downHeld && !upHeld {
		return Normalize(facingX, 1.0)
	}
	return facingX, 0
}

// Normalize returns the unit vector of (x, y), or (0, 0) for the zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}
