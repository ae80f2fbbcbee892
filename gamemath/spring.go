package gamemath

import "math"

// SpringAccel returns the acceleration of a damped spring pulling a point at
// (x, y) with velocity (vx, vy) toward (tx, ty).
func SpringAccel(x, y, vx, vy, tx, ty, stiffness, damping float64) (ax, ay float64) {
	ax = stiffness*(tx-x) - damping*vx
	ay = stiffness*(ty-y) - damping*vy
	return ax, ay
}

// ClampToRadius returns (x, y) moved onto the circle of the given radius
// around (cx, cy) if it lies outside it, and reports whether it was clamped.
func ClampToRadius(x, y, cx, cy, radius float64) (float64, float64, bool) {
	dx, dy := x-cx, y-cy
	d := math.Hypot(dx, dy)
	if d <= radius || d == 0 {
		return x, y, false
	}
	s := radius / d
	return cx + dx*s, cy + dy*s, true
}

// RemoveOutwardVelocity zeroes the velocity component pointing away from
// (cx, cy) at position (x, y). Used when a tethered body hits its travel
// limit so it does not keep fighting the constraint.
func RemoveOutwardVelocity(x, y, cx, cy, vx, vy float64) (float64, float64) {
	dx, dy := x-cx, y-cy
	d := math.Hypot(dx, dy)
	if d == 0 {
		return vx, vy
	}
	nx, ny := dx/d, dy/d
	dot := vx*nx + vy*ny
	if dot <= 0 {
		return vx, vy
	}
	return vx - dot*nx, vy - dot*ny
}
