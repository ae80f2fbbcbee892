package components

import "github.com/yohamta/donburi"

// PullbackJointData tethers a fist to its wielder with a damped spring.
// Anchor is a local offset from the owner's center, expressed in the owner's
// facing frame (X forward, Y down). While the fist charges, the anchor
// retracts along -X and TravelLimit widens by the same distance, so the
// total forward reach (AnchorX + TravelLimit) stays invariant with charge.
type PullbackJointData struct {
	BaseAnchorX float64 // local anchor at rest
	BaseAnchorY float64
	AnchorX     float64 // current local anchor
	AnchorY     float64
	BaseSlack   float64 // travel limit at rest
	TravelLimit float64 // current travel limit

	Stiffness float64
	Damping   float64
}

var PullbackJoint = donburi.NewComponentType[PullbackJointData]()
