package components

import "github.com/yohamta/donburi"

// DeathData marks an entity whose health pool depleted. Elapsed counts
// unscaled seconds; when it passes the removal delay the entity leaves the
// world.
type DeathData struct {
	Elapsed float64
}

var Death = donburi.NewComponentType[DeathData]()
