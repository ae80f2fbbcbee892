package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Fist   = donburi.NewTag().SetName("Fist")
	Dummy  = donburi.NewTag().SetName("Dummy")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvFist   = "fist"
	ResolvTarget = "target"
)
