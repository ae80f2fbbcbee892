package components

import "github.com/yohamta/donburi"

// SettingsData is the singleton for user-facing toggles that persist
// between runs.
type SettingsData struct {
	Debug bool // draw collision objects and swing state
}

var Settings = donburi.NewComponentType[SettingsData]()
