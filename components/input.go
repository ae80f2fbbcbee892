package components

import (
	cfg "github.com/automoto/haymaker/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. Edge queries compare the two frames, so systems never need the
// input device itself; tests write Current/Previous directly.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	MoveX    float64 // -1..1 merged from the directional actions
}

// Pressed reports whether the action is held this frame.
func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

// JustPressed reports a press edge on this frame.
func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// JustReleased reports a release edge on this frame.
func (i *InputData) JustReleased(a cfg.ActionID) bool {
	return !i.Current[a] && i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
