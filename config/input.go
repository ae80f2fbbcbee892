package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a logical input action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionAimUp
	ActionAimDown
	ActionPunch
	ActionJump
	ActionRestart
	ActionMute
	ActionDebug
	ActionCount
)

// ActionBinding maps an action to its physical keys
type ActionBinding struct {
	Keys []ebiten.Key
}

// InputConfig contains input binding configuration
type InputConfig struct {
	Bindings map[ActionID]ActionBinding
}

var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]ActionBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
			ActionAimUp:     {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
			ActionAimDown:   {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
			ActionPunch:     {Keys: []ebiten.Key{ebiten.KeyJ, ebiten.KeyX}},
			ActionJump:      {Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyK}},
			ActionRestart:   {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionMute:      {Keys: []ebiten.Key{ebiten.KeyM}},
			ActionDebug:     {Keys: []ebiten.Key{ebiten.KeyF1}},
		},
	}
}
