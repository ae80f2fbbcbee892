package components

import "github.com/yohamta/donburi"

// Outcome is the terminal state of a round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// SessionData is the singleton round state. The combat core only raises the
// outcome; the scene watches RestartElapsed and performs the reload itself.
type SessionData struct {
	Outcome        Outcome
	RestartElapsed float64 // unscaled seconds since the outcome was raised
}

var Session = donburi.NewComponentType[SessionData]()
