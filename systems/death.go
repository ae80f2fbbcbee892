package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/tags"
)

// Seconds a depleted body lingers before leaving the world.
const corpseLinger = 1.0

// UpdateDeaths advances death timers and the round-restart countdown. The
// core only counts the delay; the scene performs the actual reload when
// RestartDue reports true.
func UpdateDeaths(e *ecs.ECS) {
	clk := getClock(e)
	if clk == nil {
		return
	}

	var toRemove []*donburi.Entry
	components.Death.Each(e.World, func(entry *donburi.Entry) {
		death := components.Death.Get(entry)
		death.Elapsed += clk.UnscaledDelta
		if death.Elapsed < corpseLinger {
			return
		}
		// The player body stays visible until the scene reloads.
		if !entry.HasComponent(tags.Player) {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		if entry.HasComponent(components.Object) {
			obj := components.Object.Get(entry)
			if obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.World.Remove(entry.Entity())
	}

	if session := getSession(e); session != nil && session.Outcome != components.OutcomeNone {
		session.RestartElapsed += clk.UnscaledDelta
	}
}

// RaiseOutcome latches the terminal round outcome. Only the first raise
// counts; later calls are ignored.
func RaiseOutcome(e *ecs.ECS, outcome components.Outcome) {
	session := getSession(e)
	if session == nil || session.Outcome != components.OutcomeNone {
		return
	}
	session.Outcome = outcome
	session.RestartElapsed = 0
}

// RestartDue reports whether the post-round delay has run out and the scene
// should reload the arena.
func RestartDue(e *ecs.ECS) bool {
	session := getSession(e)
	return session != nil &&
		session.Outcome != components.OutcomeNone &&
		session.RestartElapsed >= cfg.Session.RestartDelay
}

func getSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}
