package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/tags"
)

// ApplyDamage subtracts from the pool and reports whether this call was the
// one that depleted it. Non-positive amounts and hits on an already depleted
// pool are rejected with no state change, so the terminal transition can
// never fire twice without an explicit reset.
func ApplyDamage(h *components.HealthData, amount float64) bool {
	if amount <= 0 || h.Depleted {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Depleted = true
		return true
	}
	return false
}

// ResetHealth refills the pool and clears the terminal state.
func ResetHealth(h *components.HealthData) {
	h.Current = h.Max
	h.Depleted = false
}

// UpdateDamage drains queued damage events into health pools and starts the
// death sequence on the depleting hit. Each event is processed exactly once.
func UpdateDamage(e *ecs.ECS) {
	for entry := range components.DamageEvent.Iter(e.World) {
		dmg := components.DamageEvent.Get(entry)

		if entry.HasComponent(components.Health) {
			hp := components.Health.Get(entry)
			depletedNow := ApplyDamage(hp, dmg.Amount)

			if entry.HasComponent(components.Body) && (dmg.KnockbackX != 0 || dmg.KnockbackY != 0) {
				body := components.Body.Get(entry)
				body.SpeedX = dmg.KnockbackX
				body.SpeedY = dmg.KnockbackY
				body.OnGround = false
			}

			if depletedNow {
				startDeathSequence(e, entry)
			}
		}

		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
	}
}

func startDeathSequence(e *ecs.ECS, entry *donburi.Entry) {
	PlaySFX(e, cfg.SoundDeath)

	donburi.Add(entry, components.Death, &components.DeathData{})

	if entry.HasComponent(components.Body) {
		body := components.Body.Get(entry)
		body.SpeedX = 0
		body.SpeedY = 0
	}

	switch {
	case entry.HasComponent(tags.Player):
		RaiseOutcome(e, components.OutcomeDefeat)
	case entry.HasComponent(tags.Dummy):
		if !anyDummyAlive(e) {
			RaiseOutcome(e, components.OutcomeVictory)
		}
	}
}

func anyDummyAlive(e *ecs.ECS) bool {
	alive := false
	tags.Dummy.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Health) && !components.Health.Get(entry).Depleted {
			alive = true
		}
	})
	return alive
}
