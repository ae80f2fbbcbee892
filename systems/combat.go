package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/tags"
)

// ResolveFistContacts arbitrates fist-versus-target contacts. A contact only
// produces damage if the fist's swing is still inside its active window and
// the swing's single-use hit token can be consumed, so repeated contact
// callbacks from one swing collapse into at most one damage event. Runs on
// the physics tick, after integration.
func ResolveFistContacts(e *ecs.ECS) {
	clk := getClock(e)
	if clk == nil {
		return
	}

	components.Fist.Each(e.World, func(entry *donburi.Entry) {
		fist := components.Fist.Get(entry)
		swing := &fist.Swing
		if !swing.Active(clk.Now, cfg.Combat.ActiveSwingWindow) {
			return
		}

		obj := components.Object.Get(entry)
		check := obj.Check(0, 0, tags.ResolvTarget)
		if check == nil {
			return
		}

		// Only the first contacted body is considered; the token makes any
		// further contacts this swing irrelevant anyway.
		var target *donburi.Entry
		var targetObj *components.ObjectData
		for _, o := range check.Objects {
			if t, ok := o.Data.(*donburi.Entry); ok && t.Valid() && t != fist.Owner {
				target = t
				targetObj = components.Object.Get(t)
				break
			}
		}
		if target == nil {
			return
		}

		if !swing.TryConsumeToken(clk.Now, cfg.Combat.ActiveSwingWindow) {
			return
		}

		damage := swing.Magnitude * cfg.Combat.DamageScale
		heavy := swing.Magnitude > cfg.Combat.CritSpeed

		if target.HasComponent(components.Health) {
			attackerX := obj.X + obj.W/2
			if fist.Owner != nil && fist.Owner.Valid() && fist.Owner.HasComponent(components.Object) {
				ownerObj := components.Object.Get(fist.Owner)
				attackerX = ownerObj.X + ownerObj.W/2
			}
			knockDir := 1.0
			if targetObj.X+targetObj.W/2 < attackerX {
				knockDir = -1.0
			}
			donburi.Add(target, components.DamageEvent, &components.DamageEventData{
				Amount:     damage,
				Heavy:      heavy,
				FromX:      attackerX,
				KnockbackX: knockDir * cfg.Combat.KnockbackSpeed,
				KnockbackY: cfg.Combat.KnockbackUpwardSpeed,
				Attacker:   fist.Owner,
			})
		} else {
			// Token stays burned: a missing health pool downgrades the hit
			// to a no-op instead of letting the swing retry damage.
			log.Printf("fist contact with %v has no health pool, hit discarded", target.Entity())
		}

		if fist.Owner != nil && fist.Owner.Valid() && fist.Owner.HasComponent(components.Combo) {
			RegisterHit(components.Combo.Get(fist.Owner), clk.Now)
		}

		TriggerHitFlash(target, heavy)
		if heavy {
			TriggerScreenShake(e, cfg.ScreenShake.HeavyIntensity, cfg.ScreenShake.HeavyDuration)
			PlaySFX(e, cfg.SoundHeavyHit)
		} else {
			TriggerScreenShake(e, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
			PlaySFX(e, cfg.SoundHit)
		}

		if swing.Magnitude >= cfg.Dilation.TriggerMagnitude {
			TriggerDilation(e)
		}
	})
}
