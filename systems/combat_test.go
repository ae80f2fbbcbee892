package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

func TestContactDealsScaledDamage(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.ActiveSwingWindow = 0.25
	cfg.Combat.DamageScale = 0.18
	cfg.Combat.CritSpeed = 20

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	dummy := overlapFistWithDummy(e, player)

	fist := components.Fist.Get(components.Player.Get(player).Fist)
	clk := getClock(e)
	clk.Now = 5.0
	fist.Swing.Record(clk.Now, 22)

	ResolveFistContacts(e)

	if !dummy.HasComponent(components.DamageEvent) {
		t.Fatal("contact produced no damage event")
	}
	dmg := components.DamageEvent.Get(dummy)
	if math.Abs(dmg.Amount-3.96) > 1e-9 {
		t.Fatalf("damage = %f, want 3.96 (22 * 0.18)", dmg.Amount)
	}
	if !dmg.Heavy {
		t.Fatal("magnitude 22 above crit speed 20 must be heavy")
	}

	UpdateDamage(e)
	hp := components.Health.Get(dummy)
	if math.Abs(hp.Current-(cfg.Dummy.Health-3.96)) > 1e-9 {
		t.Fatalf("dummy health = %f, want %f", hp.Current, cfg.Dummy.Health-3.96)
	}
}

func TestCritBoundaryIsExclusive(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.ActiveSwingWindow = 0.25
	cfg.Combat.DamageScale = 0.18
	cfg.Combat.CritSpeed = 20

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	dummy := overlapFistWithDummy(e, player)

	fist := components.Fist.Get(components.Player.Get(player).Fist)
	clk := getClock(e)
	clk.Now = 5.0
	fist.Swing.Record(clk.Now, 20)

	ResolveFistContacts(e)

	if !dummy.HasComponent(components.DamageEvent) {
		t.Fatal("contact produced no damage event")
	}
	if components.DamageEvent.Get(dummy).Heavy {
		t.Fatal("magnitude exactly at crit speed must not be heavy")
	}
}

func TestOneSwingOneDamage(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.ActiveSwingWindow = 0.25
	cfg.Combat.DamageScale = 0.1
	cfg.Combat.CritSpeed = 400

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	dummy := overlapFistWithDummy(e, player)

	fist := components.Fist.Get(components.Player.Get(player).Fist)
	clk := getClock(e)
	clk.Now = 1.0
	fist.Swing.Record(clk.Now, 300)

	// The fist stays in contact over several sub-ticks; only the first
	// resolution lands.
	for i := 0; i < 4; i++ {
		ResolveFistContacts(e)
		UpdateDamage(e)
		clk.Now += 0.01
	}

	hp := components.Health.Get(dummy)
	want := cfg.Dummy.Health - 300*0.1
	if math.Abs(hp.Current-want) > 1e-9 {
		t.Fatalf("dummy health after sustained contact = %f, want %f (one hit)", hp.Current, want)
	}

	combo := components.Combo.Get(player)
	if combo.Count != 1 {
		t.Fatalf("combo count = %d, want 1", combo.Count)
	}

	// A new impulse re-arms the token and lands again.
	fist.Swing.Record(clk.Now, 300)
	ResolveFistContacts(e)
	UpdateDamage(e)
	if math.Abs(components.Health.Get(dummy).Current-(want-30)) > 1e-9 {
		t.Fatal("re-armed swing did not land a second hit")
	}
	if combo.Count != 2 {
		t.Fatalf("combo count after second swing = %d, want 2", combo.Count)
	}
}

func TestExpiredSwingDoesNotHit(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.ActiveSwingWindow = 0.25

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	dummy := overlapFistWithDummy(e, player)

	fist := components.Fist.Get(components.Player.Get(player).Fist)
	clk := getClock(e)
	fist.Swing.Record(1.0, 300)
	clk.Now = 1.3

	ResolveFistContacts(e)
	if dummy.HasComponent(components.DamageEvent) {
		t.Fatal("expired swing produced a damage event")
	}
	if countDamageEvents(e) != 0 {
		t.Fatal("stray damage events in the world")
	}
}

func TestContactWithoutHealthBurnsToken(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.ActiveSwingWindow = 0.25

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	dummy := overlapFistWithDummy(e, player)
	donburi.Remove[components.HealthData](dummy, components.Health)

	fist := components.Fist.Get(components.Player.Get(player).Fist)
	clk := getClock(e)
	clk.Now = 1.0
	fist.Swing.Record(clk.Now, 300)

	ResolveFistContacts(e)

	if dummy.HasComponent(components.DamageEvent) {
		t.Fatal("target without a health pool received a damage event")
	}
	if !fist.Swing.TokenConsumed {
		t.Fatal("token survived a contact with a health-less target")
	}

	// The burned token keeps the same swing from retrying damage.
	ResolveFistContacts(e)
	if countDamageEvents(e) != 0 {
		t.Fatal("burned token still produced a damage event")
	}
}

func TestHeavyHitTriggersDilation(t *testing.T) {
	restoreCombat := cfg.Combat
	restoreDilation := cfg.Dilation
	defer func() { cfg.Combat = restoreCombat; cfg.Dilation = restoreDilation }()
	cfg.Combat.ActiveSwingWindow = 0.25
	cfg.Dilation.TriggerMagnitude = 400

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	overlapFistWithDummy(e, player)

	fist := components.Fist.Get(components.Player.Get(player).Fist)
	clk := getClock(e)
	clk.Now = 1.0
	fist.Swing.Record(clk.Now, 400)

	ResolveFistContacts(e)

	if d := getDilation(e); d.Phase != components.DilationActive {
		t.Fatalf("dilation phase = %v, want active after magnitude at trigger threshold", d.Phase)
	}
}

func TestKnockbackPointsAwayFromAttacker(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.ActiveSwingWindow = 0.25

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	dummy := overlapFistWithDummy(e, player)

	fist := components.Fist.Get(components.Player.Get(player).Fist)
	clk := getClock(e)
	clk.Now = 1.0
	fist.Swing.Record(clk.Now, 300)

	ResolveFistContacts(e)
	UpdateDamage(e)

	// The dummy sits to the right of the player, so it is knocked right
	// and lifted.
	body := components.Body.Get(dummy)
	if body.SpeedX <= 0 {
		t.Fatalf("knockback x = %f, want positive (away from attacker)", body.SpeedX)
	}
	if body.SpeedY >= 0 {
		t.Fatalf("knockback y = %f, want negative (upward)", body.SpeedY)
	}
	if body.OnGround {
		t.Fatal("knocked-back body still flagged on ground")
	}
}

func TestDepletingLastDummyRaisesVictory(t *testing.T) {
	restore := cfg.Combat
	defer func() { cfg.Combat = restore }()
	cfg.Combat.ActiveSwingWindow = 0.25
	cfg.Combat.DamageScale = 10.0 // one hit depletes

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	dummy := overlapFistWithDummy(e, player)

	fist := components.Fist.Get(components.Player.Get(player).Fist)
	clk := getClock(e)
	clk.Now = 1.0
	fist.Swing.Record(clk.Now, 300)

	ResolveFistContacts(e)
	UpdateDamage(e)

	if !components.Health.Get(dummy).Depleted {
		t.Fatal("dummy survived a depleting hit")
	}
	if !dummy.HasComponent(components.Death) {
		t.Fatal("depleted dummy has no death sequence")
	}
	if session := getSession(e); session.Outcome != components.OutcomeVictory {
		t.Fatalf("outcome = %v, want victory with no dummies left", session.Outcome)
	}
}
