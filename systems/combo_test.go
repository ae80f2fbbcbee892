package systems

import (
	"testing"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

func TestRegisterHitCountsAndTiersUp(t *testing.T) {
	restore := cfg.Combo
	defer func() { cfg.Combo = restore }()
	cfg.Combo.TierInterval = 5
	cfg.Combo.Timeout = 3.0

	var c components.ComboData
	for i := 0; i < 5; i++ {
		RegisterHit(&c, float64(i)*0.2)
	}

	if c.Count != 5 {
		t.Fatalf("count = %d, want 5", c.Count)
	}
	if len(c.Pending) != 5 {
		t.Fatalf("events raised = %d, want one per hit", len(c.Pending))
	}

	tierUps := 0
	for _, ev := range c.Pending {
		if ev.TierUp {
			tierUps++
		}
	}
	if tierUps != 1 {
		t.Fatalf("tier-ups = %d, want exactly 1 for 5 hits at interval 5", tierUps)
	}
	last := c.Pending[len(c.Pending)-1]
	if !last.TierUp || last.Tier != 1 || last.Count != 5 {
		t.Fatalf("fifth event = %+v, want tier-up to tier 1 at count 5", last)
	}
	if c.HighestTier != 1 {
		t.Fatalf("highest tier = %d, want 1", c.HighestTier)
	}
}

func TestRegisterHitNoRepeatTierUp(t *testing.T) {
	restore := cfg.Combo
	defer func() { cfg.Combo = restore }()
	cfg.Combo.TierInterval = 5

	var c components.ComboData
	for i := 0; i < 9; i++ {
		RegisterHit(&c, 0)
	}
	tierUps := 0
	for _, ev := range c.Pending {
		if ev.TierUp {
			tierUps++
		}
	}
	if tierUps != 1 {
		t.Fatalf("tier-ups across 9 hits = %d, want 1 (next at 10)", tierUps)
	}
	RegisterHit(&c, 0)
	if !c.Pending[len(c.Pending)-1].TierUp {
		t.Fatal("tenth hit did not tier up")
	}
}

func TestResetCombo(t *testing.T) {
	var c components.ComboData
	ResetCombo(&c)
	if len(c.Pending) != 0 {
		t.Fatal("reset of an idle streak raised an event")
	}

	RegisterHit(&c, 0)
	RegisterHit(&c, 0)
	c.Pending = c.Pending[:0]

	ResetCombo(&c)
	if c.Count != 0 || c.HighestTier != 0 {
		t.Fatalf("reset left streak at %+v", c)
	}
	if len(c.Pending) != 1 || c.Pending[0].Count != 0 {
		t.Fatalf("reset events = %+v, want one zero event", c.Pending)
	}
}

func TestUpdateCombosDecay(t *testing.T) {
	restore := cfg.Combo
	defer func() { cfg.Combo = restore }()
	cfg.Combo.TierInterval = 5
	cfg.Combo.Timeout = 3.0

	e := newTestECS(t)
	player := spawnTestPlayer(e)
	combo := components.Combo.Get(player)
	clk := getClock(e)

	clk.Now = 10.0
	RegisterHit(combo, clk.Now)
	combo.Pending = combo.Pending[:0]

	// Just inside the timeout the streak holds.
	clk.Now = 12.9
	UpdateCombos(e)
	if combo.Count != 1 {
		t.Fatalf("streak decayed early: count = %d", combo.Count)
	}

	// Past the timeout it resets.
	clk.Now = 13.1
	UpdateCombos(e)
	if combo.Count != 0 {
		t.Fatalf("streak did not decay: count = %d", combo.Count)
	}
	if len(combo.Pending) != 1 {
		t.Fatalf("decay events = %d, want 1", len(combo.Pending))
	}
}
