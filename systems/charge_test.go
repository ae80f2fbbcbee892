package systems

import (
	"math"
	"testing"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
)

func TestChargeRatio(t *testing.T) {
	conf := cfg.ChargeConfig{Enabled: true, FullChargeDuration: 0.8, MaxMultiplier: 2.0}

	tests := []struct {
		name string
		hold float64
		want float64
	}{
		{"instant", 0, 0},
		{"half", 0.4, 0.5},
		{"full", 0.8, 1.0},
		{"overheld clamps", 3.0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c components.ChargeData
			Press(&c, 10.0)
			got := ChargeRatio(&c, conf, 10.0+tt.hold)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("ratio after %vs hold = %f, want %f", tt.hold, got, tt.want)
			}
		})
	}
}

func TestReleaseMultiplier(t *testing.T) {
	conf := cfg.ChargeConfig{Enabled: true, FullChargeDuration: 0.8, MaxMultiplier: 2.0}

	tests := []struct {
		name string
		hold float64
		want float64
	}{
		{"tap", 0, 1.0},
		{"half charge", 0.4, 1.5},
		{"full charge", 0.8, 2.0},
		{"overheld", 5.0, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c components.ChargeData
			Press(&c, 0)
			got := Release(&c, conf, tt.hold)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("multiplier after %vs hold = %f, want %f", tt.hold, got, tt.want)
			}
			if c.Held {
				t.Fatal("charge still held after release")
			}
		})
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	conf := cfg.ChargeConfig{Enabled: true, FullChargeDuration: 0.8, MaxMultiplier: 2.0}
	var c components.ChargeData
	if got := Release(&c, conf, 100.0); got != 1.0 {
		t.Fatalf("release without press = %f, want 1.0", got)
	}
}

func TestReleaseDisabledCharging(t *testing.T) {
	conf := cfg.ChargeConfig{Enabled: false, FullChargeDuration: 0.8, MaxMultiplier: 2.0}
	var c components.ChargeData
	Press(&c, 0)
	if got := Release(&c, conf, 10.0); got != 1.0 {
		t.Fatalf("release with disabled charging = %f, want 1.0", got)
	}
}
