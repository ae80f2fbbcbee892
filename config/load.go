package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides mirrors the tunable subset of the package configuration. Every
// field is optional; absent fields keep their compiled-in defaults.
type Overrides struct {
	Charge *struct {
		Enabled            *bool    `yaml:"enabled"`
		FullChargeDuration *float64 `yaml:"fullChargeDuration"`
		MaxMultiplier      *float64 `yaml:"maxMultiplier"`
	} `yaml:"charge"`
	Combat *struct {
		BasePunchVelocity  *float64 `yaml:"basePunchVelocity"`
		MinMultiplierFloor *float64 `yaml:"minMultiplierFloor"`
		PunchCooldown      *float64 `yaml:"punchCooldown"`
		ActiveSwingWindow  *float64 `yaml:"activeSwingWindow"`
		DamageScale        *float64 `yaml:"damageScale"`
		CritSpeed          *float64 `yaml:"critSpeed"`
	} `yaml:"combat"`
	Combo *struct {
		TierInterval *int     `yaml:"tierInterval"`
		Timeout      *float64 `yaml:"timeout"`
	} `yaml:"combo"`
	Dilation *struct {
		Profile          []CurveSample `yaml:"profile"`
		Floor            *float64      `yaml:"floor"`
		ReturnDuration   *float64      `yaml:"returnDuration"`
		TriggerMagnitude *float64      `yaml:"triggerMagnitude"`
	} `yaml:"dilation"`
}

// LoadOverrides applies tuning overrides from a YAML file on top of the
// defaults. A missing file is not an error; malformed or out-of-range values
// are.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return Apply(&o)
}

// Apply validates the overrides and merges them into the package config.
func Apply(o *Overrides) error {
	if o == nil {
		return nil
	}

	if c := o.Charge; c != nil {
		if c.Enabled != nil {
			Charge.Enabled = *c.Enabled
		}
		if c.FullChargeDuration != nil {
			if *c.FullChargeDuration <= 0 {
				return fmt.Errorf("charge.fullChargeDuration must be positive, got %v", *c.FullChargeDuration)
			}
			Charge.FullChargeDuration = *c.FullChargeDuration
		}
		if c.MaxMultiplier != nil {
			if *c.MaxMultiplier < 1 {
				return fmt.Errorf("charge.maxMultiplier must be >= 1, got %v", *c.MaxMultiplier)
			}
			Charge.MaxMultiplier = *c.MaxMultiplier
		}
	}

	if c := o.Combat; c != nil {
		if c.BasePunchVelocity != nil {
			if *c.BasePunchVelocity <= 0 {
				return fmt.Errorf("combat.basePunchVelocity must be positive, got %v", *c.BasePunchVelocity)
			}
			Combat.BasePunchVelocity = *c.BasePunchVelocity
		}
		if c.MinMultiplierFloor != nil {
			if *c.MinMultiplierFloor <= 0 {
				return fmt.Errorf("combat.minMultiplierFloor must be positive, got %v", *c.MinMultiplierFloor)
			}
			Combat.MinMultiplierFloor = *c.MinMultiplierFloor
		}
		if c.PunchCooldown != nil {
			if *c.PunchCooldown <= 0 {
				return fmt.Errorf("combat.punchCooldown must be positive, got %v", *c.PunchCooldown)
			}
			Combat.PunchCooldown = *c.PunchCooldown
		}
		if c.ActiveSwingWindow != nil {
			if *c.ActiveSwingWindow <= 0 {
				return fmt.Errorf("combat.activeSwingWindow must be positive, got %v", *c.ActiveSwingWindow)
			}
			Combat.ActiveSwingWindow = *c.ActiveSwingWindow
		}
		if c.DamageScale != nil {
			if *c.DamageScale <= 0 {
				return fmt.Errorf("combat.damageScale must be positive, got %v", *c.DamageScale)
			}
			Combat.DamageScale = *c.DamageScale
		}
		if c.CritSpeed != nil {
			Combat.CritSpeed = *c.CritSpeed
		}
	}

	if c := o.Combo; c != nil {
		if c.TierInterval != nil {
			if *c.TierInterval <= 0 {
				return fmt.Errorf("combo.tierInterval must be positive, got %v", *c.TierInterval)
			}
			Combo.TierInterval = *c.TierInterval
		}
		if c.Timeout != nil {
			if *c.Timeout <= 0 {
				return fmt.Errorf("combo.timeout must be positive, got %v", *c.Timeout)
			}
			Combo.Timeout = *c.Timeout
		}
	}

	if d := o.Dilation; d != nil {
		if len(d.Profile) > 0 {
			if err := ValidateProfile(d.Profile); err != nil {
				return err
			}
			Dilation.Profile = d.Profile
		}
		if d.Floor != nil {
			if *d.Floor <= 0 || *d.Floor > 1 {
				return fmt.Errorf("dilation.floor must be in (0, 1], got %v", *d.Floor)
			}
			Dilation.Floor = *d.Floor
		}
		if d.ReturnDuration != nil {
			if *d.ReturnDuration <= 0 {
				return fmt.Errorf("dilation.returnDuration must be positive, got %v", *d.ReturnDuration)
			}
			Dilation.ReturnDuration = *d.ReturnDuration
		}
		if d.TriggerMagnitude != nil {
			Dilation.TriggerMagnitude = *d.TriggerMagnitude
		}
	}

	return nil
}

// ValidateProfile checks that a slow-motion curve starts at t=0 and has
// strictly increasing sample times.
func ValidateProfile(profile []CurveSample) error {
	if len(profile) == 0 {
		return fmt.Errorf("dilation.profile must have at least one sample")
	}
	if profile[0].Time != 0 {
		return fmt.Errorf("dilation.profile must start at time 0, got %v", profile[0].Time)
	}
	for i := 1; i < len(profile); i++ {
		if profile[i].Time <= profile[i-1].Time {
			return fmt.Errorf("dilation.profile times must be strictly increasing at index %d", i)
		}
	}
	for i, s := range profile {
		if s.Scale <= 0 || s.Scale > 1 {
			return fmt.Errorf("dilation.profile scale must be in (0, 1] at index %d, got %v", i, s.Scale)
		}
	}
	return nil
}
