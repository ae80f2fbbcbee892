package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/haymaker/components"
	cfg "github.com/automoto/haymaker/config"
	"github.com/automoto/haymaker/tags"
)

// DrawArena renders the arena as flat rectangles, offset by the current
// screen shake. Debug mode additionally draws the fist's travel limit and
// swing state.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	var ox, oy float64
	if entry, ok := components.ScreenShake.First(e.World); ok {
		shake := components.ScreenShake.Get(entry)
		if shake.Remaining > 0 && shake.Duration > 0 {
			// Oscillate and fade out over the shake duration.
			falloff := shake.Remaining / shake.Duration
			ox = math.Sin(shake.Elapsed*55) * shake.Intensity * falloff
			oy = math.Cos(shake.Elapsed*47) * shake.Intensity * falloff
		}
	}

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		drawObject(screen, entry, ox, oy, cfg.SlateGray)
	})

	tags.Dummy.Each(e.World, func(entry *donburi.Entry) {
		c := cfg.LightGreen
		if entry.HasComponent(components.Health) && components.Health.Get(entry).Depleted {
			c = cfg.SlateGray
		}
		if entry.HasComponent(components.Flash) {
			if flash := components.Flash.Get(entry); flash.Remaining > 0 {
				c = color.RGBA{
					R: uint8(255 * flash.R),
					G: uint8(255 * flash.G),
					B: uint8(255 * flash.B),
					A: 255,
				}
			}
		}
		drawObject(screen, entry, ox, oy, c)
		drawHealthBar(screen, entry, ox, oy)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawObject(screen, entry, ox, oy, cfg.Blue)
	})

	clk := getClock(e)
	settings := getSettings(e)
	components.Fist.Each(e.World, func(entry *donburi.Entry) {
		fist := components.Fist.Get(entry)
		c := cfg.Orange
		if clk != nil && fist.Swing.Active(clk.Now, cfg.Combat.ActiveSwingWindow) {
			c = cfg.Yellow
		}
		drawObject(screen, entry, ox, oy, c)

		if settings != nil && settings.Debug {
			drawJointDebug(screen, entry, fist, ox, oy)
		}
	})
}

func drawObject(screen *ebiten.Image, entry *donburi.Entry, ox, oy float64, c color.RGBA) {
	if !entry.HasComponent(components.Object) {
		return
	}
	o := components.Object.Get(entry)
	vector.DrawFilledRect(screen, float32(o.X+ox), float32(o.Y+oy), float32(o.W), float32(o.H), c, false)
}

func drawHealthBar(screen *ebiten.Image, entry *donburi.Entry, ox, oy float64) {
	if !entry.HasComponent(components.Health) || !entry.HasComponent(components.Object) {
		return
	}
	hp := components.Health.Get(entry)
	if hp.DamageRatio() == 0 || hp.Depleted {
		return
	}
	o := components.Object.Get(entry)
	barW := o.W
	x := float32(o.X + ox)
	y := float32(o.Y + oy - 6)
	vector.DrawFilledRect(screen, x, y, float32(barW), 3, cfg.BlackOverlay, false)
	vector.DrawFilledRect(screen, x, y, float32(barW*(1-hp.DamageRatio())), 3, cfg.Red, false)
}

func drawJointDebug(screen *ebiten.Image, entry *donburi.Entry, fist *components.FistData, ox, oy float64) {
	if !entry.HasComponent(components.PullbackJoint) || fist.Owner == nil || !fist.Owner.Valid() {
		return
	}
	joint := components.PullbackJoint.Get(entry)
	ax, ay, ok := anchorWorld(fist.Owner, joint)
	if !ok {
		return
	}
	vector.StrokeCircle(screen, float32(ax+ox), float32(ay+oy), float32(joint.TravelLimit), 1, cfg.White, false)
}
