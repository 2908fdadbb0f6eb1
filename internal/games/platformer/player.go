package platformer

import (
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player is the runner controlled by the user, in world units.
type Player struct {
	X, Y   float64 // Top-left corner
	VX, VY float64 // Velocity per tick
	Width  float64
	Height float64

	Jumping   bool // Inside an eased jump arc, or falling
	JumpCount int  // Jumps used since the last ground contact
	JumpTimer int  // Frames elapsed in the current arc
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.Height
}

// Kinematics advances the player by one tick: eased jump arc, gravity,
// smoothed horizontal speed, explicit Euler integration and the world-top clamp.
type Kinematics struct {
	physics config.PhysicsConfig
	jump    config.JumpConfig
	arc     ease.TweenFunc
}

// NewKinematics creates an integrator from the physics and jump settings.
func NewKinematics(physics config.PhysicsConfig, jump config.JumpConfig) Kinematics {
	return Kinematics{physics: physics, jump: jump, arc: ease.OutQuad}
}

// RequestJump starts a new jump arc if the player has jumps left.
// The second jump before touching ground is the weaker double jump.
func (k Kinematics) RequestJump(p *Player) bool {
	if p.JumpCount >= k.jump.MaxJumps {
		return false
	}
	p.Jumping = true
	p.JumpCount++
	p.JumpTimer = 0
	return true
}

// Integrate moves the player one tick toward targetVX.
func (k Kinematics) Integrate(p *Player, targetVX float64) {
	if p.Jumping {
		p.JumpTimer++
		if p.JumpTimer <= k.jump.Duration {
			p.VY = -k.peakForce(p.JumpCount) * (1 - k.easeOut(p.JumpTimer))
		} else {
			p.Jumping = false
			p.JumpTimer = 0
		}
	}

	p.VY += k.physics.Gravity

	p.VX += (targetVX - p.VX) * k.physics.Blend
	p.VX = core.ClampF(p.VX, -k.physics.MaxSpeedX, k.physics.MaxSpeedX)

	p.X += p.VX
	p.Y += p.VY

	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
	}

	p.VX *= k.physics.Friction
}

// peakForce is the initial upward speed of the arc for the given jump number.
func (k Kinematics) peakForce(jumpCount int) float64 {
	if jumpCount <= 1 {
		return k.jump.Force
	}
	return k.jump.DoubleForce
}

// easeOut returns easeOutQuad(timer/duration) in [0, 1].
func (k Kinematics) easeOut(timer int) float64 {
	t := float32(timer) / float32(k.jump.Duration)
	return float64(k.arc(t, 0, 1, 1))
}

// MaxJumpRise measures how far the player's feet can rise by jumping at rest
// and chaining every remaining jump at the apex of the previous one.
func (k Kinematics) MaxJumpRise() float64 {
	const startY = 1e6 // Far from the world-top clamp
	limit := 10 * max(k.jump.Duration, 1)

	p := Player{Y: startY}
	top := startY
	for range k.jump.MaxJumps {
		if !k.RequestJump(&p) {
			break
		}
		for i := 0; i < limit; i++ {
			k.Integrate(&p, 0)
			top = min(top, p.Y)
			if p.VY >= 0 {
				break
			}
		}
	}
	return startY - top
}
