package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Contact summarises what the player touched during one resolve pass.
type Contact struct {
	Landed   bool // Snapped onto a platform top
	Grounded bool // Standing on a platform or the floor
	Coins    int  // Coins picked up
	Hit      bool // Touched an obstacle
}

// Resolver corrects the integrated player state against the level.
type Resolver struct {
	floor     float64
	tolerance float64
	duration  int
}

// NewResolver creates a collision resolver for the configured world.
func NewResolver(cfg config.PlatformerConfig) Resolver {
	return Resolver{
		floor:     cfg.World.Height,
		tolerance: cfg.Physics.LandingTolerance,
		duration:  cfg.Jump.Duration,
	}
}

// Resolve runs, in order: platform landing, the floor, falling-state
// inference, coin pickup, obstacle contact and the final floor clamp.
// Collected coins are removed from the level.
func (r Resolver) Resolve(p *Player, lvl *Level) Contact {
	var c Contact

	if landing, ok := r.landingPlatform(*p, lvl.Platforms()); ok {
		p.Y = landing.Y - p.Height
		r.ground(p)
		c.Landed = true
		c.Grounded = true
	}

	if p.Bottom() >= r.floor {
		p.Y = r.floor - p.Height
		r.ground(p)
		c.Grounded = true
	}

	// Walking off a ledge: fall under gravity alone without spending a jump.
	if !c.Grounded && !p.Jumping && p.VY >= 0 {
		p.Jumping = true
		p.JumpTimer = r.duration
	}

	c.Coins = lvl.takeCoins(p.Box())
	c.Hit = lvl.hitsObstacle(p.Box())

	if p.Bottom() > r.floor {
		p.Y = r.floor - p.Height
		p.VY = 0
		p.Jumping = false
	}

	return c
}

// landingPlatform picks the platform whose top the player's feet just crossed.
// When several qualify the topmost one wins, since a falling player reaches
// it first.
func (r Resolver) landingPlatform(p Player, platforms []Platform) (Platform, bool) {
	var best Platform
	found := false
	box := p.Box()
	bottom := p.Bottom()
	for _, pl := range platforms {
		if !box.OverlapsX(pl.Box) {
			continue
		}
		if bottom <= pl.Y || bottom >= pl.Y+p.VY+r.tolerance {
			continue
		}
		if !found || pl.Y < best.Y {
			best = pl
			found = true
		}
	}
	return best, found
}

func (r Resolver) ground(p *Player) {
	p.VY = 0
	p.Jumping = false
	p.JumpCount = 0
	p.JumpTimer = 0
}
