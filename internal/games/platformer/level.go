package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Platform is a surface the player can land on from above.
type Platform struct {
	core.Box
}

// Coin is a pickup worth a fixed number of points.
type Coin struct {
	core.Box
}

// Obstacle is a lethal floor hazard. Variant only changes its look.
type Obstacle struct {
	core.Box
	Variant int
}

// Level streams platforms, coins and obstacles around the camera.
// Entities of each kind are kept in ascending x order.
type Level struct {
	platforms []Platform
	coins     []Coin
	obstacles []Obstacle

	rng        *rand.Rand
	cfg        *config.PlatformerConfig
	profile    config.DeviceProfile
	difficulty *config.DifficultyManager
	maxRise    float64 // Highest climb between consecutive platform tops

	frontier float64  // Right edge of the newest platform
	last     Platform // Newest platform, kept even after pruning
}

// NewLevel creates a level generator and seeds the initial stretch of world.
// maxRise bounds how far a platform may sit above its predecessor when
// level.reachable is set.
func NewLevel(seed int64, cfg *config.PlatformerConfig, profile config.DeviceProfile, diff *config.DifficultyManager, maxRise float64) *Level {
	l := &Level{
		platforms:  make([]Platform, 0, 16),
		coins:      make([]Coin, 0, 8),
		obstacles:  make([]Obstacle, 0, 4),
		cfg:        cfg,
		profile:    profile,
		difficulty: diff,
		maxRise:    maxRise,
	}
	l.Reset(seed)
	return l
}

// Reset discards every entity and regenerates the world from the seed.
func (l *Level) Reset(seed int64) {
	l.platforms = l.platforms[:0]
	l.coins = l.coins[:0]
	l.obstacles = l.obstacles[:0]
	l.rng = rand.New(rand.NewSource(seed))

	sp := l.cfg.Level.StartPlatform
	start := Platform{core.NewBox(sp.X, l.cfg.World.Height-sp.YOffset, sp.Width, sp.Height)}
	l.platforms = append(l.platforms, start)
	l.last = start
	l.frontier = start.Right()

	limit := sp.X + l.cfg.Level.InitialSpan*l.cfg.World.Width
	for l.frontier < limit {
		l.generate(0)
	}
}

// Platforms returns the active platforms.
func (l *Level) Platforms() []Platform {
	return l.platforms
}

// Coins returns the uncollected coins.
func (l *Level) Coins() []Coin {
	return l.coins
}

// Obstacles returns the active obstacles.
func (l *Level) Obstacles() []Obstacle {
	return l.obstacles
}

// Frontier returns the right edge of the newest generated platform.
func (l *Level) Frontier() float64 {
	return l.frontier
}

// Update generates what is ahead of the camera and prunes what fell behind
// it. Extending first lets a burst after a camera jump be pruned in the same
// tick.
func (l *Level) Update(cameraX float64, score int) {
	l.Extend(cameraX, score)
	l.Prune(cameraX)
}

// Prune drops entities whose right edge is further than the prune margin
// behind cameraX.
func (l *Level) Prune(cameraX float64) {
	edge := cameraX - l.cfg.Level.PruneMargin

	platforms := l.platforms[:0]
	for _, p := range l.platforms {
		if p.Right() >= edge {
			platforms = append(platforms, p)
		}
	}
	l.platforms = platforms

	coins := l.coins[:0]
	for _, c := range l.coins {
		if c.Right() >= edge {
			coins = append(coins, c)
		}
	}
	l.coins = coins

	obstacles := l.obstacles[:0]
	for _, o := range l.obstacles {
		if o.Right() >= edge {
			obstacles = append(obstacles, o)
		}
	}
	l.obstacles = obstacles
}

// Extend generates platforms until the frontier reaches the lookahead
// distance past cameraX. A large camera jump generates a burst.
func (l *Level) Extend(cameraX float64, score int) {
	target := cameraX + l.cfg.Level.Lookahead*l.cfg.World.Width
	for l.frontier < target {
		l.generate(score)
	}
}

// generate appends one platform after the frontier, with an optional coin
// above it and an optional obstacle right after it.
func (l *Level) generate(score int) {
	gap := l.difficulty.Gap(l.profile.Gap, score, l.frontier)
	x := l.frontier + gap.Lerp(l.rng.Float64())

	h := l.cfg.World.Height
	width := l.profile.PlatformWidth.Lerp(l.rng.Float64())
	height := l.profile.PlatformHeight.Lerp(l.rng.Float64())
	y := h - height - l.rng.Float64()*(h/2)

	if l.cfg.Level.Reachable && l.maxRise > 0 {
		highest := l.last.Y - l.cfg.Level.ReachMargin*l.maxRise
		y = min(max(y, highest), h-height)
	}

	p := Platform{core.NewBox(x, y, width, height)}
	l.platforms = append(l.platforms, p)
	l.last = p
	l.frontier = p.Right()

	if l.rng.Float64() < l.cfg.Level.CoinChance {
		l.coins = append(l.coins, l.coinAbove(p))
	}
	if l.rng.Float64() < l.difficulty.ObstacleChance(l.cfg.Level.ObstacleChance, score, l.frontier) {
		l.obstacles = append(l.obstacles, l.obstacleAfter(p))
	}
}

func (l *Level) coinAbove(p Platform) Coin {
	c := l.cfg.Level.Coin
	x := p.X + l.rng.Float64()*max(p.W-c.Size, 0)
	y := p.Y - c.Lift - l.rng.Float64()*c.Jitter
	return Coin{core.NewBox(x, y, c.Size, c.Size)}
}

func (l *Level) obstacleAfter(p Platform) Obstacle {
	o := l.cfg.Level.Obstacle
	return Obstacle{
		Box:     core.NewBox(p.Right(), l.cfg.World.Height-o.Size, o.Size, o.Size),
		Variant: l.rng.Intn(o.Variants),
	}
}

// takeCoins removes every coin overlapping box and returns how many it removed.
func (l *Level) takeCoins(box core.Box) int {
	taken := 0
	coins := l.coins[:0]
	for _, c := range l.coins {
		if box.Intersects(c.Box) {
			taken++
			continue
		}
		coins = append(coins, c)
	}
	l.coins = coins
	return taken
}

// hitsObstacle reports whether box overlaps any obstacle.
func (l *Level) hitsObstacle(box core.Box) bool {
	for _, o := range l.obstacles {
		if box.Intersects(o.Box) {
			return true
		}
	}
	return false
}
