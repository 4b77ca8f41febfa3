package runner

import (
	"time"

	"github.com/vovakirdan/espresso-rush/internal/core"
)

// resolveProjectileHits destroys milk cartons struck by fireballs. A
// fireball is spent by its first hit.
func (g *Game) resolveProjectileHits() {
	hitDist := g.cfg.Physics.ProjectileHitDistance
	cs := g.store.collectibles

	for pi := range g.store.projectiles {
		p := &g.store.projectiles[pi]
		if p.Spent {
			continue
		}
		for ci := range cs {
			c := &cs[ci]
			if c.Collected || c.Kind != KindMilk || c.Lane != p.Lane {
				continue
			}
			if core.AbsF(c.Y-p.Y) < hitDist {
				c.Collected = true
				p.Spent = true
				g.score += g.cfg.Scoring.ProjectileKill
				g.emit(core.EventMilkDestroyed, g.score)
				break
			}
		}
	}
}

// resolvePlayerHits handles collectibles reaching the player's row in the
// player's lane, in store order. Returns true when unmasked milk ends the run.
func (g *Game) resolvePlayerHits(now time.Time) bool {
	row := g.cfg.Player.Row
	band := g.cfg.Player.HitBand
	cs := g.store.collectibles

	for i := range cs {
		c := &cs[i]
		if c.Collected || c.Lane != g.player.Lane {
			continue
		}
		if c.Y <= row-band || c.Y >= row+band {
			continue
		}

		switch c.Kind {
		case KindCoffee:
			g.collectCoffee(c, now)
		case KindMilk:
			if !g.modes.MilkImmune() {
				return true
			}
			c.Collected = true
			g.score += g.cfg.Scoring.ShieldBouncePoints
			g.emit(core.EventShieldBounce, g.score)
		}
	}
	return false
}

func (g *Game) collectCoffee(c *Collectible, now time.Time) {
	c.Collected = true
	g.player.CoffeeCount++
	g.score += g.cfg.Scoring.CoffeePoints

	if !g.modes.Bursting() {
		g.player.Speed = min(g.player.Speed+g.cfg.Physics.SpeedIncrement, g.cfg.Physics.MaxSpeed)
	}

	g.shout(now)
	g.emit(core.EventCoffeeCollected, g.player.CoffeeCount)
	g.startBurst(now)
}
