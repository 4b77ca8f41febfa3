package runner

import "time"

// Persona is the cosmetic character shown for the current progress.
type Persona string

const (
	PersonaMarta  Persona = "Marta"
	PersonaSuper  Persona = "Super-Baginska"
	PersonaEmilia Persona = "Emilía"
)

// Snapshot is an immutable copy of everything the presentation layer needs
// to draw one frame.
type Snapshot struct {
	Phase          Phase
	Paused         bool
	Tick           uint64
	Score          int
	CoffeeCount    int
	Speed          float64
	SpeedRatio     float64 // Speed relative to the initial speed
	Lane           Lane
	Mode           PowerMode
	Persona        Persona
	CanFire        bool
	Message        string // Active shout, empty for none
	BurstRemaining time.Duration
	Collectibles   []Collectible
	Projectiles    []Projectile
}

// Snapshot returns the current frame state. The slices are copies.
func (g *Game) Snapshot() Snapshot {
	now := g.clock.Now()
	if g.paused {
		now = g.pausedAt
	}

	msg := ""
	if !g.shoutUntil.IsZero() && now.Before(g.shoutUntil) {
		msg = g.cfg.Messages.Shout
	}

	ratio := 1.0
	if g.cfg.Physics.InitialSpeed > 0 && g.player.Speed > 0 {
		ratio = g.player.Speed / g.cfg.Physics.InitialSpeed
	}

	return Snapshot{
		Phase:          g.phase,
		Paused:         g.paused,
		Tick:           g.tick,
		Score:          g.score,
		CoffeeCount:    g.player.CoffeeCount,
		Speed:          g.player.Speed,
		SpeedRatio:     ratio,
		Lane:           g.player.Lane,
		Mode:           g.modes.State(),
		Persona:        g.persona(),
		CanFire:        g.modes.CanFire(g.player.CoffeeCount),
		Message:        msg,
		BurstRemaining: g.modes.BurstRemaining(now),
		Collectibles:   g.store.Collectibles(),
		Projectiles:    g.store.Projectiles(),
	}
}

func (g *Game) persona() Persona {
	count := g.player.CoffeeCount
	switch {
	case g.modes.CanFire(count):
		return PersonaEmilia
	case count > g.cfg.Modes.SuperAt:
		return PersonaSuper
	default:
		return PersonaMarta
	}
}
