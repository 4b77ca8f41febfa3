package runner

import (
	"math/rand"

	"github.com/vovakirdan/espresso-rush/internal/config"
)

// Kind is the type of a falling collectible.
type Kind int

const (
	KindCoffee Kind = iota
	KindMilk
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindMilk {
		return "milk"
	}
	return "coffee"
}

// Collectible is a falling item. Y grows downward on a 0-100 scale.
type Collectible struct {
	ID        uint64
	Lane      Lane
	Y         float64
	Kind      Kind
	Collected bool
}

// Projectile is a fireball travelling up its lane.
type Projectile struct {
	ID    uint64
	Lane  Lane
	Y     float64
	Spent bool // Hit something; removed on the next prune
}

// EntityStore owns every collectible and projectile of a run. Collision code
// may flag entities but only Prune removes them.
type EntityStore struct {
	collectibles []Collectible
	projectiles  []Projectile
	nextID       uint64
	rng          *rand.Rand
	physics      config.RunnerPhysics
	player       config.RunnerPlayer
	coffeeChance float64
}

// NewEntityStore creates an empty store drawing lanes and kinds from rng.
func NewEntityStore(rng *rand.Rand, cfg config.RunnerConfig) *EntityStore {
	return &EntityStore{
		collectibles: make([]Collectible, 0, 16),
		projectiles:  make([]Projectile, 0, 8),
		rng:          rng,
		physics:      cfg.Physics,
		player:       cfg.Player,
		coffeeChance: cfg.Spawner.CoffeeChance,
	}
}

// Reset drops all entities and swaps the random source.
func (s *EntityStore) Reset(rng *rand.Rand) {
	s.collectibles = s.collectibles[:0]
	s.projectiles = s.projectiles[:0]
	s.nextID = 0
	s.rng = rng
}

func (s *EntityStore) id() uint64 {
	s.nextID++
	return s.nextID
}

// SpawnRandom creates a collectible in a uniformly random lane with a
// weighted random kind. No smoothing: runs of milk are possible.
func (s *EntityStore) SpawnRandom() Collectible {
	lane := Lane(s.rng.Intn(LaneCount)) + LaneLeft
	kind := KindMilk
	if s.rng.Float64() < s.coffeeChance {
		kind = KindCoffee
	}
	return s.SpawnAt(lane, kind)
}

// Spawn creates a collectible of the given kind in a random lane.
func (s *EntityStore) Spawn(kind Kind) Collectible {
	lane := Lane(s.rng.Intn(LaneCount)) + LaneLeft
	return s.SpawnAt(lane, kind)
}

// SpawnAt creates a collectible of the given kind in the given lane, above
// the visible area.
func (s *EntityStore) SpawnAt(lane Lane, kind Kind) Collectible {
	c := Collectible{
		ID:   s.id(),
		Lane: lane.Shift(0),
		Y:    s.physics.SpawnY,
		Kind: kind,
	}
	s.collectibles = append(s.collectibles, c)
	return c
}

// FireProjectile launches a fireball from just above the player's row.
func (s *EntityStore) FireProjectile(lane Lane) Projectile {
	p := Projectile{
		ID:   s.id(),
		Lane: lane.Shift(0),
		Y:    s.player.Row - s.player.ProjectileOffset,
	}
	s.projectiles = append(s.projectiles, p)
	return p
}

// Advance moves collectibles down by speed and projectiles up by their fixed rate.
func (s *EntityStore) Advance(speed float64) {
	for i := range s.collectibles {
		s.collectibles[i].Y += speed
	}
	for i := range s.projectiles {
		s.projectiles[i].Y -= s.physics.ProjectileSpeed
	}
}

// Prune removes collected or fallen collectibles and spent or escaped projectiles.
func (s *EntityStore) Prune() {
	kept := s.collectibles[:0]
	for _, c := range s.collectibles {
		if c.Collected || c.Y > s.physics.DespawnY {
			continue
		}
		kept = append(kept, c)
	}
	s.collectibles = kept

	keptP := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Spent || p.Y < s.physics.ProjectileDespawnY {
			continue
		}
		keptP = append(keptP, p)
	}
	s.projectiles = keptP
}

// Collectibles returns a copy of the live collectibles.
func (s *EntityStore) Collectibles() []Collectible {
	out := make([]Collectible, len(s.collectibles))
	copy(out, s.collectibles)
	return out
}

// Projectiles returns a copy of the live projectiles.
func (s *EntityStore) Projectiles() []Projectile {
	out := make([]Projectile, len(s.projectiles))
	copy(out, s.projectiles)
	return out
}

// Len returns the number of live collectibles and projectiles.
func (s *EntityStore) Len() (collectibles, projectiles int) {
	return len(s.collectibles), len(s.projectiles)
}
