// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import "time"

// RunnerConfig contains all tuning for the lane runner.
// Vertical positions use a 0-100 scale (percent of screen height).
type RunnerConfig struct {
	Physics  RunnerPhysics  `yaml:"physics"`
	Player   RunnerPlayer   `yaml:"player"`
	Spawner  RunnerSpawner  `yaml:"spawner"`
	Scoring  RunnerScoring  `yaml:"scoring"`
	Modes    RunnerModes    `yaml:"modes"`
	Messages RunnerMessages `yaml:"messages"`
}

// RunnerPhysics defines movement parameters.
type RunnerPhysics struct {
	InitialSpeed          float64 `yaml:"initial_speed"`           // Fall distance per tick at run start
	MaxSpeed              float64 `yaml:"max_speed"`               // Cap outside power burst
	SpeedIncrement        float64 `yaml:"speed_increment"`         // Added per coffee
	ProjectileSpeed       float64 `yaml:"projectile_speed"`        // Rise distance per tick
	SpawnY                float64 `yaml:"spawn_y"`                 // Where collectibles appear
	DespawnY              float64 `yaml:"despawn_y"`               // Collectibles past this are removed
	ProjectileDespawnY    float64 `yaml:"projectile_despawn_y"`    // Projectiles above this are removed
	ProjectileHitDistance float64 `yaml:"projectile_hit_distance"` // Max vertical gap for a fireball hit
}

// RunnerPlayer defines the player's fixed row and hit band.
type RunnerPlayer struct {
	Row              float64 `yaml:"row"`
	HitBand          float64 `yaml:"hit_band"`          // Collectible within Row±HitBand (exclusive) hits
	ProjectileOffset float64 `yaml:"projectile_offset"` // Fireballs start this far above the row
}

// RunnerSpawner defines spawn cadence and mix.
type RunnerSpawner struct {
	BaseInterval int     `yaml:"base_interval"` // Ticks between spawns at initial speed
	MinInterval  int     `yaml:"min_interval"`  // Floor for the interval at high speed
	CoffeeChance float64 `yaml:"coffee_chance"` // Probability a spawn is coffee
}

// RunnerScoring defines point awards.
type RunnerScoring struct {
	TickPoints         int `yaml:"tick_points"`
	CoffeePoints       int `yaml:"coffee_points"`
	ProjectileKill     int `yaml:"projectile_kill"`
	ShieldBouncePoints int `yaml:"shield_bounce"`
}

// RunnerModes defines the progression thresholds and timed modes.
type RunnerModes struct {
	SuperAt            int           `yaml:"super_at"`        // Cosmetic persona change above this count
	FireballUnlockAt   int           `yaml:"fireball_unlock"` // Fire accepted once coffeeCount reaches this
	PowerBurstAt       int           `yaml:"power_burst_at"`  // Exact count that triggers a burst
	PowerBurstSpeed    float64       `yaml:"power_burst_speed"`
	PowerBurstDuration time.Duration `yaml:"power_burst_duration"`
	ShoutDuration      time.Duration `yaml:"shout_duration"`
}

// RunnerMessages holds the in-game texts.
type RunnerMessages struct {
	Shout string `yaml:"shout"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
