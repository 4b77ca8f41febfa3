package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration. It matches
// the embedded YAML and is used when that cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			InitialSpeed:          0.6,
			MaxSpeed:              2.5,
			SpeedIncrement:        0.05,
			ProjectileSpeed:       2,
			SpawnY:                -20,
			DespawnY:              110,
			ProjectileDespawnY:    -20,
			ProjectileHitDistance: 10,
		},
		Player: RunnerPlayer{
			Row:              80,
			HitBand:          5,
			ProjectileOffset: 5,
		},
		Spawner: RunnerSpawner{
			BaseInterval: 60,
			MinInterval:  20,
			CoffeeChance: 0.7,
		},
		Scoring: RunnerScoring{
			TickPoints:         1,
			CoffeePoints:       100,
			ProjectileKill:     50,
			ShieldBouncePoints: 50,
		},
		Modes: RunnerModes{
			SuperAt:            5,
			FireballUnlockAt:   15,
			PowerBurstAt:       25,
			PowerBurstSpeed:    3.5,
			PowerBurstDuration: 8 * time.Second,
			ShoutDuration:      time.Second,
		},
		Messages: RunnerMessages{
			Shout: "Kaffi-og-með-í!",
		},
	}
}

// DefaultYAML returns the embedded default runner YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
