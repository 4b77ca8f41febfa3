package runner

import (
	"math"

	"github.com/vovakirdan/espresso-rush/internal/config"
)

// Spawner decides on which ticks a new collectible appears.
type Spawner struct {
	baseInterval int
	minInterval  int
	initialSpeed float64
}

// NewSpawner creates a spawner from config.
func NewSpawner(cfg config.RunnerConfig) Spawner {
	return Spawner{
		baseInterval: cfg.Spawner.BaseInterval,
		minInterval:  cfg.Spawner.MinInterval,
		initialSpeed: cfg.Physics.InitialSpeed,
	}
}

// Interval returns the spawn interval in ticks for the given speed:
// max(floor(base / (speed/initial)), min), and never below 1.
func (s Spawner) Interval(speed float64) int {
	interval := s.baseInterval
	if speed > 0 && s.initialSpeed > 0 {
		ratio := speed / s.initialSpeed
		interval = int(math.Floor(float64(s.baseInterval) / ratio))
	}
	return max(interval, s.minInterval, 1)
}

// Due reports whether a spawn fires on this tick. The interval is recomputed
// from the current speed every time, so a speed change can shift the phase.
func (s Spawner) Due(tick uint64, speed float64) bool {
	return tick%uint64(s.Interval(speed)) == 0
}
