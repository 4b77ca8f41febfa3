package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/espresso-rush/internal/config"
	"github.com/vovakirdan/espresso-rush/internal/core"
)

var testEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// quietConfig returns the default tuning with random spawning pushed far
// out so tests control every entity.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.BaseInterval = 1 << 30
	cfg.Spawner.MinInterval = 1 << 30
	return cfg
}

func newTestGame(t *testing.T, cfg config.RunnerConfig) (*Game, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(testEpoch)
	g := New(cfg, clock)
	g.Start(core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 42})
	return g, clock
}

// dropAtPlayer places a collectible so that the next Step moves it onto
// the player's row.
func dropAtPlayer(g *Game, kind Kind) {
	c := g.store.SpawnAt(g.player.Lane, kind)
	last := &g.store.collectibles[len(g.store.collectibles)-1]
	if last.ID != c.ID {
		panic("unexpected store order")
	}
	last.Y = g.cfg.Player.Row - g.player.Speed
}

// collectCoffees feeds n coffees to the player, one per tick.
func collectCoffees(t *testing.T, g *Game, n int) []core.Event {
	t.Helper()
	var events []core.Event
	for i := 0; i < n; i++ {
		dropAtPlayer(g, KindCoffee)
		res := g.Step(core.NewInputFrame())
		if res.State.GameOver {
			t.Fatalf("run ended while collecting coffee %d", i+1)
		}
		events = append(events, res.Events...)
	}
	return events
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
