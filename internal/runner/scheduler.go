package runner

import (
	"context"
	"time"

	"github.com/vovakirdan/espresso-rush/internal/core"
)

// Driver supplies the input for the next tick from the latest snapshot.
type Driver func(snap Snapshot) core.InputFrame

// Scheduler runs a game headlessly: one Step per tick, the next tick only
// after the previous one returned. It is used by the simulate command and
// tests; the terminal UI schedules ticks through Bubble Tea instead.
type Scheduler struct {
	game     *Game
	tickRate int    // Ticks per second; 0 runs as fast as possible
	maxTicks uint64 // 0 means no limit
	onFrame  func(Snapshot)
}

// NewScheduler creates a scheduler for g.
func NewScheduler(g *Game, tickRate int) *Scheduler {
	return &Scheduler{game: g, tickRate: tickRate}
}

// SetMaxTicks caps the number of ticks a run may take.
func (s *Scheduler) SetMaxTicks(n uint64) {
	s.maxTicks = n
}

// OnFrame registers a callback that receives the snapshot after every tick.
func (s *Scheduler) OnFrame(fn func(Snapshot)) {
	s.onFrame = fn
}

// Run starts a run and ticks it until it ends, the tick cap is reached, or
// ctx is cancelled. The returned bool is false when the run did not end on
// its own; the game is stopped either way.
func (s *Scheduler) Run(ctx context.Context, runtime core.RuntimeConfig, drive Driver) (RunSummary, bool, error) {
	s.game.Start(runtime)
	defer s.game.Stop()

	var tick <-chan time.Time
	if s.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	snap := s.game.Snapshot()
	for n := uint64(0); s.maxTicks == 0 || n < s.maxTicks; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return RunSummary{}, false, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return RunSummary{}, false, err
		}

		in := core.NewInputFrame()
		if drive != nil {
			in = drive(snap)
		}
		s.game.Step(in)

		snap = s.game.Snapshot()
		if s.onFrame != nil {
			s.onFrame(snap)
		}
		if summary, ok := s.game.Summary(); ok {
			return summary, true, nil
		}
	}
	return RunSummary{}, false, nil
}
