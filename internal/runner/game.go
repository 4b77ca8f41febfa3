// Package runner implements Espresso Rush, a three-lane runner: catch falling
// coffee to speed up, dodge milk, unlock fireballs and a timed power burst.
//
// Game holds the authoritative simulation state and is advanced one tick at a
// time by Step. It never blocks and never starts goroutines; wall-clock
// timers are deadlines compared against the injected Clock each tick.
package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/espresso-rush/internal/config"
	"github.com/vovakirdan/espresso-rush/internal/core"
)

// ID and Title identify the game for storage and display.
const (
	ID    = "espresso"
	Title = "Espresso Rush"
)

// Phase is the run lifecycle as seen by the presentation layer.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// RunSummary is produced once, when a run ends.
type RunSummary struct {
	Score       int
	CoffeeCount int
	Ticks       uint64
	PeakMode    PowerMode
	StartedAt   time.Time
	EndedAt     time.Time
}

// Game implements the runner simulation.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	clock   core.Clock

	store   *EntityStore
	spawner Spawner
	modes   *ModeController
	player  PlayerState

	phase     Phase
	paused    bool
	pausedAt  time.Time
	score     int
	tick      uint64
	peakMode  PowerMode
	startedAt time.Time

	shoutUntil time.Time // Zero when no shout is showing
	summary    *RunSummary
	events     []core.Event
}

// New creates a game that has not started yet. A nil clock uses the system clock.
func New(cfg config.RunnerConfig, clock core.Clock) *Game {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Game{
		cfg:     cfg,
		clock:   clock,
		store:   NewEntityStore(rand.New(rand.NewSource(0)), cfg),
		spawner: NewSpawner(cfg),
		modes:   NewModeController(cfg.Modes),
		phase:   PhaseNotStarted,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Start begins a fresh run, discarding everything from the previous one.
func (g *Game) Start(runtime core.RuntimeConfig) {
	g.Stop()

	g.runtime = runtime
	g.store.Reset(rand.New(rand.NewSource(runtime.Seed)))
	g.modes.Reset()
	g.player = PlayerState{
		Lane:  LaneCenter,
		Speed: g.cfg.Physics.InitialSpeed,
	}

	g.phase = PhasePlaying
	g.paused = false
	g.pausedAt = time.Time{}
	g.score = 0
	g.tick = 0
	g.peakMode = ModeNormal
	g.startedAt = g.clock.Now()
	g.shoutUntil = time.Time{}
	g.summary = nil
	g.events = nil
}

// Stop cancels every pending deadline so nothing changes after the run is
// over. The phase is left as is.
func (g *Game) Stop() {
	g.modes.Stop()
	g.shoutUntil = time.Time{}
}

// Apply handles a discrete player command immediately. Moves clamp at the
// road edges; Fire is ignored until fireballs are unlocked. Returns whether
// the command changed anything.
func (g *Game) Apply(a core.Action) bool {
	if g.phase != PhasePlaying || g.paused {
		return false
	}

	switch a {
	case core.ActionLeft:
		before := g.player.Lane
		g.player.MoveLeft()
		return g.player.Lane != before
	case core.ActionRight:
		before := g.player.Lane
		g.player.MoveRight()
		return g.player.Lane != before
	case core.ActionFire:
		if !g.modes.CanFire(g.player.CoffeeCount) {
			return false
		}
		g.store.FireProjectile(g.player.Lane)
		return true
	}
	return false
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase != PhasePlaying {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.events = nil
	for _, a := range [...]core.Action{core.ActionLeft, core.ActionRight, core.ActionFire} {
		if in.Has(a) {
			g.Apply(a)
		}
	}

	now := g.clock.Now()

	g.store.Advance(g.player.Speed)
	g.store.Prune()
	g.updateModes(now)

	g.resolveProjectileHits()
	if g.resolvePlayerHits(now) {
		g.endRun(now)
		return core.StepResult{State: g.State(), Events: g.events}
	}

	g.tick++
	if g.spawner.Due(g.tick, g.player.Speed) {
		g.store.SpawnRandom()
	}

	g.score += g.cfg.Scoring.TickPoints

	if !g.shoutUntil.IsZero() && !now.Before(g.shoutUntil) {
		g.shoutUntil = time.Time{}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// updateModes is the single place the mode state machine is evaluated.
func (g *Game) updateModes(now time.Time) {
	tr, changed := g.modes.Update(g.player.CoffeeCount, now)
	if !changed {
		return
	}

	if tr.From == ModePowerBurst {
		g.player.Speed = min(g.player.Speed, g.cfg.Physics.MaxSpeed)
		g.emit(core.EventPowerBurstEnded, g.player.CoffeeCount)
	}
	if tr.To == ModeFireball && tr.From == ModeNormal {
		g.emit(core.EventFireballUnlocked, g.player.CoffeeCount)
	}
	g.notePeak(tr.To)
}

func (g *Game) startBurst(now time.Time) {
	if !g.modes.CoffeeCollected(g.player.CoffeeCount, now) {
		return
	}
	g.player.Speed = g.cfg.Modes.PowerBurstSpeed
	g.notePeak(ModePowerBurst)
	g.emit(core.EventPowerBurstStarted, g.player.CoffeeCount)
}

func (g *Game) notePeak(m PowerMode) {
	if m > g.peakMode {
		g.peakMode = m
	}
}

func (g *Game) shout(now time.Time) {
	// A new pickup replaces the pending expiry rather than stacking.
	g.shoutUntil = now.Add(g.cfg.Modes.ShoutDuration)
}

func (g *Game) togglePause() {
	now := g.clock.Now()
	if !g.paused {
		g.paused = true
		g.pausedAt = now
		return
	}

	// Push deadlines out by the time spent paused.
	d := now.Sub(g.pausedAt)
	g.modes.Shift(d)
	if !g.shoutUntil.IsZero() {
		g.shoutUntil = g.shoutUntil.Add(d)
	}
	g.paused = false
	g.pausedAt = time.Time{}
}

func (g *Game) endRun(now time.Time) {
	g.Stop()
	g.phase = PhaseOver
	g.summary = &RunSummary{
		Score:       g.score,
		CoffeeCount: g.player.CoffeeCount,
		Ticks:       g.tick,
		PeakMode:    g.peakMode,
		StartedAt:   g.startedAt,
		EndedAt:     now,
	}
	g.emit(core.EventRunOver, g.score)
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// Summary returns the summary of the finished run. The bool is false while
// the run is still going or has not started.
func (g *Game) Summary() (RunSummary, bool) {
	if g.summary == nil {
		return RunSummary{}, false
	}
	return *g.summary, true
}

// Phase returns the current run phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}
