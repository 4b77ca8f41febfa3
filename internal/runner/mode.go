package runner

import (
	"time"

	"github.com/vovakirdan/espresso-rush/internal/config"
)

// PowerMode is the progression state of the runner.
type PowerMode int

const (
	ModeNormal     PowerMode = iota // Coffee count below the fireball unlock
	ModeFireball                    // Fireballs unlocked; standing state
	ModePowerBurst                  // Timed: milk immunity and boosted speed
)

// String returns the mode name.
func (m PowerMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFireball:
		return "fireball"
	case ModePowerBurst:
		return "power_burst"
	default:
		return "unknown"
	}
}

// Transition describes a mode change produced by the controller.
type Transition struct {
	From, To PowerMode
}

// ModeController is the explicit state machine for Normal -> Fireball ->
// PowerBurst. The burst is timed by a wall-clock deadline checked in Update.
type ModeController struct {
	cfg        config.RunnerModes
	state      PowerMode
	burstUntil time.Time // Zero when no burst is pending
}

// NewModeController creates a controller in the Normal state.
func NewModeController(cfg config.RunnerModes) *ModeController {
	return &ModeController{cfg: cfg}
}

// State returns the current mode.
func (m *ModeController) State() PowerMode {
	return m.state
}

// CanFire reports whether fireballs are unlocked for the given coffee count.
func (m *ModeController) CanFire(coffeeCount int) bool {
	return coffeeCount >= m.cfg.FireballUnlockAt
}

// Bursting reports whether a power burst is running.
func (m *ModeController) Bursting() bool {
	return m.state == ModePowerBurst
}

// MilkImmune reports whether milk is harmless right now.
func (m *ModeController) MilkImmune() bool {
	return m.Bursting()
}

// BurstRemaining returns how long the current burst has left.
func (m *ModeController) BurstRemaining(now time.Time) time.Duration {
	if m.state != ModePowerBurst {
		return 0
	}
	return max(m.burstUntil.Sub(now), 0)
}

// CoffeeCollected is the count-increment hook. A burst starts only on the
// increment that lands exactly on PowerBurstAt; a running burst is left
// alone. Returns true if a burst started.
func (m *ModeController) CoffeeCollected(newCount int, now time.Time) bool {
	if newCount != m.cfg.PowerBurstAt || m.state == ModePowerBurst {
		return false
	}
	m.state = ModePowerBurst
	m.burstUntil = now.Add(m.cfg.PowerBurstDuration)
	return true
}

// Update runs once per tick: it ends an expired burst and otherwise derives
// the standing state from the coffee count. Returns the transition taken, if any.
func (m *ModeController) Update(coffeeCount int, now time.Time) (Transition, bool) {
	from := m.state

	if m.state == ModePowerBurst {
		if now.Before(m.burstUntil) {
			return Transition{}, false
		}
		m.burstUntil = time.Time{}
	}

	if m.CanFire(coffeeCount) {
		m.state = ModeFireball
	} else {
		m.state = ModeNormal
	}

	if m.state == from {
		return Transition{}, false
	}
	return Transition{From: from, To: m.state}, true
}

// Shift moves a pending deadline forward by d. Used to freeze the burst
// timer while the game is paused.
func (m *ModeController) Shift(d time.Duration) {
	if !m.burstUntil.IsZero() {
		m.burstUntil = m.burstUntil.Add(d)
	}
}

// Stop clears any pending deadline. The standing state is kept for display.
func (m *ModeController) Stop() {
	m.burstUntil = time.Time{}
	if m.state == ModePowerBurst {
		m.state = ModeFireball
	}
}

// Reset returns the controller to Normal with nothing pending.
func (m *ModeController) Reset() {
	m.state = ModeNormal
	m.burstUntil = time.Time{}
}
