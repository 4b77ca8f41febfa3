package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/espresso-rush/internal/config"
)

func TestModeControllerStandingState(t *testing.T) {
	m := NewModeController(config.DefaultRunnerConfig().Modes)
	now := testEpoch

	tests := []struct {
		count   int
		want    PowerMode
		changed bool
	}{
		{0, ModeNormal, false},
		{14, ModeNormal, false},
		{15, ModeFireball, true},
		{16, ModeFireball, false},
	}

	for _, tt := range tests {
		tr, changed := m.Update(tt.count, now)
		if changed != tt.changed {
			t.Errorf("Update(%d) changed = %v, expected %v", tt.count, changed, tt.changed)
		}
		if m.State() != tt.want {
			t.Errorf("Update(%d) state = %v, expected %v", tt.count, m.State(), tt.want)
		}
		if changed && tr.To != tt.want {
			t.Errorf("Update(%d) transition to %v, expected %v", tt.count, tr.To, tt.want)
		}
	}
}

func TestModeControllerCanFire(t *testing.T) {
	m := NewModeController(config.DefaultRunnerConfig().Modes)

	tests := []struct {
		count int
		want  bool
	}{
		{0, false},
		{14, false},
		{15, true},
		{16, true},
		{40, true},
	}

	for _, tt := range tests {
		if got := m.CanFire(tt.count); got != tt.want {
			t.Errorf("CanFire(%d) = %v, expected %v", tt.count, got, tt.want)
		}
	}
}

func TestModeControllerBurstEdgeTriggered(t *testing.T) {
	m := NewModeController(config.DefaultRunnerConfig().Modes)
	now := testEpoch

	if m.CoffeeCollected(24, now) {
		t.Error("burst should not start at 24")
	}
	if !m.CoffeeCollected(25, now) {
		t.Fatal("burst should start at exactly 25")
	}
	if m.CoffeeCollected(25, now) {
		t.Error("running burst must not restart")
	}
	if !m.MilkImmune() {
		t.Error("expected milk immunity during burst")
	}

	// Burst ended: passing 25 again never re-triggers.
	m.Update(25, now.Add(8*time.Second))
	if m.Bursting() {
		t.Fatal("burst should have expired")
	}
	if m.CoffeeCollected(26, now.Add(9*time.Second)) {
		t.Error("burst should only start on the increment that lands on 25")
	}
}

func TestModeControllerBurstExpiry(t *testing.T) {
	m := NewModeController(config.DefaultRunnerConfig().Modes)
	now := testEpoch
	m.CoffeeCollected(25, now)

	if _, changed := m.Update(25, now.Add(7999*time.Millisecond)); changed {
		t.Error("burst ended early")
	}
	if rem := m.BurstRemaining(now.Add(6 * time.Second)); rem != 2*time.Second {
		t.Errorf("BurstRemaining = %v, expected 2s", rem)
	}

	tr, changed := m.Update(25, now.Add(8*time.Second))
	if !changed || tr.From != ModePowerBurst || tr.To != ModeFireball {
		t.Errorf("expected power_burst -> fireball, got %+v (changed=%v)", tr, changed)
	}
	if m.BurstRemaining(now.Add(8*time.Second)) != 0 {
		t.Error("no time should remain after expiry")
	}
}

func TestModeControllerShiftAndStop(t *testing.T) {
	m := NewModeController(config.DefaultRunnerConfig().Modes)
	now := testEpoch
	m.CoffeeCollected(25, now)

	m.Shift(time.Minute)
	if _, changed := m.Update(25, now.Add(time.Minute)); changed {
		t.Error("shifted burst should still be running")
	}

	m.Stop()
	if m.Bursting() {
		t.Error("Stop should end the burst")
	}
	if _, changed := m.Update(25, now.Add(time.Hour)); changed {
		t.Error("stopped controller should not produce a transition")
	}

	m.Reset()
	if m.State() != ModeNormal {
		t.Errorf("Reset state = %v, expected normal", m.State())
	}
}
