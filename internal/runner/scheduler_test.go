package runner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/espresso-rush/internal/config"
	"github.com/vovakirdan/espresso-rush/internal/core"
)

func TestSchedulerRunsUntilCrash(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), core.NewManualClock(testEpoch))
	s := NewScheduler(g, 0)
	s.SetMaxTicks(100000)

	frames := 0
	s.OnFrame(func(Snapshot) { frames++ })

	// With no input the runner stays in the center lane until milk arrives.
	summary, ended, err := s.Run(context.Background(), core.RuntimeConfig{Seed: 9}, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !ended {
		t.Fatal("an idle runner should eventually crash")
	}
	if frames == 0 {
		t.Error("OnFrame was never called")
	}
	if summary.Ticks == 0 || summary.Score < int(summary.Ticks) {
		t.Errorf("unexpected summary %+v", summary)
	}
}

func TestSchedulerMaxTicks(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), core.NewManualClock(testEpoch))
	s := NewScheduler(g, 0)
	s.SetMaxTicks(10)

	_, ended, err := s.Run(context.Background(), core.RuntimeConfig{Seed: 1}, Autopilot(80))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if ended {
		t.Error("run should not end within 10 ticks")
	}
	if g.Snapshot().Tick != 10 {
		t.Errorf("Tick = %d, expected 10", g.Snapshot().Tick)
	}
}

func TestSchedulerContextCancel(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), core.NewManualClock(testEpoch))
	s := NewScheduler(g, 60)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ended, err := s.Run(ctx, core.RuntimeConfig{Seed: 1}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if ended {
		t.Error("cancelled run should not report an ending")
	}
}

func TestRenderTitleAndRun(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), core.NewManualClock(testEpoch))
	screen := core.NewScreen(60, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "ESPRESSO") {
		t.Error("title screen should show the game name")
	}

	g.Start(core.RuntimeConfig{Seed: 1})
	g.Render(screen)

	x := laneX(screen, LaneCenter)
	y := rowY(screen, g.cfg.Player.Row)
	if screen.Get(x, y) != PlayerChar {
		t.Errorf("expected player at (%d,%d), got %q", x, y, screen.Get(x, y))
	}
	if !strings.Contains(screen.String(), "SCORE 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(screen.String(), string(PersonaMarta)) {
		t.Error("persona label missing")
	}
}

func TestRenderCrashTitle(t *testing.T) {
	tests := []struct {
		persona Persona
		want    string
	}{
		{PersonaMarta, "MARTA CRASHED!"},
		{PersonaSuper, "SUPER CRASH!"},
		{PersonaEmilia, "EMILÍA BURNED OUT!"},
	}

	for _, tt := range tests {
		if got := crashTitle(tt.persona); got != tt.want {
			t.Errorf("crashTitle(%v) = %q, expected %q", tt.persona, got, tt.want)
		}
	}
}
