package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRunner(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML diverged from DefaultRunnerConfig():\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte("physics:\n  initial_speed: 1.0\nmodes:\n  power_burst_duration: 5s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.InitialSpeed != 1.0 {
		t.Errorf("InitialSpeed = %v, expected 1.0", cfg.Physics.InitialSpeed)
	}
	if cfg.Modes.PowerBurstDuration != 5*time.Second {
		t.Errorf("PowerBurstDuration = %v, expected 5s", cfg.Modes.PowerBurstDuration)
	}
	// Untouched keys keep defaults
	if cfg.Physics.MaxSpeed != 2.5 {
		t.Errorf("MaxSpeed = %v, expected default 2.5", cfg.Physics.MaxSpeed)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadRunner() should fail for a missing custom path")
	}
}

func TestLoadRunnerBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("LoadRunner() should fail for malformed YAML")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantInitial float64
		wantInc     float64
	}{
		{"", 0.6, 0.05},
		{DifficultyNormal, 0.6, 0.05},
		{DifficultyEasy, 0.45, 0.05},
		{DifficultyHard, 0.8, 0.05},
		{DifficultyFixed, 0.6, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tc.preset)
			if cfg.Physics.InitialSpeed != tc.wantInitial {
				t.Errorf("InitialSpeed = %v, expected %v", cfg.Physics.InitialSpeed, tc.wantInitial)
			}
			if cfg.Physics.SpeedIncrement != tc.wantInc {
				t.Errorf("SpeedIncrement = %v, expected %v", cfg.Physics.SpeedIncrement, tc.wantInc)
			}
			if cfg.Modes.PowerBurstSpeed <= cfg.Physics.MaxSpeed {
				t.Error("burst speed must stay above max speed")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("ParsePreset should reject unknown presets")
	}
}
