package config

// ApplyRunnerPreset modifies the speed curve for a difficulty preset.
// Normal (and the empty preset) leave the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.InitialSpeed = 0.45
		cfg.Physics.MaxSpeed = 2.0
	case DifficultyHard:
		cfg.Physics.InitialSpeed = 0.8
		cfg.Physics.MaxSpeed = 3.0
		cfg.Spawner.CoffeeChance = 0.6
	case DifficultyFixed:
		// Speed never changes: coffee still scores but does not accelerate.
		cfg.Physics.SpeedIncrement = 0
	}

	if cfg.Modes.PowerBurstSpeed <= cfg.Physics.MaxSpeed {
		cfg.Modes.PowerBurstSpeed = cfg.Physics.MaxSpeed + 1
	}
}
