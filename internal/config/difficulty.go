package config

// ApplyMazePreset modifies the config based on a difficulty preset.
// Easy damps the ball harder and caps its speed; hard lets it run and
// limits soft deaths to three lives. Normal keeps the file values.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.LinearDamping = 1.2
		cfg.Physics.MaxSpeed = 500
		cfg.Gameplay.Lives = 0
	case DifficultyHard:
		cfg.Physics.LinearDamping = 0.2
		cfg.Physics.MaxSpeed = 1400
		cfg.Gameplay.Lives = 3
	}
}
