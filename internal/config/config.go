// Package config provides YAML-based configuration loading and difficulty
// presets for the maze game.
package config

// Input strategy names accepted by InputConfig.Strategy.
const (
	StrategyAccelerometer = "accelerometer"
	StrategyPointer       = "pointer"
)

// MazeConfig contains all tunable parameters of the maze game.
type MazeConfig struct {
	Level    LevelConfig    `yaml:"level"`
	Sprites  SpriteConfig   `yaml:"sprites"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Input    InputConfig    `yaml:"input"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// LevelConfig selects the level resource and the tile grid metrics.
type LevelConfig struct {
	Name     string  `yaml:"name"`      // Named level resource, e.g. "level1"
	CellSize float64 `yaml:"cell_size"` // World units per tile
}

// SpriteConfig holds sprite widths in world units. Circle bodies use half the
// width as radius; walls are squares of the wall width.
type SpriteConfig struct {
	Wall   float64 `yaml:"wall"`
	Vortex float64 `yaml:"vortex"`
	Star   float64 `yaml:"star"`
	Finish float64 `yaml:"finish"`
	Player float64 `yaml:"player"`
}

// SpawnConfig is the player spawn point in world coordinates.
type SpawnConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PhysicsConfig tunes the reference physics engine.
type PhysicsConfig struct {
	GravityScale  float64 `yaml:"gravity_scale"`  // World units per steering unit (points per meter)
	LinearDamping float64 `yaml:"linear_damping"` // Fraction of velocity lost per second
	Restitution   float64 `yaml:"restitution"`    // Bounce factor against walls
	MaxSpeed      float64 `yaml:"max_speed"`      // Velocity cap in units per second, 0 = none
}

// InputConfig selects and scales the steering strategy.
type InputConfig struct {
	Strategy       string  `yaml:"strategy"`        // "accelerometer" or "pointer"
	AccelScale     float64 `yaml:"accel_scale"`     // Multiplier applied to raw acceleration
	PointerDivisor float64 `yaml:"pointer_divisor"` // Divisor applied to pointer offset
	TiltStep       float64 `yaml:"tilt_step"`       // Keyboard tilt change per key press (g)
}

// GameplayConfig holds rule parameters.
type GameplayConfig struct {
	RespawnDelayTicks int `yaml:"respawn_delay_ticks"` // Ticks between vortex hit and respawn
	Lives             int `yaml:"lives"`               // 0 = unlimited soft deaths
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty strings
// return "" which means "leave the config alone".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
