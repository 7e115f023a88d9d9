// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// CrossingConfig contains all configuration for the Bug Crossing game.
type CrossingConfig struct {
	Board      CrossingBoard    `yaml:"board"`
	Enemies    CrossingEnemies  `yaml:"enemies"`
	Player     CrossingPlayer   `yaml:"player"`
	Rules      CrossingRules    `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrossingBoard defines the world geometry in world pixels.
type CrossingBoard struct {
	ColWidth     int `yaml:"col_width"`
	RowHeight    int `yaml:"row_height"`
	NumCols      int `yaml:"num_cols"`
	NumRows      int `yaml:"num_rows"`
	EntityWidth  int `yaml:"entity_width"`  // Collision footprint width
	EntityHeight int `yaml:"entity_height"` // Collision footprint height, taller than a row
}

// CrossingEnemies defines enemy fleet and spawn gating parameters.
type CrossingEnemies struct {
	MinCount      int `yaml:"min_count"`
	MaxCount      int `yaml:"max_count"`
	Lanes         int `yaml:"lanes"`          // Enemy rows, starting at row 1
	SpawnMax      int `yaml:"spawn_max"`      // Max moving enemies per lane
	SpawnDistance int `yaml:"spawn_distance"` // Min gap to the previous enemy in the lane
	RowSpeedUnit  int `yaml:"row_speed_unit"` // Pixels per second per lane step
}

// CrossingPlayer defines the player spawn point.
type CrossingPlayer struct {
	StartCol int `yaml:"start_col"`
	StartRow int `yaml:"start_row"`
}

// CrossingRules defines how collisions are treated.
type CrossingRules struct {
	Lives int `yaml:"lives"` // Lives in hardcore mode
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpacingReduction int `yaml:"spacing_reduction"` // Spawn distance reduction at max difficulty
	SpawnMaxBonus    int `yaml:"spawn_max_bonus"`   // Extra enemies per lane at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
