package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default Bug Crossing configuration.
// It mirrors defaults/crossing.yaml and is used when the embedded file
// cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: CrossingBoard{
			ColWidth:     101,
			RowHeight:    83,
			NumCols:      5,
			NumRows:      6,
			EntityWidth:  101,
			EntityHeight: 170,
		},
		Enemies: CrossingEnemies{
			MinCount:      3,
			MaxCount:      6,
			Lanes:         3,
			SpawnMax:      3,
			SpawnDistance: 101,
			RowSpeedUnit:  110,
		},
		Player: CrossingPlayer{
			StartCol: 2,
			StartRow: 5,
		},
		Rules: CrossingRules{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpacingReduction: 40,
				SpawnMaxBonus:    1,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing", "crossing_hardcore":
		return defaultCrossingYAML
	default:
		return nil
	}
}
