package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads Bug Crossing configuration.
// Search order: customPath -> ~/.arcade/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default.
// Files are applied on top of the defaults, so partial files are allowed.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	if err := loadYAML(customPath, "crossing.yaml", defaultCrossingYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid crossing config: %w", err)
	}
	return cfg, nil
}

// loadYAML decodes the first readable source into out.
// Only an explicit customPath produces errors; the other sources fall through silently.
func loadYAML(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// A broken embed leaves out at its pre-filled defaults
	//nolint:errcheck // Embedded file is covered by tests
	yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the geometry and spawn rules describe a playable board.
func (c CrossingConfig) Validate() error {
	var errs []error

	b := c.Board
	if b.ColWidth <= 0 || b.RowHeight <= 0 {
		errs = append(errs, errors.New("board: col_width and row_height must be positive"))
	}
	if b.NumCols < 1 {
		errs = append(errs, errors.New("board: num_cols must be at least 1"))
	}
	if b.EntityWidth <= 0 || b.EntityHeight <= 0 {
		errs = append(errs, errors.New("board: entity size must be positive"))
	}

	e := c.Enemies
	if e.Lanes < 1 {
		errs = append(errs, errors.New("enemies: lanes must be at least 1"))
	}
	// Goal row on top, lanes, then at least one safe row for the player
	if b.NumRows < e.Lanes+2 {
		errs = append(errs, fmt.Errorf("board: num_rows %d cannot hold %d lanes plus goal and start rows", b.NumRows, e.Lanes))
	}
	if e.MinCount < 0 || e.MaxCount < e.MinCount {
		errs = append(errs, fmt.Errorf("enemies: invalid count range [%d, %d]", e.MinCount, e.MaxCount))
	}
	if e.SpawnMax < 1 {
		errs = append(errs, errors.New("enemies: spawn_max must be at least 1"))
	}
	if e.SpawnDistance < 0 || e.RowSpeedUnit <= 0 {
		errs = append(errs, errors.New("enemies: spawn_distance must be >= 0 and row_speed_unit > 0"))
	}

	p := c.Player
	if p.StartCol < 0 || p.StartCol >= b.NumCols || p.StartRow <= 0 || p.StartRow >= b.NumRows {
		errs = append(errs, fmt.Errorf("player: start (%d,%d) is outside the board or on the goal row", p.StartCol, p.StartRow))
	}

	if c.Rules.Lives < 1 {
		errs = append(errs, errors.New("rules: lives must be at least 1"))
	}

	return errors.Join(errs...)
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the fleet based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.MaxCount = cfg.Enemies.MinCount
		cfg.Rules.Lives = 5
	case DifficultyHard:
		cfg.Enemies.MinCount = cfg.Enemies.MaxCount
		cfg.Rules.Lives = 2
	}
}
