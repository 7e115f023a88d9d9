package config

import "testing"

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 20},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{10, 0.5},
		{20, 1.0},
		{40, 1.0}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyLevelByTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level(ticks=50) = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpacingReduction: 100, SpawnMaxBonus: 5},
	})

	if d.IsEnabled() {
		t.Error("disabled manager should report IsEnabled() == false")
	}
	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled Level() = %v, expected initial level 0.3", got)
	}
}

func TestDifficultySpacingAndSpawnMax(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpacingReduction: 40, SpawnMaxBonus: 1},
	})

	if got := d.Spacing(101, 50, 0, 0); got != 101 {
		t.Errorf("Spacing at level 0 = %d, expected 101", got)
	}
	if got := d.Spacing(101, 50, 10, 0); got != 61 {
		t.Errorf("Spacing at level 1 = %d, expected 61", got)
	}
	if got := d.Spacing(60, 50, 10, 0); got != 50 {
		t.Errorf("Spacing should not drop below floor, got %d", got)
	}

	if got := d.SpawnMax(3, 5, 0); got != 3 {
		t.Errorf("SpawnMax at level 0.5 = %d, expected 3", got)
	}
	if got := d.SpawnMax(3, 10, 0); got != 4 {
		t.Errorf("SpawnMax at level 1 = %d, expected 4", got)
	}
}
