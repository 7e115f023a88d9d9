package crossing

import (
	"testing"

	"github.com/vovakirdan/crossing-arcade/internal/core"
)

func TestClassify(t *testing.T) {
	board := testBoard()
	rules := testRules()

	tests := []struct {
		name     string
		enemy    *Enemy
		col, row int
		want     ThreatLevel
	}{
		{
			name:  "identical position",
			enemy: placeEnemy(0, 3, 202, true, board, rules),
			col:   2,
			row:   3,
			want:  Colliding,
		},
		{
			name:  "different rows far apart",
			enemy: placeEnemy(0, 1, 202, true, board, rules),
			col:   2,
			row:   5,
			want:  Harmless,
		},
		{
			name:  "same row without overlap",
			enemy: placeEnemy(0, 3, 100, true, board, rules),
			col:   4,
			row:   3,
			want:  SameLane,
		},
		{
			name:  "edges touching",
			enemy: placeEnemy(0, 3, 303, true, board, rules),
			col:   2,
			row:   3,
			want:  SameLane,
		},
		{
			name:  "one pixel overlap",
			enemy: placeEnemy(0, 3, 302, true, board, rules),
			col:   2,
			row:   3,
			want:  Colliding,
		},
		{
			name:  "same row but waiting",
			enemy: placeEnemy(0, 3, -101, false, board, rules),
			col:   4,
			row:   3,
			want:  Harmless,
		},
		{
			name:  "neighbouring lane overlaps the tall footprint",
			enemy: placeEnemy(0, 3, 202, true, board, rules),
			col:   2,
			row:   4,
			want:  Colliding,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(board, 2, 5)
			placePlayer(p, tc.col, tc.row)

			if got := Classify(tc.enemy, p); got != tc.want {
				t.Errorf("Classify = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestThreatLevelColor(t *testing.T) {
	tests := []struct {
		level ThreatLevel
		want  core.Color
	}{
		{Harmless, core.ColorGreen},
		{SameLane, core.ColorOrange},
		{Colliding, core.ColorRed},
	}
	for _, tc := range tests {
		if got := tc.level.Color(); got != tc.want {
			t.Errorf("%v.Color() = %v, expected %v", tc.level, got, tc.want)
		}
	}
}
