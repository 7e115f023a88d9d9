package crossing

import (
	"testing"

	"github.com/vovakirdan/crossing-arcade/internal/config"
)

// seqSource replays fixed values so lane draws are predictable.
type seqSource struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *seqSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)] % n
	s.i++
	return v
}

func (s *seqSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}

func testBoard() Board {
	return NewBoard(config.DefaultCrossingConfig().Board)
}

func testRules() *SpawnRules {
	r := NewSpawnRules(config.DefaultCrossingConfig().Enemies)
	return &r
}

// placeEnemy builds an enemy at a fixed lane and position.
func placeEnemy(id, row, x int, moving bool, board Board, rules *SpawnRules) *Enemy {
	return &Enemy{
		ID:     id,
		Row:    row,
		X:      x,
		Y:      row * board.RowHeight,
		Moving: moving,
		Speed:  rules.LaneSpeed(row),
		board:  board,
		rules:  rules,
	}
}

// placePlayer moves a player straight to a tile.
func placePlayer(p *Player, col, row int) {
	p.Col, p.Row = col, row
	p.X, p.Y = col*p.board.ColWidth, row*p.board.RowHeight
	p.moved = false
}

// fixedConfig returns defaults without progression and with a pinned fleet.
func fixedConfig(enemies int) config.CrossingConfig {
	cfg := config.DefaultCrossingConfig()
	cfg.Difficulty.Enabled = false
	cfg.Enemies.MinCount = enemies
	cfg.Enemies.MaxCount = enemies
	return cfg
}

func checkEnemyInvariants(t *testing.T, e *Enemy, rules *SpawnRules) {
	t.Helper()
	if e.Row < 1 || e.Row > rules.Lanes {
		t.Errorf("enemy %d: row %d outside 1..%d", e.ID, e.Row, rules.Lanes)
	}
	if e.Speed != (4-e.Row)*110 {
		t.Errorf("enemy %d: speed %d, expected %d for row %d", e.ID, e.Speed, (4-e.Row)*110, e.Row)
	}
	if !e.Moving && e.X != -101 {
		t.Errorf("enemy %d: waiting enemy at x=%d, expected -101", e.ID, e.X)
	}
}
