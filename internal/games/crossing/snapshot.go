package crossing

import "github.com/vovakirdan/crossing-arcade/internal/core"

// Sprite identifiers handed to renderers.
const (
	SpriteEnemy  = "enemy-bug"
	SpritePlayer = "char-boy"
)

// EntitySnapshot is a read-only view of one entity.
type EntitySnapshot struct {
	ID     int
	Sprite string
	X, Y   int
	Row    int
	Moving bool
	Threat ThreatLevel
	Box    core.Rect // Collision footprint
}

// Snapshot captures everything a renderer needs after a tick.
// It shares no memory with the simulation.
type Snapshot struct {
	Tick          uint64
	Score         int
	Lives         int
	GameOver      bool
	Settings      Settings
	Board         Board
	Player        EntitySnapshot
	Enemies       []EntitySnapshot
	Intersections []core.Rect
}

// Snapshot returns the current state for rendering and determinism checks.
func (s *Simulation) Snapshot() Snapshot {
	enemies := make([]EntitySnapshot, len(s.enemies))
	for i, e := range s.enemies {
		enemies[i] = EntitySnapshot{
			ID:     e.ID,
			Sprite: SpriteEnemy,
			X:      e.X,
			Y:      e.Y,
			Row:    e.Row,
			Moving: e.Moving,
			Threat: e.Threat,
			Box:    e.Footprint(),
		}
	}

	p := s.player
	return Snapshot{
		Tick:     s.ticks,
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.gameOver,
		Settings: s.settings,
		Board:    s.board,
		Player: EntitySnapshot{
			Sprite: SpritePlayer,
			X:      p.X,
			Y:      p.Y,
			Row:    p.Y / s.board.RowHeight,
			Box:    p.Footprint(),
		},
		Enemies:       enemies,
		Intersections: append([]core.Rect(nil), s.intersections...),
	}
}
