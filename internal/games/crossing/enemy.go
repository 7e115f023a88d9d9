package crossing

import (
	"math"

	"github.com/vovakirdan/crossing-arcade/internal/core"
)

// Source is the random source used for lane selection and fleet sizing.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// FleetSize draws the number of enemies for a game in [min, max].
func FleetSize(min, max int, rng Source) int {
	if max <= min {
		return min
	}
	return min + int(math.Floor(rng.Float64()*float64(max-min)+0.5))
}

// Enemy is a bug running left to right along one lane.
// Enemies are never destroyed; leaving the board resets them in place.
type Enemy struct {
	ID     int
	Row    int
	X, Y   int
	Moving bool
	Speed  int // Pixels per second
	Threat ThreatLevel

	board Board
	rules *SpawnRules
}

// NewEnemy creates an enemy waiting to spawn on a random lane.
func NewEnemy(id int, board Board, rules *SpawnRules, rng Source) *Enemy {
	e := &Enemy{
		ID:    id,
		board: board,
		rules: rules,
	}
	e.Reset(rng)
	return e
}

// Update advances the enemy by dt seconds. A waiting enemy retries Spawn
// instead of moving.
func (e *Enemy) Update(dt float64, fleet []*Enemy, rng Source) {
	if !e.Moving {
		e.Spawn(fleet)
		return
	}

	// Rounding keeps every position on whole pixels
	e.X += int(math.Round(dt * float64(e.Speed)))

	if e.X > e.board.BoundaryRight() {
		e.Reset(rng)
	}
}

// Spawn puts the enemy in motion if its lane has room.
// The lane is blocked when another moving enemy on it has not yet cleared
// the spawn distance, or when the lane already holds SpawnMax movers.
func (e *Enemy) Spawn(fleet []*Enemy) {
	onLane := 0
	for _, other := range fleet {
		if other.ID == e.ID || other.Row != e.Row || !other.Moving {
			continue
		}
		if other.X < e.rules.SpawnDistance {
			return
		}
		onLane++
	}

	if onLane < e.rules.SpawnMax {
		e.Moving = true
	}
}

// Reset parks the enemy off the left edge of a freshly drawn lane.
func (e *Enemy) Reset(rng Source) {
	e.Moving = false
	e.Row = rng.Intn(e.rules.Lanes) + 1
	e.X = -e.board.ColWidth
	e.Y = e.Row * e.board.RowHeight
	e.Speed = e.rules.LaneSpeed(e.Row)
	e.Threat = Harmless
}

// Footprint returns the enemy's collision box.
func (e *Enemy) Footprint() core.Rect {
	return e.board.Footprint(e.X, e.Y)
}
