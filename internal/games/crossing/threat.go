package crossing

import "github.com/vovakirdan/crossing-arcade/internal/core"

// ThreatLevel classifies an enemy relative to the player.
type ThreatLevel int

const (
	Harmless  ThreatLevel = iota // Different lane, or not spawned yet
	SameLane                     // Moving on the player's row without touching
	Colliding                    // Footprints overlap
)

// String returns the threat level name.
func (t ThreatLevel) String() string {
	switch t {
	case Harmless:
		return "harmless"
	case SameLane:
		return "same lane"
	case Colliding:
		return "colliding"
	default:
		return "unknown"
	}
}

// Color returns the diagnostics overlay color for a threat level.
func (t ThreatLevel) Color() core.Color {
	switch t {
	case SameLane:
		return core.ColorOrange
	case Colliding:
		return core.ColorRed
	default:
		return core.ColorGreen
	}
}

// Classify determines the enemy's threat level from the current positions.
// Lanes are compared by pixel row band, so a player move that is still
// pending does not count yet.
func Classify(e *Enemy, p *Player) ThreatLevel {
	if e.Footprint().Intersects(p.Footprint()) {
		return Colliding
	}
	if e.Moving && e.Y/e.board.RowHeight == p.Y/p.board.RowHeight {
		return SameLane
	}
	return Harmless
}
