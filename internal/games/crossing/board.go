// Package crossing implements Bug Crossing: the player crosses a board of
// lanes to reach the water while bugs run across the lanes at row-dependent
// speeds.
//
// All simulation state is measured in world pixels (the board is 5x6 tiles of
// 101x83 pixels by default). The terminal renderer scales world pixels to
// screen cells; the simulation never sees screen coordinates.
package crossing

import (
	"github.com/vovakirdan/crossing-arcade/internal/config"
	"github.com/vovakirdan/crossing-arcade/internal/core"
)

// Board holds the immutable world geometry.
type Board struct {
	ColWidth     int
	RowHeight    int
	NumCols      int
	NumRows      int
	EntityWidth  int
	EntityHeight int
}

// NewBoard builds the geometry from config.
func NewBoard(cfg config.CrossingBoard) Board {
	return Board{
		ColWidth:     cfg.ColWidth,
		RowHeight:    cfg.RowHeight,
		NumCols:      cfg.NumCols,
		NumRows:      cfg.NumRows,
		EntityWidth:  cfg.EntityWidth,
		EntityHeight: cfg.EntityHeight,
	}
}

// BoundaryRight is the x coordinate of the board's right edge.
func (b Board) BoundaryRight() int {
	return b.NumCols * b.ColWidth
}

// BoundaryBottom is the y coordinate of the board's bottom edge.
func (b Board) BoundaryBottom() int {
	return b.NumRows * b.RowHeight
}

// Bounds returns the board rectangle in world pixels.
func (b Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.BoundaryRight(), b.BoundaryBottom())
}

// Footprint returns the collision box of an entity whose origin is (x, y).
func (b Board) Footprint(x, y int) core.Rect {
	return core.NewRect(x, y, b.EntityWidth, b.EntityHeight)
}

// SpawnRules are the lane parameters shared by every enemy of a fleet.
// The simulation may tighten SpawnMax and SpawnDistance as difficulty rises.
type SpawnRules struct {
	Lanes         int // Enemy rows are 1..Lanes
	SpawnMax      int // Max moving enemies per lane
	SpawnDistance int // An enemy closer than this to the left edge blocks its lane
	RowSpeedUnit  int // Speed step between adjacent lanes, pixels per second
}

// NewSpawnRules builds the lane parameters from config.
func NewSpawnRules(cfg config.CrossingEnemies) SpawnRules {
	return SpawnRules{
		Lanes:         cfg.Lanes,
		SpawnMax:      cfg.SpawnMax,
		SpawnDistance: cfg.SpawnDistance,
		RowSpeedUnit:  cfg.RowSpeedUnit,
	}
}

// LaneSpeed returns the speed of a lane. Lower rows (closer to the water) are faster.
func (r SpawnRules) LaneSpeed(row int) int {
	return (r.Lanes + 1 - row) * r.RowSpeedUnit
}
