package crossing

import "github.com/vovakirdan/crossing-arcade/internal/core"

// Direction is a one-tile player move.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Player is the controlled entity. Col/Row change as soon as a move is
// accepted; X/Y follow on the next Update.
type Player struct {
	Col, Row int
	X, Y     int

	moved    bool
	board    Board
	startCol int
	startRow int
}

// NewPlayer creates a player standing on its spawn tile.
func NewPlayer(board Board, startCol, startRow int) *Player {
	p := &Player{
		board:    board,
		startCol: startCol,
		startRow: startRow,
	}
	p.Reset()
	return p
}

// HandleInput accepts a move unless it would leave the board.
// Bounds are checked against the current pixel position. Returns whether
// the move was accepted.
func (p *Player) HandleInput(dir Direction) bool {
	b := p.board
	var ok bool
	switch dir {
	case DirLeft:
		ok = p.X >= b.ColWidth
	case DirUp:
		ok = p.Y >= b.RowHeight
	case DirRight:
		ok = p.X < b.BoundaryRight()-b.ColWidth
	case DirDown:
		ok = p.Y < b.BoundaryBottom()-b.RowHeight
	}
	if ok {
		p.move(dir)
	}
	return ok
}

// move shifts the tile position by one and marks it pending.
// A later move in the same frame replaces an earlier one, so the tile
// position is first rolled back to where the pixels still are.
func (p *Player) move(dir Direction) {
	if p.moved {
		p.Col = p.X / p.board.ColWidth
		p.Row = p.Y / p.board.RowHeight
	}

	switch dir {
	case DirLeft:
		p.Col--
	case DirUp:
		p.Row--
	case DirRight:
		p.Col++
	case DirDown:
		p.Row++
	}
	p.moved = true
}

// Pending reports whether a move is waiting for the next Update.
func (p *Player) Pending() bool {
	return p.moved
}

// Update applies a pending move. It returns true when the player reached
// the goal row, in which case the player is already back at the spawn tile.
func (p *Player) Update() bool {
	if p.moved {
		p.X = p.Col * p.board.ColWidth
		p.Y = p.Row * p.board.RowHeight
		p.moved = false
	}

	if p.Y == 0 {
		p.Reset()
		return true
	}
	return false
}

// Reset puts the player back on the spawn tile and drops any pending move.
func (p *Player) Reset() {
	p.Col = p.startCol
	p.Row = p.startRow
	p.X = p.Col * p.board.ColWidth
	p.Y = p.Row * p.board.RowHeight
	p.moved = false
}

// Footprint returns the player's collision box.
func (p *Player) Footprint() core.Rect {
	return p.board.Footprint(p.X, p.Y)
}
