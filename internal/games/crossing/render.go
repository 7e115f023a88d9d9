package crossing

import (
	"fmt"

	"github.com/vovakirdan/crossing-arcade/internal/core"
)

// Visual characters for rendering
const (
	WaterChar = '≈'
	StoneChar = '░'
	GrassChar = '·'
	BugBody   = '▓'
	BugHead   = '►'
	HeroChar  = '@'
)

// Cell limits for one board tile
const (
	maxCellW = 16
	maxCellH = 4
	minCellW = 3
)

// viewport maps world pixels to screen cells.
type viewport struct {
	board   Board
	originX int
	originY int
	cellW   int
	cellH   int
}

// newViewport fits the board into the screen, leaving the top line for the
// HUD and the bottom line for status text. ok is false when it cannot fit.
func newViewport(b Board, screenW, screenH int) (viewport, bool) {
	cellW := core.Clamp(screenW/b.NumCols, 0, maxCellW)
	cellH := core.Clamp((screenH-2)/b.NumRows, 0, maxCellH)
	if cellW < minCellW || cellH < 1 {
		return viewport{}, false
	}

	boardW := cellW * b.NumCols
	boardH := cellH * b.NumRows
	return viewport{
		board:   b,
		originX: (screenW - boardW) / 2,
		originY: 1 + (screenH-2-boardH)/2,
		cellW:   cellW,
		cellH:   cellH,
	}, true
}

func (v viewport) sx(x int) int {
	return v.originX + floorDiv(x*v.cellW, v.board.ColWidth)
}

func (v viewport) sy(y int) int {
	return v.originY + floorDiv(y*v.cellH, v.board.RowHeight)
}

// rect maps a world rectangle to screen cells, keeping at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.sx(r.X), v.sy(r.Y)
	x1, y1 := v.sx(r.Right()), v.sy(r.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// area returns the screen rectangle covered by the board.
func (v viewport) area() core.Rect {
	return core.NewRect(v.originX, v.originY, v.cellW*v.board.NumCols, v.cellH*v.board.NumRows)
}

// floorDiv divides rounding toward negative infinity so that entities
// entering from the left move smoothly.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// render draws a snapshot. It never touches simulation state.
func render(dst *core.Screen, snap Snapshot, lanes int, hardcore bool) {
	dst.Clear()

	vp, ok := newViewport(snap.Board, dst.Width(), dst.Height())
	if !ok {
		drawCenteredMessage(dst, "TOO SMALL", "Enlarge the terminal")
		return
	}

	drawTerrain(dst, vp, lanes)
	for _, e := range snap.Enemies {
		if e.Moving {
			drawBug(dst, vp, e)
		}
	}
	drawHero(dst, vp, snap.Player)

	if snap.Settings.Debug {
		drawOverlay(dst, vp, snap)
	}

	drawHUD(dst, snap, hardcore)

	if snap.Settings.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Crossings: %d  |  Press R to restart", snap.Score))
	}
}

// drawTerrain paints water on the goal row, stone on the lanes and grass below.
func drawTerrain(dst *core.Screen, vp viewport, lanes int) {
	for row := 0; row < vp.board.NumRows; row++ {
		ch, color := GrassChar, core.ColorGreen
		switch {
		case row == 0:
			ch, color = WaterChar, core.ColorBlue
		case row <= lanes:
			ch, color = StoneChar, core.ColorGray
		}
		band := core.NewRect(vp.originX, vp.originY+row*vp.cellH, vp.cellW*vp.board.NumCols, vp.cellH)
		dst.DrawRectColor(band, ch, color)
	}
}

// drawBug draws an enemy on the middle line of its lane, clipped to the board.
func drawBug(dst *core.Screen, vp viewport, e EntitySnapshot) {
	area := vp.area()
	y := vp.sy(e.Y) + vp.cellH/2
	x0 := vp.sx(e.X)
	for i := 0; i < vp.cellW; i++ {
		x := x0 + i
		if !area.Contains(x, y) {
			continue
		}
		ch := BugBody
		if i == vp.cellW-1 {
			ch = BugHead
		}
		dst.SetColor(x, y, ch, core.ColorBrightRed)
	}
}

// drawHero draws the player centered in its tile.
func drawHero(dst *core.Screen, vp viewport, p EntitySnapshot) {
	x := vp.sx(p.X) + vp.cellW/2
	y := vp.sy(p.Y) + vp.cellH/2
	dst.SetColor(x, y, HeroChar, core.ColorBrightYellow)
	if vp.cellW >= 5 {
		dst.SetColor(x-1, y, '(', core.ColorYellow)
		dst.SetColor(x+1, y, ')', core.ColorYellow)
	}
}

// drawHUD draws the score line and the key hints.
func drawHUD(dst *core.Screen, snap Snapshot, hardcore bool) {
	dst.DrawText(2, 0, fmt.Sprintf(" Crossings: %d ", snap.Score))
	if hardcore {
		lives := fmt.Sprintf(" Lives: %d ", snap.Lives)
		dst.DrawTextColor(dst.Width()-len(lives)-2, 0, lives, core.ColorBrightRed)
	}

	// The diagnostics legend takes the bottom line in debug mode
	hint := "arrows: move  r: reset  d: debug  p: pause  q: quit"
	if !snap.Settings.Debug && len(hint) < dst.Width() {
		dst.DrawTextColor((dst.Width()-len(hint))/2, dst.Height()-1, hint, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
