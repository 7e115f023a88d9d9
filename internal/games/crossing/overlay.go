package crossing

import (
	"fmt"

	"github.com/vovakirdan/crossing-arcade/internal/core"
)

// drawOverlay visualizes the collision data behind the simulation: every
// footprint colored by threat level, the player's footprint in white and
// the overlap of each colliding pair in bright red. Boxes are clipped to
// the board.
func drawOverlay(dst *core.Screen, vp viewport, snap Snapshot) {
	area := vp.area()
	counts := make(map[ThreatLevel]int, 3)

	for _, e := range snap.Enemies {
		counts[e.Threat]++
		if box, ok := vp.rect(e.Box).Intersection(area); ok {
			dst.DrawBoxColor(box, e.Threat.Color())
		}
	}
	if box, ok := vp.rect(snap.Player.Box).Intersection(area); ok {
		dst.DrawBoxColor(box, core.ColorBrightWhite)
	}
	for _, r := range snap.Intersections {
		if box, ok := vp.rect(r).Intersection(area); ok {
			dst.DrawBoxColor(box, core.ColorBrightRed)
		}
	}

	legend := fmt.Sprintf(" DEBUG  harmless:%d  same lane:%d  colliding:%d ",
		counts[Harmless], counts[SameLane], counts[Colliding])
	dst.DrawTextColor(0, dst.Height()-1, legend, core.ColorOrange)
}
