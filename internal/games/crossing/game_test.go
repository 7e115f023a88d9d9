package crossing

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/crossing-arcade/internal/core"
	"github.com/vovakirdan/crossing-arcade/internal/registry"
)

// isolate keeps user and working-directory configs out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func TestDeterminism(t *testing.T) {
	isolate(t)

	g1 := newTestGame(t, New(), 12345)
	g2 := newTestGame(t, New(), 12345)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i%40 == 0 {
			input.Set(core.ActionUp)
		}
		if i == 100 {
			input.Set(core.ActionLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Snapshot mismatch after 600 ticks:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Tick != 600 {
		t.Errorf("Tick = %d, expected 600", snap1.Tick)
	}
}

func TestStepLastMovementWins(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 1)

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	input.Set(core.ActionRight)
	input.Set(core.ActionLeft)
	g.Step(input)

	p := g.Snapshot().Player
	if p.X != 101 || p.Y != 415 {
		t.Errorf("Player at (%d,%d), expected (101,415)", p.X, p.Y)
	}
}

func TestStepReportsScore(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 1)

	input := core.NewInputFrame()
	var scored int
	for i := 0; i < 5; i++ {
		input.Clear()
		input.Set(core.ActionUp)
		if res := g.Step(input); res.Scored {
			scored++
			if res.State.Score != 1 {
				t.Errorf("Score = %d, expected 1", res.State.Score)
			}
		}
	}

	if scored != 1 {
		t.Errorf("Scored reported %d times, expected once", scored)
	}
}

func TestStepUsesElapsed(t *testing.T) {
	isolate(t)

	// Same seed, different frame times: both games spawn identically, so
	// the first mover's offset shows which dt was applied.
	fast := newTestGame(t, New(), 99)
	slow := newTestGame(t, New(), 99)

	in := core.NewInputFrame()
	fast.Step(in)
	slow.Step(in)

	in.Elapsed = 100 * time.Millisecond
	slow.Step(in)
	in.Elapsed = 0
	fast.Step(in)

	var fx, sx int
	for i, e := range fast.Snapshot().Enemies {
		if e.Moving {
			fx = e.X
			sx = slow.Snapshot().Enemies[i].X
			break
		}
	}
	if sx <= fx {
		t.Errorf("enemy after 100ms at x=%d, after one nominal tick at x=%d", sx, fx)
	}
}

func TestPauseAndDebugActions(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 1)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	in.Set(core.ActionDebug)
	res := g.Step(in)

	if !res.State.Paused {
		t.Error("State should report paused")
	}
	if !g.Snapshot().Settings.Debug {
		t.Error("Debug overlay should be on")
	}
}

func TestHardcoreGameUsesLives(t *testing.T) {
	isolate(t)
	g := newTestGame(t, NewHardcore(), 1)

	if g.ID() != IDHardcore {
		t.Errorf("ID = %q", g.ID())
	}
	if lives := g.Snapshot().Lives; lives != 3 {
		t.Errorf("Lives = %d, expected 3", lives)
	}
}

func TestResetAppliesPresetAndConfig(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "crossing.yaml")
	data := "enemies:\n  min_count: 2\n  max_count: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)

	g := newTestGame(t, New(), 1)
	if n := len(g.Snapshot().Enemies); n != 2 {
		t.Errorf("Fleet size = %d, expected 2 from the config file", n)
	}

	SetDifficultyPreset("hard")
	g = newTestGame(t, NewHardcore(), 1)
	if lives := g.Snapshot().Lives; lives != 2 {
		t.Errorf("Lives = %d, expected 2 on hard", lives)
	}
}

func TestResetFallsBackOnBadConfig(t *testing.T) {
	isolate(t)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	g := newTestGame(t, New(), 1)
	if n := len(g.Snapshot().Enemies); n < 3 || n > 6 {
		t.Errorf("Fleet size = %d, expected defaults", n)
	}
}

func TestRender(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, HeroChar) {
		t.Error("Render should draw the hero")
	}
	if !strings.ContainsRune(out, WaterChar) {
		t.Error("Render should draw the water row")
	}
	if !strings.Contains(out, "Crossings: 0") {
		t.Error("Render should draw the score")
	}
	if strings.Contains(out, "DEBUG") {
		t.Error("Legend should be hidden without debug")
	}
}

func TestRenderDebugOverlay(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 1)

	in := core.NewInputFrame()
	in.Set(core.ActionDebug)
	g.Step(in)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(23), "DEBUG") {
		t.Errorf("Bottom line = %q, expected the overlay legend", screen.Row(23))
	}

	// The player's footprint is outlined in white
	var white int
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Color == core.ColorBrightWhite {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("Overlay should outline the player")
	}
}

func TestRenderTooSmall(t *testing.T) {
	isolate(t)
	g := newTestGame(t, New(), 1)

	screen := core.NewScreen(10, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "TOO SMALL") {
		t.Error("Tiny screens should show a message instead of the board")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDHardcore} {
		if !registry.Exists(id) {
			t.Errorf("%s is not registered", id)
		}
	}
}
