package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crossing-arcade/internal/core"
	"github.com/vovakirdan/crossing-arcade/internal/registry"
	"github.com/vovakirdan/crossing-arcade/internal/storage"
)

const stubID = "tui_stub"

// stubGame records what the platform feeds it.
type stubGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string {
	return stubID
}

func (g *stubGame) Title() string {
	return "Stub"
}

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return g.state
}

func (g *stubGame) lastFrame(t *testing.T) core.InputFrame {
	t.Helper()
	if len(g.frames) == 0 {
		t.Fatal("game was never stepped")
	}
	return g.frames[len(g.frames)-1]
}

func init() {
	registry.Register(func() registry.Game { return &stubGame{} }, "stub controls")
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newStubModel(store *storage.Store) (GameModel, *stubGame) {
	g := &stubGame{}
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(g, store, cfg, "tester", nil)
	m.Init()
	return m, g
}

// send feeds one message and returns the updated model.
func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelTickMeasuresElapsed(t *testing.T) {
	m, g := newStubModel(nil)
	t0 := time.Now()

	m, cmd := send(t, m, TickMsg(t0))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if e := g.lastFrame(t).Elapsed; e != 0 {
		t.Errorf("first tick elapsed = %v, expected 0", e)
	}

	m, _ = send(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	if e := g.lastFrame(t).Elapsed; e != 20*time.Millisecond {
		t.Errorf("elapsed = %v, expected 20ms", e)
	}

	send(t, m, TickMsg(t0.Add(5*time.Second)))
	if e := g.lastFrame(t).Elapsed; e != maxFrameTime {
		t.Errorf("elapsed = %v, expected cap %v", e, maxFrameTime)
	}
}

func TestGameModelKeysReachGameInOrder(t *testing.T) {
	m, g := newStubModel(nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, runeKey('d'))
	m, _ = send(t, m, TickMsg(time.Now()))

	got := g.lastFrame(t).Ordered()
	want := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDebug}
	if len(got) != len(want) {
		t.Fatalf("Ordered() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, expected %v", i, got[i], want[i])
		}
	}

	// Input is consumed by the tick
	send(t, m, TickMsg(time.Now()))
	if n := len(g.lastFrame(t).Ordered()); n != 0 {
		t.Errorf("second tick saw %d actions", n)
	}
}

func TestGameModelEscapeResetsDuringPlay(t *testing.T) {
	m, g := newStubModel(nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("escape during play should not leave the game")
	}
	send(t, m, TickMsg(time.Now()))

	if !g.lastFrame(t).Has(core.ActionRestart) {
		t.Error("escape should reach the game as a reset")
	}
}

func TestGameModelBackWhenPaused(t *testing.T) {
	m, g := newStubModel(nil)

	g.state.Paused = true
	m, _ = send(t, m, TickMsg(time.Now()))
	m, cmd := send(t, m, runeKey('b'))

	if !m.BackToMenu() {
		t.Error("b while paused should return to the menu")
	}
	if cmd != nil {
		t.Error("embedded game should not quit the program")
	}

	// A standalone game quits instead
	s, g2 := newStubModel(nil)
	s.standalone = true
	g2.state.Paused = true
	s, _ = send(t, s, TickMsg(time.Now()))
	if _, cmd := send(t, s, tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("standalone game should quit when leaving")
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := testStore(t)
	m, g := newStubModel(store)

	now := time.Now()
	m, _ = send(t, m, TickMsg(now))
	g.state = core.GameState{Score: 3, GameOver: true}
	m, _ = send(t, m, TickMsg(now.Add(2*time.Second)))
	m, _ = send(t, m, TickMsg(now.Add(3*time.Second)))
	send(t, m, runeKey('q'))

	scores, err := store.TopScores(stubID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(scores))
	}
	if scores[0].Score != 3 || scores[0].Player != "tester" {
		t.Errorf("saved %+v", scores[0])
	}
	if scores[0].Duration != 2*time.Second {
		t.Errorf("duration = %v, expected 2s", scores[0].Duration)
	}
}

func TestGameModelSavesOnQuit(t *testing.T) {
	store := testStore(t)
	m, g := newStubModel(store)

	g.state.Score = 2
	m, _ = send(t, m, TickMsg(time.Now()))
	m, cmd := send(t, m, runeKey('q'))

	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if best, _ := store.HighScore(stubID); best != 2 {
		t.Errorf("HighScore = %d, expected 2", best)
	}
}

func TestGameModelSkipsEmptyRuns(t *testing.T) {
	store := testStore(t)
	m, _ := newStubModel(store)

	m, _ = send(t, m, TickMsg(time.Now()))
	send(t, m, runeKey('q'))

	if scores, _ := store.TopScores(stubID, 10); len(scores) != 0 {
		t.Errorf("runs without crossings should not be saved, got %d", len(scores))
	}
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	m, g := newStubModel(nil)

	g.state.GameOver = true
	m, _ = send(t, m, TickMsg(time.Now()))
	steps := len(g.frames)

	m, _ = send(t, m, runeKey('r'))
	m, _ = send(t, m, TickMsg(time.Now()))

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if len(g.frames) != steps {
		t.Error("restart tick should not step the game")
	}
	if m.State().GameOver {
		t.Error("new run should not be over")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m, g := newStubModel(nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if m.View() == "" {
		t.Error("View() should render the game")
	}
}
