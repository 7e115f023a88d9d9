package crossing

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing-arcade/internal/config"
	"github.com/vovakirdan/crossing-arcade/internal/core"
	"github.com/vovakirdan/crossing-arcade/internal/registry"
)

// Game IDs
const (
	IDClassic  = "crossing"
	IDHardcore = "crossing_hardcore"
)

// Controls is the key help shown by menus.
const Controls = "Arrows/hjkl: move  R/Esc: reset  D: debug  P: pause"

// Game adapts the simulation to the arcade platform.
type Game struct {
	id       string
	title    string
	hardcore bool

	sim     *Simulation
	runtime core.RuntimeConfig
	cfg     config.CrossingConfig
	scored  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game events to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates the classic game, where collisions are only diagnostic.
func New() *Game {
	return &Game{id: IDClassic, title: "Bug Crossing"}
}

// NewHardcore creates the variant where getting hit costs a life.
func NewHardcore() *Game {
	return &Game{id: IDHardcore, title: "Bug Crossing (Hardcore)", hardcore: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultCrossingConfig()
	}

	if difficultyPreset != "" {
		config.ApplyCrossingPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.sim = NewSimulation(Options{
		Config:          cfg,
		Rand:            rand.New(rand.NewSource(runtime.Seed)),
		Logger:          logger.With("game", g.id),
		OnScore:         g.onScore,
		LossOnCollision: g.hardcore,
	})
}

// onScore is the simulation's score sink.
func (g *Game) onScore(int) {
	g.scored = true
}

// Step advances the game by one tick. Actions are applied in arrival
// order, so the last movement key of the frame wins.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Ordered() {
		g.sim.HandleInput(commandFor(a))
	}

	dt := in.Elapsed.Seconds()
	if dt <= 0 {
		dt = g.runtime.TickSeconds()
	}

	g.scored = false
	g.sim.Tick(dt)

	return core.StepResult{State: g.State(), Scored: g.scored}
}

// commandFor maps platform actions to simulation commands.
func commandFor(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CommandLeft
	case core.ActionUp:
		return CommandUp
	case core.ActionRight:
		return CommandRight
	case core.ActionDown:
		return CommandDown
	case core.ActionRestart:
		return CommandReset
	case core.ActionDebug:
		return CommandToggleDebug
	case core.ActionPause:
		return CommandTogglePause
	default:
		return CommandNone
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	render(dst, g.sim.Snapshot(), g.cfg.Enemies.Lanes, g.hardcore)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.GameOver(),
		Paused:   g.sim.Settings().Paused,
	}
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register(func() registry.Game { return New() }, Controls)
	registry.Register(func() registry.Game { return NewHardcore() }, Controls+"  (hits cost lives)")
}
