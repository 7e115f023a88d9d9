package crossing

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing-arcade/internal/config"
	"github.com/vovakirdan/crossing-arcade/internal/core"
)

// Command is an input event understood by the simulation.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandUp
	CommandRight
	CommandDown
	CommandReset
	CommandToggleDebug
	CommandTogglePause
)

// direction maps movement commands to player directions.
func (c Command) direction() (Direction, bool) {
	switch c {
	case CommandLeft:
		return DirLeft, true
	case CommandUp:
		return DirUp, true
	case CommandRight:
		return DirRight, true
	case CommandDown:
		return DirDown, true
	default:
		return 0, false
	}
}

// Settings are the toggles driven by input.
type Settings struct {
	Debug  bool
	Paused bool
}

// ScoreSink receives the new score after every crossing.
type ScoreSink func(score int)

// Options configure a Simulation.
type Options struct {
	Config config.CrossingConfig
	Rand   Source
	Logger *log.Logger
	// OnScore is called with the updated score on each win.
	OnScore ScoreSink
	// LossOnCollision turns a same-lane collision into a lost life.
	LossOnCollision bool
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Scored bool // The player reached the water
	Hit    bool // The player lost a life
}

// Simulation owns all game state and advances it one tick at a time.
// It is not safe for concurrent use; input and ticks must come from the
// same goroutine.
type Simulation struct {
	board      Board
	base       SpawnRules
	rules      *SpawnRules
	difficulty *config.DifficultyManager

	enemies []*Enemy
	player  *Player

	settings      Settings
	score         int
	ticks         uint64
	lives         int
	lossOnHit     bool
	gameOver      bool
	intersections []core.Rect

	rng     Source
	logger  *log.Logger
	onScore ScoreSink
}

// NewSimulation creates the fleet and the player.
// The fleet size is drawn once and never changes.
func NewSimulation(opts Options) *Simulation {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := NewBoard(cfg.Board)
	base := NewSpawnRules(cfg.Enemies)
	rules := base

	s := &Simulation{
		board:      board,
		base:       base,
		rules:      &rules,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		player:     NewPlayer(board, cfg.Player.StartCol, cfg.Player.StartRow),
		lives:      cfg.Rules.Lives,
		lossOnHit:  opts.LossOnCollision,
		rng:        opts.Rand,
		logger:     logger,
		onScore:    opts.OnScore,
	}
	s.applyDifficulty()

	n := FleetSize(cfg.Enemies.MinCount, cfg.Enemies.MaxCount, s.rng)
	s.enemies = make([]*Enemy, n)
	for i := range s.enemies {
		s.enemies[i] = NewEnemy(i, board, s.rules, s.rng)
	}

	s.logger.Debug("simulation created", "enemies", n, "hardcore", s.lossOnHit)
	return s
}

// HandleInput applies one input command. Movement is ignored while paused
// or after the run ended; unknown commands are ignored.
func (s *Simulation) HandleInput(cmd Command) {
	switch cmd {
	case CommandReset:
		s.player.Reset()
	case CommandToggleDebug:
		s.settings.Debug = !s.settings.Debug
		s.logger.Debug("diagnostics overlay toggled", "on", s.settings.Debug)
	case CommandTogglePause:
		s.settings.Paused = !s.settings.Paused
		s.logger.Debug("pause toggled", "paused", s.settings.Paused)
	default:
		dir, ok := cmd.direction()
		if !ok || s.settings.Paused || s.gameOver {
			return
		}
		s.player.HandleInput(dir)
	}
}

// Tick advances the world by dt seconds. While paused nothing moves and
// dt is dropped.
func (s *Simulation) Tick(dt float64) TickResult {
	var res TickResult
	if s.settings.Paused || s.gameOver {
		return res
	}
	s.ticks++

	for _, e := range s.enemies {
		e.Update(dt, s.enemies, s.rng)
	}

	if s.player.Update() {
		s.score++
		res.Scored = true
		s.logger.Info("player reached the water", "score", s.score)
		if s.onScore != nil {
			s.onScore(s.score)
		}
	}

	s.classify()

	if s.lossOnHit && s.lethalHit() {
		res.Hit = true
		s.lives--
		s.logger.Info("player was hit", "lives", s.lives, "score", s.score)
		s.player.Reset()
		if s.lives <= 0 {
			s.gameOver = true
			s.logger.Info("run over", "score", s.score, "ticks", s.ticks)
		}
		s.classify()
	}

	s.applyDifficulty()
	return res
}

// classify recomputes every enemy's threat level and the overlap areas.
func (s *Simulation) classify() {
	s.intersections = s.intersections[:0]
	pf := s.player.Footprint()
	for _, e := range s.enemies {
		e.Threat = Classify(e, s.player)
		if e.Threat == Colliding {
			if box, ok := e.Footprint().Intersection(pf); ok {
				s.intersections = append(s.intersections, box)
			}
		}
	}
}

// lethalHit reports a colliding enemy running on the player's own row.
// Footprints are taller than a row, so overlap alone also matches
// neighbouring lanes.
func (s *Simulation) lethalHit() bool {
	for _, e := range s.enemies {
		if e.Threat == Colliding && e.Moving && e.Y == s.player.Y {
			return true
		}
	}
	return false
}

// applyDifficulty updates the shared spawn rules for the current level.
func (s *Simulation) applyDifficulty() {
	floor := core.Min(s.base.SpawnDistance, s.board.ColWidth/2)
	s.rules.SpawnDistance = s.difficulty.Spacing(s.base.SpawnDistance, floor, s.score, int(s.ticks))
	s.rules.SpawnMax = s.difficulty.SpawnMax(s.base.SpawnMax, s.score, int(s.ticks))
}

// Score returns the number of crossings so far.
func (s *Simulation) Score() int {
	return s.score
}

// Settings returns the current toggles.
func (s *Simulation) Settings() Settings {
	return s.settings
}

// Lives returns the remaining lives (only meaningful in hardcore mode).
func (s *Simulation) Lives() int {
	return s.lives
}

// GameOver reports whether the run has ended.
func (s *Simulation) GameOver() bool {
	return s.gameOver
}

// Board returns the world geometry.
func (s *Simulation) Board() Board {
	return s.board
}

// Rules returns the spawn rules currently in force.
func (s *Simulation) Rules() SpawnRules {
	return *s.rules
}
