// Package game implements the UFO shooter simulation: one session of play,
// the playing/game-over state machine around it, and the per-frame snapshot
// handed to whatever draws and plays it.
package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/tomz197/ufoshooter/internal/object"
)

// State is the game phase.
type State int

const (
	StatePlaying  State = iota // Active gameplay
	StateGameOver              // Ship destroyed, waiting for restart
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Input is the raw control state for one frame: which keys are held.
type Input struct {
	Left    bool
	Right   bool
	Fire    bool
	Special bool // Blast
	Restart bool
	Quit    bool
}

// Game drives sessions through the playing and game-over phases.
type Game struct {
	session *Session
	state   State
	running bool
	prev    Input
	cues    CueSet
	draws   []DrawRequest
	runs    int

	rng    object.Rand
	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithSeed makes gameplay randomness reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = NewRand(seed)
	}
}

// WithRand sets the gameplay randomness source directly.
func WithRand(r object.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithLogger sets the logger for phase transitions. Defaults to discarding.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewRand returns a seeded PCG source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New creates a game already in the playing phase.
func New(opts ...Option) *Game {
	g := &Game{
		running: true,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g.startSession()
	return g
}

func (g *Game) startSession() {
	g.session = NewSession(g.rng)
	g.state = StatePlaying
	g.runs++
	g.logger.Debug("session started", "run", g.runs)
}

// Step advances the game by dt seconds of simulated time.
// Negative dt is treated as zero.
func (g *Game) Step(dt float64, in Input) {
	if !g.running {
		return
	}
	if in.Quit {
		g.running = false
		g.logger.Debug("quit requested", "state", g.state)
		return
	}
	if dt < 0 {
		dt = 0
	}

	pressed := Input{
		Special: in.Special && !g.prev.Special,
		Restart: in.Restart && !g.prev.Restart,
	}
	g.prev = in

	switch g.state {
	case StatePlaying:
		g.session.Update(dt, Controls{
			Move:  moveDir(in),
			Fire:  in.Fire,
			Blast: pressed.Special,
		})
		if g.session.Over() {
			g.state = StateGameOver
			g.logger.Info("game over", "score", g.session.Score, "elapsed", g.session.Elapsed)
		}
	case StateGameOver:
		g.session.UpdateEffects(dt)
		if pressed.Restart {
			g.Restart()
		}
	}

	g.cues = g.session.DrainCues()
}

func moveDir(in Input) int {
	dir := 0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	return dir
}

// Restart begins a new session. Ignored while a session is still playing.
func (g *Game) Restart() {
	if g.state != StateGameOver {
		return
	}
	g.startSession()
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the player has not quit.
func (g *Game) Running() bool {
	return g.running
}

// Session returns the current session.
func (g *Game) Session() *Session {
	return g.session
}
