// Package loop runs one player's game against a terminal.
package loop

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/ufoshooter/internal/audio"
	"github.com/tomz197/ufoshooter/internal/draw"
	"github.com/tomz197/ufoshooter/internal/game"
	"github.com/tomz197/ufoshooter/internal/input"
	"github.com/tomz197/ufoshooter/internal/render"
)

// Options configures a game session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Profile      termenv.Profile
	Footer       string
	Audio        audio.Player // Defaults to silence
	Logger       *log.Logger  // Defaults to discarding
	Seed         uint64       // 0 picks a random seed

	// IdleWarn and IdleTimeout disconnect players that stop pressing keys.
	// Zero disables.
	IdleWarn    time.Duration
	IdleTimeout time.Duration

	// Shutdown is closed when the host is going down. The player sees a
	// notice for ShutdownGrace before the session ends.
	Shutdown      <-chan struct{}
	ShutdownGrace time.Duration
}

// Run plays one game with the standard Input → Update → Draw cycle until
// the player quits, the input closes or ctx is cancelled.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}

	gameOpts := []game.Option{game.WithLogger(logger)}
	if opts.Seed != 0 {
		gameOpts = append(gameOpts, game.WithSeed(opts.Seed))
	}
	g := game.New(gameOpts...)
	stream := input.StartStream(r)
	screen := render.New(w, render.Options{
		TermSizeFunc: opts.TermSizeFunc,
		Profile:      opts.Profile,
		Footer:       opts.Footer,
	})

	screen.Begin()
	defer screen.End()

	start := time.Now()
	lastTime, lastInput := start, start
	var shutdownAt time.Time

	for g.Running() {
		frameStart := time.Now()
		delta := min(frameStart.Sub(lastTime), MaxFrameDelta)
		lastTime = frameStart

		select {
		case <-ctx.Done():
			logger.Debug("session cancelled")
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		inp := input.ReadInput(stream)
		if len(inp.Pressed) > 0 {
			lastInput = frameStart
		}

		// ===== UPDATE PHASE =====
		before := g.State()
		g.Step(delta.Seconds(), game.Input{
			Left:    inp.Left,
			Right:   inp.Right,
			Fire:    inp.Fire,
			Special: inp.Special,
			Restart: inp.Restart,
			Quit:    inp.Quit,
		})
		if before == game.StateGameOver && g.State() == game.StatePlaying {
			// The restart key must not fire into the new round.
			input.ResetKeyInput(stream)
		}

		if shutdownAt.IsZero() && closed(opts.Shutdown) {
			shutdownAt = frameStart.Add(opts.ShutdownGrace)
		}
		idle := frameStart.Sub(lastInput)
		switch {
		case !shutdownAt.IsZero():
			left := shutdownAt.Sub(frameStart)
			if left <= 0 {
				logger.Info("disconnecting, server shutting down")
				return nil
			}
			screen.SetNotice(fmt.Sprintf("Server shutting down in %ds", ceilSeconds(left)))
		case opts.IdleTimeout > 0 && idle >= opts.IdleTimeout:
			logger.Info("disconnecting idle player", "idle", idle.Round(time.Second))
			return nil
		case opts.IdleTimeout > 0 && opts.IdleWarn > 0 && idle >= opts.IdleWarn:
			screen.SetNotice(fmt.Sprintf("Inactive: disconnecting in %ds", ceilSeconds(opts.IdleTimeout-idle)))
		default:
			screen.SetNotice("")
		}

		// ===== DRAW PHASE =====
		snap := g.Snapshot()
		if err := screen.Draw(snap, frameStart.Sub(start).Seconds()); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		if snap.Cues.Has(game.CueTrack) {
			player.SelectTrack(snap.Track)
		}
		player.Play(snap.Cues)

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}

	logger.Debug("player quit")
	return nil
}

// closed reports whether ch is closed. A nil channel never is.
func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func ceilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
