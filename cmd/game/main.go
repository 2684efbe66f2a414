package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/ufoshooter/internal/audio"
	"github.com/tomz197/ufoshooter/internal/audio/synth"
	"github.com/tomz197/ufoshooter/internal/config"
	"github.com/tomz197/ufoshooter/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	settings, err := config.Load()
	if err != nil {
		return err
	}

	// Stdout is the game screen, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := config.NewLogger(logOut, settings.LogLevel)
	if err != nil {
		logger.Warn("bad log level, using info", "err", err)
	}

	player := newAudio(settings, logger)
	defer player.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting local game", "seed", settings.Seed, "audio", settings.Audio)
	return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Profile: termenv.EnvColorProfile(),
		Footer:  "A/D move  SPACE fire  X blast  Q quit",
		Audio:   player,
		Logger:  logger,
		Seed:    settings.Seed,
	})
}

// newAudio starts the speaker synth, falling back to the terminal bell
// when audio is off or no sound device is available.
func newAudio(settings config.Settings, logger *log.Logger) audio.Player {
	if !settings.Audio {
		return audio.NewBell(os.Stdout)
	}
	s := synth.NewSynth(synth.DefaultSampleRate, settings.VolumeFraction())
	if err := s.Start(); err != nil {
		logger.Warn("audio unavailable, using terminal bell", "err", err)
		return audio.NewBell(os.Stdout)
	}
	return s
}
