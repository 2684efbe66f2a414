package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/ufoshooter/internal/audio"
	"github.com/tomz197/ufoshooter/internal/config"
	"github.com/tomz197/ufoshooter/internal/draw"
	"github.com/tomz197/ufoshooter/internal/lobby"
	"github.com/tomz197/ufoshooter/internal/loop"
)

const footer = "A/D move  SPACE fire  X blast  Q quit"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if err := run(logger); err != nil {
		logger.Error("ssh server", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	settings, err := config.Load()
	if err != nil {
		return err
	}
	logger, err = config.NewLogger(os.Stderr, settings.LogLevel)
	if err != nil {
		logger.Warn("bad log level, using info", "err", err)
	}
	logger.Info("ssh config",
		"host", settings.SSHHost, "port", settings.SSHPort,
		"hostKeyPath", settings.HostKeyPath, "maxSessions", settings.MaxSessions)

	players := lobby.New(settings.MaxSessions)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			gameMiddleware(players, settings, logger),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.DebugLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	logger.Info("starting ssh server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-done:
	}

	// Players get the shutdown notice, then a little longer to leave on
	// their own before their sessions are cut.
	logger.Info("shutting down", "players", players.Len())
	ctx, cancel := context.WithTimeout(context.Background(), settings.Shutdown)
	defer cancel()
	if err := players.Shutdown(ctx); err != nil {
		logger.Warn("players still connected at shutdown", "err", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// gameMiddleware runs one game per PTY session.
func gameMiddleware(players *lobby.Lobby, settings config.Settings, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				wish.Fatalln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			entry, ctx, err := players.Join(sess.Context(), sess.User())
			if err != nil {
				wish.Fatalln(sess, fmt.Sprintf("Sorry, cannot start a game: %v.", err))
				return
			}
			defer players.Leave(entry.ID)

			sessLog := logger.With("user", sess.User(), "session", entry.ID)
			sessLog.Info("game session started", "term", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height, "players", players.Len())

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			// The client's TERM arrives with the PTY request, not in Environ.
			profile := draw.ProfileFromEnv(append(sess.Environ(), "TERM="+pty.Term))

			err = loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
				TermSizeFunc:  sizeTracker.getSize,
				Profile:       profile,
				Footer:        footer,
				Audio:         audio.NewBell(sess),
				Logger:        sessLog,
				Seed:          settings.Seed,
				IdleWarn:      settings.IdleWarn,
				IdleTimeout:   settings.IdleTimeout,
				Shutdown:      entry.Shutdown(),
				ShutdownGrace: loop.ShutdownDisplay,
			})
			if err != nil {
				sessLog.Warn("game ended with error", "err", err)
			}

			sessLog.Info("game session ended", "duration", time.Since(entry.Started).Round(time.Second))
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
