// Package lobby tracks the game sessions a server is running, so it can
// turn players away when full and wind everyone down on shutdown.
package lobby

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/kamstrup/intmap"
)

var (
	ErrFull    = errors.New("server full")
	ErrClosing = errors.New("server shutting down")
)

// pollInterval is how often Shutdown checks whether everyone has left.
const pollInterval = 200 * time.Millisecond

// Session is one registered player.
type Session struct {
	ID      uint64
	User    string
	Started time.Time

	cancel   context.CancelFunc
	shutdown chan struct{}
}

// Shutdown is closed when the server starts going down.
func (s *Session) Shutdown() <-chan struct{} {
	return s.shutdown
}

// Lobby is safe for concurrent use.
type Lobby struct {
	mu       sync.Mutex
	sessions *intmap.Map[uint64, *Session]
	nextID   uint64
	max      int // 0 = unlimited
	closing  bool
}

// New creates a lobby admitting at most maxSessions players (0 = unlimited).
func New(maxSessions int) *Lobby {
	return &Lobby{
		sessions: intmap.New[uint64, *Session](64),
		max:      maxSessions,
	}
}

// Join registers a player. The returned context is cancelled when the
// lobby gives up waiting for the session during Shutdown, or when parent is.
func (l *Lobby) Join(parent context.Context, user string) (*Session, context.Context, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closing {
		return nil, nil, ErrClosing
	}
	if l.max > 0 && l.sessions.Len() >= l.max {
		return nil, nil, ErrFull
	}

	l.nextID++
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		ID:       l.nextID,
		User:     user,
		Started:  time.Now(),
		cancel:   cancel,
		shutdown: make(chan struct{}),
	}
	l.sessions.Put(s.ID, s)
	return s, ctx, nil
}

// Leave unregisters a session. Unknown ids are ignored.
func (l *Lobby) Leave(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.sessions.Get(id); ok {
		s.cancel()
		l.sessions.Del(id)
	}
}

// Len returns the number of registered sessions.
func (l *Lobby) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sessions.Len()
}

// Users lists the registered players, oldest session first.
func (l *Lobby) Users() []string {
	l.mu.Lock()
	all := make([]*Session, 0, l.sessions.Len())
	l.sessions.ForEach(func(_ uint64, s *Session) bool {
		all = append(all, s)
		return true
	})
	l.mu.Unlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	users := make([]string, len(all))
	for i, s := range all {
		users[i] = s.User
	}
	return users
}

// Shutdown stops admitting players, tells every session to wind down and
// waits for them to leave. When ctx expires first, the remaining sessions
// are cancelled and ctx's error is returned.
func (l *Lobby) Shutdown(ctx context.Context) error {
	l.mu.Lock()
	if !l.closing {
		l.closing = true
		l.sessions.ForEach(func(_ uint64, s *Session) bool {
			close(s.shutdown)
			return true
		})
	}
	l.mu.Unlock()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for l.Len() > 0 {
		select {
		case <-ctx.Done():
			l.mu.Lock()
			l.sessions.ForEach(func(_ uint64, s *Session) bool {
				s.cancel()
				return true
			})
			l.mu.Unlock()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
