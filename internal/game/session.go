package game

import (
	"math/rand/v2"

	"github.com/tomz197/ufoshooter/internal/object"
	"github.com/tomz197/ufoshooter/internal/physics"
)

// Controls is the per-frame player intent, already edge-filtered.
type Controls struct {
	Move  int  // -1 left, 0 none, +1 right
	Fire  bool // Held: shoots whenever the gun has reloaded
	Blast bool // Pressed this frame
}

// Session is one run from spawn to game over. It owns every live entity.
type Session struct {
	Screen       object.Screen
	Player       *object.Player
	Bullets      []*object.Projectile // Player shots
	EnemyBullets []*object.Projectile
	Adversaries  []*object.Adversary
	PowerUps     []*object.PowerUp
	Blasts       []*object.BlastWave
	Particles    []*object.Particle

	Score   int
	Elapsed float64 // Simulated seconds since the run began
	Timers  Timers
	Spawner Spawner
	Track   int // Ambient track index

	over bool
	rng  object.Rand // Gameplay draws: spawns, drops, enemy fire
	fx   object.Rand // Cosmetic draws: particle bursts
	cues CueSet
	grid *physics.Grid
}

// NewSession starts a fresh run. Gameplay randomness is drawn from rng only,
// so a seeded rng reproduces the run given the same inputs.
func NewSession(rng object.Rand) *Session {
	s := &Session{
		Screen: object.Screen{Width: ScreenWidth, Height: ScreenHeight},
		Player: object.NewPlayer(ScreenWidth/2, PlayerStartY),
		rng:    rng,
		fx:     rand.New(rand.NewPCG(0x5eed, 0xf00d)),
		grid:   physics.NewGrid(ScreenWidth, ScreenHeight, collisionCellSize),
	}
	s.cues.Add(CueTrack)
	return s
}

// Over reports whether the player has been destroyed.
func (s *Session) Over() bool {
	return s.over
}

// Theme returns the background theme index for the current time.
func (s *Session) Theme() int {
	return int(s.Elapsed/ThemePeriod) % ThemeCount
}

// SpawnParticle adds a particle to the session (implements object.ParticleSpawner).
func (s *Session) SpawnParticle(p *object.Particle) {
	s.Particles = append(s.Particles, p)
}

// DrainCues returns the cues raised since the last call and clears them.
func (s *Session) DrainCues() CueSet {
	c := s.cues
	s.cues = 0
	return c
}

// Update advances a running session by dt seconds.
func (s *Session) Update(dt float64, c Controls) {
	if s.over {
		s.UpdateEffects(dt)
		return
	}

	s.Elapsed += dt
	s.Timers.Decay(dt)
	s.updateTrack()

	if c.Blast {
		s.TriggerBlast()
	}

	s.Player.Move(c.Move, dt, s.Screen)
	if c.Fire {
		s.fire()
	}

	live := object.CountLive(s.Adversaries)
	if a := s.Spawner.Update(dt, s.Elapsed, live, s.Screen, s.rng); a != nil {
		s.Adversaries = append(s.Adversaries, a)
	}

	s.advanceProjectiles(dt)
	s.advanceAdversaries(dt)

	s.resolveBulletHits()
	s.resolveBreaches()
	s.resolveEnemyFire()

	// Game over freezes movement from the pass that ended the run.
	if !s.over {
		s.advancePowerUps(dt)
		s.resolvePickups()
	}

	s.advanceEffects(dt)
	s.compact()
}

// UpdateEffects animates particles and blast waves only. Used after game over
// so the wreck keeps burning while everything else is frozen.
func (s *Session) UpdateEffects(dt float64) {
	s.advanceEffects(dt)
	s.Particles = object.Compact(s.Particles)
	s.Blasts = object.Compact(s.Blasts)
}

func (s *Session) updateTrack() {
	track := 0
	if s.Elapsed > TrackSwitchTime {
		track = 1
	}
	if track != s.Track {
		s.Track = track
		s.cues.Add(CueTrack)
	}
}

func (s *Session) advanceProjectiles(dt float64) {
	for _, b := range s.Bullets {
		b.Advance(dt)
		if b.Offscreen(s.Screen) {
			b.MarkDestroyed()
		}
	}
	for _, e := range s.EnemyBullets {
		e.Advance(dt)
		if e.Offscreen(s.Screen) {
			e.MarkDestroyed()
		}
	}
}

func (s *Session) advanceAdversaries(dt float64) {
	for _, a := range s.Adversaries {
		a.Advance(dt, s.Elapsed)
		if a.Offscreen(s.Screen) {
			a.MarkDestroyed()
			continue
		}
		if a.ReadyToFire() {
			s.EnemyBullets = append(s.EnemyBullets, a.Fire(s.rng))
		}
	}
}

func (s *Session) advancePowerUps(dt float64) {
	for _, p := range s.PowerUps {
		p.Advance(dt)
		if p.Offscreen(s.Screen) {
			p.MarkDestroyed()
		}
	}
}

func (s *Session) advanceEffects(dt float64) {
	for _, p := range s.Particles {
		p.Advance(dt)
	}
	for _, b := range s.Blasts {
		b.Advance(dt)
	}
}

// compact drops every entity marked destroyed this frame.
func (s *Session) compact() {
	s.Bullets = object.Compact(s.Bullets)
	s.EnemyBullets = object.Compact(s.EnemyBullets)
	s.Adversaries = object.Compact(s.Adversaries)
	s.PowerUps = object.Compact(s.PowerUps)
	s.Blasts = object.Compact(s.Blasts)
	s.Particles = object.Compact(s.Particles)
}
