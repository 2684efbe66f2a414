package game

import "github.com/tomz197/ufoshooter/internal/object"

// EntityKind identifies what a DrawRequest depicts.
type EntityKind int

const (
	EntityAdversary EntityKind = iota
	EntityPowerUp
	EntityBullet
	EntityEnemyBullet
	EntityBlast
	EntityParticle
	EntityPlayer
)

// DrawRequest is one thing to draw this frame, in logical units.
// Variant is the kind-specific sub-type (object.AdversaryKind,
// object.PowerUpKind or object.ParticleVariant) and is 0 otherwise.
type DrawRequest struct {
	Kind    EntityKind
	Variant int
	X, Y    float64 // Center
	W, H    float64 // Size; for round things W == H == diameter
	Health  float64 // Adversary remaining health fraction
	Fade    float64 // Particle remaining life, blast progress
}

// HUD carries the values shown around the playfield.
type HUD struct {
	Score         int
	Health        int
	MaxHealth     int
	Shields       int
	MaxShields    int
	RapidFire     float64 // Seconds remaining
	SpreadShot    float64 // Seconds remaining
	BlastReady    bool
	BlastCooldown float64 // Seconds until ready
	BlastCharge   float64 // 0..1
	Elapsed       float64
}

// Snapshot is everything needed to present one frame.
type Snapshot struct {
	State  State
	Width  float64
	Height float64
	Draws  []DrawRequest // Back to front
	HUD    HUD
	Theme  int
	Track  int
	Cues   CueSet // Raised during the last Step
	// PlayerX lets the presenter offset the camera toward the ship.
	PlayerX float64
}

// Snapshot describes the current frame. Draws is reused between calls and
// is only valid until the next call.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	d := g.draws[:0]

	for _, a := range s.Adversaries {
		d = append(d, DrawRequest{
			Kind: EntityAdversary, Variant: int(a.Kind),
			X: a.X, Y: a.Y, W: a.Width, H: a.Height,
			Health: a.HealthRatio(),
		})
	}
	for _, p := range s.PowerUps {
		d = append(d, DrawRequest{
			Kind: EntityPowerUp, Variant: int(p.Kind),
			X: p.X, Y: p.Y, W: p.Size, H: p.Size,
		})
	}
	for _, b := range s.Bullets {
		d = append(d, DrawRequest{Kind: EntityBullet, X: b.X, Y: b.Y, W: 2 * b.Radius, H: 2 * b.Radius})
	}
	for _, e := range s.EnemyBullets {
		d = append(d, DrawRequest{Kind: EntityEnemyBullet, X: e.X, Y: e.Y, W: 2 * e.Radius, H: 2 * e.Radius})
	}
	for _, b := range s.Blasts {
		r := b.Radius()
		d = append(d, DrawRequest{Kind: EntityBlast, X: b.X, Y: b.Y, W: 2 * r, H: 2 * r, Fade: b.Progress()})
	}
	for _, p := range s.Particles {
		d = append(d, DrawRequest{
			Kind: EntityParticle, Variant: int(p.Variant),
			X: p.X, Y: p.Y, W: 1, H: 1, Fade: p.Fade(),
		})
	}
	// The wreck is drawn as particles once the ship is gone.
	if !s.Over() {
		p := s.Player
		d = append(d, DrawRequest{Kind: EntityPlayer, X: p.X, Y: p.Y, W: p.Width, H: p.Height})
	}
	g.draws = d

	return Snapshot{
		State:  g.state,
		Width:  s.Screen.Width,
		Height: s.Screen.Height,
		Draws:  d,
		HUD: HUD{
			Score:         s.Score,
			Health:        s.Player.Health,
			MaxHealth:     object.MaxHealth,
			Shields:       s.Player.Shields,
			MaxShields:    object.MaxShields,
			RapidFire:     s.Timers.RapidFire,
			SpreadShot:    s.Timers.SpreadShot,
			BlastReady:    s.Timers.BlastReady(),
			BlastCooldown: s.Timers.BlastCooldown,
			BlastCharge:   s.Timers.BlastCharge(),
			Elapsed:       s.Elapsed,
		},
		Theme:   s.Theme(),
		Track:   s.Track,
		Cues:    g.cues,
		PlayerX: s.Player.X,
	}
}
