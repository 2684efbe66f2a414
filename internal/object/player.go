package object

import "github.com/tomz197/ufoshooter/internal/physics"

// Player tuning.
const (
	PlayerWidth  = 50.0
	PlayerHeight = 60.0
	PlayerSpeed  = 360.0 // Units per second
	MaxHealth    = 3
	MaxShields   = 3
)

// Player is the ship at the bottom of the screen.
type Player struct {
	X, Y    float64 // Position (center)
	Width   float64
	Height  float64
	Speed   float64 // Horizontal speed in units per second
	Health  int     // 0..MaxHealth
	Shields int     // 0..MaxShields, each absorbs one hit
}

// NewPlayer creates a ship at full health with no shields.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Speed:  PlayerSpeed,
		Health: MaxHealth,
	}
}

// Move shifts the ship horizontally. dir is -1 (left), 0 or +1 (right).
// The ship never leaves the screen.
func (p *Player) Move(dir int, dt float64, screen Screen) {
	p.X += float64(dir) * p.Speed * dt
	p.X = physics.Clamp(p.X, p.Width/2, screen.Width-p.Width/2)
}

// Muzzle returns where new shots appear: just above the gun barrel.
func (p *Player) Muzzle() (x, y float64) {
	return p.X, p.Y - p.Height/2 - 20
}

// BlastOrigin returns where the blast wave is centered.
func (p *Player) BlastOrigin() (x, y float64) {
	return p.X, p.Y - p.Height/2 - 10
}

// AbsorbHit costs the ship one unit of defense: a shield charge when it has
// one, otherwise a point of health. Health never drops below zero.
// Returns true if a shield took the hit.
func (p *Player) AbsorbHit() bool {
	if p.Shields > 0 {
		p.Shields--
		return true
	}
	if p.Health > 0 {
		p.Health--
	}
	return false
}

// AddShield grants one shield charge up to MaxShields.
// Returns false if the ship was already at the cap.
func (p *Player) AddShield() bool {
	if p.Shields >= MaxShields {
		p.Shields = MaxShields
		return false
	}
	p.Shields++
	return true
}

// Alive returns true while the ship has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Bounds returns the ship's collision box.
func (p *Player) Bounds() physics.Box {
	return physics.NewBox(p.X, p.Y, p.Width, p.Height)
}
