package object

import "github.com/tomz197/ufoshooter/internal/physics"

// Owner tells which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Projectile tuning.
const (
	PlayerShotSpeed    = 700.0 // Upward speed of player shots
	PlayerShotRadius   = 4.0
	SpreadLateralSpeed = 180.0 // Sideways speed of the two extra spread shots
	EnemyShotSpeed     = 260.0 // Downward speed of enemy shots
	EnemyShotRadius    = 5.0
)

// Projectile is a bullet fired by the player or by a big UFO.
type Projectile struct {
	X, Y      float64 // Position
	VX, VY    float64 // Velocity
	Radius    float64
	Owner     Owner // Selects the collision target set and color
	destroyed bool
}

// NewPlayerShot creates a player bullet travelling up with lateral speed vx.
func NewPlayerShot(x, y, vx float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     -PlayerShotSpeed,
		Radius: PlayerShotRadius,
		Owner:  OwnerPlayer,
	}
}

// NewEnemyShot creates an enemy bullet travelling straight down.
func NewEnemyShot(x, y float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		VY:     EnemyShotSpeed,
		Radius: EnemyShotRadius,
		Owner:  OwnerEnemy,
	}
}

// Advance moves the projectile.
func (p *Projectile) Advance(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// Offscreen returns true once the projectile has fully left the top or
// bottom of the screen.
func (p *Projectile) Offscreen(screen Screen) bool {
	return p.Y+p.Radius < 0 || p.Y-p.Radius > screen.Height
}

// Bounds returns the projectile's collision box.
func (p *Projectile) Bounds() physics.Box {
	return physics.NewBox(p.X, p.Y, p.Radius*2, p.Radius*2)
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for removal.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}
