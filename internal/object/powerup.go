package object

import "github.com/tomz197/ufoshooter/internal/physics"

// PowerUpKind selects the effect applied on pickup.
type PowerUpKind int

const (
	PowerUpRapid PowerUpKind = iota
	PowerUpSpread
	PowerUpShield

	powerUpKindCount
)

// PowerUpKinds lists every kind, in declaration order.
var PowerUpKinds = [powerUpKindCount]PowerUpKind{PowerUpRapid, PowerUpSpread, PowerUpShield}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpRapid:
		return "rapid"
	case PowerUpSpread:
		return "spread"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// RandomPowerUpKind draws a kind uniformly.
func RandomPowerUpKind(r Rand) PowerUpKind {
	return PowerUpKinds[Pick(r, len(PowerUpKinds))]
}

// Power-up tuning.
const (
	PowerUpFallSpeed = 130.0
	PowerUpSize      = 18.0
	powerUpMargin    = 40.0
)

// PowerUp is a falling pickup dropped by a destroyed UFO.
type PowerUp struct {
	X, Y      float64
	VY        float64
	Size      float64
	Kind      PowerUpKind
	destroyed bool
}

// NewPowerUp creates a pickup of the given kind at (x, y).
func NewPowerUp(x, y float64, kind PowerUpKind) *PowerUp {
	return &PowerUp{
		X:    x,
		Y:    y,
		VY:   PowerUpFallSpeed,
		Size: PowerUpSize,
		Kind: kind,
	}
}

// Advance lets the pickup fall.
func (p *PowerUp) Advance(dt float64) {
	p.Y += p.VY * dt
}

// Offscreen returns true once the pickup has fallen past the bottom.
func (p *PowerUp) Offscreen(screen Screen) bool {
	return p.Y-p.Size > screen.Height+powerUpMargin
}

// Bounds returns the pickup's collision box.
func (p *PowerUp) Bounds() physics.Box {
	return physics.NewBox(p.X, p.Y, p.Size, p.Size)
}

// MarkDestroyed marks the pickup for removal.
func (p *PowerUp) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the pickup is marked for removal.
func (p *PowerUp) IsDestroyed() bool {
	return p.destroyed
}
