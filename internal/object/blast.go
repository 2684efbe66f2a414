package object

// BlastLifetime is how long the blast ring animates, in seconds.
const BlastLifetime = 0.6

// BlastWave is the expanding ring left behind by the blast ability.
// It has no gameplay effect.
type BlastWave struct {
	X, Y     float64
	Age      float64
	Lifetime float64
}

// NewBlastWave creates a ring centered on (x, y).
func NewBlastWave(x, y float64) *BlastWave {
	return &BlastWave{X: x, Y: y, Lifetime: BlastLifetime}
}

// Advance ages the ring.
func (b *BlastWave) Advance(dt float64) {
	b.Age += dt
}

// Progress returns how far the animation has run, in [0, 1].
func (b *BlastWave) Progress() float64 {
	if b.Lifetime <= 0 {
		return 1
	}
	t := b.Age / b.Lifetime
	if t > 1 {
		return 1
	}
	if t < 0 {
		return 0
	}
	return t
}

// Radius returns the current ring radius: 80 growing to 580 over the lifetime.
func (b *BlastWave) Radius() float64 {
	return 80 + 500*b.Progress()
}

// MarkDestroyed ends the animation.
func (b *BlastWave) MarkDestroyed() {
	b.Age = b.Lifetime
}

// IsDestroyed returns true once the animation has finished.
func (b *BlastWave) IsDestroyed() bool {
	return b.Age >= b.Lifetime
}
