package object

import (
	"math"
	"sync"
)

var particlePool = sync.Pool{
	New: func() any { return new(Particle) },
}

// particleDrag is the velocity kept per 1/60 s.
const particleDrag = 0.95

// ParticleVariant selects how a particle is tinted.
type ParticleVariant int

const (
	ParticleDebris ParticleVariant = iota // UFO destroyed
	ParticleSpark                         // UFO hit but alive
	ParticleWreck                         // Player ship destroyed
)

// Particle is a cosmetic spark. It never collides and never touches the
// gameplay random source.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Lifetime float64 // Seconds left
	Span     float64 // Lifetime at spawn
	Variant  ParticleVariant
}

// ParticleSpawner receives particles created by a Burst.
type ParticleSpawner interface {
	SpawnParticle(p *Particle)
}

// NewParticle takes a particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64, variant ParticleVariant) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{X: x, Y: y, VX: vx, VY: vy, Lifetime: lifetime, Span: lifetime, Variant: variant}
	return p
}

// Release puts the particle back in the pool. The caller must drop it.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Burst describes a radial spray of particles.
type Burst struct {
	Count    int
	Speed    float64 // Mean launch speed; each particle gets 50-150% of it
	Lifetime float64 // Longest lifetime; each particle gets 50-100% of it
	Variant  ParticleVariant
}

// Spawn sprays b.Count particles from (x, y) into spawner.
func (b Burst) Spawn(x, y float64, r Rand, spawner ParticleSpawner) {
	if spawner == nil {
		return
	}
	for range b.Count {
		angle := Phase(r)
		speed := b.Speed * (0.5 + r.Float64())
		life := b.Lifetime * (0.5 + 0.5*r.Float64())
		spawner.SpawnParticle(NewParticle(x, y, math.Cos(angle)*speed, math.Sin(angle)*speed, life, b.Variant))
	}
}

// Advance moves the particle and burns dt of its lifetime.
func (p *Particle) Advance(dt float64) {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return
	}
	keep := math.Pow(particleDrag, dt*60)
	p.VX *= keep
	p.VY *= keep
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// Fade is the fraction of lifetime left, in [0, 1].
func (p *Particle) Fade() float64 {
	if p.Span <= 0 || p.Lifetime <= 0 {
		return 0
	}
	return p.Lifetime / p.Span
}

func (p *Particle) MarkDestroyed() { p.Lifetime = 0 }

func (p *Particle) IsDestroyed() bool { return p.Lifetime <= 0 }
