package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

var screen = Screen{Width: 900, Height: 600}

func TestRandomHelpers(t *testing.T) {
	r := &seqRand{vals: []float64{0, 0.5, 0.999999}}
	assert.Equal(t, 10.0, Uniform(r, 10, 20))
	assert.Equal(t, 15.0, Uniform(r, 10, 20))
	assert.InDelta(t, 20.0, Uniform(r, 10, 20), 1e-4)

	assert.Equal(t, 2, Pick(&seqRand{vals: []float64{0.9999}}, 3))
	assert.Equal(t, 0, Pick(&seqRand{vals: []float64{0}}, 3))

	assert.True(t, Chance(&seqRand{vals: []float64{0.1}}, 0.18))
	assert.False(t, Chance(&seqRand{vals: []float64{0.18}}, 0.18))
}

func TestPlayerMoveClampsToScreen(t *testing.T) {
	p := NewPlayer(450, 520)
	p.Move(-1, 10, screen)
	assert.Equal(t, PlayerWidth/2, p.X)

	p.Move(1, 10, screen)
	assert.Equal(t, screen.Width-PlayerWidth/2, p.X)

	p.X = 450
	p.Move(1, 0.5, screen)
	assert.Equal(t, 450+PlayerSpeed*0.5, p.X)
}

func TestPlayerAbsorbHit(t *testing.T) {
	p := NewPlayer(450, 520)
	p.Shields = 1

	assert.True(t, p.AbsorbHit(), "shield absorbs first")
	assert.Equal(t, 0, p.Shields)
	assert.Equal(t, MaxHealth, p.Health)

	for i := 0; i < MaxHealth+2; i++ {
		assert.False(t, p.AbsorbHit())
	}
	assert.Equal(t, 0, p.Health, "health never goes negative")
	assert.False(t, p.Alive())
}

func TestPlayerAddShieldCaps(t *testing.T) {
	p := NewPlayer(450, 520)
	for i := 0; i < MaxShields; i++ {
		assert.True(t, p.AddShield())
	}
	assert.False(t, p.AddShield())
	assert.Equal(t, MaxShields, p.Shields)
}

func TestProjectileAdvanceAndOffscreen(t *testing.T) {
	p := NewPlayerShot(100, 10, -SpreadLateralSpeed)
	p.Advance(0.01)
	assert.InDelta(t, 100-1.8, p.X, 1e-9)
	assert.InDelta(t, 3.0, p.Y, 1e-9)
	assert.False(t, p.Offscreen(screen))

	p.Advance(0.02)
	assert.True(t, p.Offscreen(screen))

	e := NewEnemyShot(100, 600)
	assert.Equal(t, OwnerEnemy, e.Owner)
	assert.False(t, e.Offscreen(screen), "still touching the bottom edge")
	e.Advance(0.1)
	assert.True(t, e.Offscreen(screen))
}

func TestSpawnAdversaryUsesClassRanges(t *testing.T) {
	r := &seqRand{vals: []float64{0, 0.5, 0.25, 1.0 / 3}}
	a := SpawnAdversary(AdversaryBig, 300, -60, r)

	assert.Equal(t, AdversaryBig, a.Kind)
	assert.Equal(t, 70.0, a.Speed)
	assert.Equal(t, 30.0, a.Amplitude)
	assert.InDelta(t, math.Pi/2, a.Phase, 1e-9)
	assert.InDelta(t, 2.0, a.FireCooldown, 1e-9)
	assert.Equal(t, 100.0, a.Width)
	assert.Equal(t, 50.0, a.Height)
	assert.Equal(t, 4, a.Health)
	assert.Equal(t, 3, a.Reward())

	small := SpawnAdversary(AdversarySmall, 300, -60, &seqRand{vals: []float64{0.999}})
	assert.Equal(t, 1, small.Health)
	assert.Equal(t, 1, small.Reward())
	assert.InDelta(t, 160, small.Speed, 0.1)
}

func TestAdversaryAdvance(t *testing.T) {
	a := NewAdversary(AdversarySmall, 200, 0, 100, 40, 0, 2)
	a.Advance(0.5, 0)

	assert.Equal(t, 50.0, a.Y)
	assert.Equal(t, 200.0, a.X, "sin(0) sway is zero")
	assert.Equal(t, 1.5, a.FireCooldown)

	b := NewAdversary(AdversarySmall, 200, 0, 100, 40, math.Pi/2, 2)
	b.Advance(0.5, 0)
	assert.InDelta(t, 200+40*0.5*4, b.X, 1e-9)
}

func TestAdversaryFiring(t *testing.T) {
	r := &seqRand{vals: []float64{0.5}}

	small := NewAdversary(AdversarySmall, 200, 100, 100, 20, 0, 0)
	assert.False(t, small.ReadyToFire(), "small UFOs never fire")

	big := NewAdversary(AdversaryBig, 200, 30, 80, 20, 0, 0)
	assert.False(t, big.ReadyToFire(), "too close to the top")

	big.Y = 100
	require.True(t, big.ReadyToFire())
	shot := big.Fire(r)
	assert.Equal(t, OwnerEnemy, shot.Owner)
	assert.Equal(t, 125.0, shot.Y)
	assert.Equal(t, 2.25, big.FireCooldown)
	assert.False(t, big.ReadyToFire())
}

func TestAdversaryHit(t *testing.T) {
	a := NewAdversary(AdversaryBig, 0, 0, 80, 20, 0, 2)
	for i := 0; i < 3; i++ {
		assert.False(t, a.Hit())
		assert.False(t, a.IsDestroyed())
	}
	assert.Equal(t, 0.25, a.HealthRatio())
	assert.True(t, a.Hit())
	assert.True(t, a.IsDestroyed())
	assert.Equal(t, 0, a.Health)
}

func TestAdversaryOffscreen(t *testing.T) {
	a := NewAdversary(AdversarySmall, 0, 600+60+15, 100, 20, 0, 2)
	assert.False(t, a.Offscreen(screen))
	a.Y += 1
	assert.True(t, a.Offscreen(screen))
}

func TestPowerUp(t *testing.T) {
	assert.Equal(t, PowerUpRapid, RandomPowerUpKind(&seqRand{vals: []float64{0.1}}))
	assert.Equal(t, PowerUpSpread, RandomPowerUpKind(&seqRand{vals: []float64{0.5}}))
	assert.Equal(t, PowerUpShield, RandomPowerUpKind(&seqRand{vals: []float64{0.9}}))

	p := NewPowerUp(100, 0, PowerUpShield)
	p.Advance(1)
	assert.Equal(t, PowerUpFallSpeed, p.Y)

	p.Y = 600 + 40 + PowerUpSize
	assert.False(t, p.Offscreen(screen))
	p.Y += 0.1
	assert.True(t, p.Offscreen(screen))
	assert.Equal(t, "shield", p.Kind.String())
}

func TestBlastWave(t *testing.T) {
	b := NewBlastWave(10, 20)
	assert.Equal(t, 80.0, b.Radius())

	b.Advance(0.3)
	assert.InDelta(t, 0.5, b.Progress(), 1e-9)
	assert.False(t, b.IsDestroyed())

	b.Advance(0.3)
	assert.True(t, b.IsDestroyed())
	assert.Equal(t, 580.0, b.Radius())
}

type particleSink []*Particle

func (s *particleSink) SpawnParticle(p *Particle) { *s = append(*s, p) }

func TestBurstSpawn(t *testing.T) {
	var sink particleSink
	burst := Burst{Count: 8, Speed: 100, Lifetime: 0.5, Variant: ParticleDebris}
	burst.Spawn(50, 50, &seqRand{vals: []float64{0.1, 0.7, 0.3}}, &sink)
	require.Len(t, sink, 8)

	for _, p := range sink {
		assert.Greater(t, p.Lifetime, 0.0)
		assert.LessOrEqual(t, p.Lifetime, 0.5)
		p.Advance(1)
		assert.True(t, p.IsDestroyed())
	}

	Burst{Count: 4, Speed: 1, Lifetime: 1}.Spawn(0, 0, &seqRand{vals: []float64{0.5}}, nil)
}

func TestCompact(t *testing.T) {
	shots := []*Projectile{
		NewPlayerShot(0, 0, 0),
		NewPlayerShot(1, 0, 0),
		NewPlayerShot(2, 0, 0),
	}
	shots[1].MarkDestroyed()
	assert.Equal(t, 2, CountLive(shots))

	shots = Compact(shots)
	require.Len(t, shots, 2)
	assert.Equal(t, 0.0, shots[0].X)
	assert.Equal(t, 2.0, shots[1].X)

	particles := []*Particle{NewParticle(0, 0, 0, 0, 1, ParticleSpark)}
	particles[0].MarkDestroyed()
	assert.Empty(t, Compact(particles))
}
