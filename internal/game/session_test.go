package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/ufoshooter/internal/object"
)

// constRand always returns the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// quietSession returns a session whose spawner will not fire during a test.
func quietSession(r object.Rand) *Session {
	s := NewSession(r)
	s.Spawner.Countdown = 1e9
	s.DrainCues()
	return s
}

func TestSpawnCurves(t *testing.T) {
	prevInterval := SpawnInterval(0)
	prevCap := AdversaryCap(0)
	assert.Equal(t, BaseSpawnInterval, prevInterval)
	assert.Equal(t, BaseAdversaryCap, prevCap)

	for elapsed := 0.0; elapsed < 1000; elapsed += 0.5 {
		interval := SpawnInterval(elapsed)
		limit := AdversaryCap(elapsed)

		assert.LessOrEqual(t, interval, prevInterval)
		assert.GreaterOrEqual(t, interval, MinSpawnInterval)
		assert.GreaterOrEqual(t, limit, prevCap)
		assert.LessOrEqual(t, limit, MaxAdversaryCap)
		assert.LessOrEqual(t, BigChance(elapsed), MaxBigChance)

		prevInterval, prevCap = interval, limit
	}

	assert.Equal(t, MinSpawnInterval, SpawnInterval(1e6))
	assert.Equal(t, MaxAdversaryCap, AdversaryCap(1e18))
	assert.Equal(t, BaseAdversaryCap, AdversaryCap(-5))
}

func TestSpawnerRespectsCap(t *testing.T) {
	screen := object.Screen{Width: ScreenWidth, Height: ScreenHeight}
	r := constRand(0.5)

	var sp Spawner
	assert.Nil(t, sp.Update(0.1, 0, BaseAdversaryCap, screen, r), "at cap")

	a := sp.Update(0.1, 0, BaseAdversaryCap-1, screen, r)
	require.NotNil(t, a)
	assert.Equal(t, object.AdversarySmall, a.Kind)
	assert.Equal(t, ScreenWidth/2.0, a.X)
	assert.Equal(t, SpawnY, a.Y)
	assert.Equal(t, SpawnInterval(0), sp.Countdown)

	assert.Nil(t, sp.Update(0.1, 0, 0, screen, r), "counting down")

	big := (&Spawner{}).Update(0, 0, 0, screen, constRand(0.1))
	require.NotNil(t, big)
	assert.Equal(t, object.AdversaryBig, big.Kind)
}

func TestBlastClearsBoard(t *testing.T) {
	s := quietSession(constRand(0.5))
	s.Adversaries = []*object.Adversary{
		object.NewAdversary(object.AdversarySmall, 100, 100, 100, 20, 0, 2),
		object.NewAdversary(object.AdversaryBig, 300, 100, 80, 20, 0, 2),
	}
	s.EnemyBullets = []*object.Projectile{object.NewEnemyShot(300, 200)}
	s.PowerUps = []*object.PowerUp{object.NewPowerUp(50, 50, object.PowerUpRapid)}

	require.True(t, s.TriggerBlast())
	assert.Equal(t, 4, s.Score)
	assert.Empty(t, s.Adversaries)
	assert.Empty(t, s.EnemyBullets)
	assert.Len(t, s.PowerUps, 1, "power-ups survive the blast")
	assert.Len(t, s.Blasts, 1)
	assert.Equal(t, BlastCooldown, s.Timers.BlastCooldown)
	assert.True(t, s.DrainCues().Has(CueBlast))

	s.Adversaries = []*object.Adversary{object.NewAdversary(object.AdversarySmall, 100, 100, 100, 20, 0, 2)}
	assert.False(t, s.TriggerBlast(), "on cooldown")
	assert.Equal(t, 4, s.Score)
	assert.Len(t, s.Adversaries, 1)
	assert.Equal(t, BlastCooldown, s.Timers.BlastCooldown)
}

func TestBlastOnEmptyBoard(t *testing.T) {
	s := quietSession(constRand(0.5))
	require.True(t, s.TriggerBlast())
	assert.Empty(t, s.Blasts, "nothing cleared, no ring")
	assert.False(t, s.DrainCues().Has(CueBlast))
	assert.Equal(t, BlastCooldown, s.Timers.BlastCooldown)
}

func TestBulletHits(t *testing.T) {
	s := quietSession(constRand(0.5))
	small := object.NewAdversary(object.AdversarySmall, 200, 200, 100, 20, 0, 2)
	big := object.NewAdversary(object.AdversaryBig, 600, 200, 80, 20, 0, 2)
	s.Adversaries = []*object.Adversary{small, big}
	s.Bullets = []*object.Projectile{
		object.NewPlayerShot(200, 200, 0),
		object.NewPlayerShot(600, 200, 0),
	}

	s.resolveBulletHits()

	assert.True(t, small.IsDestroyed())
	assert.False(t, big.IsDestroyed())
	assert.Equal(t, 3, big.Health)
	assert.Equal(t, 1, s.Score, "only the kill scores")
	assert.Zero(t, object.CountLive(s.Bullets), "both shots are spent")
	assert.Empty(t, s.PowerUps, "0.5 is above the drop chance")

	cues := s.DrainCues()
	assert.True(t, cues.Has(CueExplosion))
	assert.True(t, cues.Has(CueHit))
}

func TestBulletHitDropsPowerUp(t *testing.T) {
	s := quietSession(constRand(0.1))
	s.Adversaries = []*object.Adversary{object.NewAdversary(object.AdversarySmall, 200, 200, 100, 20, 0, 2)}
	s.Bullets = []*object.Projectile{object.NewPlayerShot(200, 200, 0)}

	s.resolveBulletHits()

	require.Len(t, s.PowerUps, 1)
	assert.Equal(t, object.PowerUpRapid, s.PowerUps[0].Kind)
	assert.Equal(t, 200.0, s.PowerUps[0].X)
}

func TestBulletPicksNearestAdversary(t *testing.T) {
	s := quietSession(constRand(0.5))
	far := object.NewAdversary(object.AdversarySmall, 210, 200, 100, 20, 0, 2)
	near := object.NewAdversary(object.AdversarySmall, 195, 200, 100, 20, 0, 2)
	s.Adversaries = []*object.Adversary{far, near}
	s.Bullets = []*object.Projectile{object.NewPlayerShot(200, 200, 0)}

	s.resolveBulletHits()
	assert.True(t, near.IsDestroyed())
	assert.False(t, far.IsDestroyed())

	// Equal distance: the earlier spawn wins.
	s = quietSession(constRand(0.5))
	first := object.NewAdversary(object.AdversarySmall, 190, 200, 100, 20, 0, 2)
	second := object.NewAdversary(object.AdversarySmall, 210, 200, 100, 20, 0, 2)
	s.Adversaries = []*object.Adversary{first, second}
	s.Bullets = []*object.Projectile{object.NewPlayerShot(200, 200, 0)}

	s.resolveBulletHits()
	assert.True(t, first.IsDestroyed())
	assert.False(t, second.IsDestroyed())
}

func TestShotsDoNotDoubleKill(t *testing.T) {
	s := quietSession(constRand(0.5))
	s.Adversaries = []*object.Adversary{object.NewAdversary(object.AdversarySmall, 200, 200, 100, 20, 0, 2)}
	s.Bullets = []*object.Projectile{
		object.NewPlayerShot(200, 200, 0),
		object.NewPlayerShot(201, 200, 0),
	}

	s.resolveBulletHits()
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 1, object.CountLive(s.Bullets), "second shot flies on")
}

func TestBreachCostsHealth(t *testing.T) {
	s := quietSession(constRand(0.5))
	s.Adversaries = []*object.Adversary{object.NewAdversary(object.AdversarySmall, 100, BreachLine+1, 100, 20, 0, 2)}

	s.resolveBreaches()
	assert.Equal(t, object.MaxHealth-1, s.Player.Health)
	assert.Zero(t, s.Score)
	assert.Zero(t, object.CountLive(s.Adversaries))
}

func TestShieldAbsorbsAndCaps(t *testing.T) {
	s := quietSession(constRand(0.5))
	for i := 0; i < object.MaxShields+2; i++ {
		s.applyPowerUp(object.PowerUpShield)
	}
	assert.Equal(t, object.MaxShields, s.Player.Shields)

	s.damagePlayer()
	assert.Equal(t, object.MaxShields-1, s.Player.Shields)
	assert.Equal(t, object.MaxHealth, s.Player.Health)
}

func TestPickupAppliesPowerUp(t *testing.T) {
	s := quietSession(constRand(0.5))
	s.PowerUps = []*object.PowerUp{
		object.NewPowerUp(s.Player.X, s.Player.Y, object.PowerUpRapid),
		object.NewPowerUp(s.Player.X, s.Player.Y, object.PowerUpSpread),
		object.NewPowerUp(10, 10, object.PowerUpShield),
	}

	s.resolvePickups()
	assert.Equal(t, RapidFireDuration, s.Timers.RapidFire)
	assert.Equal(t, SpreadShotDuration, s.Timers.SpreadShot)
	assert.Zero(t, s.Player.Shields, "out of reach")
	assert.Equal(t, FireDelayRapid, s.Timers.FireDelay())
	assert.True(t, s.DrainCues().Has(CuePickup))
}

func TestSpreadFire(t *testing.T) {
	s := quietSession(constRand(0.5))
	s.Timers.SpreadShot = 1

	s.fire()
	require.Len(t, s.Bullets, 3)
	assert.Equal(t, 0.0, s.Bullets[0].VX)
	assert.Equal(t, -object.SpreadLateralSpeed, s.Bullets[1].VX)
	assert.Equal(t, object.SpreadLateralSpeed, s.Bullets[2].VX)
	assert.Equal(t, FireDelayBase, s.Timers.FireCooldown)

	s.fire()
	assert.Len(t, s.Bullets, 3, "still reloading")
}

func TestGameOverHappensOnce(t *testing.T) {
	s := quietSession(constRand(0.5))
	s.Player.Health = 1
	s.EnemyBullets = []*object.Projectile{
		object.NewEnemyShot(s.Player.X, s.Player.Y),
		object.NewEnemyShot(s.Player.X, s.Player.Y),
	}
	s.Adversaries = []*object.Adversary{object.NewAdversary(object.AdversarySmall, s.Player.X, s.Player.Y, 0, 0, 0, 2)}

	s.Update(0.001, Controls{})

	assert.True(t, s.Over())
	assert.Equal(t, 0, s.Player.Health)
	assert.Len(t, s.Particles, wreckBurst.Count+debrisBurst.Count)
}

func TestGameOverFreezesPowerUps(t *testing.T) {
	s := quietSession(constRand(0.5))
	s.Player.Health = 1
	s.EnemyBullets = []*object.Projectile{object.NewEnemyShot(s.Player.X, s.Player.Y)}
	drop := object.NewPowerUp(100, 100, object.PowerUpShield)
	s.PowerUps = []*object.PowerUp{drop}

	s.Update(frame, Controls{})

	require.True(t, s.Over())
	assert.Equal(t, 100.0, drop.Y, "no movement in the frame the run ended")
	require.Len(t, s.PowerUps, 1)

	s.Update(frame, Controls{})
	assert.Equal(t, 100.0, drop.Y)
}

func TestAdversaryLeavingScreenIsRemoved(t *testing.T) {
	s := quietSession(constRand(0.5))
	gone := object.NewAdversary(object.AdversaryBig, 300, ScreenHeight+200, 80, 20, 0, 0)
	stays := object.NewAdversary(object.AdversaryBig, 500, 100, 80, 20, 0, 2)
	s.Adversaries = []*object.Adversary{gone, stays}

	s.advanceAdversaries(0.01)
	assert.True(t, gone.IsDestroyed())
	assert.False(t, stays.IsDestroyed())
	assert.Empty(t, s.EnemyBullets, "a removed UFO does not fire")

	s.compact()
	assert.Equal(t, []*object.Adversary{stays}, s.Adversaries)
}

func TestTrackAndTheme(t *testing.T) {
	s := quietSession(constRand(0.5))
	s.Elapsed = TrackSwitchTime - 0.005
	s.Update(0.001, Controls{})
	assert.Equal(t, 0, s.Track)
	assert.False(t, s.DrainCues().Has(CueTrack))

	s.Update(0.01, Controls{})
	assert.Equal(t, 1, s.Track)
	assert.True(t, s.DrainCues().Has(CueTrack))

	s.Elapsed = 90
	assert.Equal(t, 2, s.Theme())
	s.Elapsed = 135
	assert.Equal(t, 0, s.Theme())
}

func TestSpawnThenKill(t *testing.T) {
	s := NewSession(constRand(0.5))
	s.Update(0.016, Controls{})
	require.Len(t, s.Adversaries, 1)

	a := s.Adversaries[0]
	a.Y = 200
	s.Bullets = append(s.Bullets, object.NewPlayerShot(a.X, a.Y, 0))

	s.Update(0, Controls{})
	assert.Equal(t, a.Reward(), s.Score)
	assert.Empty(t, s.Adversaries)
}

func TestCueSet(t *testing.T) {
	var c CueSet
	assert.True(t, c.Empty())
	c.Add(CueBlast)
	c.Add(CueShoot)
	c.Add(CueShoot)
	assert.Equal(t, []Cue{CueShoot, CueBlast}, c.Cues())
	assert.Equal(t, "blast", CueBlast.String())
}
