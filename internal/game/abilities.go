package game

import "github.com/tomz197/ufoshooter/internal/object"

// Timers holds the per-session countdowns, in seconds.
type Timers struct {
	RapidFire     float64 // Rapid fire remaining
	SpreadShot    float64 // Spread shot remaining
	BlastCooldown float64 // Until the blast can be used again
	FireCooldown  float64 // Until the gun can fire again
}

// Decay counts every timer down by dt, stopping at zero.
func (t *Timers) Decay(dt float64) {
	t.RapidFire = decay(t.RapidFire, dt)
	t.SpreadShot = decay(t.SpreadShot, dt)
	t.BlastCooldown = decay(t.BlastCooldown, dt)
	t.FireCooldown = decay(t.FireCooldown, dt)
}

func decay(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}

// FireDelay returns the gun's reload time given active power-ups.
func (t *Timers) FireDelay() float64 {
	if t.RapidFire > 0 {
		return FireDelayRapid
	}
	return FireDelayBase
}

// SpreadActive reports whether shots fan out into three.
func (t *Timers) SpreadActive() bool {
	return t.SpreadShot > 0
}

// BlastReady reports whether the blast can be triggered.
func (t *Timers) BlastReady() bool {
	return t.BlastCooldown <= 0
}

// BlastCharge returns how recharged the blast is, in [0, 1].
func (t *Timers) BlastCharge() float64 {
	charge := 1 - t.BlastCooldown/BlastCooldown
	if charge < 0 {
		return 0
	}
	if charge > 1 {
		return 1
	}
	return charge
}

// fire shoots if the gun has reloaded.
func (s *Session) fire() {
	if s.Timers.FireCooldown > 0 {
		return
	}

	x, y := s.Player.Muzzle()
	s.Bullets = append(s.Bullets, object.NewPlayerShot(x, y, 0))
	if s.Timers.SpreadActive() {
		s.Bullets = append(s.Bullets,
			object.NewPlayerShot(x, y, -object.SpreadLateralSpeed),
			object.NewPlayerShot(x, y, object.SpreadLateralSpeed),
		)
	}
	s.Timers.FireCooldown = s.Timers.FireDelay()
	s.cues.Add(CueShoot)
}

// TriggerBlast clears the board if the blast has recharged: every live UFO
// is destroyed and scored, every enemy shot disappears, and the cooldown
// restarts. Power-ups in flight are left alone.
// Returns false (changing nothing) while on cooldown or after game over.
func (s *Session) TriggerBlast() bool {
	if s.over || !s.Timers.BlastReady() {
		return false
	}

	cleared := false
	for _, a := range s.Adversaries {
		if a.IsDestroyed() {
			continue
		}
		s.Score += a.Reward()
		a.MarkDestroyed()
		cleared = true
	}
	for _, e := range s.EnemyBullets {
		if e.IsDestroyed() {
			continue
		}
		e.MarkDestroyed()
		cleared = true
	}
	s.Adversaries = object.Compact(s.Adversaries)
	s.EnemyBullets = object.Compact(s.EnemyBullets)

	// The ring and its sound only play when something was actually cleared.
	if cleared {
		x, y := s.Player.BlastOrigin()
		s.Blasts = append(s.Blasts, object.NewBlastWave(x, y))
		s.cues.Add(CueBlast)
	}

	s.Timers.BlastCooldown = BlastCooldown
	return true
}

// applyPowerUp grants a picked-up power-up's effect.
func (s *Session) applyPowerUp(kind object.PowerUpKind) {
	switch kind {
	case object.PowerUpRapid:
		s.Timers.RapidFire = RapidFireDuration
	case object.PowerUpSpread:
		s.Timers.SpreadShot = SpreadShotDuration
	case object.PowerUpShield:
		s.Player.AddShield()
	}
}
