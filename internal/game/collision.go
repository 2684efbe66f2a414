package game

import (
	"math"

	"github.com/tomz197/ufoshooter/internal/object"
	"github.com/tomz197/ufoshooter/internal/physics"
)

// resolveBulletHits pairs each live player shot with at most one UFO.
// When a shot overlaps several UFOs the one whose center is nearest wins,
// ties going to the earliest spawned. UFOs destroyed earlier in the pass
// are skipped, so a kill is never scored twice.
func (s *Session) resolveBulletHits() {
	if len(s.Bullets) == 0 || len(s.Adversaries) == 0 {
		return
	}

	s.grid.Reset()
	for i, a := range s.Adversaries {
		if !a.IsDestroyed() {
			s.grid.Insert(a.X, a.Y, i)
		}
	}

	for _, b := range s.Bullets {
		if b.IsDestroyed() {
			continue
		}
		box := b.Bounds()

		target := -1
		best := math.Inf(1)
		for i := range s.grid.Near(b.X, b.Y) {
			a := s.Adversaries[i]
			if a.IsDestroyed() || !box.Intersects(a.Bounds()) {
				continue
			}
			d := physics.DistanceSquared(b.X, b.Y, a.X, a.Y)
			if d < best || (d == best && i < target) {
				best, target = d, i
			}
		}
		if target < 0 {
			continue
		}

		b.MarkDestroyed()
		s.hitAdversary(s.Adversaries[target])
	}
}

// hitAdversary applies one shot's damage and the kill rewards.
func (s *Session) hitAdversary(a *object.Adversary) {
	if !a.Hit() {
		s.cues.Add(CueHit)
		sparkBurst.Spawn(a.X, a.Y, s.fx, s)
		return
	}

	s.Score += a.Reward()
	s.cues.Add(CueExplosion)
	debrisBurst.Spawn(a.X, a.Y, s.fx, s)

	if object.Chance(s.rng, a.Kind.Class().DropChance) {
		kind := object.RandomPowerUpKind(s.rng)
		s.PowerUps = append(s.PowerUps, object.NewPowerUp(a.X, a.Y, kind))
	}
}

// resolveBreaches handles UFOs that rammed the ship or slipped past the
// breach line. Each costs the player one hit and is removed unscored.
func (s *Session) resolveBreaches() {
	ship := s.Player.Bounds()
	for _, a := range s.Adversaries {
		if s.over {
			return
		}
		if a.IsDestroyed() {
			continue
		}
		if !a.Bounds().Intersects(ship) && a.Y <= BreachLine {
			continue
		}

		a.MarkDestroyed()
		s.cues.Add(CueExplosion)
		debrisBurst.Spawn(a.X, a.Y, s.fx, s)
		s.damagePlayer()
	}
}

// resolveEnemyFire handles enemy shots reaching the ship.
func (s *Session) resolveEnemyFire() {
	ship := s.Player.Bounds()
	for _, e := range s.EnemyBullets {
		if s.over {
			return
		}
		if e.IsDestroyed() || !e.Bounds().Intersects(ship) {
			continue
		}

		e.MarkDestroyed()
		s.damagePlayer()
	}
}

// resolvePickups collects power-ups touching the ship.
func (s *Session) resolvePickups() {
	if s.over {
		return
	}
	ship := s.Player.Bounds()
	for _, p := range s.PowerUps {
		if p.IsDestroyed() || !p.Bounds().Intersects(ship) {
			continue
		}

		p.MarkDestroyed()
		s.cues.Add(CuePickup)
		s.applyPowerUp(p.Kind)
	}
}

// damagePlayer costs the ship one hit. A shield absorbs it if available.
// The first hit that empties health ends the run; later hits are ignored.
func (s *Session) damagePlayer() {
	if s.over {
		return
	}

	if s.Player.AbsorbHit() || s.Player.Alive() {
		s.cues.Add(CueHit)
		return
	}

	s.over = true
	s.cues.Add(CueExplosion)
	wreckBurst.Spawn(s.Player.X, s.Player.Y, s.fx, s)
}
