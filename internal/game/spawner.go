package game

import (
	"math"

	"github.com/tomz197/ufoshooter/internal/object"
)

// DifficultyFactor grows linearly with elapsed seconds, starting at 1.
func DifficultyFactor(elapsed float64) float64 {
	return 1 + clampElapsed(elapsed)/DifficultyPeriod
}

// SpawnInterval returns the seconds between UFO spawns at the given time.
// It never increases and never drops below MinSpawnInterval.
func SpawnInterval(elapsed float64) float64 {
	return math.Max(MinSpawnInterval, BaseSpawnInterval/DifficultyFactor(elapsed))
}

// AdversaryCap returns how many UFOs may be alive at once at the given time.
func AdversaryCap(elapsed float64) int {
	steps := int(math.Floor(clampElapsed(elapsed) / AdversaryCapPeriod))
	limit := BaseAdversaryCap + AdversaryCapStep*steps
	if limit > MaxAdversaryCap || limit < 0 { // limit < 0 guards int overflow on absurd times
		return MaxAdversaryCap
	}
	return limit
}

// BigChance returns the probability that a new UFO is the big kind.
func BigChance(elapsed float64) float64 {
	return math.Min(BaseBigChance+clampElapsed(elapsed)/BigChanceRampPeriod, MaxBigChance)
}

func clampElapsed(elapsed float64) float64 {
	if elapsed < 0 || math.IsNaN(elapsed) {
		return 0
	}
	return elapsed
}

// Spawner keeps UFOs coming at a rate that speeds up over time.
type Spawner struct {
	Countdown float64 // Seconds until the next spawn is due
}

// Update counts down and, when a spawn is due and the cap allows it, creates
// one UFO. Returns the new UFO or nil.
func (sp *Spawner) Update(dt, elapsed float64, live int, screen object.Screen, r object.Rand) *object.Adversary {
	sp.Countdown -= dt
	if sp.Countdown > 0 || live >= AdversaryCap(elapsed) {
		return nil
	}

	x := object.Uniform(r, SpawnMarginX, screen.Width-SpawnMarginX)
	kind := object.AdversarySmall
	if object.Chance(r, BigChance(elapsed)) {
		kind = object.AdversaryBig
	}
	a := object.SpawnAdversary(kind, x, SpawnY, r)

	sp.Countdown = SpawnInterval(elapsed)
	return a
}
