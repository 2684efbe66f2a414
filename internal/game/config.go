package game

import "github.com/tomz197/ufoshooter/internal/object"

// Game configuration constants.
// All tunable gameplay parameters are centralized here for easy adjustment.

// Playfield - logical units, y grows downward.
const (
	ScreenWidth  = 900
	ScreenHeight = 600
	PlayerStartY = ScreenHeight - 80
)

// Scoring is per UFO kind, see object.AdversaryClass.Reward.

// Shooting
const (
	FireDelayBase  = 0.25 // Seconds between shots
	FireDelayRapid = 0.09 // Seconds between shots with rapid fire active
)

// Power-ups
const (
	RapidFireDuration  = 7.0 // Seconds
	SpreadShotDuration = 7.0 // Seconds
)

// Blast ability
const (
	BlastCooldown = 3.0 // Seconds
)

// Spawning
const (
	SpawnY              = -60.0 // UFOs appear above the top edge
	SpawnMarginX        = 80.0  // Keep spawns this far from the side edges
	DifficultyPeriod    = 45.0  // Seconds for the difficulty factor to grow by 1
	BaseSpawnInterval   = 1.6   // Seconds between spawns at difficulty 1
	MinSpawnInterval    = 0.5   // Floor for the spawn interval
	BaseAdversaryCap    = 4
	AdversaryCapStep    = 2    // Extra UFOs allowed per cap period
	AdversaryCapPeriod  = 30.0 // Seconds per cap step
	MaxAdversaryCap     = 14
	BaseBigChance       = 0.25
	BigChanceRampPeriod = 120.0 // Seconds for big chance to grow by 1
	MaxBigChance        = 0.55
)

// Collisions
const (
	BreachLine = ScreenHeight - 30 // UFOs past this line have reached the base

	// collisionCellSize must be >= the largest center distance at which a
	// shot can touch a UFO along either axis (big UFO half width 50 + shot radius 4).
	collisionCellSize = 128.0
)

// Effects
var (
	debrisBurst = object.Burst{Count: 14, Speed: 160, Lifetime: 0.6, Variant: object.ParticleDebris}
	sparkBurst  = object.Burst{Count: 5, Speed: 120, Lifetime: 0.3, Variant: object.ParticleSpark}
	wreckBurst  = object.Burst{Count: 24, Speed: 200, Lifetime: 1.2, Variant: object.ParticleWreck}
)

// Presentation bands
const (
	TrackSwitchTime = 60.0 // Seconds before the ambient track changes
	ThemePeriod     = 45.0 // Seconds per background theme
	ThemeCount      = 3
)
