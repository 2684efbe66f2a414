package object

import (
	"math"

	"github.com/tomz197/ufoshooter/internal/physics"
)

// AdversaryKind is the size class of a UFO.
type AdversaryKind int

const (
	AdversarySmall AdversaryKind = iota
	AdversaryBig
)

func (k AdversaryKind) String() string {
	switch k {
	case AdversarySmall:
		return "small"
	case AdversaryBig:
		return "big"
	default:
		return "unknown"
	}
}

// AdversaryClass holds the fixed properties shared by every UFO of a kind.
type AdversaryClass struct {
	Width, Height float64
	Health        int
	MinSpeed      float64
	MaxSpeed      float64
	MinAmplitude  float64
	MaxAmplitude  float64
	Reward        int     // Score for destroying one
	DropChance    float64 // Probability of dropping a power-up when destroyed
	Fires         bool    // Whether it shoots back
}

var adversaryClasses = [...]AdversaryClass{
	AdversarySmall: {
		Width: 60, Height: 30, Health: 1,
		MinSpeed: 100, MaxSpeed: 160,
		MinAmplitude: 20, MaxAmplitude: 50,
		Reward: 1, DropChance: 0.18,
	},
	AdversaryBig: {
		Width: 100, Height: 50, Health: 4,
		MinSpeed: 70, MaxSpeed: 110,
		MinAmplitude: 20, MaxAmplitude: 40,
		Reward: 3, DropChance: 0.35,
		Fires: true,
	},
}

// Class returns the fixed properties for the kind.
func (k AdversaryKind) Class() AdversaryClass {
	return adversaryClasses[k]
}

// UFO behaviour tuning.
const (
	MinFireCooldown   = 1.5  // Seconds between enemy shots (lower bound)
	MaxFireCooldown   = 3.0  // Seconds between enemy shots (upper bound)
	FireMinY          = 40.0 // UFOs only fire once this far down the screen
	OffscreenMargin   = 60.0 // How far below the screen a UFO may drift before removal
	oscillationRate   = 2.5  // Radians per second of the shared sway clock
	oscillationFactor = 4.0
)

// Adversary is a descending UFO.
type Adversary struct {
	X, Y         float64 // Position (center)
	Speed        float64 // Downward speed
	Amplitude    float64 // Horizontal sway strength
	Phase        float64 // Individual sway offset
	Width        float64
	Height       float64
	MaxHealth    int
	Health       int
	Kind         AdversaryKind
	FireCooldown float64 // Seconds until the next shot (big UFOs only)
	destroyed    bool
}

// NewAdversary creates a UFO of the given kind with explicit motion values.
func NewAdversary(kind AdversaryKind, x, y, speed, amplitude, phase, fireCooldown float64) *Adversary {
	class := kind.Class()
	return &Adversary{
		X:            x,
		Y:            y,
		Speed:        speed,
		Amplitude:    amplitude,
		Phase:        phase,
		Width:        class.Width,
		Height:       class.Height,
		MaxHealth:    class.Health,
		Health:       class.Health,
		Kind:         kind,
		FireCooldown: fireCooldown,
	}
}

// SpawnAdversary creates a UFO of the given kind at (x, y), drawing speed,
// amplitude, phase and the first fire cooldown from r.
func SpawnAdversary(kind AdversaryKind, x, y float64, r Rand) *Adversary {
	class := kind.Class()
	speed := Uniform(r, class.MinSpeed, class.MaxSpeed)
	amplitude := Uniform(r, class.MinAmplitude, class.MaxAmplitude)
	phase := Phase(r)
	cooldown := Uniform(r, MinFireCooldown, MaxFireCooldown)
	return NewAdversary(kind, x, y, speed, amplitude, phase, cooldown)
}

// Advance moves the UFO down, sways it sideways and counts down its gun.
// clock is the session's monotonic simulated time in seconds.
func (a *Adversary) Advance(dt, clock float64) {
	a.Y += a.Speed * dt
	a.X += math.Sin(clock*oscillationRate+a.Phase) * a.Amplitude * dt * oscillationFactor
	a.FireCooldown -= dt
}

// ReadyToFire returns true if the UFO shoots this frame.
func (a *Adversary) ReadyToFire() bool {
	return a.Kind.Class().Fires && a.FireCooldown <= 0 && a.Y > FireMinY
}

// Fire emits an enemy shot from the UFO's underside and rearms the gun.
func (a *Adversary) Fire(r Rand) *Projectile {
	a.FireCooldown = Uniform(r, MinFireCooldown, MaxFireCooldown)
	return NewEnemyShot(a.X, a.Y+a.Height/2)
}

// Hit takes one point of health. Returns true if the UFO is now destroyed.
func (a *Adversary) Hit() bool {
	if a.Health > 0 {
		a.Health--
	}
	if a.Health <= 0 {
		a.destroyed = true
		return true
	}
	return false
}

// Reward returns the score for destroying this UFO.
func (a *Adversary) Reward() int {
	return a.Kind.Class().Reward
}

// HealthRatio returns current health as a fraction of max health.
func (a *Adversary) HealthRatio() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return float64(a.Health) / float64(a.MaxHealth)
}

// Offscreen returns true once the UFO has drifted well below the screen.
func (a *Adversary) Offscreen(screen Screen) bool {
	return a.Y-a.Height/2 > screen.Height+OffscreenMargin
}

// Bounds returns the UFO's collision box.
func (a *Adversary) Bounds() physics.Box {
	return physics.NewBox(a.X, a.Y, a.Width, a.Height)
}

// MarkDestroyed marks the UFO for removal.
func (a *Adversary) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the UFO is marked for removal.
func (a *Adversary) IsDestroyed() bool {
	return a.destroyed
}
