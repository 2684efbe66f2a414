// Package object contains the game entities and their per-frame update rules.
// Entities hold plain data only: they know nothing about each other, about
// the session that owns them, or about how they are drawn.
package object

import "math"

// Screen represents the playfield dimensions in logical units.
type Screen struct {
	Width  float64
	Height float64
}

// Rand is the source of randomness used by entity factories.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

// Uniform returns a value drawn uniformly from [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// Pick returns an index in [0, n) drawn uniformly.
func Pick(r Rand, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Phase returns a random oscillation phase in [0, 2π).
func Phase(r Rand) float64 {
	return Uniform(r, 0, 2*math.Pi)
}

// Destructible is implemented by entities that can be marked for removal.
// Marked entities are skipped by every later pass in the same frame and
// compacted out of their collection at the end of the frame.
type Destructible interface {
	// MarkDestroyed marks the entity for removal.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is marked for removal.
	IsDestroyed() bool
}

// Releasable is implemented by pooled entities that can be returned to a pool.
type Releasable interface {
	// Release returns the entity to its pool for reuse.
	Release()
}

// Compact removes destroyed entities from items in place, releasing pooled
// ones, and returns the shortened slice.
func Compact[T Destructible](items []T) []T {
	kept := items[:0] // reuse backing array
	for _, item := range items {
		if !item.IsDestroyed() {
			kept = append(kept, item)
			continue
		}
		if r, ok := any(item).(Releasable); ok {
			r.Release()
		}
	}
	// Drop references held past the new length so the GC can reclaim them.
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}

// CountLive returns how many entities are not marked for removal.
func CountLive[T Destructible](items []T) int {
	n := 0
	for _, item := range items {
		if !item.IsDestroyed() {
			n++
		}
	}
	return n
}
