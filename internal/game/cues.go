package game

// Cue is a fire-and-forget audio event raised by the simulation.
type Cue uint8

const (
	CueShoot Cue = iota
	CueHit
	CueExplosion
	CuePickup
	CueBlast
	CueTrack // Ambient track selection changed, see Snapshot.Track

	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueExplosion:
		return "explosion"
	case CuePickup:
		return "pickup"
	case CueBlast:
		return "blast"
	case CueTrack:
		return "track"
	default:
		return "unknown"
	}
}

// CueSet is the set of cues raised during one frame.
// A cue raised several times in a frame is played once.
type CueSet uint16

// Add puts c in the set.
func (s *CueSet) Add(c Cue) {
	*s |= 1 << c
}

// Has reports whether c is in the set.
func (s CueSet) Has(c Cue) bool {
	return s&(1<<c) != 0
}

// Empty reports whether no cue was raised.
func (s CueSet) Empty() bool {
	return s == 0
}

// Cues lists the set's members in declaration order.
func (s CueSet) Cues() []Cue {
	var out []Cue
	for c := Cue(0); c < cueCount; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
