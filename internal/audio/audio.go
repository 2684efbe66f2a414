// Package audio turns the simulation's cues into sound. The players here
// need no sound device; the speaker synth lives in audio/synth.
package audio

import (
	"io"

	"github.com/tomz197/ufoshooter/internal/game"
)

// Player consumes the cues of one frame.
type Player interface {
	// Play starts the one-shot sound of every cue in cues.
	Play(cues game.CueSet)
	// SelectTrack switches the looping ambient track.
	SelectTrack(track int)
	Close() error
}

// Nop plays nothing.
type Nop struct{}

func (Nop) Play(game.CueSet) {}
func (Nop) SelectTrack(int)  {}
func (Nop) Close() error     { return nil }

// Bell rings the terminal bell on the loud cues. It is the only sound an
// SSH client can hear.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Play(cues game.CueSet) {
	if cues.Has(game.CueExplosion) || cues.Has(game.CueBlast) {
		_, _ = b.w.Write([]byte{'\a'})
	}
}

func (b *Bell) SelectTrack(int) {}

func (b *Bell) Close() error { return nil }

var (
	_ Player = Nop{}
	_ Player = (*Bell)(nil)
)
