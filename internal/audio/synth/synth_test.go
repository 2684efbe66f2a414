package synth

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/ufoshooter/internal/game"
)

const testRate = beep.SampleRate(8000)

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func drain(s beep.Streamer, n int) [][2]float64 {
	buf := make([][2]float64, n)
	s.Stream(buf)
	return buf
}

func TestSineLength(t *testing.T) {
	s := newSine(440, 100*time.Millisecond, testRate)
	buf := make([][2]float64, 2000)

	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 800, n)
	for _, v := range buf[:n] {
		assert.LessOrEqual(t, math.Abs(v[0]), 1.0)
		assert.Equal(t, v[0], v[1])
	}

	n, ok = s.Stream(buf)
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestToneVolumes(t *testing.T) {
	shoot := drain(newTone(tones[game.CueShoot], testRate), 400)
	blast := drain(newTone(tones[game.CueBlast], testRate), 400)

	assert.InDelta(t, 0.4, peak(shoot), 0.05)
	assert.InDelta(t, 0.9, peak(blast), 0.05)
}

func TestEveryPlayableCueHasATone(t *testing.T) {
	for _, c := range []game.Cue{game.CueShoot, game.CueHit, game.CueExplosion, game.CuePickup, game.CueBlast} {
		_, ok := tones[c]
		assert.True(t, ok, c.String())
	}
	_, ok := tones[game.CueTrack]
	assert.False(t, ok)
}

func TestSynthPlaysAndFinishesTones(t *testing.T) {
	s := NewSynth(testRate, 1)
	assert.Zero(t, peak(drain(s, 100)), "silent before any cue")

	var cues game.CueSet
	cues.Add(game.CueShoot)
	cues.Add(game.CuePickup)
	cues.Add(game.CueTrack)
	s.Play(cues)
	assert.Equal(t, 2, s.Voices())

	assert.Greater(t, peak(drain(s, 200)), 0.3)

	// Both tones are shorter than 0.2s.
	drain(s, 2000)
	assert.Zero(t, s.Voices())
	assert.Zero(t, peak(drain(s, 100)))
}

func TestSynthSelectTrack(t *testing.T) {
	s := NewSynth(testRate, 1)

	s.SelectTrack(0)
	s.SelectTrack(0)
	assert.Equal(t, 1, s.Voices(), "same track is not restarted")
	assert.Greater(t, peak(drain(s, 4000)), 0.1)

	s.SelectTrack(1)
	drain(s, 10)
	assert.Equal(t, 1, s.Voices(), "previous track is dropped")

	s.SelectTrack(5)
	drain(s, 10)
	assert.Zero(t, s.Voices())
}

func TestSynthCloseWithoutSpeaker(t *testing.T) {
	s := NewSynth(testRate, 1)
	s.SelectTrack(1)
	require.NoError(t, s.Close())
	assert.Zero(t, s.Voices())
}

func TestArpeggioLoops(t *testing.T) {
	a := newArpeggio(tracks[1], testRate)
	loop := a.beatLen * tracks[1].beats

	first := drain(a, 50)
	drain(a, loop-50)
	again := drain(a, 50)
	for i := 1; i < 50; i++ {
		assert.InDelta(t, first[i][0], again[i][0], 1e-9)
	}
	assert.LessOrEqual(t, peak(first), tracks[1].volume)
}
