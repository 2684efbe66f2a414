package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/tomz197/ufoshooter/internal/game"
)

// tone is a one-shot sine blip.
type tone struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var tones = map[game.Cue]tone{
	game.CueShoot:     {freq: 880, duration: 80 * time.Millisecond, volume: 0.4},
	game.CueHit:       {freq: 220, duration: 250 * time.Millisecond, volume: 0.6},
	game.CueExplosion: {freq: 160, duration: 350 * time.Millisecond, volume: 0.7},
	game.CuePickup:    {freq: 1200, duration: 150 * time.Millisecond, volume: 0.5},
	game.CueBlast:     {freq: 80, duration: 700 * time.Millisecond, volume: 0.9},
}

// toneRelease fades the end of every tone to avoid a click.
const toneRelease = 10 * time.Millisecond

// sine generates a sine wave that ends after a fixed number of samples.
type sine struct {
	step     float64 // Phase advance per sample
	phase    float64
	position int
	length   int
	release  int
}

func newSine(freq float64, duration time.Duration, rate beep.SampleRate) *sine {
	return &sine{
		step:    freq / float64(rate),
		length:  rate.N(duration),
		release: rate.N(toneRelease),
	}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * s.phase)
		if left := s.length - s.position; left < s.release {
			val *= float64(left) / float64(s.release)
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func newTone(t tone, rate beep.SampleRate) beep.Streamer {
	return newVolume(newSine(t.freq, t.duration, rate), t.volume)
}

// arrangement describes a looping arpeggio track: each beat plays a note
// from the scale mixed with a second, shifted note.
type arrangement struct {
	bpm     float64
	beats   int
	scale   []float64
	pattern []int
	offset  int     // Pattern distance of the second note
	ratio   float64 // Frequency ratio of the second note
	attack  float64 // Fraction of each beat spent fading in
	volume  float64
}

var tracks = [...]arrangement{
	{
		bpm:     96,
		beats:   16,
		scale:   []float64{220.0, 261.63, 293.66, 329.63, 349.23, 392.0},
		pattern: []int{0, 2, 4, 5, 4, 2},
		offset:  2,
		ratio:   0.5,
		volume:  0.4,
	},
	{
		bpm:     120,
		beats:   16,
		scale:   []float64{261.63, 293.66, 329.63, 392.0, 440.0, 523.25},
		pattern: []int{0, 2, 4, 5, 4, 2, 1, 3},
		offset:  3,
		ratio:   1.5,
		attack:  0.25,
		volume:  0.45,
	},
}

// arpeggio streams an arrangement forever.
type arpeggio struct {
	arr      arrangement
	rate     beep.SampleRate
	beatLen  int
	position int
	prev     float64
}

func newArpeggio(arr arrangement, rate beep.SampleRate) *arpeggio {
	return &arpeggio{
		arr:     arr,
		rate:    rate,
		beatLen: max(1, int(float64(rate)*60/arr.bpm)),
	}
}

func (a *arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	loop := a.beatLen * a.arr.beats
	for i := range samples {
		beat := a.position / a.beatLen
		inBeat := a.position % a.beatLen
		t := float64(inBeat) / float64(a.rate)

		f1 := a.arr.scale[a.arr.pattern[beat%len(a.arr.pattern)]]
		f2 := a.arr.scale[a.arr.pattern[(beat+a.arr.offset)%len(a.arr.pattern)]]
		val := 0.6*math.Sin(2*math.Pi*f1*t) + 0.4*math.Sin(2*math.Pi*f2*a.arr.ratio*t)
		val *= a.envelope(float64(inBeat) / float64(a.beatLen))

		// One-pole smoothing takes the edge off the square-ish note starts.
		smoothed := (val + a.prev) * 0.5
		a.prev = val

		samples[i][0] = smoothed * a.arr.volume
		samples[i][1] = smoothed * a.arr.volume
		a.position = (a.position + 1) % loop
	}
	return len(samples), true
}

// envelope is the note's gain at progress p through its beat.
func (a *arpeggio) envelope(p float64) float64 {
	if p < a.arr.attack {
		return p / a.arr.attack
	}
	return (1 - p) / (1 - a.arr.attack)
}

func (a *arpeggio) Err() error { return nil }
