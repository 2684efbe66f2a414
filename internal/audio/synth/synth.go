// Package synth plays cue tones and ambient tracks on the local sound
// device. It links the platform audio backend, so only the local
// entrypoint imports it.
package synth

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/ufoshooter/internal/audio"
	"github.com/tomz197/ufoshooter/internal/game"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	speakerLatency    = 50 * time.Millisecond
)

// Synth synthesizes the cue tones and ambient tracks and mixes them for
// the local speaker. It is itself a beep.Streamer, so it can be driven
// without a sound device.
type Synth struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	track       int
	volume      float64
	initialized bool
}

// NewSynth creates a synth at the given sample rate and master volume in [0, 1].
func NewSynth(rate beep.SampleRate, volume float64) *Synth {
	return &Synth{
		rate:   rate,
		mixer:  &beep.Mixer{},
		track:  -1,
		volume: volume,
	}
}

// Start opens the speaker and begins playback.
func (s *Synth) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(speakerLatency)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(newVolume(s, s.volume))
	s.initialized = true
	return nil
}

// Play mixes in the tone of every cue in cues.
func (s *Synth) Play(cues game.CueSet) {
	if cues.Empty() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range cues.Cues() {
		if t, ok := tones[c]; ok {
			s.mixer.Add(newTone(t, s.rate))
		}
	}
}

// SelectTrack replaces the playing ambient track. Unknown tracks stop the
// music.
func (s *Synth) SelectTrack(track int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if track == s.track {
		return
	}
	s.track = track

	if s.music != nil {
		// A Ctrl without a streamer drains, so the mixer drops it.
		s.music.Streamer = nil
		s.music = nil
	}
	if track < 0 || track >= len(tracks) {
		return
	}
	s.music = &beep.Ctrl{Streamer: newArpeggio(tracks[track], s.rate)}
	s.mixer.Add(s.music)
}

// Stream implements beep.Streamer. It always fills samples, with silence
// when nothing plays.
func (s *Synth) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, _ = s.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (s *Synth) Err() error { return nil }

// Voices returns the number of sounds currently mixed.
func (s *Synth) Voices() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mixer.Len()
}

// Close silences everything and releases the speaker.
func (s *Synth) Close() error {
	s.mu.Lock()
	s.mixer.Clear()
	s.music = nil
	s.track = -1
	started := s.initialized
	s.initialized = false
	s.mu.Unlock()

	if started {
		// speaker.Close waits for the current buffer, which calls Stream.
		speaker.Close()
	}
	return nil
}

var _ audio.Player = (*Synth)(nil)
