// Package audio plays the eat and game-over cues through the beep speaker.
// Every operation degrades to a no-op when the device or a sound file is unavailable
package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// ErrAudioDisabled is returned by Initialize when the config turns audio off
var ErrAudioDisabled = errors.New("audio disabled")

var cueFiles = [cueCount]string{
	CueEat:      constants.EatSoundFile,
	CueGameOver: constants.GameOverSoundFile,
}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	buffers     [cueCount]*beep.Buffer
	reported    [cueCount]bool // missing cue already logged
	initialized bool
}

// NewSoundManager creates a sound manager. A nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	err := speaker.Init(sm.sampleRate, sm.sampleRate.N(constants.SpeakerBufferDuration))
	if err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Load decodes the cue WAV files found in dir into memory, resampled to the
// speaker rate. Cues that fail to load stay silent
func (sm *SoundManager) Load(dir string) []error {
	var errs []error
	for c := Cue(0); c < cueCount; c++ {
		buf, err := sm.decode(filepath.Join(dir, cueFiles[c]))

		sm.mu.Lock()
		sm.buffers[c] = buf
		sm.reported[c] = false
		sm.mu.Unlock()

		if err != nil {
			log.Printf("audio: %s cue unavailable: %v", c, err)
			errs = append(errs, err)
		}
	}
	return errs
}

func (sm *SoundManager) decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// The decoder closes f
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != sm.sampleRate {
		source = beep.Resample(constants.ResampleQuality, format.SampleRate, sm.sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sm.sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(source)

	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// Loaded reports whether a cue has decoded audio
func (sm *SoundManager) Loaded(c Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return c >= 0 && c < cueCount && sm.buffers[c] != nil
}

// Play starts a cue and returns immediately. Overlapping cues mix
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || c < 0 || c >= cueCount {
		return
	}

	buf := sm.buffers[c]
	if buf == nil {
		if !sm.reported[c] {
			log.Printf("audio: skipping %s cue, no sound loaded", c)
			sm.reported[c] = true
		}
		return
	}

	vol := sm.cfg.MasterVolume * sm.cfg.EffectVolumes[c]
	streamer := newVolume(buf.Streamer(0, buf.Len()), vol)

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep keeps the device context alive; clearing the mixer silences it
	sm.initialized = false
}

// HandleEvent maps board events to cues
func (sm *SoundManager) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventBallEaten:
		sm.Play(CueEat)
	case engine.EventGameOver:
		sm.Play(CueGameOver)
	}
}

// EventTypes returns the events that trigger cues
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventBallEaten, engine.EventGameOver}
}

// newVolume wraps s with a gain; math.Log2(0) is -Inf so zero becomes silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
