package audio

import "github.com/lixenwraith/snake/constants"

// Cue identifies a sound effect
type Cue int

const (
	CueEat Cue = iota
	CueGameOver
	cueCount
)

// String returns the cue name used in config and logs
func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64         // 0.0 to 1.0
	EffectVolumes map[Cue]float64 // Per-cue multiplier
	SampleRate    int
}

// DefaultAudioConfig returns the settings used when no environment overrides exist
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[Cue]float64{
			CueEat:      1.0,
			CueGameOver: 1.0,
		},
		SampleRate: constants.AudioSampleRate,
	}
}
