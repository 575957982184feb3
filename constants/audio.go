package constants

import "time"

// Audio Device
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond

	// ResampleQuality is the beep resampler quality for cues recorded at another rate
	ResampleQuality = 4
)

// Sound Assets
const (
	EatSoundFile      = "eat.wav"
	GameOverSoundFile = "gameover.wav"
)
