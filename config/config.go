// Package config holds the tuning constants of the game and the audio
// pipeline. None of these are read from the environment, the play command
// exposes the few that make sense as flags.
package config

import (
	"time"

	"golang.org/x/time/rate"
)

// Board and window geometry.
const (
	WindowWidth  = 600
	WindowHeight = 400
	CellSize     = 20
	GridWidth    = WindowWidth / CellSize
	GridHeight   = WindowHeight / CellSize
	WindowTitle  = "Voice Controlled Snake"
)

// TickRate is slow on purpose, speaking a command takes a while.
const TickRate = 1 * time.Second

// Audio capture.
const (
	// DeviceIndex selects the input device in the portaudio device list. The
	// enumeration is platform dependent, run `voicesnake devices` to find it.
	DeviceIndex = 2
	SampleRate  = 16000
	Channels    = 1
	BlockFrames = 1024
)

// ModelDir is the recognizer model directory, looked up next to the binary.
const ModelDir = "model"

// Queue backlog warnings.
const BacklogThreshold = 32

// BacklogWarnRate limits how often a growing queue is reported.
var BacklogWarnRate = rate.Every(5 * time.Second)

// ShutdownGrace is how long the voice listener gets to return once the game
// has ended before it is abandoned.
const ShutdownGrace = 500 * time.Millisecond

// BlockDuration is the audio time covered by one block.
func BlockDuration() time.Duration {
	return time.Duration(BlockFrames) * time.Second / SampleRate
}
