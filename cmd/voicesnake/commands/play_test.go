package commands

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/battlesnakeio/voicesnake/audio"
	"github.com/battlesnakeio/voicesnake/audio/microphone"
	"github.com/battlesnakeio/voicesnake/config"
	"github.com/battlesnakeio/voicesnake/rules"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewSurface_Unknown(t *testing.T) {
	_, err := newSurface("hologram")
	require.EqualError(t, err, `unknown surface "hologram", use window or terminal`)
}

func TestNewSource(t *testing.T) {
	defer func(p string) { wavPath = p }(wavPath)

	wavPath = ""
	mic, ok := newSource().(*microphone.Microphone)
	require.True(t, ok)
	require.Equal(t, config.DeviceIndex, mic.DeviceIndex)

	wavPath = "commands.wav"
	file, ok := newSource().(*audio.FileSource)
	require.True(t, ok)
	require.Equal(t, "commands.wav", file.Path)
}

func TestWaitFor(t *testing.T) {
	done := make(chan struct{})
	require.False(t, waitFor(done, time.Millisecond))

	close(done)
	require.True(t, waitFor(done, time.Hour))
}

func TestPlayFlagDefaults(t *testing.T) {
	f := playCmd.Flags()
	require.Equal(t, "2", f.Lookup("device").DefValue)
	require.Equal(t, "1s", f.Lookup("tick").DefValue)
	require.Equal(t, "500ms", f.Lookup("grace").DefValue)
	require.Equal(t, "window", f.Lookup("surface").DefValue)
	require.Equal(t, "false", f.Lookup("prometheus").DefValue)
}

type stubSurface struct {
	closed   bool
	voiceOff bool
	closeErr error
}

func (s *stubSurface) QuitRequested() bool { return false }

func (s *stubSurface) Draw(*rules.Game) error { return nil }

func (s *stubSurface) Close() error {
	s.closed = true
	return s.closeErr
}

func (s *stubSurface) VoiceStopped() { s.voiceOff = true }

func TestQuietTerminal_ReleasesLogsOnClose(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	out := &bytes.Buffer{}
	surface := &stubSurface{}
	q := holdLogs(surface, out)

	log.WithError(errors.New("recognizer model not found at /x")).Error("voice control stopped")
	log.WithField("reason", "hit the wall").Info("game over")
	require.Zero(t, out.Len())

	require.NoError(t, q.Close())
	require.True(t, surface.closed)
	require.Contains(t, out.String(), "voice control stopped")
	require.Contains(t, out.String(), "recognizer model not found at /x")
	require.Contains(t, out.String(), "game over")

	log.Info("after close")
	require.Contains(t, out.String(), "after close")
}

func TestQuietTerminal_CloseError(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	out := &bytes.Buffer{}
	q := holdLogs(&stubSurface{closeErr: errors.New("tty gone")}, out)
	log.Info("held")

	require.EqualError(t, q.Close(), "tty gone")
	require.Contains(t, out.String(), "held")
}

func TestQuietTerminal_ForwardsVoiceStopped(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	surface := &stubSurface{}
	var s interface{} = holdLogs(surface, &bytes.Buffer{})

	v, ok := s.(voiceIndicator)
	require.True(t, ok)
	v.VoiceStopped()
	require.True(t, surface.voiceOff)
}
