package audio

import (
	"context"
	"io"
	"time"

	"github.com/battlesnakeio/voicesnake/config"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FileSource replays a 16 kHz mono 16-bit WAV file as if it came from the
// microphone.
type FileSource struct {
	Fs              afero.Fs
	Path            string
	FramesPerBuffer int
	// Pace is the delay between blocks. Zero pushes the whole file at once.
	Pace time.Duration
}

// NewFileSource returns a source replaying path in real time.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{
		Fs:              fs,
		Path:            path,
		FramesPerBuffer: config.BlockFrames,
		Pace:            config.BlockDuration(),
	}
}

// Capture pushes the file block by block and returns nil once it is
// exhausted. The last block may be short.
func (f *FileSource) Capture(ctx context.Context, q *Queue) error {
	file, err := f.Fs.Open(f.Path)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", f.Path)
	}
	defer file.Close()

	d := wav.NewDecoder(file)
	if !d.IsValidFile() {
		return errors.Errorf("%s is not a valid wav file", f.Path)
	}
	if d.NumChans != config.Channels || d.BitDepth != 16 || d.SampleRate != config.SampleRate {
		return errors.Errorf("%s must be %d Hz, mono, 16-bit; got %d Hz, %d channels, %d-bit",
			f.Path, config.SampleRate, d.SampleRate, d.NumChans, d.BitDepth)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: config.Channels,
			SampleRate:  config.SampleRate,
		},
		Data:           make([]int, f.FramesPerBuffer),
		SourceBitDepth: 16,
	}

	var pace <-chan time.Time
	if f.Pace > 0 {
		t := time.NewTicker(f.Pace)
		defer t.Stop()
		pace = t.C
	}

	log.WithField("file", f.Path).Info("voice control replaying recording")

	blocks := 0
	for {
		n, err := d.PCMBuffer(buf)
		if err != nil && err != io.EOF {
			return errors.Wrapf(err, "unable to decode %s", f.Path)
		}
		if n == 0 {
			break
		}
		q.Push(intsToPCM16(buf.Data[:n]))
		blocks++

		if pace == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pace:
		}
	}

	log.WithFields(log.Fields{
		"file":   f.Path,
		"blocks": blocks,
	}).Info("recording finished")
	return nil
}
