// Package microphone captures voice commands from a portaudio input device.
package microphone

import (
	"context"

	"github.com/battlesnakeio/voicesnake/audio"
	"github.com/battlesnakeio/voicesnake/config"
	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Microphone records from a portaudio input device.
type Microphone struct {
	// DeviceIndex is the position in portaudio.Devices, a negative index
	// picks the host default input.
	DeviceIndex     int
	SampleRate      float64
	FramesPerBuffer int
}

// New returns a microphone with the default capture settings.
func New(deviceIndex int) *Microphone {
	return &Microphone{
		DeviceIndex:     deviceIndex,
		SampleRate:      config.SampleRate,
		FramesPerBuffer: config.BlockFrames,
	}
}

// Capture opens the device and pushes every callback buffer onto q as PCM16
// until ctx is cancelled. The callback copies the samples, portaudio reuses
// its buffer.
func (m *Microphone) Capture(ctx context.Context, q *audio.Queue) error {
	if err := portaudio.Initialize(); err != nil {
		return errors.Wrap(err, "unable to initialize portaudio")
	}
	defer func() {
		if err := portaudio.Terminate(); err != nil {
			log.WithError(err).Warn("error while terminating portaudio")
		}
	}()

	device, err := inputDevice(m.DeviceIndex)
	if err != nil {
		return err
	}

	params := portaudio.LowLatencyParameters(device, nil)
	params.Input.Channels = config.Channels
	params.SampleRate = m.SampleRate
	params.FramesPerBuffer = m.FramesPerBuffer

	stream, err := portaudio.OpenStream(params, func(in []float32) {
		q.Push(audio.ToPCM16(in))
	})
	if err != nil {
		return errors.Wrapf(err, "unable to open input device %d (%s)", m.DeviceIndex, device.Name)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return errors.Wrap(err, "unable to start input stream")
	}

	log.WithFields(log.Fields{
		"device":     device.Name,
		"sampleRate": m.SampleRate,
	}).Info("voice control active")

	<-ctx.Done()

	if err := stream.Stop(); err != nil {
		log.WithError(err).Warn("error while stopping input stream")
	}
	return ctx.Err()
}

func inputDevice(index int) (*portaudio.DeviceInfo, error) {
	if index < 0 {
		device, err := portaudio.DefaultInputDevice()
		if err != nil {
			return nil, errors.Wrap(err, "no default input device")
		}
		return device, nil
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list audio devices")
	}
	if index >= len(devices) {
		return nil, errors.Errorf("input device %d not found, %d devices available", index, len(devices))
	}
	device := devices[index]
	if device.MaxInputChannels < config.Channels {
		return nil, errors.Errorf("device %d (%s) has no input channels", index, device.Name)
	}
	return device, nil
}
