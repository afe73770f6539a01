package microphone

import (
	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
)

// Device describes an input capable audio device.
type Device struct {
	Index             int
	Name              string
	HostAPI           string
	MaxInputChannels  int
	DefaultSampleRate float64
}

// ListDevices enumerates input devices. Index is the value to pass as the
// device index of a Microphone.
func ListDevices() ([]Device, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize portaudio")
	}
	defer portaudio.Terminate()

	infos, err := portaudio.Devices()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list audio devices")
	}
	return inputDevices(infos), nil
}

func inputDevices(infos []*portaudio.DeviceInfo) []Device {
	devices := []Device{}
	for i, info := range infos {
		if info.MaxInputChannels == 0 {
			continue
		}
		d := Device{
			Index:             i,
			Name:              info.Name,
			MaxInputChannels:  info.MaxInputChannels,
			DefaultSampleRate: info.DefaultSampleRate,
		}
		if info.HostApi != nil {
			d.HostAPI = info.HostApi.Name
		}
		devices = append(devices, d)
	}
	return devices
}
