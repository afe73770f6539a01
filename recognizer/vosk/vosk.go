// Package vosk is a recognizer backed by a Kaldi model loaded through the
// vosk library.
package vosk

import (
	voskapi "github.com/alphacep/vosk-api/go"
	"github.com/battlesnakeio/voicesnake/recognizer"
	"github.com/pkg/errors"
)

// Recognizer implements recognizer.Recognizer.
type Recognizer struct {
	model *voskapi.VoskModel
	rec   *voskapi.VoskRecognizer
}

// SetVerbose toggles the vosk library's own logging, which is noisy.
func SetVerbose(verbose bool) {
	if verbose {
		voskapi.SetLogLevel(0)
		return
	}
	voskapi.SetLogLevel(-1)
}

// New loads the model directory at modelPath and creates a recognizer
// for audio sampled at sampleRate.
func New(modelPath string, sampleRate float64) (*Recognizer, error) {
	model, err := voskapi.NewModel(modelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load vosk model from %s", modelPath)
	}

	rec, err := voskapi.NewRecognizer(model, sampleRate)
	if err != nil {
		model.Free()
		return nil, errors.Wrap(err, "unable to create vosk recognizer")
	}

	return &Recognizer{
		model: model,
		rec:   rec,
	}, nil
}

// Accept implements recognizer.Recognizer.
func (v *Recognizer) Accept(block []byte) (recognizer.Transcript, error) {
	state := v.rec.AcceptWaveform(block)
	switch {
	case state < 0:
		return recognizer.Transcript{}, errors.New("vosk failed to process audio block")
	case state > 0:
		return recognizer.ParseFinal(v.rec.Result())
	default:
		return recognizer.ParsePartial(v.rec.PartialResult())
	}
}

// Reset implements recognizer.Recognizer.
func (v *Recognizer) Reset() {
	v.rec.Reset()
}

// Close frees the recognizer and the model.
func (v *Recognizer) Close() {
	if v.rec != nil {
		v.rec.Free()
		v.rec = nil
	}
	if v.model != nil {
		v.model.Free()
		v.model = nil
	}
}
