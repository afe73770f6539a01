// Package recognizer wraps the streaming speech recognizer used for voice
// control. The decoder only needs to push audio and read back text, the
// model itself is opaque.
package recognizer

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Recognizer is a stateful streaming recognizer.
type Recognizer interface {
	// Accept feeds one block of 16-bit PCM and returns the current
	// hypothesis. Final is set when the block completed an utterance.
	Accept(block []byte) (Transcript, error)
	// Reset drops everything heard so far.
	Reset()
}

// Transcript is the text recognized after a block.
type Transcript struct {
	Text  string
	Final bool
}

type finalResult struct {
	Text string `json:"text"`
}

type partialResult struct {
	Partial string `json:"partial"`
}

// ParseFinal decodes a {"text": ...} result closing an utterance.
func ParseFinal(data string) (Transcript, error) {
	var r finalResult
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return Transcript{}, errors.Wrap(err, "unable to parse final result")
	}
	return Transcript{Text: r.Text, Final: true}, nil
}

// ParsePartial decodes a {"partial": ...} hypothesis.
func ParsePartial(data string) (Transcript, error) {
	var r partialResult
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return Transcript{}, errors.Wrap(err, "unable to parse partial result")
	}
	return Transcript{Text: r.Partial}, nil
}
