package voice

import (
	"context"

	"github.com/battlesnakeio/voicesnake/audio"
	"github.com/battlesnakeio/voicesnake/recognizer"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Decoder feeds queued audio to the recognizer and steers the heading with
// whatever direction keyword shows up in the partial or final text.
type Decoder struct {
	Queue      *audio.Queue
	Recognizer recognizer.Recognizer
	Heading    *Heading
}

// Run decodes until ctx is done or the recognizer fails. Waiting on the
// queue is the only place it blocks.
func (d *Decoder) Run(ctx context.Context) error {
	for {
		block, err := d.Queue.Pop(ctx)
		if err != nil {
			return err
		}

		tr, err := d.Recognizer.Accept(block)
		if err != nil {
			return errors.Wrap(err, "recognizer failed")
		}
		d.steer(tr)
	}
}

// steer applies a transcript. Once a keyword is accepted the recognizer is
// reset, otherwise the same word keeps showing up in every partial result
// until the utterance ends.
func (d *Decoder) steer(tr recognizer.Transcript) {
	dir, ok := Match(tr.Text)
	if !ok {
		return
	}

	outcome := d.Heading.Steer(dir)
	steers.WithLabelValues(dir.String(), outcome.String()).Inc()

	fields := log.Fields{
		"direction": dir,
		"text":      tr.Text,
		"final":     tr.Final,
	}
	switch outcome {
	case Changed:
		log.WithFields(fields).Info("direction changed")
		d.Recognizer.Reset()
	case Unchanged:
		log.WithFields(fields).Debug("already heading that way")
		d.Recognizer.Reset()
	case Rejected:
		log.WithFields(fields).Debug("ignoring reversal")
	}
}
