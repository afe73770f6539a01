package voice

import (
	"context"

	"github.com/battlesnakeio/voicesnake/audio"
	"github.com/battlesnakeio/voicesnake/recognizer"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Opener creates the recognizer. Loading a model is slow, so it is called
// on the listener goroutine.
type Opener func() (recognizer.Recognizer, error)

type closer interface {
	Close()
}

// Listener is the whole voice control subsystem: a capture source, a queue
// and a decoder steering Heading.
type Listener struct {
	Source  audio.Source
	Open    Opener
	Heading *Heading
}

// Listen runs voice control until ctx is done or something fails. Every
// failure, panics included, is returned rather than raised so the caller can
// log it and keep the game running with a frozen heading.
func (l *Listener) Listen(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("voice listener panic: %v", r)
		}
	}()

	rec, err := l.Open()
	if err != nil {
		return err
	}
	if c, ok := rec.(closer); ok {
		defer c.Close()
	}

	q := audio.NewQueue()
	decoder := &Decoder{
		Queue:      q,
		Recognizer: recognizer.Instrument(rec),
		Heading:    l.Heading,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(protect(func() error { return l.Source.Capture(ctx, q) }))
	g.Go(protect(func() error { return decoder.Run(ctx) }))
	return g.Wait()
}

func protect(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("voice listener panic: %v", r)
			}
		}()
		return fn()
	}
}
