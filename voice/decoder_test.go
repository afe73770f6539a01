package voice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/battlesnakeio/voicesnake/audio"
	"github.com/battlesnakeio/voicesnake/recognizer"
	"github.com/battlesnakeio/voicesnake/rules"
	"github.com/stretchr/testify/require"
)

func runDecoder(t *testing.T, rec *scriptedRecognizer, heading *Heading, blocks int) {
	q := audio.NewQueue()
	d := &Decoder{Queue: q, Recognizer: rec, Heading: heading}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- d.Run(ctx) }()

	for i := 0; i < blocks; i++ {
		q.Push(audio.Block{0, 0})
	}
	require.Eventually(t, func() bool {
		accepted, _ := rec.counts()
		return accepted == blocks
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		require.Fail(t, "decoder did not stop after cancel")
	}
}

func TestDecoder_Steers(t *testing.T) {
	rec := &scriptedRecognizer{script: []recognizer.Transcript{
		{Text: ""},
		{Text: "go"},
		{Text: "go up"},
		{Text: "down", Final: true},
		{Text: "left"},
		{Text: "the"},
	}}
	heading := NewHeading(rules.Right)

	runDecoder(t, rec, heading, 6)

	require.Equal(t, rules.Left, heading.Load())
	_, resets := rec.counts()
	require.Equal(t, 2, resets, "reset after up and left, not after the rejected down")
}

func TestDecoder_RepeatedKeywordIsNoop(t *testing.T) {
	rec := &scriptedRecognizer{script: []recognizer.Transcript{
		{Text: "right"},
		{Text: "right"},
		{Text: "right", Final: true},
	}}
	heading := NewHeading(rules.Right)

	runDecoder(t, rec, heading, 3)

	require.Equal(t, rules.Right, heading.Load())
	_, resets := rec.counts()
	require.Equal(t, 3, resets)
}

func TestDecoder_ReversalIgnored(t *testing.T) {
	rec := &scriptedRecognizer{script: []recognizer.Transcript{
		{Text: "left"},
		{Text: "turn left", Final: true},
	}}
	heading := NewHeading(rules.Right)

	runDecoder(t, rec, heading, 2)

	require.Equal(t, rules.Right, heading.Load())
	_, resets := rec.counts()
	require.Zero(t, resets)
}

func TestDecoder_RecognizerError(t *testing.T) {
	rec := &scriptedRecognizer{err: errors.New("decoder exploded")}
	q := audio.NewQueue()
	q.Push(audio.Block{0, 0})

	d := &Decoder{Queue: q, Recognizer: rec, Heading: NewHeading(rules.Right)}
	err := d.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "recognizer failed: decoder exploded")
}
