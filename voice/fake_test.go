package voice

import (
	"sync"

	"github.com/battlesnakeio/voicesnake/recognizer"
)

// scriptedRecognizer replays transcripts, one per accepted block.
type scriptedRecognizer struct {
	sync.Mutex
	script   []recognizer.Transcript
	accepted int
	resets   int
	closed   bool
	err      error
}

func (s *scriptedRecognizer) Accept(block []byte) (recognizer.Transcript, error) {
	s.Lock()
	defer s.Unlock()
	if s.err != nil {
		return recognizer.Transcript{}, s.err
	}
	var tr recognizer.Transcript
	if s.accepted < len(s.script) {
		tr = s.script[s.accepted]
	}
	s.accepted++
	return tr, nil
}

func (s *scriptedRecognizer) Reset() {
	s.Lock()
	defer s.Unlock()
	s.resets++
}

func (s *scriptedRecognizer) Close() {
	s.Lock()
	defer s.Unlock()
	s.closed = true
}

func (s *scriptedRecognizer) counts() (accepted, resets int) {
	s.Lock()
	defer s.Unlock()
	return s.accepted, s.resets
}

func (s *scriptedRecognizer) isClosed() bool {
	s.Lock()
	defer s.Unlock()
	return s.closed
}
