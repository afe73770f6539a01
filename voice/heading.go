package voice

import (
	"sync/atomic"

	"github.com/battlesnakeio/voicesnake/rules"
)

// Outcome is the result of trying to steer.
type Outcome int

const (
	// Changed means the heading now points the new way.
	Changed Outcome = iota
	// Unchanged means the snake was already heading that way.
	Unchanged
	// Rejected means the request would have reversed the snake.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Changed:
		return "changed"
	case Unchanged:
		return "unchanged"
	default:
		return "rejected"
	}
}

// Heading is the direction shared between the decoder, which steers, and
// the game loop, which reads it once per tick. The last successful Steer
// wins and Load always observes a complete value.
type Heading struct {
	v atomic.Int32
}

// NewHeading returns a heading pointing at d.
func NewHeading(d rules.Direction) *Heading {
	h := &Heading{}
	h.v.Store(int32(d))
	return h
}

// Load returns the current direction.
func (h *Heading) Load() rules.Direction {
	return rules.Direction(h.v.Load())
}

// Steer points the heading at d unless that is a direct reversal.
func (h *Heading) Steer(d rules.Direction) Outcome {
	for {
		cur := h.v.Load()
		switch rules.Direction(cur) {
		case d:
			return Unchanged
		case d.Opposite():
			return Rejected
		}
		if h.v.CompareAndSwap(cur, int32(d)) {
			return Changed
		}
	}
}
