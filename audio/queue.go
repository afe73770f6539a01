// Package audio captures 16 kHz mono PCM from a microphone or a recording
// and hands it to the speech decoder through an unbounded FIFO queue.
package audio

import (
	"context"
	"sync"

	"github.com/battlesnakeio/voicesnake/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Block is one callback worth of 16-bit signed little-endian samples.
type Block []byte

// Queue is an unbounded FIFO of blocks. Push never blocks, so a stalled
// decoder makes the queue grow instead of dropping audio.
type Queue struct {
	mu     sync.Mutex
	blocks []Block
	ready  chan struct{}
	warn   *rate.Limiter
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{
		ready: make(chan struct{}, 1),
		warn:  rate.NewLimiter(config.BacklogWarnRate, 1),
	}
}

// Push appends b. Ownership of b passes to the queue.
func (q *Queue) Push(b Block) {
	q.mu.Lock()
	q.blocks = append(q.blocks, b)
	depth := len(q.blocks)
	q.mu.Unlock()

	blocksCaptured.Inc()
	queueDepth.Set(float64(depth))

	select {
	case q.ready <- struct{}{}:
	default:
	}

	if depth > config.BacklogThreshold && q.warn.Allow() {
		log.WithField("depth", depth).Warn("audio backlog, decoder is falling behind")
	}
}

// Pop removes the oldest block, waiting until one is pushed or ctx is done.
func (q *Queue) Pop(ctx context.Context) (Block, error) {
	for {
		q.mu.Lock()
		if len(q.blocks) > 0 {
			b := q.blocks[0]
			q.blocks[0] = nil
			q.blocks = q.blocks[1:]
			depth := len(q.blocks)
			q.mu.Unlock()

			queueDepth.Set(float64(depth))
			return b, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.ready:
		}
	}
}

// Len is the number of blocks waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.blocks)
}
