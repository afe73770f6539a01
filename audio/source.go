package audio

import "context"

// Source fills a queue with blocks until ctx is done or it runs dry.
type Source interface {
	Capture(ctx context.Context, q *Queue) error
}
