// Package worker runs the game loop. It advances the rules at a fixed tick,
// steering with whatever heading the voice decoder last stored, and draws
// every tick on a render surface.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/voicesnake/render"
	"github.com/battlesnakeio/voicesnake/rules"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

// Heading is the steering input, read once per tick.
type Heading interface {
	Load() rules.Direction
}

// Runner runs an individual game to completion.
type Runner struct {
	Game     *rules.Game
	Heading  Heading
	Surface  render.Surface
	TickRate time.Duration
}

// Run ticks the game until the snake dies, the player quits or ctx is done.
// It returns the death, nil when the game did not end by dying. Rendering
// errors end the game and are returned.
func (r *Runner) Run(ctx context.Context) (*rules.Death, error) {
	game := r.Game
	logger := log.WithField("game", game.ID)
	logger.WithFields(log.Fields{
		"width":  game.Width,
		"height": game.Height,
		"tick":   r.TickRate,
	}).Info("starting game")

	if err := r.Surface.Draw(game); err != nil {
		return nil, err
	}

	for {
		select {
		case <-ctx.Done():
			rules.Stop(game)
			logger.WithField("turn", game.Turn).Info("game interrupted")
			return nil, ctx.Err()
		default:
		}

		start := time.Now()

		if r.Surface.QuitRequested() {
			rules.Stop(game)
			logger.WithField("turn", game.Turn).Info("player quit")
			return nil, nil
		}

		death := rules.Tick(game, r.Heading.Load())
		ticks.Inc()

		if err := r.Surface.Draw(game); err != nil {
			rules.Stop(game)
			return death, err
		}

		if death != nil {
			gameOvers.WithLabelValues(death.Cause).Inc()
			logger.WithFields(log.Fields{
				"cause":  death.Cause,
				"reason": death.Reason(),
				"length": len(game.Snake.Body),
				"turn":   death.Turn,
			}).Info("game over")
			if log.IsLevelEnabled(log.DebugLevel) {
				logger.Debug(spew.Sdump(game))
			}
			return death, nil
		}

		remainingDelay := r.TickRate - time.Since(start)
		if remainingDelay > 0 {
			select {
			case <-time.After(remainingDelay):
			case <-ctx.Done():
			}
		}
	}
}
