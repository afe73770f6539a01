// Package voice turns recognized speech into steering for the snake.
package voice

import (
	"strings"

	"github.com/battlesnakeio/voicesnake/rules"
)

type keyword struct {
	words     []string
	direction rules.Direction
}

// keywords is checked in order, the first group with a hit wins.
var keywords = []keyword{
	{words: []string{"up", "top"}, direction: rules.Up},
	{words: []string{"down", "bottom"}, direction: rules.Down},
	{words: []string{"left"}, direction: rules.Left},
	{words: []string{"right"}, direction: rules.Right},
}

// Match finds a direction keyword anywhere in text. Matching is a case
// sensitive substring search, the recognizer emits lower case words.
func Match(text string) (rules.Direction, bool) {
	if text == "" {
		return 0, false
	}
	for _, k := range keywords {
		for _, w := range k.words {
			if strings.Contains(text, w) {
				return k.direction, true
			}
		}
	}
	return 0, false
}
