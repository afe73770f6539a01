package render

import (
	"testing"

	"github.com/battlesnakeio/voicesnake/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   termbox.Event
		quit bool
	}{
		{"esc", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, true},
		{"ctrl-c", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, true},
		{"q", termbox.Event{Type: termbox.EventKey, Ch: 'q'}, true},
		{"other key", termbox.Event{Type: termbox.EventKey, Ch: 'x'}, false},
		{"resize", termbox.Event{Type: termbox.EventResize}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.quit, isQuit(test.ev))
		})
	}
}

func TestTerminal_QuitRequestedDrains(t *testing.T) {
	events := make(chan termbox.Event, 3)
	events <- termbox.Event{Type: termbox.EventKey, Ch: 'x'}
	events <- termbox.Event{Type: termbox.EventResize}
	term := &Terminal{events: events}

	require.False(t, term.QuitRequested())
	require.Empty(t, events)

	events <- termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}
	require.True(t, term.QuitRequested())
}

func TestStatus(t *testing.T) {
	game := rules.NewGame(30, 20, 1)
	game.Food = rules.Point{X: 20, Y: 15}
	require.Equal(t, "turn 0  length 3  heading right", status(game, false))
	require.Equal(t, "turn 0  length 3  heading right  voice: off", status(game, true))

	for rules.Tick(game, rules.Up) == nil {
	}
	require.Equal(t, "turn 6  length 3  heading up  game over: hit the wall", status(game, false))
}

func TestTerminal_VoiceStopped(t *testing.T) {
	term := &Terminal{}
	require.False(t, term.voiceOff.Load())

	term.VoiceStopped()
	require.True(t, term.voiceOff.Load())
}
