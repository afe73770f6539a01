package render

import (
	"fmt"
	"sync/atomic"

	"github.com/battlesnakeio/voicesnake/config"
	"github.com/battlesnakeio/voicesnake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	foodColor    = termbox.ColorRed

	// cellWidth is the number of terminal columns per grid cell, terminal
	// cells are roughly twice as tall as they are wide.
	cellWidth = 2
)

// Terminal draws the board with termbox.
type Terminal struct {
	events   <-chan termbox.Event
	done     chan struct{}
	voiceOff atomic.Bool
}

// NewTerminal takes over the terminal until Close is called.
func NewTerminal() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize terminal")
	}
	termbox.SetInputMode(termbox.InputEsc)

	done := make(chan struct{})
	return &Terminal{
		events: setupEventQueue(done),
		done:   done,
	}, nil
}

func setupEventQueue(done <-chan struct{}) <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			select {
			case ev <- termbox.PollEvent():
			case <-done:
				return
			}
		}
	}(eventQueue)
	return eventQueue
}

// QuitRequested drains the pending key presses. Esc, Ctrl-C and q quit.
func (t *Terminal) QuitRequested() bool {
	for {
		select {
		case ev := <-t.events:
			if isQuit(ev) {
				return true
			}
		default:
			return false
		}
	}
}

func isQuit(ev termbox.Event) bool {
	if ev.Type != termbox.EventKey {
		return false
	}
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return true
	}
	return ev.Ch == 'q'
}

// VoiceStopped marks voice control as off on the status line.
func (t *Terminal) VoiceStopped() {
	t.voiceOff.Store(true)
}

func (t *Terminal) Draw(game *rules.Game) error {
	termbox.Clear(defaultColor, bgColor)

	var (
		w, h   = termbox.Size()
		width  = game.Width * cellWidth
		left   = max((w-width)/2, 1)
		top    = max((h-game.Height)/2, 2)
		bottom = top + game.Height
	)

	tbprint(left, top-2, defaultColor, bgColor, config.WindowTitle)
	renderBoard(width, top-1, bottom, left)
	for _, p := range game.Snake.Body {
		setCell(left, top, p, ' ', snakeColor)
	}
	setCell(left, top, game.Food, ' ', foodColor)
	tbprint(left, bottom+1, defaultColor, bgColor, status(game, t.voiceOff.Load()))

	return termbox.Flush()
}

func (t *Terminal) Close() error {
	close(t.done)
	termbox.Close()
	return nil
}

func status(game *rules.Game, voiceOff bool) string {
	line := fmt.Sprintf("turn %d  length %d  heading %s",
		game.Turn, len(game.Snake.Body), game.Heading)
	if voiceOff {
		line += "  voice: off"
	}
	if game.Death != nil {
		line += "  game over: " + game.Death.Reason()
	}
	return line
}

func setCell(left, top int, p rules.Point, ch rune, color termbox.Attribute) {
	x := left + p.X*cellWidth
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(x+i, top+p.Y, ch, color, color)
	}
}

func renderBoard(width, top, bottom, left int) {
	for i := top; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
