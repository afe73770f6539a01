// Package render draws the game. The game loop only knows about Surface, the
// window and the terminal are interchangeable.
package render

import (
	"github.com/battlesnakeio/voicesnake/rules"
)

// Surface is something the game can be drawn on.
type Surface interface {
	// QuitRequested drains pending input and reports whether the player
	// asked to quit.
	QuitRequested() bool
	Draw(game *rules.Game) error
	Close() error
}

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// CellRect is the pixel area of grid cell p shrunk by inset on every side.
func CellRect(p rules.Point, size, inset int) Rect {
	return Rect{
		X: p.X*size + inset,
		Y: p.Y*size + inset,
		W: size - 2*inset,
		H: size - 2*inset,
	}
}

// SnakeRect is a body segment, two pixels short of a full cell and anchored
// at its top-left corner, so neighbouring segments read as separate squares.
func SnakeRect(p rules.Point, size int) Rect {
	return Rect{
		X: p.X * size,
		Y: p.Y * size,
		W: size - 2,
		H: size - 2,
	}
}

// FoodRect fills the whole cell.
func FoodRect(p rules.Point, size int) Rect {
	return CellRect(p, size, 0)
}
