// Package window draws the game in a raylib window.
package window

import (
	"github.com/battlesnakeio/voicesnake/render"
	"github.com/battlesnakeio/voicesnake/rules"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// Window is a raylib window. Raylib must be driven from the main goroutine.
type Window struct {
	cellSize int
}

// New opens a width x height window.
func New(width, height, cellSize int, title string) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, errors.New("unable to open window, is a display available?")
	}
	rl.SetTargetFPS(60)
	return &Window{cellSize: cellSize}, nil
}

// QuitRequested is true once the close button or Esc was pressed.
func (w *Window) QuitRequested() bool {
	return rl.WindowShouldClose()
}

func (w *Window) Draw(game *rules.Game) error {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, p := range game.Snake.Body {
		drawRect(render.SnakeRect(p, w.cellSize), rl.Green)
	}
	drawRect(render.FoodRect(game.Food, w.cellSize), rl.Red)

	rl.EndDrawing()
	return nil
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func drawRect(r render.Rect, c rl.Color) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), c)
}
