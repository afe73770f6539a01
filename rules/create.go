package rules

import (
	uuid "github.com/satori/go.uuid"
	"golang.org/x/exp/rand"
)

// InitialLength is the number of cells a new snake starts with.
const InitialLength = 3

// Game is the complete state of a single player game.
type Game struct {
	ID     string
	Width  int
	Height int
	Turn   int64
	Status GameStatus
	Snake  Snake
	Food   Point

	// Heading is the direction of the last move.
	Heading Direction
	// Eaten counts the food the snake has swallowed, the body is always
	// InitialLength+Eaten cells long.
	Eaten   int
	Death   *Death

	rand *rand.Rand
}

// NewGame creates a running game on a width x height board. The snake starts
// three cells long heading right with its head at (5,5), food is placed with a
// generator seeded from seed.
func NewGame(width, height int, seed uint64) *Game {
	game := &Game{
		ID:      uuid.NewV4().String(),
		Width:   width,
		Height:  height,
		Status:  GameStatusRunning,
		Heading: Right,
		Snake: Snake{
			Body: []Point{
				{X: 5, Y: 5},
				{X: 4, Y: 5},
				{X: 3, Y: 5},
			},
		},
		rand: rand.New(rand.NewSource(seed)),
	}
	game.Food = game.randomFoodPoint()
	return game
}

// Running reports whether the game still accepts ticks.
func (g *Game) Running() bool {
	return g.Status == GameStatusRunning
}

// randomFoodPoint picks any cell away from the top row and left column. The
// snake body is deliberately not excluded, food may spawn underneath it.
func (g *Game) randomFoodPoint() Point {
	return Point{
		X: 1 + g.rand.Intn(max(g.Width-1, 1)),
		Y: 1 + g.rand.Intn(max(g.Height-1, 1)),
	}
}
