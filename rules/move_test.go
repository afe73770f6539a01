package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnake_Move(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  Point
	}{
		{Direction: Up, Expected: Point{X: 5, Y: 4}},
		{Direction: Down, Expected: Point{X: 5, Y: 6}},
		{Direction: Left, Expected: Point{X: 4, Y: 5}},
		{Direction: Right, Expected: Point{X: 6, Y: 5}},
	}

	for _, test := range tests {
		s := &Snake{
			Body: []Point{
				{X: 5, Y: 5},
			},
		}
		s.Move(test.Direction)
		require.Equal(t, test.Expected, s.Head(), "Direction: %s", test.Direction)
		require.Len(t, s.Body, 2)
	}
}

func TestSnake_DropTail(t *testing.T) {
	s := &Snake{Body: []Point{{X: 3, Y: 3}, {X: 2, Y: 3}}}
	s.DropTail()
	require.Equal(t, []Point{{X: 3, Y: 3}}, s.Body)
	s.DropTail()
	s.DropTail()
	require.Empty(t, s.Body)
}

func TestDirection_Opposite(t *testing.T) {
	require.Equal(t, Down, Up.Opposite())
	require.Equal(t, Up, Down.Opposite())
	require.Equal(t, Right, Left.Opposite())
	require.Equal(t, Left, Right.Opposite())

	for _, d := range []Direction{Up, Down, Left, Right} {
		require.Equal(t, Point{}, d.Delta().Add(d.Opposite().Delta()), "Direction: %s", d)
	}
}

func TestSnake_Occupies(t *testing.T) {
	s := &Snake{Body: []Point{{X: 1, Y: 1}, {X: 1, Y: 2}}}
	require.False(t, s.Occupies(Point{X: 1, Y: 1}), "head is not counted")
	require.True(t, s.Occupies(Point{X: 1, Y: 2}))
}
