package rules

// Direction is one of the four grid headings a snake can travel in.
type Direction int

const (
	// Up moves towards row 0.
	Up Direction = iota
	// Down moves towards the last row.
	Down
	// Left moves towards column 0.
	Left
	// Right moves towards the last column.
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return "unknown"
}

// Opposite returns the heading that would reverse the snake onto itself.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta is the single cell step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Point is a grid cell.
type Point struct {
	X int
	Y int
}

// Add returns the point shifted by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Snake is an ordered list of cells, head first.
type Snake struct {
	Body []Point
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Move pushes a new head one cell in direction d. Move does not remove the
// tail, that is done after the snake has had a chance to eat.
func (s *Snake) Move(d Direction) Point {
	head := s.Head().Add(d.Delta())
	s.Body = append([]Point{head}, s.Body...)
	return head
}

// DropTail removes the last cell, keeping the length constant after a move.
func (s *Snake) DropTail() {
	if len(s.Body) == 0 {
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Occupies reports whether any cell other than the head is at p.
func (s *Snake) Occupies(p Point) bool {
	for i, b := range s.Body {
		if i == 0 {
			continue
		}
		if b == p {
			return true
		}
	}
	return false
}
