package snake

import "fmt"

// Snake is the player-controlled entity.
// body holds the cells the head has vacated, newest first.
type Snake struct {
	head      Position
	body      []Position
	direction Direction
}

// NewSnake spawns a snake at a uniformly random cell.
//
// The starting direction is a heuristic that usually points the snake into
// the board: right half heads left, top half heads down, anything else heads
// up. It can still start one step from a wall.
//
// The one-segment body sits behind the head, else ahead of it, else on
// either side. grid must have at least two cells.
func NewSnake(grid Grid, src Source) *Snake {
	head := grid.RandomPosition(src)

	dir := DirUp
	switch {
	case 2*head.X > grid.Cols:
		dir = DirLeft
	case 2*head.Y < grid.Rows:
		dir = DirDown
	}

	var stub Position
	for _, d := range stubOrder(dir) {
		stub = head.Step(d)
		if grid.Contains(stub) {
			break
		}
	}
	if !grid.Contains(stub) {
		panic(fmt.Sprintf("snake: no cell next to %v on %dx%d grid", head, grid.Cols, grid.Rows))
	}

	return &Snake{
		head:      head,
		body:      []Position{stub},
		direction: dir,
	}
}

// stubOrder lists the neighbours tried for the starting segment.
func stubOrder(dir Direction) [4]Direction {
	if dir == DirUp || dir == DirDown {
		return [4]Direction{dir.Opposite(), dir, DirLeft, DirRight}
	}
	return [4]Direction{dir.Opposite(), dir, DirUp, DirDown}
}

// newSnakeAt builds a snake with an explicit layout.
func newSnakeAt(head Position, dir Direction, body ...Position) *Snake {
	return &Snake{
		head:      head,
		body:      append([]Position(nil), body...),
		direction: dir,
	}
}

// Head returns the head cell.
func (s *Snake) Head() Position {
	return s.head
}

// Body returns a copy of the body, newest segment first.
func (s *Snake) Body() []Position {
	return append([]Position(nil), s.body...)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Len returns the number of occupied cells, head included.
func (s *Snake) Len() int {
	return len(s.body) + 1
}

// SetDirection changes heading unless d reverses the current one.
// It reports whether the change was applied.
func (s *Snake) SetDirection(d Direction) bool {
	if s.direction.IsOpposite(d) {
		return false
	}
	s.direction = d
	return true
}

// Advance moves the snake one cell. Without growth the oldest segment is
// dropped first so the body length is unchanged.
func (s *Snake) Advance(grow bool) {
	if !grow && len(s.body) > 0 {
		s.body = s.body[:len(s.body)-1]
	}

	s.body = append(s.body, Position{})
	copy(s.body[1:], s.body)
	s.body[0] = s.head

	s.head = s.head.Step(s.direction)
}

// CollidesWithWall reports whether the head has left the grid.
func (s *Snake) CollidesWithWall(grid Grid) bool {
	return !grid.Contains(s.head)
}

// CollidesWithSelf reports whether the head overlaps a body segment.
func (s *Snake) CollidesWithSelf() bool {
	for _, seg := range s.body {
		if seg == s.head {
			return true
		}
	}
	return false
}

// CollidesWithFood reports whether the head sits on the food cell.
func (s *Snake) CollidesWithFood(food Position) bool {
	return s.head == food
}

// OccupiesCell reports whether p is the head or any body segment.
func (s *Snake) OccupiesCell(p Position) bool {
	if s.head == p {
		return true
	}
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
