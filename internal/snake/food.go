package snake

import (
	"errors"
	"fmt"
)

// ErrBoardExhausted is returned when every cell is occupied and food has nowhere to go.
var ErrBoardExhausted = errors.New("snake: no free cell left for food")

// DefaultMaxAttempts bounds random sampling before falling back to a scan.
const DefaultMaxAttempts = 64

// Occupier reports whether a cell is taken. *Snake implements it.
type Occupier interface {
	OccupiesCell(p Position) bool
}

// Food holds the single active food cell.
// The zero value is an unplaced placeholder at (0,0); Relocate must run
// before the position is shown or compared against.
type Food struct {
	position    Position
	placed      bool
	maxAttempts int
}

// NewFood returns an unplaced food item that samples at most maxAttempts
// random cells before scanning. maxAttempts <= 0 selects the default.
func NewFood(maxAttempts int) *Food {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Food{maxAttempts: maxAttempts}
}

// Position returns the current food cell.
func (f *Food) Position() Position {
	return f.position
}

// Placed reports whether Relocate has committed a valid position.
func (f *Food) Placed() bool {
	return f.placed
}

// Relocate moves the food to a random cell that occupied does not cover.
//
// Random sampling is tried first; if it keeps hitting occupied cells the
// free cells are enumerated row by row and one is chosen uniformly.
// On a full board the food is left unplaced and ErrBoardExhausted returned.
func (f *Food) Relocate(grid Grid, occupied Occupier, src Source) error {
	attempts := f.maxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for range attempts {
		p := grid.RandomPosition(src)
		if !occupied.OccupiesCell(p) {
			f.commit(grid, p)
			return nil
		}
	}

	free := make([]Position, 0, grid.Cells())
	for y := range grid.Rows {
		for x := range grid.Cols {
			p := Position{X: x, Y: y}
			if !occupied.OccupiesCell(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		f.placed = false
		return ErrBoardExhausted
	}

	f.commit(grid, free[src.Intn(len(free))])
	return nil
}

func (f *Food) commit(grid Grid, p Position) {
	if !grid.Contains(p) {
		panic(fmt.Sprintf("snake: food position %v outside %dx%d grid", p, grid.Cols, grid.Rows))
	}
	f.position = p
	f.placed = true
}
