package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidGrid is returned when a grid has an empty dimension or fewer
// than two cells, which leaves no room for the head and its first segment.
var ErrInvalidGrid = errors.New("snake: grid needs at least two cells")

// Source is the random number source the game draws from.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded source.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Grid is the fixed board the snake lives on.
type Grid struct {
	Cols int
	Rows int
}

// NewGrid validates and returns a grid of cols x rows cells.
func NewGrid(cols, rows int) (Grid, error) {
	if cols < 1 || rows < 1 || cols*rows < 2 {
		return Grid{}, fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, cols, rows)
	}
	return Grid{Cols: cols, Rows: rows}, nil
}

// GridFromPixels derives a grid from a board size in pixels and a square cell size.
// Partial cells at the right and bottom edges are dropped.
func GridFromPixels(width, height, cellSize int) (Grid, error) {
	if cellSize < 1 {
		return Grid{}, fmt.Errorf("%w: cell size %d", ErrInvalidGrid, cellSize)
	}
	return NewGrid(width/cellSize, height/cellSize)
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Cols && p.Y < g.Rows
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// RandomPosition samples a cell uniformly.
func (g Grid) RandomPosition(src Source) Position {
	return Position{X: src.Intn(g.Cols), Y: src.Intn(g.Rows)}
}
