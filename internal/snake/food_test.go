package snake

import (
	"errors"
	"testing"
)

func TestFoodZeroValueIsUnplaced(t *testing.T) {
	f := NewFood(0)
	if f.Placed() {
		t.Error("new food should not be placed")
	}
	if f.Position() != (Position{}) {
		t.Errorf("placeholder position = %v, expected (0,0)", f.Position())
	}
	if f.maxAttempts != DefaultMaxAttempts {
		t.Errorf("maxAttempts = %d, expected default %d", f.maxAttempts, DefaultMaxAttempts)
	}
}

func TestRelocateAvoidsSnake(t *testing.T) {
	grid := Grid{Cols: 12, Rows: 8}

	for seed := int64(0); seed < 100; seed++ {
		src := NewSource(seed)
		s := NewSnake(grid, src)
		for i := 0; i < 20; i++ {
			s.Advance(true)
			if s.CollidesWithWall(grid) || s.CollidesWithSelf() {
				break
			}
		}

		f := NewFood(0)
		for i := 0; i < 50; i++ {
			if err := f.Relocate(grid, s, src); err != nil {
				t.Fatalf("seed %d: Relocate() failed: %v", seed, err)
			}
			if s.OccupiesCell(f.Position()) {
				t.Fatalf("seed %d: food placed on snake at %v", seed, f.Position())
			}
			if !grid.Contains(f.Position()) {
				t.Fatalf("seed %d: food placed outside grid at %v", seed, f.Position())
			}
		}
	}
}

func TestRelocateFallsBackToScan(t *testing.T) {
	grid := Grid{Cols: 3, Rows: 1}
	s := newSnakeAt(Position{0, 0}, DirRight, Position{1, 0})

	// Every random sample lands on the head; only the scan can find (2,0).
	f := NewFood(4)
	src := &scriptedSource{values: []int{0, 0, 0, 0, 0, 0, 0, 0, 0}}
	if err := f.Relocate(grid, s, src); err != nil {
		t.Fatalf("Relocate() failed: %v", err)
	}
	if f.Position() != (Position{2, 0}) {
		t.Errorf("food = %v, expected (2,0)", f.Position())
	}
	if !f.Placed() {
		t.Error("food should be placed")
	}
}

func TestRelocateBoardExhausted(t *testing.T) {
	grid := Grid{Cols: 2, Rows: 1}
	s := newSnakeAt(Position{0, 0}, DirRight, Position{1, 0})

	f := NewFood(3)
	err := f.Relocate(grid, s, NewSource(1))
	if !errors.Is(err, ErrBoardExhausted) {
		t.Fatalf("Relocate() error = %v, expected ErrBoardExhausted", err)
	}
	if f.Placed() {
		t.Error("food should stay unplaced on a full board")
	}
}

func TestCommitOutsideGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("committing an off-grid position should panic")
		}
	}()

	f := NewFood(0)
	f.commit(Grid{Cols: 2, Rows: 2}, Position{5, 5})
}
