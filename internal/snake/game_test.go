package snake

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/hang2323-brian/snake-game/internal/core"
)

// newTestGame builds a playing game with an explicit snake and food cell.
func newTestGame(grid Grid, src Source, s *Snake, food Position) *Game {
	g := &Game{
		grid:   grid,
		src:    src,
		logger: log.New(io.Discard),
		snake:  s,
		food:   NewFood(0),
		status: StatusPlaying,
	}
	g.food.commit(grid, food)
	return g
}

func TestNewGamePlacesFoodBeforeFirstFrame(t *testing.T) {
	grid := Grid{Cols: 40, Rows: 30}

	for seed := int64(0); seed < 50; seed++ {
		g, err := NewGame(grid, NewSource(seed))
		if err != nil {
			t.Fatalf("NewGame() failed: %v", err)
		}

		snap := g.Snapshot()
		if !snap.FoodPlaced {
			t.Fatalf("seed %d: food not placed before first frame", seed)
		}
		if g.Snake().OccupiesCell(snap.Food) {
			t.Fatalf("seed %d: initial food %v on snake", seed, snap.Food)
		}
		if snap.Status != StatusPlaying {
			t.Fatalf("seed %d: status %s, expected playing", seed, snap.Status)
		}
	}
}

func TestNewGameRejectsEmptyGrid(t *testing.T) {
	for _, grid := range []Grid{{}, {Cols: 1, Rows: 1}} {
		if _, err := NewGame(grid, NewSource(1)); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("NewGame(%dx%d) error = %v, expected ErrInvalidGrid", grid.Cols, grid.Rows, err)
		}
	}
}

func TestNewGameOnSingleRow(t *testing.T) {
	grid := Grid{Cols: 40, Rows: 1}
	g, err := NewGame(grid, NewSource(1))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	snap := g.Snapshot()
	if snap.Status != StatusPlaying {
		t.Errorf("status = %s, expected playing", snap.Status)
	}
	for _, p := range append([]Position{snap.Head, snap.Food}, snap.Body...) {
		if !grid.Contains(p) {
			t.Errorf("%v is off the 40x1 grid", p)
		}
	}
}

func TestEatFoodScenario(t *testing.T) {
	grid := Grid{Cols: 40, Rows: 30}
	s := newSnakeAt(Position{20, 15}, DirRight, Position{19, 15})
	// Next food lands at (5,5).
	g := newTestGame(grid, &scriptedSource{values: []int{5, 5}}, s, Position{25, 15})

	for i := 0; i < 5; i++ {
		g.Tick()
	}

	if g.Snake().Head() != (Position{25, 15}) {
		t.Fatalf("head after 5 ticks = %v, expected (25,15)", g.Snake().Head())
	}
	if !g.Snake().CollidesWithFood(g.Food().Position()) {
		t.Fatal("food collision should be detected after 5 ticks")
	}
	if g.Score() != 0 || len(g.Snake().Body()) != 1 {
		t.Fatalf("no growth expected yet: score=%d body=%d", g.Score(), len(g.Snake().Body()))
	}

	snap := g.Tick()

	if snap.Score != 100 {
		t.Errorf("score = %d, expected 100", snap.Score)
	}
	if snap.Level != 1 {
		t.Errorf("level = %d, expected 1", snap.Level)
	}
	if len(snap.Body) != 2 {
		t.Errorf("body length = %d, expected 2", len(snap.Body))
	}
	if snap.Food != (Position{5, 5}) {
		t.Errorf("food = %v, expected relocation to (5,5)", snap.Food)
	}
	if snap.Status != StatusPlaying {
		t.Errorf("status = %s, expected playing", snap.Status)
	}
}

func TestWallCollisionScenario(t *testing.T) {
	grid := Grid{Cols: 40, Rows: 30}
	s := newSnakeAt(Position{0, 5}, DirLeft, Position{1, 5})
	g := newTestGame(grid, NewSource(1), s, Position{30, 20})

	g.Tick()
	if g.Snake().Head() != (Position{-1, 5}) {
		t.Fatalf("head = %v, expected (-1,5)", g.Snake().Head())
	}
	if !g.Snake().CollidesWithWall(grid) {
		t.Fatal("CollidesWithWall() should be true")
	}

	snap := g.Tick()
	if snap.Status != StatusGameOver {
		t.Fatalf("status = %s, expected game_over", snap.Status)
	}
	if snap.Message != MessageGameOver {
		t.Errorf("message = %q, expected %q", snap.Message, MessageGameOver)
	}

	snap = g.Tick()
	if snap.Head != (Position{-1, 5}) {
		t.Errorf("head moved after game over: %v", snap.Head)
	}
}

func TestSelfCollisionScenario(t *testing.T) {
	grid := Grid{Cols: 40, Rows: 30}
	s := newSnakeAt(Position{3, 3}, DirRight,
		Position{2, 3}, Position{1, 3}, Position{0, 3}, Position{0, 2})
	g := newTestGame(grid, NewSource(1), s, Position{30, 20})

	steps := []struct {
		turn Direction
		head Position
	}{
		{DirDown, Position{3, 4}},
		{DirLeft, Position{2, 4}},
		{DirUp, Position{2, 3}},
	}

	for i, step := range steps {
		g.RequestDirection(step.turn)
		snap := g.Tick()
		if snap.Head != step.head {
			t.Errorf("tick %d: head = %v, expected %v", i+1, snap.Head, step.head)
		}
		if snap.Status != StatusPlaying {
			t.Fatalf("tick %d: status = %s, expected playing", i+1, snap.Status)
		}
	}

	body := g.Snake().Body()
	if body[len(body)-1] != (Position{2, 3}) {
		t.Fatalf("tail = %v, expected the head to have moved onto it at (2,3)", body[len(body)-1])
	}
	if !g.Snake().CollidesWithSelf() {
		t.Fatal("CollidesWithSelf() should be true once the head is on the tail")
	}

	snap := g.Tick()
	if snap.Status != StatusGameOver {
		t.Errorf("status = %s, expected game_over", snap.Status)
	}
	if snap.Message != MessageGameOver {
		t.Errorf("message = %q, expected %q", snap.Message, MessageGameOver)
	}
	if snap.Head != (Position{2, 3}) {
		t.Errorf("head moved after the collision: %v", snap.Head)
	}
}

func TestGameOverFreezesState(t *testing.T) {
	grid := Grid{Cols: 10, Rows: 10}
	s := newSnakeAt(Position{9, 5}, DirRight, Position{8, 5})
	g := newTestGame(grid, NewSource(7), s, Position{0, 0})

	g.Tick()
	g.Tick()
	if g.Status() != StatusGameOver {
		t.Fatalf("status = %s, expected game_over", g.Status())
	}

	frozen := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.RequestDirection(DirUp)
		snap := g.Tick()

		if snap.Head != frozen.Head {
			t.Fatalf("head changed: %v vs %v", snap.Head, frozen.Head)
		}
		if !reflect.DeepEqual(snap.Body, frozen.Body) {
			t.Fatalf("body changed: %v vs %v", snap.Body, frozen.Body)
		}
		if snap.Score != frozen.Score || snap.Level != frozen.Level {
			t.Fatalf("score/level changed: %d/%d vs %d/%d", snap.Score, snap.Level, frozen.Score, frozen.Level)
		}
		if snap.Direction != frozen.Direction {
			t.Fatalf("direction changed after game over: %v", snap.Direction)
		}
	}
}

func TestReversalRequestIgnored(t *testing.T) {
	grid := Grid{Cols: 40, Rows: 30}
	s := newSnakeAt(Position{10, 10}, DirRight, Position{9, 10})
	g := newTestGame(grid, NewSource(1), s, Position{30, 20})

	g.RequestDirection(DirLeft)
	snap := g.Tick()

	if snap.Direction != DirRight {
		t.Errorf("direction = %v, expected right", snap.Direction)
	}
	if snap.Head != (Position{11, 10}) {
		t.Errorf("head = %v, expected (11,10)", snap.Head)
	}
	if snap.Status != StatusPlaying {
		t.Errorf("status = %s, expected playing", snap.Status)
	}
}

func TestLastDirectionRequestWins(t *testing.T) {
	grid := Grid{Cols: 40, Rows: 30}
	s := newSnakeAt(Position{10, 10}, DirRight, Position{9, 10})
	g := newTestGame(grid, NewSource(1), s, Position{30, 20})

	g.RequestDirection(DirUp)
	g.RequestDirection(DirDown)
	snap := g.Tick()

	if snap.Head != (Position{10, 11}) {
		t.Errorf("head = %v, expected (10,11)", snap.Head)
	}
}

func TestRestart(t *testing.T) {
	grid := Grid{Cols: 12, Rows: 9}

	for seed := int64(0); seed < 50; seed++ {
		g, err := NewGame(grid, NewSource(seed))
		if err != nil {
			t.Fatalf("NewGame() failed: %v", err)
		}

		for i := 0; i < 40 && !g.Status().Terminal(); i++ {
			g.Tick()
		}

		g.Restart()
		snap := g.Snapshot()

		if snap.Score != 0 || snap.Level != 0 {
			t.Errorf("seed %d: score/level = %d/%d, expected 0/0", seed, snap.Score, snap.Level)
		}
		if snap.Status != StatusPlaying {
			t.Errorf("seed %d: status = %s, expected playing", seed, snap.Status)
		}
		if !grid.Contains(snap.Head) {
			t.Errorf("seed %d: head %v outside grid", seed, snap.Head)
		}
		if len(snap.Body) != 1 {
			t.Errorf("seed %d: body length %d, expected 1", seed, len(snap.Body))
		}
		if !snap.FoodPlaced || g.Snake().OccupiesCell(snap.Food) {
			t.Errorf("seed %d: food %v not validly placed", seed, snap.Food)
		}
	}
}

func TestBoardExhaustedWins(t *testing.T) {
	grid := Grid{Cols: 3, Rows: 1}
	s := newSnakeAt(Position{2, 0}, DirRight, Position{1, 0}, Position{0, 0})
	g := newTestGame(grid, NewSource(3), s, Position{2, 0})

	snap := g.Tick()

	if snap.Status != StatusWon {
		t.Fatalf("status = %s, expected won", snap.Status)
	}
	if snap.Message != MessageWon {
		t.Errorf("message = %q, expected %q", snap.Message, MessageWon)
	}
	if snap.Score != PointsPerFood {
		t.Errorf("score = %d, expected %d", snap.Score, PointsPerFood)
	}
	if snap.FoodPlaced {
		t.Error("food should be unplaced on a full board")
	}
	if snap.Head != (Position{2, 0}) {
		t.Errorf("snake moved after filling the board: head %v", snap.Head)
	}

	if again := g.Tick(); again.Head != snap.Head || again.Status != StatusWon {
		t.Error("won state should be terminal")
	}
}

func TestStepRestartOnlyWhenOver(t *testing.T) {
	grid := Grid{Cols: 6, Rows: 6}
	g, err := NewGame(grid, NewSource(99))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)

	snap := g.Step(restart)
	if snap.Tick != 1 {
		t.Errorf("restart while playing should just tick, tick = %d", snap.Tick)
	}

	empty := core.NewInputFrame()
	for i := 0; i < 20 && !g.Status().Terminal(); i++ {
		g.Step(empty)
	}
	if !g.Status().Terminal() {
		t.Fatal("snake moving straight should hit a wall on a 6x6 grid")
	}

	snap = g.Step(restart)
	if snap.Status != StatusPlaying || snap.Tick != 0 || snap.Score != 0 {
		t.Errorf("after restart: status=%s tick=%d score=%d", snap.Status, snap.Tick, snap.Score)
	}
}

func TestStepAppliesDirection(t *testing.T) {
	grid := Grid{Cols: 40, Rows: 30}
	s := newSnakeAt(Position{10, 10}, DirRight, Position{9, 10})
	g := newTestGame(grid, NewSource(1), s, Position{30, 20})

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	snap := g.Step(in)

	if snap.Direction != DirDown || snap.Head != (Position{10, 11}) {
		t.Errorf("direction=%v head=%v, expected down (10,11)", snap.Direction, snap.Head)
	}
}

func TestDeterminism(t *testing.T) {
	grid := Grid{Cols: 20, Rows: 15}

	g1, err := NewGame(grid, NewSource(12345))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	g2, err := NewGame(grid, NewSource(12345))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		input.Clear()
		switch i % 7 {
		case 2:
			input.Set(core.ActionDown)
		case 4:
			input.Set(core.ActionLeft)
		case 6:
			input.Set(core.ActionUp)
		}

		s1 := g1.Step(input)
		s2 := g2.Step(input)
		if !reflect.DeepEqual(s1, s2) {
			t.Fatalf("tick %d: snapshots diverged:\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	grid := Grid{Cols: 10, Rows: 8}
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for seed := int64(0); seed < 40; seed++ {
		src := NewSource(seed)
		g, err := NewGame(grid, src)
		if err != nil {
			t.Fatalf("NewGame() failed: %v", err)
		}
		steer := NewSource(seed + 1000)

		for i := 0; i < 300; i++ {
			if g.Status().Terminal() {
				g.Restart()
			}

			before := g.Snapshot()
			g.RequestDirection(dirs[steer.Intn(len(dirs))])
			after := g.Tick()

			if after.Status != StatusPlaying {
				continue
			}

			grew := after.Score > before.Score
			switch {
			case grew && len(after.Body) != len(before.Body)+1:
				t.Fatalf("seed %d tick %d: grew but body %d -> %d", seed, i, len(before.Body), len(after.Body))
			case !grew && len(after.Body) != len(before.Body):
				t.Fatalf("seed %d tick %d: body %d -> %d without growth", seed, i, len(before.Body), len(after.Body))
			}

			if before.Direction.IsOpposite(after.Direction) {
				t.Fatalf("seed %d tick %d: reversed %v -> %v", seed, i, before.Direction, after.Direction)
			}
			if after.Head != before.Head.Step(after.Direction) {
				t.Fatalf("seed %d tick %d: head %v -> %v moving %v", seed, i, before.Head, after.Head, after.Direction)
			}

			for _, seg := range after.Body {
				if seg == after.Food {
					t.Fatalf("seed %d tick %d: food %v on body", seed, i, after.Food)
				}
			}
		}
	}
}
