package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/hang2323-brian/snake-game/internal/core"
	"github.com/hang2323-brian/snake-game/internal/snake"
)

func runeAt(s *core.Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func testSnapshot() snake.Snapshot {
	return snake.Snapshot{
		Head:       snake.Position{X: 3, Y: 2},
		Body:       []snake.Position{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Direction:  snake.DirRight,
		Food:       snake.Position{X: 6, Y: 4},
		FoodPlaced: true,
		Score:      200,
		Level:      2,
		Length:     3,
		Status:     snake.StatusPlaying,
		Grid:       snake.Grid{Cols: 10, Rows: 8},
	}
}

func TestGridForTerminal(t *testing.T) {
	grid, err := GridForTerminal(80, 24)
	if err != nil {
		t.Fatalf("GridForTerminal(80, 24) failed: %v", err)
	}
	if grid.Cols != 39 || grid.Rows != 20 {
		t.Errorf("grid = %dx%d, expected 39x20", grid.Cols, grid.Rows)
	}

	w, h := RequiredSize(grid)
	if w > 80 || h > 24 {
		t.Errorf("RequiredSize = %dx%d, exceeds the 80x24 terminal", w, h)
	}

	if _, err := GridForTerminal(10, 5); !errors.Is(err, ErrTerminalTooSmall) {
		t.Errorf("tiny terminal error = %v, expected ErrTerminalTooSmall", err)
	}
}

func TestRenderDrawsPieces(t *testing.T) {
	r := NewBoardRenderer(60, 12)
	snap := testSnapshot()
	r.Render(snap, HUD{Difficulty: "normal", Speed: "12/s"})
	s := r.Screen()

	hx, hy := r.CellOrigin(snap.Grid, snap.Head)
	if runeAt(s, hx, hy) != '█' || runeAt(s, hx+1, hy) != '█' {
		t.Errorf("head cell = %q%q, expected two blocks", runeAt(s, hx, hy), runeAt(s, hx+1, hy))
	}

	for _, p := range snap.Body {
		x, y := r.CellOrigin(snap.Grid, p)
		if runeAt(s, x, y) != '█' {
			t.Errorf("body cell %v not drawn", p)
		}
	}

	fx, fy := r.CellOrigin(snap.Grid, snap.Food)
	if runeAt(s, fx, fy) != '●' {
		t.Errorf("food cell = %q, expected ●", runeAt(s, fx, fy))
	}

	// Box corners surround the grid.
	if runeAt(s, hx-1-snap.Head.X*cellWidth, 1) != '┌' {
		t.Error("board box top-left corner missing")
	}

	hud := s.Row(0)
	for _, want := range []string{"Score: 200", "Level: 2", "Length: 3"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}

func TestRenderHUDRightSide(t *testing.T) {
	r := NewBoardRenderer(120, 12)
	snap := testSnapshot()

	r.Render(snap, HUD{Difficulty: "hard", Speed: "17/s"})
	if hud := r.Screen().Row(0); !strings.Contains(hud, "hard 17/s") {
		t.Errorf("HUD %q should show difficulty and speed", hud)
	}

	r.Render(snap, HUD{Difficulty: "hard", Speed: "17/s", Notice: "saved snake.txt"})
	hud := r.Screen().Row(0)
	if !strings.Contains(hud, "saved snake.txt") || strings.Contains(hud, "17/s") {
		t.Errorf("HUD %q should show the notice in place of the speed", hud)
	}
}

func TestRenderSkipsUnplacedFood(t *testing.T) {
	r := NewBoardRenderer(60, 12)
	snap := testSnapshot()
	snap.FoodPlaced = false
	r.Render(snap, HUD{})

	if strings.ContainsRune(r.Screen().String(), '●') {
		t.Error("unplaced food should not be drawn")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name   string
		status snake.Status
		msg    string
		paused bool
		want   string
	}{
		{"game over", snake.StatusGameOver, snake.MessageGameOver, false, "Game Over"},
		{"won", snake.StatusWon, snake.MessageWon, false, "You Win!"},
		{"paused", snake.StatusPlaying, "", true, "PAUSED"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewBoardRenderer(60, 12)
			snap := testSnapshot()
			snap.Status = tc.status
			snap.Message = tc.msg
			r.Render(snap, HUD{Paused: tc.paused})

			if !strings.Contains(r.Screen().String(), tc.want) {
				t.Errorf("screen should show %q:\n%s", tc.want, r.Screen().String())
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	r := NewBoardRenderer(60, 12)
	r.Render(testSnapshot(), HUD{})

	out := RenderScreen(r.Screen())
	if !strings.Contains(out, "SNAKE") {
		t.Error("styled output should contain the HUD text")
	}
	if got := strings.Count(out, "\n"); got != 11 {
		t.Errorf("styled output has %d line breaks, expected 11", got)
	}
}
