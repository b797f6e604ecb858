package tui

import (
	"errors"
	"fmt"

	"github.com/hang2323-brian/snake-game/internal/core"
	"github.com/hang2323-brian/snake-game/internal/snake"
)

// Board layout. Each grid cell is drawn two columns wide so cells look square.
const (
	cellWidth = 2
	hudRows   = 1 // score line above the box
	helpRows  = 1 // key hints below the box

	MinCols = 8
	MinRows = 6
)

// ErrTerminalTooSmall is returned when a terminal cannot hold a playable grid.
var ErrTerminalTooSmall = errors.New("tui: terminal too small")

// GridForTerminal returns the largest grid that fits a width x height terminal.
func GridForTerminal(width, height int) (snake.Grid, error) {
	cols := (width - 2) / cellWidth
	rows := height - hudRows - helpRows - 2
	if cols < MinCols || rows < MinRows {
		return snake.Grid{}, fmt.Errorf("%w: %dx%d holds a %dx%d grid, need at least %dx%d",
			ErrTerminalTooSmall, width, height, max(cols, 0), max(rows, 0), MinCols, MinRows)
	}
	return snake.NewGrid(cols, rows)
}

// RequiredSize returns the terminal size needed to show grid with its HUD and help line.
func RequiredSize(g snake.Grid) (width, height int) {
	return g.Cols*cellWidth + 2, g.Rows + 2 + hudRows + helpRows
}

// HUD carries the host-side values shown next to the game state.
type HUD struct {
	Best       int
	Speed      string // e.g. "12/s"
	Difficulty string
	Paused     bool
	Notice     string
}

// BoardRenderer draws snapshots into a character screen.
type BoardRenderer struct {
	screen *core.Screen
}

// NewBoardRenderer creates a renderer for a width x height drawing area.
func NewBoardRenderer(width, height int) *BoardRenderer {
	return &BoardRenderer{screen: core.NewScreen(width, height)}
}

// Screen returns the buffer of the last Render.
func (r *BoardRenderer) Screen() *core.Screen {
	return r.screen
}

// Resize changes the drawing area.
func (r *BoardRenderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

// boxRect returns the board outline, centred horizontally below the HUD.
func (r *BoardRenderer) boxRect(g snake.Grid) core.Rect {
	w := g.Cols*cellWidth + 2
	h := g.Rows + 2
	x := (r.screen.Width() - w) / 2
	if x < 0 {
		x = 0
	}
	return core.NewRect(x, hudRows, w, h)
}

// CellOrigin returns the screen position of the left column of grid cell p.
func (r *BoardRenderer) CellOrigin(g snake.Grid, p snake.Position) (x, y int) {
	box := r.boxRect(g)
	return box.X + 1 + p.X*cellWidth, box.Y + 1 + p.Y
}

// Render draws the HUD, the board, the snake, the food and any overlay.
func (r *BoardRenderer) Render(snap snake.Snapshot, hud HUD) {
	s := r.screen
	s.Clear()

	box := r.boxRect(snap.Grid)
	r.drawHUD(box, snap, hud)
	s.DrawBox(box, core.ColorGray)

	if snap.FoodPlaced {
		r.drawCell(snap.Grid, snap.Food, '●', ' ', core.ColorRed)
	}
	for _, p := range snap.Body {
		r.drawCell(snap.Grid, p, '█', '█', core.ColorGreen)
	}
	// Head last so it stays visible on a self collision.
	r.drawCell(snap.Grid, snap.Head, '█', '█', core.ColorBrightGreen)

	switch {
	case snap.Message != "":
		color := core.ColorRed
		if snap.Status == snake.StatusWon {
			color = core.ColorYellow
		}
		r.drawOverlay(box, color,
			snap.Message,
			fmt.Sprintf("Score: %d", snap.Score),
			"r: restart  q: quit",
		)
	case hud.Paused:
		r.drawOverlay(box, core.ColorYellow, "PAUSED", "p: resume")
	}
}

func (r *BoardRenderer) drawHUD(box core.Rect, snap snake.Snapshot, hud HUD) {
	left := fmt.Sprintf("SNAKE  Score: %d  Level: %d  Length: %d  Best: %d",
		snap.Score, snap.Level, snap.Length, max(hud.Best, snap.Score))
	lx := core.Clamp(box.X, 0, max(0, r.screen.Width()-len([]rune(left))))
	r.screen.DrawText(lx, 0, left, core.ColorWhite)

	right := hud.Difficulty + " " + hud.Speed
	if hud.Notice != "" {
		right = hud.Notice
	}
	rx := max(box.Right(), lx+len([]rune(left))+2+len([]rune(right))) - len([]rune(right))
	if rx+len([]rune(right)) <= r.screen.Width() {
		r.screen.DrawText(rx, 0, right, core.ColorGray)
	}
}

// drawCell fills both columns of a grid cell. Cells off the grid are skipped.
func (r *BoardRenderer) drawCell(g snake.Grid, p snake.Position, left, right rune, c core.Color) {
	if !g.Contains(p) {
		return
	}
	x, y := r.CellOrigin(g, p)
	r.screen.SetColored(x, y, left, c)
	r.screen.SetColored(x+1, y, right, c)
}

// drawOverlay draws a framed message box centred on the board.
func (r *BoardRenderer) drawOverlay(board core.Rect, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	if w > board.W {
		w = board.W
	}
	if h > board.H {
		h = board.H
	}
	area := board.Centered(w, h)

	r.screen.FillRect(area, ' ', core.ColorDefault)
	r.screen.DrawBox(area, c)
	for i, l := range lines {
		x := area.X + (area.W-len([]rune(l)))/2
		r.screen.DrawText(x, area.Y+1+i, l, c)
	}
}
