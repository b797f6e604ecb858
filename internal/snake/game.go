package snake

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/hang2323-brian/snake-game/internal/core"
)

// PointsPerFood is added to the score for every food eaten.
const PointsPerFood = 100

// Game owns the snake and the food and applies one update per tick.
type Game struct {
	grid   Grid
	src    Source
	logger *log.Logger

	snake *Snake
	food  *Food

	tick    uint64
	score   int
	level   int
	status  Status
	pending *Direction
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes debug traces of placement and state changes to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMaxPlacementAttempts bounds random food sampling before the scan fallback.
func WithMaxPlacementAttempts(n int) Option {
	return func(g *Game) {
		g.food = NewFood(n)
	}
}

// NewGame creates a game on grid drawing randomness from src.
// Food is placed before NewGame returns, so the first snapshot is valid.
func NewGame(grid Grid, src Source, opts ...Option) (*Game, error) {
	if _, err := NewGrid(grid.Cols, grid.Rows); err != nil {
		return nil, err
	}

	g := &Game{
		grid:   grid,
		src:    src,
		logger: log.New(io.Discard),
		food:   NewFood(DefaultMaxAttempts),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Restart()
	return g, nil
}

// Restart discards the current run and starts a fresh one.
func (g *Game) Restart() {
	g.tick = 0
	g.score = 0
	g.level = 0
	g.status = StatusPlaying
	g.pending = nil
	g.snake = NewSnake(g.grid, g.src)
	g.relocateFood()

	g.logger.Debug("game started",
		"head", g.snake.Head(),
		"direction", g.snake.Direction(),
		"food", g.food.Position(),
	)
}

// RequestDirection buffers a direction change for the next tick.
// A later request in the same tick replaces an earlier one.
func (g *Game) RequestDirection(d Direction) {
	if g.status.Terminal() {
		return
	}
	g.pending = &d
}

// Tick applies one update and returns the resulting snapshot.
func (g *Game) Tick() Snapshot {
	g.tick++

	if g.status.Terminal() {
		return g.Snapshot()
	}

	if g.pending != nil {
		if !g.snake.SetDirection(*g.pending) {
			g.logger.Debug("reversal ignored", "requested", *g.pending, "current", g.snake.Direction())
		}
		g.pending = nil
	}

	if g.snake.CollidesWithWall(g.grid) || g.snake.CollidesWithSelf() {
		g.status = StatusGameOver
		g.logger.Debug("collision", "head", g.snake.Head(), "score", g.score)
		return g.Snapshot()
	}

	grow := false
	if g.food.Placed() && g.snake.CollidesWithFood(g.food.Position()) {
		grow = true
		g.score += PointsPerFood
		g.level++
		g.relocateFood()
	}

	// Filling the board ends the run before the snake moves again.
	if g.status == StatusPlaying {
		g.snake.Advance(grow)
	}

	return g.Snapshot()
}

// Step is the host adapter: it applies a restart request when the game has
// ended, otherwise forwards direction actions and ticks.
func (g *Game) Step(in core.InputFrame) Snapshot {
	if in.Has(core.ActionRestart) && g.status.Terminal() {
		g.Restart()
		return g.Snapshot()
	}

	switch {
	case in.Has(core.ActionUp):
		g.RequestDirection(DirUp)
	case in.Has(core.ActionDown):
		g.RequestDirection(DirDown)
	case in.Has(core.ActionLeft):
		g.RequestDirection(DirLeft)
	case in.Has(core.ActionRight):
		g.RequestDirection(DirRight)
	}

	return g.Tick()
}

// relocateFood places food away from the snake. A full board ends the run as a win.
func (g *Game) relocateFood() {
	err := g.food.Relocate(g.grid, g.snake, g.src)
	switch {
	case errors.Is(err, ErrBoardExhausted):
		g.status = StatusWon
		g.logger.Debug("board exhausted", "length", g.snake.Len(), "cells", g.grid.Cells())
	default:
		g.logger.Debug("food placed", "position", g.food.Position())
	}
}

// Grid returns the board the game is played on.
func (g *Game) Grid() Grid {
	return g.grid
}

// Snake exposes the snake for read-only inspection.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food exposes the food for read-only inspection.
func (g *Game) Food() *Food {
	return g.food
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the number of food eaten in this run.
func (g *Game) Level() int {
	return g.level
}

// Status returns the state machine position.
func (g *Game) Status() Status {
	return g.status
}
