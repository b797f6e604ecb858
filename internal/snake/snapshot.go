package snake

// Status is the state machine position of a game.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
	StatusWon      Status = "won"
)

// Terminal reports whether only Restart can leave this status.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusWon
}

// Overlay messages shown for terminal states.
const (
	MessageGameOver = "Game Over"
	MessageWon      = "You Win!"
)

// Snapshot is the read-only view of a game handed to the renderer each frame.
type Snapshot struct {
	Tick       uint64
	Head       Position
	Body       []Position // newest first
	Direction  Direction
	Food       Position
	FoodPlaced bool
	Score      int
	Level      int
	Length     int
	Status     Status
	Message    string
	Grid       Grid
}

// GameOver reports whether the snapshot is in a terminal state.
func (s Snapshot) GameOver() bool {
	return s.Status.Terminal()
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	msg := ""
	switch g.status {
	case StatusGameOver:
		msg = MessageGameOver
	case StatusWon:
		msg = MessageWon
	}

	return Snapshot{
		Tick:       g.tick,
		Head:       g.snake.Head(),
		Body:       g.snake.Body(),
		Direction:  g.snake.Direction(),
		Food:       g.food.Position(),
		FoodPlaced: g.food.Placed(),
		Score:      g.score,
		Level:      g.level,
		Length:     g.snake.Len(),
		Status:     g.status,
		Message:    msg,
		Grid:       g.grid,
	}
}
