package entity

import (
	"fmt"
)

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

const (
	StatusInProgress = "in_progress"
	StatusWin        = "win"
	StatusDraw       = "draw"
)

const (
	WithBotType = "bot"
	LocalType   = "local"
)

type Difficulty string

const (
	EasyDifficulty Difficulty = "easy"
	HardDifficulty Difficulty = "hard"
)

func (that Difficulty) IsValid() bool {
	return that == EasyDifficulty || that == HardDifficulty
}

const (
	DefaultPlayerXName = "Player X"
	DefaultPlayerOName = "Player O"
)

const BoardSize = 9

// WinCombos lists every line in the order they are checked: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]Mark

// EmptyCells returns indices of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

type Outcome struct {
	Status string  `json:"status"`
	Winner Mark    `json:"winner,omitempty"`
	Line   *[3]int `json:"line,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(mark Mark, line [3]int) Outcome {
	return Outcome{Status: StatusWin, Winner: mark, Line: &line}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("win(%s)", that.Winner)
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}

type Players struct {
	X string `json:"x"`
	O string `json:"o"`
}

// Name returns the display name for mark, falling back to the default one.
func (that Players) Name(mark Mark) string {
	switch mark {
	case PlayerX:
		if that.X != "" {
			return that.X
		}
		return DefaultPlayerXName
	case PlayerO:
		if that.O != "" {
			return that.O
		}
		return DefaultPlayerOName
	default:
		return ""
	}
}

type Game struct {
	ID           string     `json:"id"`
	Board        Board      `json:"board"`
	Turn         Mark       `json:"player_turn"`
	Outcome      Outcome    `json:"outcome"`
	Type         string     `json:"type"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	ComputerMark Mark       `json:"computer_mark,omitempty"`
	Players      Players    `json:"players"`
	Round        int        `json:"round"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:      id,
		Turn:    PlayerX,
		Outcome: InProgress(),
		Type:    gameType,
		Round:   1,
	}
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsTerminal()
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// IsComputerTurn reports whether the current mark belongs to the computer opponent.
func (that *Game) IsComputerTurn() bool {
	return that.IsWithBot() && !that.IsFinished() && that.Turn == that.ComputerMark
}

// StatusText is the line shown above the board.
func (that *Game) StatusText() string {
	switch that.Outcome.Status {
	case StatusWin:
		return that.Players.Name(that.Outcome.Winner) + " Wins!"
	case StatusDraw:
		return "It's a Draw!"
	default:
		return "Current Turn: " + that.Players.Name(that.Turn)
	}
}

type Score struct {
	X int `json:"x"`
	O int `json:"o"`
}

func (that Score) Of(mark Mark) int {
	switch mark {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return 0
	}
}

// Clone returns a copy that shares no memory with the original.
func (that *Game) Clone() *Game {
	clone := *that
	if that.Outcome.Line != nil {
		line := *that.Outcome.Line
		clone.Outcome.Line = &line
	}

	return &clone
}
