package tictactoe

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg"
)

type StartPolicy string

const (
	// StartFixed always gives the first move to X.
	StartFixed StartPolicy = "fixed"
	// StartRandom draws the first mark uniformly.
	StartRandom StartPolicy = "random"
)

var ErrUnknownStartPolicy = errors.New("unknown start policy")

func ParseStartPolicy(value string) (StartPolicy, error) {
	switch policy := StartPolicy(value); policy {
	case StartFixed, StartRandom:
		return policy, nil
	case "":
		return StartFixed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStartPolicy, value)
	}
}

// GameController owns a single game and is the only thing allowed to mutate its board.
type GameController struct {
	game        *entity.Game
	startPolicy StartPolicy
	random      *rand.Rand
}

type Option func(*GameController)

func WithStartPolicy(policy StartPolicy) Option {
	return func(that *GameController) {
		that.startPolicy = policy
	}
}

// WithRandom sets the source used by StartRandom.
func WithRandom(random *rand.Rand) Option {
	return func(that *GameController) {
		that.random = random
	}
}

func NewGameController(game *entity.Game, opts ...Option) *GameController {
	controller := &GameController{
		game:        game,
		startPolicy: StartFixed,
	}

	for _, opt := range opts {
		opt(controller)
	}

	if controller.random == nil {
		controller.random = pkg.NewRandom(0)
	}

	return controller
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

func (that *GameController) Board() entity.Board {
	return that.game.Board
}

func (that *GameController) Outcome() entity.Outcome {
	return that.game.Outcome
}

func (that *GameController) Turn() entity.Mark {
	return that.game.Turn
}

// ApplyMove places mark on cell and returns the outcome of the resulting board.
// The turn is not switched; see SwitchTurn.
func (that *GameController) ApplyMove(cell int, mark entity.Mark) (entity.Outcome, error) {
	if err := that.validateMove(cell, mark); err != nil {
		return that.game.Outcome, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	that.game.Board[cell] = mark
	that.game.Outcome = EvaluateOutcome(that.game.Board)

	return that.game.Outcome, nil
}

// validateMove - checks if the move is valid.
func (that *GameController) validateMove(cell int, mark entity.Mark) error {
	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.game.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !mark.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if that.game.Board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// SwitchTurn hands the move to the other mark. It is only valid while the game is in progress.
func (that *GameController) SwitchTurn() error {
	if that.game.IsFinished() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	that.game.Turn = that.game.Turn.Opponent()

	return nil
}

// ForceDraw ends an unfinished game as a draw whatever the board holds.
// A finished game keeps its outcome.
func (that *GameController) ForceDraw() entity.Outcome {
	if !that.game.IsFinished() {
		that.game.Outcome = entity.Draw()
	}

	return that.game.Outcome
}

// Reset clears the board for a new round and picks the starting mark.
func (that *GameController) Reset() entity.Board {
	that.game.Board = entity.Board{}
	that.game.Outcome = entity.InProgress()
	that.game.Turn = that.startingMark()

	return that.game.Board
}

func (that *GameController) startingMark() entity.Mark {
	if that.startPolicy == StartRandom && that.random.IntN(2) == 1 {
		return entity.PlayerO
	}

	return entity.PlayerX
}

// EvaluateOutcome classifies board. The first complete line in WinCombos order decides the winner.
func EvaluateOutcome(board entity.Board) entity.Outcome {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Win(a, combo)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.InProgress()
	}

	return entity.Draw()
}
