package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0
)

type BotService interface {
	ChooseMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	random *rand.Rand
}

// NewBotService returns the computer opponent. random drives easy mode and must be safe for
// concurrent use when the service is shared; nil selects pkg.NewRandom.
func NewBotService(random *rand.Rand) BotService {
	if random == nil {
		random = pkg.NewRandom(0)
	}

	return &botService{
		random: random,
	}
}

func (that *botService) ChooseMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error) {
	if !mark.IsValid() {
		return -1, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if tictactoe.EvaluateOutcome(board).IsTerminal() {
		return -1, apperror.ErrNoLegalMove
	}

	availableCells := board.EmptyCells()

	switch difficulty {
	case entity.EasyDifficulty:
		return that.randomMove(availableCells), nil
	case entity.HardDifficulty:
		return bestMove(board, mark, availableCells), nil
	default:
		return -1, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

func (that *botService) randomMove(availableCells []int) int {
	return availableCells[that.random.IntN(len(availableCells))]
}

// bestMove plays mark as the maximising side. The lowest cell wins ties.
func bestMove(board entity.Board, mark entity.Mark, availableCells []int) int {
	chosenCell := availableCells[0]
	bestScore := lossScore - 1

	for _, cell := range availableCells {
		board[cell] = mark
		score := minimax(&board, mark, false)
		board[cell] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			chosenCell = cell
		}
	}

	return chosenCell
}

// minimax scores board for maximizer with the full game tree below it.
func minimax(board *entity.Board, maximizer entity.Mark, maximizing bool) int {
	outcome := tictactoe.EvaluateOutcome(*board)
	switch {
	case outcome.Status == entity.StatusDraw:
		return drawScore
	case outcome.Winner == maximizer:
		return winScore
	case outcome.IsTerminal():
		return lossScore
	}

	mark := maximizer
	best := lossScore - 1
	if !maximizing {
		mark = maximizer.Opponent()
		best = winScore + 1
	}

	for cell, value := range board {
		if value != entity.EmptyCell {
			continue
		}

		board[cell] = mark
		score := minimax(board, maximizer, !maximizing)
		board[cell] = entity.EmptyCell

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
