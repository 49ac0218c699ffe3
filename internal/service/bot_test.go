package service

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func newSeededBot() BotService {
	return NewBotService(rand.New(rand.NewPCG(42, 7)))
}

type position struct {
	board  entity.Board
	toMove entity.Mark
}

// solver computes the game-theoretic value for the side to move: 1 win, 0 draw, -1 loss.
type solver map[position]int

func (that solver) value(board entity.Board, toMove entity.Mark) int {
	key := position{board: board, toMove: toMove}
	if v, ok := that[key]; ok {
		return v
	}

	var result int
	outcome := tictactoe.EvaluateOutcome(board)
	switch {
	case outcome.Status == entity.StatusDraw:
		result = 0
	case outcome.IsTerminal() && outcome.Winner == toMove:
		result = 1
	case outcome.IsTerminal():
		result = -1
	default:
		result = -2
		for _, cell := range board.EmptyCells() {
			next := board
			next[cell] = toMove
			result = max(result, -that.value(next, toMove.Opponent()))
		}
	}

	that[key] = result
	return result
}

// reachable visits every position reachable from an empty board when starter moves first.
func reachable(starter entity.Mark, visit func(board entity.Board, toMove entity.Mark)) {
	seen := map[position]bool{}

	var walk func(board entity.Board, toMove entity.Mark)
	walk = func(board entity.Board, toMove entity.Mark) {
		key := position{board: board, toMove: toMove}
		if seen[key] || tictactoe.EvaluateOutcome(board).IsTerminal() {
			return
		}
		seen[key] = true

		visit(board, toMove)

		for _, cell := range board.EmptyCells() {
			next := board
			next[cell] = toMove
			walk(next, toMove.Opponent())
		}
	}

	walk(entity.Board{}, starter)
}

func TestBotService_ChooseMove_NoLegalMove(t *testing.T) {
	bot := newSeededBot()

	tests := []struct {
		name  string
		board entity.Board
	}{
		{name: "full board", board: entity.Board{x, o, x, x, o, o, o, x, x}},
		{name: "won board with empty cells", board: entity.Board{x, x, x, o, o, e, e, e, e}},
	}

	for _, tc := range tests {
		for _, difficulty := range []entity.Difficulty{entity.EasyDifficulty, entity.HardDifficulty} {
			t.Run(tc.name+"/"+string(difficulty), func(t *testing.T) {
				// When: the bot is asked for a move on a terminal board
				_, err := bot.ChooseMove(tc.board, o, difficulty)

				// Then: ErrNoLegalMove is returned
				require.ErrorIs(t, err, apperror.ErrNoLegalMove)
			})
		}
	}
}

func TestBotService_ChooseMove_InvalidInput(t *testing.T) {
	bot := newSeededBot()

	_, err := bot.ChooseMove(entity.Board{}, o, "impossible")
	require.ErrorIs(t, err, apperror.ErrInvalidDifficulty)

	_, err = bot.ChooseMove(entity.Board{}, e, entity.HardDifficulty)
	require.ErrorIs(t, err, apperror.ErrInvalidMark)
}

func TestBotService_ChooseMove_Easy(t *testing.T) {
	t.Run("Only returns empty cells", func(t *testing.T) {
		bot := newSeededBot()

		reachable(x, func(board entity.Board, toMove entity.Mark) {
			// When: the easy bot moves
			cell, err := bot.ChooseMove(board, toMove, entity.EasyDifficulty)
			require.NoError(t, err)

			// Then: the chosen cell is empty
			require.Equal(t, e, board[cell], "board %v", board)
		})
	})

	t.Run("Every empty cell can be chosen", func(t *testing.T) {
		// Given: a board with four empty cells
		bot := newSeededBot()
		board := entity.Board{x, e, o, e, x, e, o, e, o}

		// When: the easy bot moves many times
		chosen := map[int]int{}
		for range 400 {
			cell, err := bot.ChooseMove(board, x, entity.EasyDifficulty)
			require.NoError(t, err)
			chosen[cell]++
		}

		// Then: all four cells were drawn
		assert.Len(t, chosen, 4)
		for _, cell := range []int{1, 3, 5, 7} {
			assert.Positive(t, chosen[cell], "cell %d", cell)
		}
	})

	t.Run("Same seed gives the same moves", func(t *testing.T) {
		first, second := newSeededBot(), newSeededBot()

		for range 20 {
			a, err := first.ChooseMove(entity.Board{}, o, entity.EasyDifficulty)
			require.NoError(t, err)
			b, err := second.ChooseMove(entity.Board{}, o, entity.EasyDifficulty)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		}
	})
}

func TestBotService_ChooseMove_Hard(t *testing.T) {
	t.Run("Empty board with O to move", func(t *testing.T) {
		bot := newSeededBot()

		// When: the hard bot opens as O
		cell, err := bot.ChooseMove(entity.Board{}, o, entity.HardDifficulty)
		require.NoError(t, err)

		// Then: every opening is a draw under perfect play, so the lowest cell is kept
		assert.Equal(t, 0, cell)

		board := entity.Board{}
		board[cell] = o
		assert.Equal(t, 0, solver{}.value(board, x))
	})

	t.Run("Takes the win", func(t *testing.T) {
		// Given: O can complete the middle row
		board := entity.Board{x, x, e, o, o, e, x, e, e}

		// When: the hard bot moves as O
		cell, err := newSeededBot().ChooseMove(board, o, entity.HardDifficulty)
		require.NoError(t, err)

		// Then: it wins at cell 5
		assert.Equal(t, 5, cell)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: X threatens the top row
		board := entity.Board{x, x, e, e, o, e, e, e, e}

		// When: the hard bot moves as O
		cell, err := newSeededBot().ChooseMove(board, o, entity.HardDifficulty)
		require.NoError(t, err)

		// Then: it blocks at cell 2
		assert.Equal(t, 2, cell)
	})

	t.Run("Deterministic for the same board", func(t *testing.T) {
		bot := newSeededBot()
		board := entity.Board{x, e, e, e, e, e, e, e, e}

		first, err := bot.ChooseMove(board, o, entity.HardDifficulty)
		require.NoError(t, err)

		for range 5 {
			next, err := bot.ChooseMove(board, o, entity.HardDifficulty)
			require.NoError(t, err)
			assert.Equal(t, first, next)
		}
	})

	for _, botMark := range []entity.Mark{o, x} {
		for _, starter := range []entity.Mark{x, o} {
			t.Run("Optimal as "+string(botMark)+" when "+string(starter)+" starts", func(t *testing.T) {
				bot := newSeededBot()
				values := solver{}

				reachable(starter, func(board entity.Board, toMove entity.Mark) {
					if toMove != botMark {
						return
					}

					// Given: the best result the bot can force from here
					want := values.value(board, botMark)

					// When: the hard bot moves
					cell, err := bot.ChooseMove(board, botMark, entity.HardDifficulty)
					require.NoError(t, err)
					require.Equal(t, e, board[cell])

					// Then: the move keeps that result
					next := board
					next[cell] = botMark
					got := -values.value(next, botMark.Opponent())
					require.Equal(t, want, got, "board %v cell %d", board, cell)
				})
			})
		}
	}
}
