package apperror

import "errors"

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrNoLegalMove = errors.New("no legal move")

	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")

	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidGameType   = errors.New("invalid game type")
	ErrInvalidMark       = errors.New("invalid mark")
)
