package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// memoryGame keeps games in process; used by the console and when no external storage is configured.
type memoryGame struct {
	mu    sync.RWMutex
	games map[string]*entity.Game
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]*entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = game.Clone()

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return game.Clone(), nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

type memoryScore struct {
	mu     sync.RWMutex
	scores map[string]entity.Score
}

func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]entity.Score),
	}
}

func (that *memoryScore) Increment(_ context.Context, gameID string, mark entity.Mark) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[gameID]

	switch mark {
	case entity.PlayerX:
		score.X++
	case entity.PlayerO:
		score.O++
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	that.scores[gameID] = score

	return nil
}

func (that *memoryScore) GetByGameID(_ context.Context, gameID string) (entity.Score, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.scores[gameID], nil
}

func (that *memoryScore) DeleteByGameID(_ context.Context, gameID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.scores, gameID)

	return nil
}
