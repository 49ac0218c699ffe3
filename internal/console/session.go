package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

type gameUseCase interface {
	StartGame(ctx context.Context, settings usecase.GameSettings) (*usecase.TurnResult, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*usecase.TurnResult, error)
	Restart(ctx context.Context, gameID string) (*usecase.TurnResult, error)
	Timeout(ctx context.Context, gameID string) (*usecase.TurnResult, error)
	SetDifficulty(ctx context.Context, gameID string, difficulty entity.Difficulty) (*usecase.TurnResult, error)
	EndGame(ctx context.Context, gameID string) error
}

// Session is the single game a console user is playing.
type Session struct {
	mu sync.Mutex

	gameUseCase gameUseCase
	settings    usecase.GameSettings
	result      *usecase.TurnResult
}

func NewSession(ctx context.Context, gameUseCase gameUseCase, settings usecase.GameSettings) (*Session, error) {
	result, err := gameUseCase.StartGame(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return &Session{
		gameUseCase: gameUseCase,
		settings:    settings,
		result:      result,
	}, nil
}

// Result returns the state to render.
func (that *Session) Result() *usecase.TurnResult {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.result
}

func (that *Session) Play(ctx context.Context, cell int) error {
	return that.update(func(gameID string) (*usecase.TurnResult, error) {
		return that.gameUseCase.MakeTurn(ctx, gameID, cell)
	})
}

func (that *Session) Restart(ctx context.Context) error {
	return that.update(func(gameID string) (*usecase.TurnResult, error) {
		return that.gameUseCase.Restart(ctx, gameID)
	})
}

func (that *Session) Timeout(ctx context.Context) error {
	return that.update(func(gameID string) (*usecase.TurnResult, error) {
		return that.gameUseCase.Timeout(ctx, gameID)
	})
}

// ToggleDifficulty flips between easy and hard. Local games have no computer to adjust.
func (that *Session) ToggleDifficulty(ctx context.Context) error {
	return that.update(func(gameID string) (*usecase.TurnResult, error) {
		difficulty := entity.HardDifficulty
		if that.result.Game.Difficulty == entity.HardDifficulty {
			difficulty = entity.EasyDifficulty
		}

		result, err := that.gameUseCase.SetDifficulty(ctx, gameID, difficulty)
		if err != nil {
			return nil, err
		}

		that.settings.Difficulty = difficulty

		return result, nil
	})
}

// ToggleMode replaces the current game with a fresh one of the other type.
// The old game stays playable when the switch fails.
func (that *Session) ToggleMode(ctx context.Context) error {
	return that.update(func(gameID string) (*usecase.TurnResult, error) {
		settings := that.settings
		settings.Type = entity.LocalType
		if that.result.Game.Type == entity.LocalType {
			settings.Type = entity.WithBotType
		}

		result, err := that.gameUseCase.StartGame(ctx, settings)
		if err != nil {
			return nil, fmt.Errorf("failed to start game: %w", err)
		}

		if err = that.gameUseCase.EndGame(ctx, gameID); err != nil {
			if rollbackErr := that.gameUseCase.EndGame(ctx, result.Game.ID); rollbackErr != nil {
				err = errors.Join(err, rollbackErr)
			}

			return nil, fmt.Errorf("failed to end game: %w", err)
		}

		that.settings = settings

		return result, nil
	})
}

// Close ends the game.
func (that *Session) Close(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.gameUseCase.EndGame(ctx, that.result.Game.ID)
}

func (that *Session) update(action func(gameID string) (*usecase.TurnResult, error)) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	result, err := action(that.result.Game.ID)
	if err != nil {
		return err
	}

	that.result = result

	return nil
}
