package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

type scoreBackend struct {
	name string
	open func(t *testing.T) (context.Context, ScoreRepository)
}

func scoreBackends() []scoreBackend {
	return []scoreBackend{
		{
			name: "redis",
			open: func(t *testing.T) (context.Context, ScoreRepository) {
				ctx, st := suite.New(t)
				return ctx, NewScoreRepository(st.Redis, time.Hour)
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) (context.Context, ScoreRepository) {
				ctx, st := suite.NewSQLite(t)
				return ctx, NewSQLiteScoreRepository(st.SQLite.Connection)
			},
		},
		{
			name: "memory",
			open: func(_ *testing.T) (context.Context, ScoreRepository) {
				return context.Background(), NewMemoryScoreRepository()
			},
		},
	}
}

func TestScoreRepository_Increment(t *testing.T) {
	for _, backend := range scoreBackends() {
		t.Run(backend.name, func(t *testing.T) {
			ctx, scoreRepo := backend.open(t)

			// Given: two wins for X and one for O in game 123, one win for O elsewhere
			require.NoError(t, scoreRepo.Increment(ctx, "123", entity.PlayerX))
			require.NoError(t, scoreRepo.Increment(ctx, "123", entity.PlayerO))
			require.NoError(t, scoreRepo.Increment(ctx, "123", entity.PlayerX))
			require.NoError(t, scoreRepo.Increment(ctx, "456", entity.PlayerO))

			// When: the score of game 123 is read
			score, err := scoreRepo.GetByGameID(ctx, "123")

			// Then: only its own wins are counted
			require.NoError(t, err)
			assert.Equal(t, entity.Score{X: 2, O: 1}, score)
		})

		t.Run(backend.name+"/InvalidMark", func(t *testing.T) {
			ctx, scoreRepo := backend.open(t)

			// When: an empty mark is incremented
			err := scoreRepo.Increment(ctx, "123", entity.EmptyCell)

			// Then: it is rejected
			require.ErrorIs(t, err, apperror.ErrInvalidMark)
		})
	}
}

func TestScoreRepository_GetByGameID(t *testing.T) {
	for _, backend := range scoreBackends() {
		t.Run(backend.name+"/Empty", func(t *testing.T) {
			ctx, scoreRepo := backend.open(t)

			// When: a game without wins is read
			score, err := scoreRepo.GetByGameID(ctx, "9999999")

			// Then: a zero score is returned
			require.NoError(t, err)
			assert.Equal(t, entity.Score{}, score)
		})
	}
}

func TestScoreRepository_DeleteByGameID(t *testing.T) {
	for _, backend := range scoreBackends() {
		t.Run(backend.name, func(t *testing.T) {
			ctx, scoreRepo := backend.open(t)

			// Given: a game with a win
			require.NoError(t, scoreRepo.Increment(ctx, "123", entity.PlayerO))

			// When: its score is deleted
			require.NoError(t, scoreRepo.DeleteByGameID(ctx, "123"))

			// Then: the score is back to zero
			score, err := scoreRepo.GetByGameID(ctx, "123")
			require.NoError(t, err)
			assert.Equal(t, entity.Score{}, score)
		})
	}
}
