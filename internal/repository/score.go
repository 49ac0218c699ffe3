package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type ScoreRepository interface {
	Increment(ctx context.Context, gameID string, mark entity.Mark) error
	GetByGameID(ctx context.Context, gameID string) (entity.Score, error)
	DeleteByGameID(ctx context.Context, gameID string) error
}

type dbScore struct {
	client *redis.Client
	ttl    time.Duration
}

// redisScore maps the score hash fields, one per mark.
type redisScore struct {
	X int `redis:"X"`
	O int `redis:"O"`
}

func NewScoreRepository(client *redis.Client, ttl time.Duration) ScoreRepository {
	return &dbScore{
		client: client,
		ttl:    ttl,
	}
}

func scoreKey(gameID string) string {
	return "score:" + gameID
}

func (that *dbScore) Increment(ctx context.Context, gameID string, mark entity.Mark) error {
	if !mark.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	key := scoreKey(gameID)

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, string(mark), 1)
		if that.ttl > 0 {
			pipe.Expire(ctx, key, that.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to increment score: %w", err)
	}

	return nil
}

func (that *dbScore) GetByGameID(ctx context.Context, gameID string) (entity.Score, error) {
	var score redisScore
	if err := that.client.HGetAll(ctx, scoreKey(gameID)).Scan(&score); err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	return entity.Score{X: score.X, O: score.O}, nil
}

func (that *dbScore) DeleteByGameID(ctx context.Context, gameID string) error {
	if err := that.client.Del(ctx, scoreKey(gameID)).Err(); err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	return nil
}
