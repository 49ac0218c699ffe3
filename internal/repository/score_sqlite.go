package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type sqliteScore struct {
	conn *sql.DB
}

func NewSQLiteScoreRepository(conn *sql.DB) ScoreRepository {
	return &sqliteScore{
		conn: conn,
	}
}

func (that *sqliteScore) Increment(ctx context.Context, gameID string, mark entity.Mark) error {
	if !mark.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	query := `INSERT INTO scores (game_id, mark, wins) VALUES (?, ?, 1)
		ON CONFLICT (game_id, mark) DO UPDATE SET wins = wins + 1`

	if _, err := that.conn.ExecContext(ctx, query, gameID, string(mark)); err != nil {
		return fmt.Errorf("can't increment score: %w", err)
	}

	return nil
}

func (that *sqliteScore) GetByGameID(ctx context.Context, gameID string) (entity.Score, error) {
	query := `SELECT mark, wins FROM scores WHERE game_id = ?`

	rows, err := that.conn.QueryContext(ctx, query, gameID)
	if err != nil {
		return entity.Score{}, fmt.Errorf("can't find score: %w", err)
	}
	defer rows.Close()

	var score entity.Score
	for rows.Next() {
		var (
			mark string
			wins int
		)
		if err = rows.Scan(&mark, &wins); err != nil {
			return entity.Score{}, fmt.Errorf("can't scan score: %w", err)
		}

		switch entity.Mark(mark) {
		case entity.PlayerX:
			score.X = wins
		case entity.PlayerO:
			score.O = wins
		}
	}

	if err = rows.Err(); err != nil {
		return entity.Score{}, fmt.Errorf("can't read score: %w", err)
	}

	return score, nil
}

func (that *sqliteScore) DeleteByGameID(ctx context.Context, gameID string) error {
	query := `DELETE FROM scores WHERE game_id = ?`

	if _, err := that.conn.ExecContext(ctx, query, gameID); err != nil {
		return fmt.Errorf("can't delete score: %w", err)
	}

	return nil
}
