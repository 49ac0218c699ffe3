package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	mockedRest "github.com/rocketscienceinc/tictactoe/mocks/rest"
)

func newTestServer(t *testing.T) (*mockedRest.MockgameUseCase, http.Handler) {
	t.Helper()

	gameUseCase := mockedRest.NewMockgameUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return gameUseCase, New(logger, gameUseCase).Handler()
}

func doRequest(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp.Error
}

func newResult() *usecase.TurnResult {
	game := entity.NewGame("game1", entity.WithBotType)
	game.Difficulty = entity.HardDifficulty
	game.ComputerMark = entity.PlayerO

	return &usecase.TurnResult{Game: game, Status: game.StatusText()}
}

func TestPing(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doRequest(handler, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestCreateGame(t *testing.T) {
	t.Run("creates a game from settings", func(t *testing.T) {
		// Given
		gameUseCase, handler := newTestServer(t)
		settings := usecase.GameSettings{
			Type:         entity.WithBotType,
			Difficulty:   entity.HardDifficulty,
			ComputerMark: entity.PlayerO,
			Players:      entity.Players{X: "Ann"},
		}
		gameUseCase.EXPECT().StartGame(mock.Anything, settings).Return(newResult(), nil)

		// When
		rec := doRequest(handler, http.MethodPost, "/games",
			`{"type":"bot","difficulty":"hard","computer_mark":"O","players":{"x":"Ann"}}`)

		// Then
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var result usecase.TurnResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Equal(t, "game1", result.Game.ID)
		assert.Equal(t, entity.PlayerX, result.Game.Turn)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := doRequest(handler, http.MethodPost, "/games", `{"type":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errMalformedBody.Error(), decodeError(t, rec))
	})

	t.Run("invalid game type is a bad request", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		gameUseCase.EXPECT().StartGame(mock.Anything, mock.Anything).Return(nil, apperror.ErrInvalidGameType)

		rec := doRequest(handler, http.MethodPost, "/games", `{"type":"online"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMakeTurn(t *testing.T) {
	t.Run("returns the game with the computer reply", func(t *testing.T) {
		// Given
		gameUseCase, handler := newTestServer(t)
		result := newResult()
		computerMove := 4
		result.ComputerMove = &computerMove
		gameUseCase.EXPECT().MakeTurn(mock.Anything, "game1", 0).Return(result, nil)

		// When
		rec := doRequest(handler, http.MethodPost, "/games/game1/turns", `{"cell":0}`)

		// Then
		require.Equal(t, http.StatusOK, rec.Code)

		var got usecase.TurnResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.NotNil(t, got.ComputerMove)
		assert.Equal(t, 4, *got.ComputerMove)
	})

	t.Run("missing cell is a bad request", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := doRequest(handler, http.MethodPost, "/games/game1/turns", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
	}{
		{"occupied cell", fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrCellOccupied), http.StatusUnprocessableEntity},
		{"finished game", fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished), http.StatusUnprocessableEntity},
		{"computer's turn", apperror.ErrNotYourTurn, http.StatusConflict},
		{"unknown game", apperror.ErrGameNotFound, http.StatusNotFound},
		{"storage failure", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			gameUseCase, handler := newTestServer(t)
			gameUseCase.EXPECT().MakeTurn(mock.Anything, "game1", 3).Return(nil, tc.err)

			rec := doRequest(handler, http.MethodPost, "/games/game1/turns", `{"cell":3}`)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.err.Error(), decodeError(t, rec))
		})
	}
}

func TestGameLifecycleRoutes(t *testing.T) {
	t.Run("get game", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		gameUseCase.EXPECT().GetGame(mock.Anything, "game1").Return(newResult(), nil)

		rec := doRequest(handler, http.MethodGet, "/games/game1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("restart", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		result := newResult()
		result.Game.Round = 2
		gameUseCase.EXPECT().Restart(mock.Anything, "game1").Return(result, nil)

		rec := doRequest(handler, http.MethodPost, "/games/game1/restart", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var got usecase.TurnResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, 2, got.Game.Round)
	})

	t.Run("timeout", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		result := newResult()
		result.Game.Outcome = entity.Draw()
		gameUseCase.EXPECT().Timeout(mock.Anything, "game1").Return(result, nil)

		rec := doRequest(handler, http.MethodPost, "/games/game1/timeout", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var got usecase.TurnResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, entity.StatusDraw, got.Game.Outcome.Status)
	})

	t.Run("set difficulty", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		gameUseCase.EXPECT().SetDifficulty(mock.Anything, "game1", entity.EasyDifficulty).Return(newResult(), nil)

		rec := doRequest(handler, http.MethodPut, "/games/game1/difficulty", `{"difficulty":"easy"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown difficulty is a bad request", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		gameUseCase.EXPECT().SetDifficulty(mock.Anything, "game1", entity.Difficulty("insane")).
			Return(nil, apperror.ErrInvalidDifficulty)

		rec := doRequest(handler, http.MethodPut, "/games/game1/difficulty", `{"difficulty":"insane"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rename players", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		players := entity.Players{X: "Ann", O: "Bob"}
		gameUseCase.EXPECT().RenamePlayers(mock.Anything, "game1", players).Return(newResult(), nil)

		rec := doRequest(handler, http.MethodPut, "/games/game1/names", `{"x":"Ann","o":"Bob"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("score", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		gameUseCase.EXPECT().GetScore(mock.Anything, "game1").Return(entity.Score{X: 2, O: 1}, nil)

		rec := doRequest(handler, http.MethodGet, "/games/game1/score", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var score entity.Score
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&score))
		assert.Equal(t, entity.Score{X: 2, O: 1}, score)
	})

	t.Run("delete", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		gameUseCase.EXPECT().EndGame(mock.Anything, "game1").Return(nil)

		rec := doRequest(handler, http.MethodDelete, "/games/game1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete unknown game", func(t *testing.T) {
		gameUseCase, handler := newTestServer(t)
		gameUseCase.EXPECT().EndGame(mock.Anything, "missing").Return(apperror.ErrGameNotFound)

		rec := doRequest(handler, http.MethodDelete, "/games/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
