package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/service"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

type client struct {
	t    *testing.T
	ctx  context.Context
	conn *websocket.Conn
}

func dial(t *testing.T) *client {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	random := pkg.NewRandom(7)
	gameManager := usecase.NewGameManager(logger,
		repository.NewMemoryGameRepository(),
		repository.NewMemoryScoreRepository(),
		service.NewBotService(random),
		usecase.Options{Random: random},
	)

	ts := httptest.NewServer(New(logger, gameManager).Handler())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "bye") })

	return &client{t: t, ctx: ctx, conn: conn}
}

func (that *client) send(action string, payload any) Response {
	that.t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(that.t, err)

	require.NoError(that.t, wsjson.Write(that.ctx, that.conn, Message{Action: action, Payload: raw}))

	var response Response
	require.NoError(that.t, wsjson.Read(that.ctx, that.conn, &response))
	require.Equal(that.t, action, response.Action)

	return response
}

func (that *client) newHardGame() *entity.Game {
	that.t.Helper()

	response := that.send(actionGameNew, RequestPayload{Settings: &usecase.GameSettings{
		Type:         entity.WithBotType,
		Difficulty:   entity.HardDifficulty,
		ComputerMark: entity.PlayerO,
	}})
	require.Empty(that.t, response.Payload.Error)
	require.NotNil(that.t, response.Payload.Game)

	return response.Payload.Game
}

func TestServer_GameFlow(t *testing.T) {
	t.Run("computer answers a corner opening with the centre", func(t *testing.T) {
		// Given
		c := dial(t)
		game := c.newHardGame()
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Nil(t, game.Outcome.Line)

		// When
		cell := 0
		response := c.send(actionGameTurn, RequestPayload{GameID: game.ID, Cell: &cell})

		// Then
		require.Empty(t, response.Payload.Error)
		require.NotNil(t, response.Payload.ComputerMove)
		assert.Equal(t, 4, *response.Payload.ComputerMove)
		assert.Equal(t, entity.PlayerX, response.Payload.Game.Board[0])
		assert.Equal(t, entity.PlayerO, response.Payload.Game.Board[4])
		assert.Equal(t, entity.PlayerX, response.Payload.Game.Turn)
		require.NotNil(t, response.Payload.Score)
		assert.Equal(t, entity.Score{}, *response.Payload.Score)
	})

	t.Run("state returns the stored game", func(t *testing.T) {
		c := dial(t)
		game := c.newHardGame()

		response := c.send(actionGameState, RequestPayload{GameID: game.ID})

		require.Empty(t, response.Payload.Error)
		assert.Equal(t, game.ID, response.Payload.Game.ID)
		assert.Equal(t, "Current Turn: Player X", response.Payload.Status)
	})

	t.Run("occupied cell is rejected and the game is unchanged", func(t *testing.T) {
		// Given
		c := dial(t)
		game := c.newHardGame()
		cell := 0
		c.send(actionGameTurn, RequestPayload{GameID: game.ID, Cell: &cell})

		// When
		response := c.send(actionGameTurn, RequestPayload{GameID: game.ID, Cell: &cell})

		// Then
		assert.Contains(t, response.Payload.Error, "invalid move")
		assert.Nil(t, response.Payload.Game)

		state := c.send(actionGameState, RequestPayload{GameID: game.ID})
		assert.Len(t, state.Payload.Game.Board.EmptyCells(), 7)
	})

	t.Run("timeout ends the round as a draw and restart starts the next", func(t *testing.T) {
		// Given
		c := dial(t)
		game := c.newHardGame()

		// When
		timedOut := c.send(actionGameTimeout, RequestPayload{GameID: game.ID})
		restarted := c.send(actionGameRestart, RequestPayload{GameID: game.ID})

		// Then
		require.Empty(t, timedOut.Payload.Error)
		assert.Equal(t, entity.StatusDraw, timedOut.Payload.Game.Outcome.Status)
		assert.Equal(t, "It's a Draw!", timedOut.Payload.Status)

		require.Empty(t, restarted.Payload.Error)
		assert.Equal(t, 2, restarted.Payload.Game.Round)
		assert.Equal(t, entity.StatusInProgress, restarted.Payload.Game.Outcome.Status)
		assert.Empty(t, restarted.Payload.Game.Board[0])
	})

	t.Run("difficulty can be changed mid-session", func(t *testing.T) {
		c := dial(t)
		game := c.newHardGame()

		response := c.send(actionGameDifficulty, RequestPayload{GameID: game.ID, Difficulty: entity.EasyDifficulty})

		require.Empty(t, response.Payload.Error)
		assert.Equal(t, entity.EasyDifficulty, response.Payload.Game.Difficulty)
	})
}

func TestServer_BadRequests(t *testing.T) {
	c := dial(t)

	t.Run("unknown action", func(t *testing.T) {
		response := c.send("game:join", RequestPayload{})

		assert.Contains(t, response.Payload.Error, ErrUnknownAction.Error())
	})

	t.Run("missing game id", func(t *testing.T) {
		response := c.send(actionGameState, RequestPayload{})

		assert.Equal(t, ErrGameIDRequired.Error(), response.Payload.Error)
	})

	t.Run("missing cell", func(t *testing.T) {
		response := c.send(actionGameTurn, RequestPayload{GameID: "game1"})

		assert.Equal(t, ErrCellRequired.Error(), response.Payload.Error)
	})

	t.Run("unknown game", func(t *testing.T) {
		response := c.send(actionGameState, RequestPayload{GameID: "missing"})

		assert.Contains(t, response.Payload.Error, "not found")
	})
}
