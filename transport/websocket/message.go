package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const (
	actionGameNew        = "game:new"
	actionGameState      = "game:state"
	actionGameTurn       = "game:turn"
	actionGameRestart    = "game:restart"
	actionGameTimeout    = "game:timeout"
	actionGameDifficulty = "game:difficulty"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the fields any action may need.
type RequestPayload struct {
	GameID     string                `json:"game_id,omitempty"`
	Cell       *int                  `json:"cell,omitempty"`
	Difficulty entity.Difficulty     `json:"difficulty,omitempty"`
	Settings   *usecase.GameSettings `json:"settings,omitempty"`
}

type ResponsePayload struct {
	Game         *entity.Game  `json:"game,omitempty"`
	ComputerMove *int          `json:"computer_move,omitempty"`
	Score        *entity.Score `json:"score,omitempty"`
	Status       string        `json:"status,omitempty"`
	Error        string        `json:"error,omitempty"`
}

type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}

func newResultPayload(result *usecase.TurnResult) ResponsePayload {
	score := result.Score

	return ResponsePayload{
		Game:         result.Game,
		ComputerMove: result.ComputerMove,
		Score:        &score,
		Status:       result.Status,
	}
}
