package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrGameIDRequired = errors.New("game_id is required")
	ErrCellRequired   = errors.New("cell is required")
)

func (that *Server) process(ctx context.Context, msg *Message) Response {
	response := Response{Action: msg.Action}

	handler, ok := that.handlers[msg.Action]
	if !ok {
		response.Payload.Error = fmt.Sprintf("%v: %q", ErrUnknownAction, msg.Action)
		return response
	}

	var payload RequestPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			response.Payload.Error = fmt.Sprintf("failed to unmarshal payload: %v", err)
			return response
		}
	}

	result, err := handler(ctx, &payload)
	if err != nil {
		response.Payload.Error = err.Error()
		return response
	}

	response.Payload = newResultPayload(result)

	return response
}

func (that *Server) handleNewGame(ctx context.Context, payload *RequestPayload) (*usecase.TurnResult, error) {
	var settings usecase.GameSettings
	if payload.Settings != nil {
		settings = *payload.Settings
	}

	return that.gameUseCase.StartGame(ctx, settings)
}

func (that *Server) handleGameState(ctx context.Context, payload *RequestPayload) (*usecase.TurnResult, error) {
	if payload.GameID == "" {
		return nil, ErrGameIDRequired
	}

	return that.gameUseCase.GetGame(ctx, payload.GameID)
}

func (that *Server) handleGameTurn(ctx context.Context, payload *RequestPayload) (*usecase.TurnResult, error) {
	if payload.GameID == "" {
		return nil, ErrGameIDRequired
	}

	if payload.Cell == nil {
		return nil, ErrCellRequired
	}

	return that.gameUseCase.MakeTurn(ctx, payload.GameID, *payload.Cell)
}

func (that *Server) handleGameRestart(ctx context.Context, payload *RequestPayload) (*usecase.TurnResult, error) {
	if payload.GameID == "" {
		return nil, ErrGameIDRequired
	}

	return that.gameUseCase.Restart(ctx, payload.GameID)
}

func (that *Server) handleGameTimeout(ctx context.Context, payload *RequestPayload) (*usecase.TurnResult, error) {
	if payload.GameID == "" {
		return nil, ErrGameIDRequired
	}

	return that.gameUseCase.Timeout(ctx, payload.GameID)
}

func (that *Server) handleGameDifficulty(ctx context.Context, payload *RequestPayload) (*usecase.TurnResult, error) {
	if payload.GameID == "" {
		return nil, ErrGameIDRequired
	}

	return that.gameUseCase.SetDifficulty(ctx, payload.GameID, payload.Difficulty)
}
