package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	StartGame(ctx context.Context, settings usecase.GameSettings) (*usecase.TurnResult, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*usecase.TurnResult, error)
	Restart(ctx context.Context, gameID string) (*usecase.TurnResult, error)
	Timeout(ctx context.Context, gameID string) (*usecase.TurnResult, error)
	SetDifficulty(ctx context.Context, gameID string, difficulty entity.Difficulty) (*usecase.TurnResult, error)
	GetGame(ctx context.Context, gameID string) (*usecase.TurnResult, error)
}

type handlerFunc func(ctx context.Context, payload *RequestPayload) (*usecase.TurnResult, error)

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
	}

	server.handlers = map[string]handlerFunc{
		actionGameNew:        server.handleNewGame,
		actionGameState:      server.handleGameState,
		actionGameTurn:       server.handleGameTurn,
		actionGameRestart:    server.handleGameRestart,
		actionGameTimeout:    server.handleGameTimeout,
		actionGameDifficulty: server.handleGameDifficulty,
	}

	return server
}

// Handler returns the router serving the /ws endpoint.
func (that *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Get("/ws", that.serveWS)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and serves messages until the client leaves.
func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Error("failed to accept connection", "error", err)
		return
	}
	defer conn.CloseNow()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(r.Context(), conn); err != nil {
		log.Info("connection closed", "reason", err)
		return
	}

	conn.Close(websocket.StatusNormalClosure, "")
}

// handleMessages - processes messages from the client one at a time.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := wsjson.Read(ctx, conn, &message); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		response := that.process(ctx, &message)
		if response.Payload.Error != "" {
			log.Warn("action failed", "action", message.Action, "error", response.Payload.Error)
		}

		if err := wsjson.Write(ctx, conn, response); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}
