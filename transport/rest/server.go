package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

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
	RenamePlayers(ctx context.Context, gameID string, players entity.Players) (*usecase.TurnResult, error)
	GetGame(ctx context.Context, gameID string) (*usecase.TurnResult, error)
	GetScore(ctx context.Context, gameID string) (entity.Score, error)
	EndGame(ctx context.Context, gameID string) error
}

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	return &Server{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

// Handler returns the router with every REST route mounted.
func (that *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", that.ping)

	router.Post("/games", that.createGame)
	router.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", that.getGame)
		r.Delete("/", that.deleteGame)
		r.Post("/turns", that.makeTurn)
		r.Post("/restart", that.restart)
		r.Post("/timeout", that.timeout)
		r.Put("/difficulty", that.setDifficulty)
		r.Put("/names", that.renamePlayers)
		r.Get("/score", that.getScore)
	})

	return router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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
