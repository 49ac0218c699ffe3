package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/service"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/transport/rest"
	"github.com/rocketscienceinc/tictactoe/transport/websocket"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownStorage = errors.New("unknown storage")
)

type repositories struct {
	games  repository.GameRepository
	scores repository.ScoreRepository
	closer io.Closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameManager, closer, err := NewGameManager(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closer.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpServer := rest.New(logger, gameManager)
		if httpErr := httpServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// NewGameManager builds the game manager on the configured storage. The closer releases the storage.
func NewGameManager(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.GameManager, io.Closer, error) {
	startPolicy, err := tictactoe.ParseStartPolicy(conf.Game.StartPolicy)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid game config: %w", err)
	}

	difficulty := entity.Difficulty(conf.Game.Difficulty)
	if !difficulty.IsValid() {
		return nil, nil, fmt.Errorf("invalid game config: %w: %q", apperror.ErrInvalidDifficulty, conf.Game.Difficulty)
	}

	repos, err := openRepositories(ctx, conf)
	if err != nil {
		return nil, nil, err
	}

	random := pkg.NewRandom(conf.Game.Seed)

	gameManager := usecase.NewGameManager(logger, repos.games, repos.scores, service.NewBotService(random), usecase.Options{
		StartPolicy: startPolicy,
		Difficulty:  difficulty,
		BotDelay:    conf.Game.BotDelay,
		Random:      random,
	})

	return gameManager, repos.closer, nil
}

func openRepositories(ctx context.Context, conf *config.Config) (*repositories, error) {
	switch conf.Storage {
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return &repositories{
			games:  repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL),
			scores: repository.NewScoreRepository(redisStorage.Connection, conf.Redis.GameTTL),
			closer: redisStorage,
		}, nil

	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return &repositories{
			games:  repository.NewSQLiteGameRepository(sqliteStorage.Connection),
			scores: repository.NewSQLiteScoreRepository(sqliteStorage.Connection),
			closer: sqliteStorage,
		}, nil

	case config.StorageMemory:
		return &repositories{
			games:  repository.NewMemoryGameRepository(),
			scores: repository.NewMemoryScoreRepository(),
			closer: nopCloser{},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}
