package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type scoreRepo interface {
	Increment(ctx context.Context, gameID string, mark entity.Mark) error
	GetByGameID(ctx context.Context, gameID string) (entity.Score, error)
	DeleteByGameID(ctx context.Context, gameID string) error
}

type botService interface {
	ChooseMove(board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (int, error)
}

type Options struct {
	StartPolicy tictactoe.StartPolicy
	// Difficulty is used for single-player games started without one.
	Difficulty entity.Difficulty
	// BotDelay pauses before each computer move.
	BotDelay time.Duration
	Random   *rand.Rand
}

// GameSettings describes a new game session.
type GameSettings struct {
	Type         string            `json:"type"`
	Difficulty   entity.Difficulty `json:"difficulty,omitempty"`
	ComputerMark entity.Mark       `json:"computer_mark,omitempty"`
	Players      entity.Players    `json:"players"`
}

// TurnResult is what callers render after every state change.
type TurnResult struct {
	Game         *entity.Game `json:"game"`
	Score        entity.Score `json:"score"`
	Status       string       `json:"status"`
	ComputerMove *int         `json:"computer_move,omitempty"`
}

type GameManager struct {
	logger *slog.Logger

	gameRepo  gameRepo
	scoreRepo scoreRepo
	bot       botService

	options Options

	locksMu sync.Mutex
	locks   map[string]*gameLock
}

// gameLock is dropped from the map once no caller holds or waits for it.
type gameLock struct {
	mu   sync.Mutex
	refs int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, scoreRepo scoreRepo, bot botService, options Options) *GameManager {
	if options.StartPolicy == "" {
		options.StartPolicy = tictactoe.StartFixed
	}

	if options.Difficulty == "" {
		options.Difficulty = entity.EasyDifficulty
	}

	if options.Random == nil {
		options.Random = pkg.NewRandom(0)
	}

	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		gameRepo:  gameRepo,
		scoreRepo: scoreRepo,
		bot:       bot,
		options:   options,
		locks:     make(map[string]*gameLock),
	}
}

// StartGame creates a session and plays the computer's opening move when it starts.
func (that *GameManager) StartGame(ctx context.Context, settings GameSettings) (*TurnResult, error) {
	game, err := that.newGame(settings)
	if err != nil {
		return nil, fmt.Errorf("invalid game settings: %w", err)
	}

	unlock := that.lock(game.ID)
	defer unlock()

	controller := that.newController(game)
	controller.Reset()

	computerMove, err := that.playComputerIfDue(ctx, controller)
	if err != nil {
		return nil, fmt.Errorf("failed to play computer turn: %w", err)
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game started", "gameID", game.ID, "type", game.Type, "turn", game.Turn)

	return that.result(ctx, game, computerMove)
}

// MakeTurn plays cell for the side to move and, in single-player games, answers with the computer's move.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsComputerTurn() {
		return nil, apperror.ErrNotYourTurn
	}

	controller := that.newController(game)

	if err = playTurn(controller, cell, game.Turn); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	computerMove, err := that.playComputerIfDue(ctx, controller)
	if err != nil {
		return nil, fmt.Errorf("failed to play computer turn: %w", err)
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	if err = that.recordOutcome(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		log.Info("game finished", "outcome", game.Outcome.String())
	}

	return that.result(ctx, game, computerMove)
}

// Restart begins a new round of the session keeping its settings and score.
func (that *GameManager) Restart(ctx context.Context, gameID string) (*TurnResult, error) {
	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	controller := that.newController(game)
	controller.Reset()
	game.Round++

	computerMove, err := that.playComputerIfDue(ctx, controller)
	if err != nil {
		return nil, fmt.Errorf("failed to play computer turn: %w", err)
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return that.result(ctx, game, computerMove)
}

// Timeout ends the current round as a draw when the round timer expires.
func (that *GameManager) Timeout(ctx context.Context, gameID string) (*TurnResult, error) {
	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.IsFinished() {
		that.newController(game).ForceDraw()

		if err = that.saveGame(ctx, game); err != nil {
			return nil, err
		}
	}

	return that.result(ctx, game, nil)
}

// SetDifficulty switches the computer's strategy from its next move on.
func (that *GameManager) SetDifficulty(ctx context.Context, gameID string, difficulty entity.Difficulty) (*TurnResult, error) {
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}

	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.IsWithBot() {
		return nil, fmt.Errorf("%w: difficulty needs a %s game", apperror.ErrInvalidGameType, entity.WithBotType)
	}

	game.Difficulty = difficulty

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return that.result(ctx, game, nil)
}

// RenamePlayers sets display names; blank names fall back to the defaults.
func (that *GameManager) RenamePlayers(ctx context.Context, gameID string, players entity.Players) (*TurnResult, error) {
	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.Players = normalizePlayers(players)

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return that.result(ctx, game, nil)
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*TurnResult, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return that.result(ctx, game, nil)
}

func (that *GameManager) GetScore(ctx context.Context, gameID string) (entity.Score, error) {
	if _, err := that.getGameByID(ctx, gameID); err != nil {
		return entity.Score{}, err
	}

	score, err := that.scoreRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

// EndGame drops the session and its score.
func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "EndGame", "gameID", gameID)

	unlock := that.lock(gameID)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if err := that.scoreRepo.DeleteByGameID(ctx, gameID); err != nil {
		log.Error("failed to delete score", "error", err)
	}

	log.Info("game deleted")

	return nil
}

func (that *GameManager) newGame(settings GameSettings) (*entity.Game, error) {
	switch settings.Type {
	case entity.WithBotType, entity.LocalType:
	case "":
		settings.Type = entity.WithBotType
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidGameType, settings.Type)
	}

	game := entity.NewGame(pkg.GenerateGameID(), settings.Type)
	game.Players = normalizePlayers(settings.Players)

	if !game.IsWithBot() {
		return game, nil
	}

	game.Difficulty = settings.Difficulty
	if game.Difficulty == "" {
		game.Difficulty = that.options.Difficulty
	}

	if !game.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, game.Difficulty)
	}

	game.ComputerMark = settings.ComputerMark
	if game.ComputerMark == entity.EmptyCell {
		game.ComputerMark = entity.PlayerO
	}

	if !game.ComputerMark.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, game.ComputerMark)
	}

	return game, nil
}

func (that *GameManager) newController(game *entity.Game) *tictactoe.GameController {
	return tictactoe.NewGameController(game,
		tictactoe.WithStartPolicy(that.options.StartPolicy),
		tictactoe.WithRandom(that.options.Random),
	)
}

// playComputerIfDue moves for the computer when it holds the turn. It returns the chosen cell or nil.
func (that *GameManager) playComputerIfDue(ctx context.Context, controller *tictactoe.GameController) (*int, error) {
	game := controller.Game()
	if !game.IsComputerTurn() {
		return nil, nil //nolint: nilnil // no computer move is a valid answer
	}

	if err := that.wait(ctx); err != nil {
		return nil, err
	}

	cell, err := that.bot.ChooseMove(game.Board, game.ComputerMark, game.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = playTurn(controller, cell, game.ComputerMark); err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return &cell, nil
}

func (that *GameManager) wait(ctx context.Context) error {
	if that.options.BotDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.options.BotDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("computer turn interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// playTurn applies a move and passes the turn on unless the game is over.
func playTurn(controller *tictactoe.GameController, cell int, mark entity.Mark) error {
	outcome, err := controller.ApplyMove(cell, mark)
	if err != nil {
		return err
	}

	if outcome.IsTerminal() {
		return nil
	}

	return controller.SwitchTurn()
}

func (that *GameManager) recordOutcome(ctx context.Context, game *entity.Game) error {
	if game.Outcome.Status != entity.StatusWin {
		return nil
	}

	if err := that.scoreRepo.Increment(ctx, game.ID, game.Outcome.Winner); err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

func (that *GameManager) result(ctx context.Context, game *entity.Game, computerMove *int) (*TurnResult, error) {
	score, err := that.scoreRepo.GetByGameID(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return &TurnResult{
		Game:         game,
		Score:        score,
		Status:       game.StatusText(),
		ComputerMove: computerMove,
	}, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) saveGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// lock serialises state changes of one game within the process.
func (that *GameManager) lock(gameID string) func() {
	that.locksMu.Lock()
	gl, ok := that.locks[gameID]
	if !ok {
		gl = &gameLock{}
		that.locks[gameID] = gl
	}
	gl.refs++
	that.locksMu.Unlock()

	gl.mu.Lock()

	return func() {
		gl.mu.Unlock()

		that.locksMu.Lock()
		defer that.locksMu.Unlock()

		gl.refs--
		if gl.refs == 0 {
			delete(that.locks, gameID)
		}
	}
}

func (that *GameManager) lockCount() int {
	that.locksMu.Lock()
	defer that.locksMu.Unlock()

	return len(that.locks)
}

func normalizePlayers(players entity.Players) entity.Players {
	return entity.Players{
		X: strings.TrimSpace(players.X),
		O: strings.TrimSpace(players.O),
	}
}
