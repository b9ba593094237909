package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/minimax"
)

type GamePlayService interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error

	// MakeTurn - applies the human move and, if the game goes on, the bot reply.
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	// PlayerTurn and BotTurn are the two halves of MakeTurn for callers that show the
	// human move before the bot answers.
	PlayerTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	BotTurn(ctx context.Context, gameID string) (*entity.Game, error)

	Restart(ctx context.Context, gameID string) (*entity.Game, error)
	Suggest(board entity.Board, toMove entity.Mark) (minimax.Result, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		botService:  botService,
	}
}

func (that *gamePlayService) NewGame(ctx context.Context) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) EndGame(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(entity.HumanMark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if _, err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *gamePlayService) PlayerTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(entity.HumanMark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *gamePlayService) BotTurn(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		return game, apperror.ErrGameFinished
	}

	if !game.IsBotTurn() {
		return game, apperror.ErrNotYourTurn
	}

	if _, err = that.botService.MakeTurn(game); err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *gamePlayService) Restart(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.Restart()

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game restarted", "gameID", game.ID, "score", game.Score)

	return game, nil
}

// Suggest - runs the engine on a board that is not tied to a stored game.
func (that *gamePlayService) Suggest(board entity.Board, toMove entity.Mark) (minimax.Result, error) {
	if err := board.Validate(); err != nil {
		return minimax.Result{}, fmt.Errorf("failed to validate board: %w", err)
	}

	if toMove != board.NextTurn() {
		return minimax.Result{}, fmt.Errorf("%w: %s", apperror.ErrNotYourTurn, toMove)
	}

	result, err := minimax.Search(board, toMove)
	if err != nil {
		return minimax.Result{}, fmt.Errorf("failed to search move: %w", err)
	}

	return result, nil
}

func (that *gamePlayService) saveGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "outcome", game.Outcome, "score", game.Score)
	}

	return nil
}
