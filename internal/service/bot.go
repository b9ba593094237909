package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/minimax"
)

type BotService interface {
	MakeTurn(game *entity.Game) (minimax.Result, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - picks the best move for the bot mark and applies it to the game.
func (that *botService) MakeTurn(game *entity.Game) (minimax.Result, error) {
	result, err := minimax.Search(game.Board, entity.BotMark)
	if err != nil {
		return minimax.Result{}, fmt.Errorf("failed to search move: %w", err)
	}

	if err = game.MakeTurn(entity.BotMark, result.Move); err != nil {
		return minimax.Result{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "gameID", game.ID, "cell", result.Move, "score", result.Score, "nodes", result.Nodes)

	return result, nil
}
