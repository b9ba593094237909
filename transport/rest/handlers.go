package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/minimax"
)

type gamePlayService interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
	Suggest(board entity.Board, toMove entity.Mark) (minimax.Result, error)
}

type GameHandlers interface {
	CreateGame(ctx echo.Context) error
	GetGame(ctx echo.Context) error
	DeleteGame(ctx echo.Context) error
	MakeTurn(ctx echo.Context) error
	Restart(ctx echo.Context) error
	Search(ctx echo.Context) error
}

type TurnRequest struct {
	Cell *int `json:"cell"`
}

type SearchRequest struct {
	Board []entity.Mark `json:"board"`
	Turn  entity.Mark   `json:"turn"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type gameHandlers struct {
	logger   *slog.Logger
	gamePlay gamePlayService
}

func NewGameHandlers(logger *slog.Logger, gamePlay gamePlayService) GameHandlers {
	return &gameHandlers{
		logger:   logger,
		gamePlay: gamePlay,
	}
}

func (that *gameHandlers) CreateGame(ctx echo.Context) error {
	game, err := that.gamePlay.NewGame(ctx.Request().Context())
	if err != nil {
		return that.respondError(ctx, "CreateGame", err)
	}

	return ctx.JSON(http.StatusCreated, game)
}

func (that *gameHandlers) GetGame(ctx echo.Context) error {
	game, err := that.gamePlay.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.respondError(ctx, "GetGame", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *gameHandlers) DeleteGame(ctx echo.Context) error {
	if err := that.gamePlay.EndGame(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return that.respondError(ctx, "DeleteGame", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (that *gameHandlers) MakeTurn(ctx echo.Context) error {
	var req TurnRequest
	if err := ctx.Bind(&req); err != nil || req.Cell == nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "cell is required"})
	}

	game, err := that.gamePlay.MakeTurn(ctx.Request().Context(), ctx.Param("id"), *req.Cell)
	if err != nil {
		return that.respondError(ctx, "MakeTurn", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *gameHandlers) Restart(ctx echo.Context) error {
	game, err := that.gamePlay.Restart(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.respondError(ctx, "Restart", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *gameHandlers) Search(ctx echo.Context) error {
	var req SearchRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if len(req.Board) != entity.BoardSize {
		err := fmt.Errorf("board has %d cells, want %d: %w", len(req.Board), entity.BoardSize, apperror.ErrInvalidBoard)
		return that.respondError(ctx, "Search", err)
	}

	var board entity.Board
	copy(board[:], req.Board)

	result, err := that.gamePlay.Suggest(board, req.Turn)
	if err != nil {
		return that.respondError(ctx, "Search", err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// respondError maps domain errors to status codes, anything unknown is logged as a 500.
func (that *gameHandlers) respondError(ctx echo.Context, method string, err error) error {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: apperror.ErrGameNotFound.Error()})
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidBoard):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNoAvailableMoves):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}

	that.logger.Error("request failed", "method", method, "error", err)

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
}
