// Package minimax picks tic-tac-toe moves by exhaustive minimax search with alpha-beta pruning.
//
// O is the maximizing side and X the minimizing side. Terminal positions score
// 10-depth for an O win, depth-10 for an X win and 0 for a draw, so the search
// prefers quick wins and slow losses.
package minimax

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const winScore = 10

// Result is the move chosen for the side to play and its minimax score.
type Result struct {
	Move  int `json:"move"`
	Score int `json:"score"`
	// Nodes counts positions visited, the root excluded.
	Nodes int `json:"nodes"`
}

type searcher struct {
	board entity.Board
	nodes int
}

// Search returns the best move for toMove on board.
// Among equally scored moves the lowest index wins. The board is taken by value and
// the caller's copy is never modified.
func Search(board entity.Board, toMove entity.Mark) (Result, error) {
	if !toMove.IsPlayer() {
		return Result{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, toMove)
	}

	for _, cell := range board {
		if cell != entity.EmptyCell && !cell.IsPlayer() {
			return Result{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, cell)
		}
	}

	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return Result{}, apperror.ErrNoAvailableMoves
	}

	if outcome := board.Outcome(); outcome.IsTerminal() {
		return Result{}, fmt.Errorf("%w: %s", apperror.ErrGameFinished, outcome)
	}

	s := &searcher{board: board}
	maximizing := toMove == entity.PlayerO

	best := Result{Move: -1}
	for _, move := range moves {
		s.board[move] = toMove
		score := s.minimax(0, !maximizing, math.MinInt, math.MaxInt)
		s.board[move] = entity.EmptyCell

		if best.Move == -1 || (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best.Move = move
			best.Score = score
		}
	}

	best.Nodes = s.nodes

	return best, nil
}

func (that *searcher) minimax(depth int, maximizing bool, alpha, beta int) int {
	that.nodes++

	switch that.board.Outcome() {
	case entity.OutcomeOWins:
		return winScore - depth
	case entity.OutcomeXWins:
		return depth - winScore
	case entity.OutcomeDraw:
		return 0
	}

	if maximizing {
		value := math.MinInt
		for _, move := range that.board.AvailableMoves() {
			that.board[move] = entity.PlayerO
			value = max(value, that.minimax(depth+1, false, alpha, beta))
			that.board[move] = entity.EmptyCell

			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := math.MaxInt
	for _, move := range that.board.AvailableMoves() {
		that.board[move] = entity.PlayerX
		value = min(value, that.minimax(depth+1, true, alpha, beta))
		that.board[move] = entity.EmptyCell

		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}
