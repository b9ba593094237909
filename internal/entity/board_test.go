package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	x = PlayerX
	o = PlayerO
	e = EmptyCell
)

func TestBoard_Outcome(t *testing.T) {
	t.Run("Every complete line wins for its owner", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, mark := range []Mark{PlayerX, PlayerO} {
				// Given: a board where only one line is filled with the mark
				var board Board
				for _, i := range combo {
					board[i] = mark
				}

				// When: evaluating the board
				outcome := board.Outcome()

				// Then: the owner of the line wins
				assert.Equal(t, mark, outcome.Winner(), "combo %v", combo)
				assert.True(t, outcome.IsTerminal())
			}
		}
	})

	t.Run("Returns OutcomeDraw for a full board without a line", func(t *testing.T) {
		// Given: a full board with no complete line
		board := Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		// When: evaluating the board
		outcome := board.Outcome()

		// Then: the game is a draw
		assert.Equal(t, OutcomeDraw, outcome)
		assert.Empty(t, board.AvailableMoves())
	})

	t.Run("Returns OutcomeOngoing when cells are left", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := Board{
			x, o, e,
			e, x, e,
			e, e, o,
		}

		// When: evaluating the board
		outcome := board.Outcome()

		// Then: the game continues
		assert.Equal(t, OutcomeOngoing, outcome)
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		// Given: a full board where X completed the main diagonal with the last move
		board := Board{
			x, o, x,
			o, x, o,
			o, x, x,
		}

		// When: evaluating the board
		outcome := board.Outcome()

		// Then: X wins
		assert.Equal(t, OutcomeXWins, outcome)
	})

	t.Run("Two winners report the first line in table order", func(t *testing.T) {
		// Given: an unreachable board where O owns the top row and X the middle row
		board := Board{
			o, o, o,
			x, x, x,
			e, e, e,
		}

		// When: evaluating the board
		outcome := board.Outcome()

		// Then: the top row is found first
		assert.Equal(t, OutcomeOWins, outcome)
		line, ok := board.WinningLine()
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 1, 2}, line)
	})
}

func TestBoard_AvailableMoves(t *testing.T) {
	t.Run("Empty board offers every cell in ascending order", func(t *testing.T) {
		var board Board

		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, board.AvailableMoves())
	})

	t.Run("Full board offers no moves", func(t *testing.T) {
		// Given: a drawn board with every cell taken
		board := Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		// When: listing the moves
		moves := board.AvailableMoves()

		// Then: the sequence is empty
		assert.Empty(t, moves)
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		board := Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		assert.Equal(t, []int{2, 5, 6, 7, 8}, board.AvailableMoves())
	})
}

func TestBoard_NextTurn(t *testing.T) {
	assert.Equal(t, PlayerX, Board{}.NextTurn())
	assert.Equal(t, PlayerO, Board{x}.NextTurn())
	assert.Equal(t, PlayerX, Board{x, o}.NextTurn())
}

func TestBoard_Validate(t *testing.T) {
	t.Run("Accepts reachable boards", func(t *testing.T) {
		require.NoError(t, Board{}.Validate())
		require.NoError(t, Board{x}.Validate())
		require.NoError(t, Board{x, o}.Validate())
	})

	t.Run("Rejects O moving first", func(t *testing.T) {
		err := Board{o}.Validate()

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects unknown marks", func(t *testing.T) {
		err := Board{"Z"}.Validate()

		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}
