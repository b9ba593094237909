package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// When: create a new game
	game := NewGame("123")

	// Then: the human moves first on an empty board
	expectedGame := &Game{
		ID:      "123",
		Turn:    PlayerX,
		Outcome: OutcomeOngoing,
		Status:  StatusOngoing,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123")

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: The board reflects the turn and the turn switches
		expectedGame := &Game{
			ID:      "123",
			Board:   Board{PlayerX},
			Turn:    PlayerO,
			Outcome: OutcomeOngoing,
			Status:  StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(PlayerX, 0))

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(PlayerO, 0)

		// Then: An ErrCellOccupied error should be returned and the turn is kept
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, Board{PlayerX}, game.Board)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame("123")

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, 1)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := NewGame("123")

		assert.ErrorIs(t, game.MakeTurn(PlayerX, 20), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(PlayerX, -1), apperror.ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: A game where X has already won
		game := &Game{
			Board:  Board{x, x, x, e, o, e, e, o, e},
			Status: StatusFinished,
			Turn:   EmptyCell,
		}

		// When: player O tries to make a move after the game has finished
		err := game.MakeTurn(PlayerO, 3)

		// Then: an ErrGameFinished error should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the game and updates the score", func(t *testing.T) {
		// Given: X is one move away from the top row
		game := NewGame("123")
		game.Board = Board{x, x, e, o, o, e, e, e, e}

		// When: X completes the row
		err := game.MakeTurn(PlayerX, 2)
		require.NoError(t, err)

		// Then: the game is finished with X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, OutcomeXWins, game.Outcome)
		assert.Equal(t, EmptyCell, game.Turn)
		assert.Equal(t, []int{0, 1, 2}, game.WinningLine)
		assert.Equal(t, Scoreboard{Player: 1}, game.Score)
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := &Game{
			Board:  Board{x, o, x, x, o, o, o, x, x},
			Status: StatusOngoing,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, OutcomeDraw, game.Outcome)
		assert.Equal(t, EmptyCell, game.Winner)
		assert.Nil(t, game.WinningLine)
		assert.Equal(t, Scoreboard{Draws: 1}, game.Score)
	})

	t.Run("Score is recorded once per finished game", func(t *testing.T) {
		// Given: a game O has won
		game := &Game{
			Board:  Board{o, o, o, x, x, e, x, e, e},
			Status: StatusOngoing,
		}

		// When: the state is updated twice
		game.UpdateGameState()
		game.UpdateGameState()

		// Then: the AI win is counted once
		assert.Equal(t, Scoreboard{AI: 1}, game.Score)
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		game := &Game{
			Board:  Board{x, o, e, e, x, e, e, e, o},
			Status: StatusOngoing,
			Turn:   PlayerX,
		}

		game.UpdateGameState()

		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, OutcomeOngoing, game.Outcome)
		assert.Equal(t, PlayerX, game.Turn)
	})
}

func TestGame_Restart(t *testing.T) {
	// Given: a finished game with some history on the scoreboard
	game := &Game{
		ID:          "123",
		Board:       Board{x, x, x, o, o, e, e, e, e},
		Status:      StatusFinished,
		Winner:      PlayerX,
		Outcome:     OutcomeXWins,
		WinningLine: []int{0, 1, 2},
		Score:       Scoreboard{Player: 1, AI: 2, Draws: 3},
	}

	// When: restarting
	game.Restart()

	// Then: the board is fresh and the score survives
	expectedGame := &Game{
		ID:      "123",
		Turn:    PlayerX,
		Outcome: OutcomeOngoing,
		Status:  StatusOngoing,
		Score:   Scoreboard{Player: 1, AI: 2, Draws: 3},
	}

	assert.Equal(t, expectedGame, game)
}
