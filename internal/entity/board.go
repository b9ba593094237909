package entity

import "github.com/rocketscienceinc/tictactoe-ai/internal/apperror"

// Mark is the content of a single cell, also used to name the player who owns it.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// Outcome is derived from the board contents and never stored as the source of truth.
type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeXWins   Outcome = "x_wins"
	OutcomeOWins   Outcome = "o_wins"
	OutcomeDraw    Outcome = "draw"
)

const BoardSize = 9

// WinCombos lists the rows, the columns and the two diagonals in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row by row: index i is row i/3, column i%3.
type Board [BoardSize]Mark

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Outcome reports the state of the game on this board.
//
// A board carrying complete lines for both players cannot be reached by legal play;
// for such a board the owner of the first complete line in WinCombos order is reported.
func (that Board) Outcome() Outcome {
	if line, ok := that.WinningLine(); ok {
		if that[line[0]] == PlayerX {
			return OutcomeXWins
		}
		return OutcomeOWins
	}

	// the game will continue until all the squares are full
	for _, cell := range that {
		if cell == EmptyCell {
			return OutcomeOngoing
		}
	}

	return OutcomeDraw
}

// WinningLine returns the first complete line found, if any.
func (that Board) WinningLine() ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a.IsPlayer() && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}

// AvailableMoves returns the indices of empty cells in ascending order.
func (that Board) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// NextTurn infers whose move it is from the mark counts. X always moves first.
func (that Board) NextTurn() Mark {
	var xCount, oCount int
	for _, cell := range that {
		switch cell {
		case PlayerX:
			xCount++
		case PlayerO:
			oCount++
		}
	}

	if xCount > oCount {
		return PlayerO
	}
	return PlayerX
}

// Validate checks that every cell holds a known mark and that the mark counts are reachable.
func (that Board) Validate() error {
	var xCount, oCount int
	for _, cell := range that {
		switch cell {
		case PlayerX:
			xCount++
		case PlayerO:
			oCount++
		case EmptyCell:
		default:
			return apperror.ErrInvalidMark
		}
	}

	if xCount != oCount && xCount != oCount+1 {
		return apperror.ErrInvalidBoard
	}

	return nil
}

func (that Outcome) IsTerminal() bool {
	return that != OutcomeOngoing
}

// Winner returns the mark of the winning player, EmptyCell for a draw or an ongoing game.
func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeXWins:
		return PlayerX
	case OutcomeOWins:
		return PlayerO
	default:
		return EmptyCell
	}
}
