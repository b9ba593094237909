package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	statusYourTurn = "Your turn (X)"
	statusThinking = "AI is thinking..."
	statusYouWin   = "You win!"
	statusAIWins   = "AI wins!"
	statusDraw     = "It's a draw!"
	statusBotError = "AI failed to move, select a cell to retry"
)

var (
	cellStyle    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	focusStyle   = tcell.StyleDefault.Background(tcell.ColorSteelBlue).Foreground(tcell.ColorWhite)
	winningStyle = tcell.StyleDefault.Background(tcell.ColorLightGreen).Foreground(tcell.ColorBlack)
)

func cellLabel(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return " "
	}
	return string(mark)
}

// statusText returns the status line and its color.
func statusText(game *entity.Game, thinking, botFailed bool) (string, tcell.Color) {
	if game.IsFinished() {
		switch game.Outcome {
		case entity.OutcomeXWins:
			return statusYouWin, tcell.ColorGreen
		case entity.OutcomeOWins:
			return statusAIWins, tcell.ColorRed
		default:
			return statusDraw, tcell.ColorGray
		}
	}

	if botFailed {
		return statusBotError, tcell.ColorRed
	}

	if thinking || game.IsBotTurn() {
		return statusThinking, tcell.ColorWhite
	}

	return statusYourTurn, tcell.ColorWhite
}

func scoreText(score entity.Scoreboard) string {
	return fmt.Sprintf("Score: You %d | AI %d | Draws %d", score.Player, score.AI, score.Draws)
}

// cellStyles returns the style of every cell, highlighting the winning line.
func cellStyles(game *entity.Game) [entity.BoardSize]tcell.Style {
	var styles [entity.BoardSize]tcell.Style
	for i := range styles {
		styles[i] = cellStyle
	}

	for _, i := range game.WinningLine {
		styles[i] = winningStyle
	}

	return styles
}

// moveFocus returns the cell reached from current with an arrow key, staying on the board.
func moveFocus(current int, key tcell.Key) int {
	row, col := current/3, current%3

	switch key {
	case tcell.KeyUp:
		row = max(row-1, 0)
	case tcell.KeyDown:
		row = min(row+1, 2)
	case tcell.KeyLeft:
		col = max(col-1, 0)
	case tcell.KeyRight:
		col = min(col+1, 2)
	}

	return row*3 + col
}
