package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	HumanMark = PlayerX
	BotMark   = PlayerO
)

// Scoreboard counts finished games of one session, seen from the human player.
type Scoreboard struct {
	Player int `json:"player"`
	AI     int `json:"ai"`
	Draws  int `json:"draws"`
}

type Game struct {
	ID          string     `json:"id"`
	Board       Board      `json:"board"`
	Turn        Mark       `json:"player_turn"`
	Winner      Mark       `json:"winner"`
	Outcome     Outcome    `json:"outcome"`
	Status      string     `json:"status"`
	WinningLine []int      `json:"winning_line,omitempty"`
	Score       Scoreboard `json:"score"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Turn:    HumanMark,
		Outcome: OutcomeOngoing,
		Status:  StatusOngoing,
	}
}

// Record adds a finished game to the tally. Ongoing outcomes are ignored.
func (that *Scoreboard) Record(outcome Outcome) {
	switch outcome.Winner() {
	case HumanMark:
		that.Player++
	case BotMark:
		that.AI++
	default:
		if outcome == OutcomeDraw {
			that.Draws++
		}
	}
}

func (that *Game) MakeTurn(playerMark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

// UpdateGameState recomputes the outcome from the board. The scoreboard is
// touched only on the transition from ongoing to finished.
func (that *Game) UpdateGameState() {
	outcome := that.Board.Outcome()
	that.Outcome = outcome

	if !outcome.IsTerminal() {
		that.Status = StatusOngoing
		return
	}

	wasFinished := that.IsFinished()

	that.Winner = outcome.Winner()
	that.Status = StatusFinished
	that.Turn = EmptyCell

	if line, ok := that.Board.WinningLine(); ok {
		that.WinningLine = line[:]
	}

	if !wasFinished {
		that.Score.Record(outcome)
	}
}

// Restart clears the board for the next round and keeps the scoreboard.
func (that *Game) Restart() {
	score := that.Score
	*that = *NewGame(that.ID)
	that.Score = score
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == BotMark
}
