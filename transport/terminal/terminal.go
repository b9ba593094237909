package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type gamePlayService interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error
	PlayerTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	BotTurn(ctx context.Context, gameID string) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
}

// Client is a single-player terminal front end. All fields below app are touched only
// from the tview event loop.
type Client struct {
	logger   *slog.Logger
	gamePlay gamePlayService
	botDelay time.Duration

	app        *tview.Application
	cells      [entity.BoardSize]*tview.Button
	status     *tview.TextView
	scoreboard *tview.TextView

	ctx      context.Context
	game     *entity.Game
	focus    int
	thinking bool
	// botFailed is set when the last bot reply failed; the next cell selection retries it
	botFailed bool
	// round changes on every restart so a pending bot reply can tell it is stale
	round int
}

func New(logger *slog.Logger, gamePlay gamePlayService, botDelay time.Duration) *Client {
	return &Client{
		logger:   logger.With("component", "terminal"),
		gamePlay: gamePlay,
		botDelay: botDelay,
	}
}

// Run - shows the board and blocks until the user quits or ctx is canceled.
func (that *Client) Run(ctx context.Context) error {
	game, err := that.gamePlay.NewGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.ctx = ctx
	that.game = game
	that.app = tview.NewApplication()
	that.app.SetRoot(that.layout(), true).SetFocus(that.cells[0])
	that.app.SetInputCapture(that.handleKey)
	that.render()

	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	if err = that.app.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	if err = that.gamePlay.EndGame(context.WithoutCancel(ctx), that.game.ID); err != nil {
		that.logger.Error("failed to end game", "gameID", that.game.ID, "error", err)
	}

	return nil
}

func (that *Client) layout() tview.Primitive {
	grid := tview.NewGrid().
		SetRows(3, 3, 3).
		SetColumns(7, 7, 7).
		SetGap(1, 1)

	for i := range that.cells {
		cell := i
		button := tview.NewButton(" ").SetSelectedFunc(func() {
			that.humanMove(cell)
		})
		that.cells[i] = button
		grid.AddItem(button, cell/3, cell%3, 1, 1, 0, 0, true)
	}

	that.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	that.scoreboard = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	help := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("arrows/enter or 1-9 to play, r to restart, q to quit")

	board := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(grid, 23, 0, true).
		AddItem(nil, 0, 1, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board, 11, 0, true).
		AddItem(that.status, 1, 0, false).
		AddItem(that.scoreboard, 1, 0, false).
		AddItem(help, 1, 0, false)
	root.SetBorder(true).SetTitle(" Tic-Tac-Toe: Human vs AI ")

	return root
}

func (that *Client) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		that.focus = moveFocus(that.focus, event.Key())
		that.app.SetFocus(that.cells[that.focus])
		return nil
	case tcell.KeyEscape:
		that.app.Stop()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); {
	case r >= '1' && r <= '9':
		that.focus = int(r - '1')
		that.app.SetFocus(that.cells[that.focus])
		that.humanMove(that.focus)
	case r == 'r':
		that.restart()
	case r == 'q':
		that.app.Stop()
	default:
		return event
	}

	return nil
}

func (that *Client) humanMove(cell int) {
	if that.botFailed {
		that.retryBot()
		return
	}

	if that.thinking || !that.game.IsOngoing() {
		return
	}

	game, err := that.gamePlay.PlayerTurn(that.ctx, that.game.ID, cell)
	if err != nil {
		// occupied cells are simply ignored like clicks on a filled button
		that.logger.Debug("turn rejected", "cell", cell, "error", err)
		return
	}

	that.game = game
	if that.game.IsBotTurn() {
		that.scheduleBot()
	}

	that.render()
}

func (that *Client) scheduleBot() {
	that.thinking = true
	round := that.round
	time.AfterFunc(that.botDelay, func() {
		that.app.QueueUpdateDraw(func() {
			that.botMove(round)
		})
	})
}

func (that *Client) retryBot() {
	that.botFailed = false
	that.scheduleBot()
	that.render()
}

func (that *Client) botMove(round int) {
	if !that.thinking || that.round != round {
		return
	}
	that.thinking = false

	game, err := that.gamePlay.BotTurn(that.ctx, that.game.ID)
	if err != nil {
		that.logger.Error("bot failed to make turn", "gameID", that.game.ID, "error", err)
		that.botFailed = true
		that.render()
		return
	}

	that.game = game
	that.render()
}

func (that *Client) restart() {
	game, err := that.gamePlay.Restart(that.ctx, that.game.ID)
	if err != nil {
		that.logger.Error("failed to restart game", "gameID", that.game.ID, "error", err)
		return
	}

	that.round++
	that.thinking = false
	that.botFailed = false
	that.game = game
	that.render()
}

func (that *Client) render() {
	styles := cellStyles(that.game)
	for i, button := range that.cells {
		button.SetLabel(cellLabel(that.game.Board[i]))
		button.SetStyle(styles[i])
		button.SetActivatedStyle(focusStyle)
	}

	text, color := statusText(that.game, that.thinking, that.botFailed)
	that.status.SetText(text).SetTextColor(color)
	that.scoreboard.SetText(scoreText(that.game.Score))
}
