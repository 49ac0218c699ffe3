package console

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const boardSide = 3

const helpText = "1-9 or arrows+enter: move   d: difficulty   m: mode   r: restart   t: timeout   q: quit"

type UI struct {
	ctx     context.Context
	session *Session

	app    *tview.Application
	board  *tview.Table
	status *tview.TextView

	busy atomic.Bool
}

func NewUI(ctx context.Context, session *Session) *UI {
	ui := &UI{
		ctx:     ctx,
		session: session,
		app:     tview.NewApplication(),
		board:   tview.NewTable(),
		status:  tview.NewTextView(),
	}

	ui.board.SetBorders(true).SetSelectable(true, true)
	ui.board.SetSelectedFunc(func(row, column int) {
		ui.run(func() error { return ui.session.Play(ui.ctx, row*boardSide+column) })
	})

	ui.status.SetDynamicColors(true).SetTextAlign(tview.AlignCenter)

	help := tview.NewTextView().SetText(helpText).SetTextAlign(tview.AlignCenter)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ui.status, 3, 0, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(ui.board, boardSide*6+1, 0, true).
			AddItem(nil, 0, 1, false), boardSide*2+1, 0, true).
		AddItem(help, 1, 0, false)
	layout.SetBorder(true).SetTitle(" Tic-Tac-Toe ")

	ui.app.SetRoot(layout, true).SetFocus(ui.board)
	ui.app.SetInputCapture(ui.handleKey)

	ui.render(nil)

	return ui
}

func (that *UI) Run() error {
	if err := that.app.Run(); err != nil {
		return fmt.Errorf("failed to run console: %w", err)
	}

	return nil
}

func (that *UI) Stop() {
	that.app.Stop()
}

func (that *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyRune {
		return event
	}

	switch key := event.Rune(); {
	case key >= '1' && key <= '9':
		cell := int(key - '1')
		that.run(func() error { return that.session.Play(that.ctx, cell) })
	case key == 'd':
		that.run(func() error { return that.session.ToggleDifficulty(that.ctx) })
	case key == 'm':
		that.run(func() error { return that.session.ToggleMode(that.ctx) })
	case key == 'r':
		that.run(func() error { return that.session.Restart(that.ctx) })
	case key == 't':
		that.run(func() error { return that.session.Timeout(that.ctx) })
	case key == 'q':
		that.app.Stop()
	default:
		return event
	}

	return nil
}

// run performs action off the event loop so a slow computer move does not freeze the screen.
// Keys pressed while an action is running are dropped.
func (that *UI) run(action func() error) {
	if !that.busy.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer that.busy.Store(false)

		err := action()
		that.app.QueueUpdateDraw(func() {
			that.render(err)
		})
	}()
}

func (that *UI) render(err error) {
	result := that.session.Result()
	game := result.Game

	winning := map[int]bool{}
	if game.Outcome.Line != nil {
		for _, cell := range game.Outcome.Line {
			winning[cell] = true
		}
	}

	for cell, mark := range game.Board {
		text, color := fmt.Sprintf("  %d  ", cell+1), tcell.ColorGray
		switch mark {
		case entity.PlayerX:
			text, color = "  X  ", tcell.ColorRed
		case entity.PlayerO:
			text, color = "  O  ", tcell.ColorBlue
		}

		tableCell := tview.NewTableCell(text).SetAlign(tview.AlignCenter).SetTextColor(color)
		if winning[cell] {
			tableCell.SetBackgroundColor(tcell.ColorGreen)
		}

		that.board.SetCell(cell/boardSide, cell%boardSide, tableCell)
	}

	var lines []string
	lines = append(lines, "[::b]"+tview.Escape(result.Status)+"[::-]")
	lines = append(lines, fmt.Sprintf("%s %d : %d %s   round %d   %s",
		tview.Escape(game.Players.Name(entity.PlayerX)), result.Score.X,
		result.Score.O, tview.Escape(game.Players.Name(entity.PlayerO)),
		game.Round, modeText(game)))

	if err != nil {
		lines = append(lines, "[red]"+tview.Escape(err.Error())+"[-]")
	}

	that.status.SetText(strings.Join(lines, "\n"))
}

func modeText(game *entity.Game) string {
	if !game.IsWithBot() {
		return "two players"
	}

	return fmt.Sprintf("vs computer (%s, plays %s)", game.Difficulty, game.ComputerMark)
}
