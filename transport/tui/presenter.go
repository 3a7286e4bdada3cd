package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	boardWidth  = 19
	boardHeight = 7
)

type gameSession interface {
	Move(cell int) bool
	Restart()
	State() entity.Game
	Status() string
}

// Presenter draws a session as a full screen grid with a status line and a restart button.
type Presenter struct {
	logger  *slog.Logger
	session gameSession
	theme   Theme

	app     *tview.Application
	board   *tview.Table
	status  *tview.TextView
	restart *tview.Button
	layout  *tview.Flex
}

func New(logger *slog.Logger, session gameSession, theme Theme) *Presenter {
	p := &Presenter{
		logger:  logger.With("component", "tui"),
		session: session,
		theme:   theme,
		app:     tview.NewApplication(),
	}

	p.board = tview.NewTable().
		SetBorders(true).
		SetSelectable(true, true)
	p.board.Select(0, 0).SetSelectedFunc(p.selectCell)

	p.status = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetTextColor(theme.Status)

	p.restart = tview.NewButton("Restart").SetSelectedFunc(p.restartGame)

	help := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("click/enter/0-8 mark  r restart  tab switch  q quit")

	column := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(p.board, boardHeight, 0, true).
		AddItem(p.status, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(p.restart, 1, 0, false).
		AddItem(help, 1, 0, false).
		AddItem(nil, 0, 1, false)

	p.layout = tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(column, boardWidth+10, 0, true).
		AddItem(nil, 0, 1, false)

	p.app.SetInputCapture(p.handleKey)

	p.render()

	return p
}

// Run blocks until the player quits or ctx is done.
func (that *Presenter) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping")
			that.app.QueueUpdate(that.app.Stop)
		case <-done:
		}
	}()

	if err := that.app.SetRoot(that.layout, true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}

func (that *Presenter) selectCell(row, col int) {
	that.session.Move(entity.CellIndex(row, col))
	that.render()
}

func (that *Presenter) restartGame() {
	that.session.Restart()
	that.board.Select(0, 0)
	that.render()
}

// handleKey binds the global shortcuts; everything else goes to the focused widget.
func (that *Presenter) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		that.app.Stop()
		return nil
	case tcell.KeyTab, tcell.KeyBacktab:
		that.toggleFocus()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); {
	case r == 'q':
		that.app.Stop()
	case r == 'r':
		that.restartGame()
	case r >= '0' && r <= '8':
		cell := int(r - '0')
		that.selectCell(entity.CellPosition(cell))
	default:
		return event
	}

	return nil
}

func (that *Presenter) toggleFocus() {
	if that.board.HasFocus() {
		that.app.SetFocus(that.restart)
		return
	}

	that.app.SetFocus(that.board)
}

func (that *Presenter) render() {
	game := that.session.State()

	for cell := 0; cell < entity.BoardSize; cell++ {
		row, col := entity.CellPosition(cell)
		mark := game.Board[cell]

		fg := that.theme.CellFg
		switch mark {
		case entity.PlayerX:
			fg = that.theme.MarkX
		case entity.PlayerO:
			fg = that.theme.MarkO
		}

		bg := that.theme.CellBg
		if game.InWinningLine(cell) {
			bg = that.theme.WinBg
		}

		label := " " + mark.String() + " "
		if mark == entity.EmptyCell {
			label = "   "
		}

		that.board.SetCell(row, col, tview.NewTableCell(label).
			SetAlign(tview.AlignCenter).
			SetExpansion(1).
			SetTextColor(fg).
			SetBackgroundColor(bg).
			SetSelectable(mark == entity.EmptyCell && game.IsInProgress()).
			SetClickedFunc(func() bool {
				that.selectCell(row, col)
				return false
			}))
	}

	// a finished board has nothing left to select
	inProgress := game.IsInProgress()
	that.board.SetSelectable(inProgress, inProgress)

	that.status.SetText(that.session.Status())
}
