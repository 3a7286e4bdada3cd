package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func statusText(p *Presenter) string {
	return strings.TrimSpace(p.status.GetText(true))
}

func TestPresenter_New(t *testing.T) {
	_, st := suite.New(t)

	// When: a presenter is built over a fresh session
	p := New(st.Logger, st.Session, ThemeBasic)

	// Then: every cell is blank and selectable, and X is announced
	for cell := 0; cell < entity.BoardSize; cell++ {
		row, col := entity.CellPosition(cell)
		tableCell := p.board.GetCell(row, col)
		assert.Equal(t, "   ", tableCell.Text)
		assert.False(t, tableCell.NotSelectable)
		assert.Equal(t, ThemeBasic.CellBg, tableCell.BackgroundColor)
	}
	assert.Equal(t, "Next player: X", statusText(p))
}

func TestPresenter_SelectCell(t *testing.T) {
	t.Run("Marks the cell and disables it", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)

		// When: the top right cell is selected
		p.selectCell(0, 2)

		// Then: it shows X, cannot be selected again and O is next
		tableCell := p.board.GetCell(0, 2)
		assert.Equal(t, " X ", tableCell.Text)
		assert.True(t, tableCell.NotSelectable)
		assert.Equal(t, ThemeBasic.MarkX, tableCell.Color)
		assert.Equal(t, entity.PlayerX, st.Session.State().Board[2])
		assert.Equal(t, "Next player: O", statusText(p))
	})

	t.Run("Selecting a filled cell changes nothing", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)
		p.selectCell(1, 1)
		before := st.Session.State()

		// When: the same cell is selected again
		p.selectCell(1, 1)

		// Then: the game is unchanged
		assert.Equal(t, before, st.Session.State())
		assert.Equal(t, " X ", p.board.GetCell(1, 1).Text)
		assert.Equal(t, "Next player: O", statusText(p))
	})
}

func TestPresenter_HandleKey(t *testing.T) {
	t.Run("Digits play cells and a win highlights the line", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)

		// When: X:0, O:1, X:3, O:2, X:6 are typed
		for _, r := range "01326" {
			assert.Nil(t, p.handleKey(keyRune(r)))
		}

		// Then: the left column is highlighted and the board is locked
		for cell := 0; cell < entity.BoardSize; cell++ {
			row, col := entity.CellPosition(cell)
			tableCell := p.board.GetCell(row, col)

			if cell == 0 || cell == 3 || cell == 6 {
				assert.Equal(t, ThemeBasic.WinBg, tableCell.BackgroundColor, "cell %d", cell)
			} else {
				assert.Equal(t, ThemeBasic.CellBg, tableCell.BackgroundColor, "cell %d", cell)
			}
			assert.True(t, tableCell.NotSelectable, "cell %d", cell)
		}

		rows, cols := p.board.GetSelectable()
		assert.False(t, rows)
		assert.False(t, cols)
		assert.Equal(t, "Winner: X", statusText(p))
	})

	t.Run("r restarts the game", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)
		st.Play(0, 1, 3, 2, 6)
		p.render()

		// When: r is pressed
		assert.Nil(t, p.handleKey(keyRune('r')))

		// Then: the board is empty and selectable again
		assert.Equal(t, *entity.NewGame(), st.Session.State())
		assert.Equal(t, "   ", p.board.GetCell(0, 0).Text)
		rows, cols := p.board.GetSelectable()
		assert.True(t, rows)
		assert.True(t, cols)
		assert.Equal(t, "Next player: X", statusText(p))
	})

	t.Run("Restart button restarts the game", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)
		p.selectCell(0, 0)

		// When: the button is activated
		p.restartGame()

		// Then: the game is fresh
		assert.Equal(t, *entity.NewGame(), st.Session.State())
	})

	t.Run("Draw is announced", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)

		// When: the board is filled without a line
		for _, r := range "012435768" {
			p.handleKey(keyRune(r))
		}

		// Then: the draw is announced and nothing is highlighted
		assert.Equal(t, "Draw!", statusText(p))
		for cell := 0; cell < entity.BoardSize; cell++ {
			row, col := entity.CellPosition(cell)
			assert.Equal(t, ThemeBasic.CellBg, p.board.GetCell(row, col).BackgroundColor)
		}
	})

	t.Run("Other keys pass through", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)

		// When: an unbound rune and an arrow key are pressed
		runeEvent := keyRune('x')
		arrowEvent := tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)

		// Then: both are handed to the focused widget
		assert.Equal(t, runeEvent, p.handleKey(runeEvent))
		assert.Equal(t, arrowEvent, p.handleKey(arrowEvent))
		assert.Equal(t, *entity.NewGame(), st.Session.State())
	})

	t.Run("9 is not a cell", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)

		event := keyRune('9')

		assert.Equal(t, event, p.handleKey(event))
		assert.Equal(t, *entity.NewGame(), st.Session.State())
	})
}

// drawBoard lays the board out on a simulated terminal so mouse positions map to cells.
func drawBoard(t *testing.T, p *Presenter) {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	p.board.SetRect(0, 0, boardWidth, boardHeight)
	p.board.Draw(screen)
}

// clickCell sends a left click to the middle of the given cell of a drawn board.
func clickCell(p *Presenter, row, col int) bool {
	// every cell is 5 columns wide between single width borders, rows alternate with border lines
	x, y := 1+col*6+2, 1+row*2
	event := tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)

	consumed, _ := p.board.MouseHandler()(tview.MouseLeftClick, event, func(tview.Primitive) {})

	return consumed
}

func TestPresenter_MouseClick(t *testing.T) {
	t.Run("Clicking a cell places the mark", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)
		drawBoard(t, p)

		// When: the centre cell is clicked
		assert.True(t, clickCell(p, 1, 1))

		// Then: X owns it and O is next
		assert.Equal(t, entity.PlayerX, st.Session.State().Board[4])
		assert.Equal(t, " X ", p.board.GetCell(1, 1).Text)
		assert.Equal(t, "Next player: O", statusText(p))
	})

	t.Run("Clicking a filled cell changes nothing", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)
		drawBoard(t, p)
		clickCell(p, 0, 2)
		before := st.Session.State()

		// When: the same cell is clicked again
		clickCell(p, 0, 2)

		// Then: the game is unchanged
		assert.Equal(t, before, st.Session.State())
		assert.Equal(t, "Next player: O", statusText(p))
	})

	t.Run("Clicks play a full game", func(t *testing.T) {
		_, st := suite.New(t)
		p := New(st.Logger, st.Session, ThemeBasic)
		drawBoard(t, p)

		// When: X:0, O:1, X:3, O:2, X:6 are clicked and then cell 8
		for _, cell := range []int{0, 1, 3, 2, 6, 8} {
			row, col := entity.CellPosition(cell)
			clickCell(p, row, col)
		}

		// Then: X won on the left column and the late click was ignored
		game := st.Session.State()
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Equal(t, entity.EmptyCell, game.Board[8])
		assert.Equal(t, "Winner: X", statusText(p))
	})
}

func TestPresenter_RunStopsOnCanceledContext(t *testing.T) {
	ctx, st := suite.New(t)
	p := New(st.Logger, st.Session, ThemeBasic)

	// Given: a simulated terminal
	screen := tcell.NewSimulationScreen("")
	p.app.SetScreen(screen)

	ctx, cancel := context.WithCancel(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- p.Run(ctx)
	}()

	// When: the context is canceled
	cancel()

	// Then: Run returns without error
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestThemeHex_Theme(t *testing.T) {
	t.Run("Empty values keep the basic theme", func(t *testing.T) {
		assert.Equal(t, ThemeBasic, ThemeHex{}.Theme())
	})

	t.Run("Hex values override single colors", func(t *testing.T) {
		// When: only the X mark and the win background are set
		theme := ThemeHex{MarkX: "#ff0000", WinBg: "#00ff00"}.Theme()

		// Then: those two change and the rest stays basic
		assert.Equal(t, tcell.NewHexColor(0xff0000), theme.MarkX)
		assert.Equal(t, tcell.NewHexColor(0x00ff00), theme.WinBg)
		assert.Equal(t, ThemeBasic.MarkO, theme.MarkO)
		assert.Equal(t, ThemeBasic.CellBg, theme.CellBg)
	})

	t.Run("Malformed values keep the basic color", func(t *testing.T) {
		// When: the config carries typos
		theme := ThemeHex{MarkO: "#12345", WinBg: "yelow"}.Theme()

		// Then: those colors fall back instead of turning into the terminal default
		assert.Equal(t, ThemeBasic.MarkO, theme.MarkO)
		assert.Equal(t, ThemeBasic.WinBg, theme.WinBg)
	})

	t.Run("Color names are accepted", func(t *testing.T) {
		assert.Equal(t, tcell.ColorRed, ThemeHex{MarkX: "red"}.Theme().MarkX)
	})
}
