package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const helpText = "commands: 0-8 to mark a cell, r to restart, q to quit"

type gameSession interface {
	Move(cell int) bool
	Restart()
	State() entity.Game
	Status() string
}

// Presenter plays a session over line based input, one command per line.
type Presenter struct {
	logger  *slog.Logger
	session gameSession

	in  io.Reader
	out io.Writer

	palette palette
}

func New(logger *slog.Logger, session gameSession, in io.Reader, out io.Writer, noColor bool) *Presenter {
	return &Presenter{
		logger:  logger.With("component", "text"),
		session: session,
		in:      in,
		out:     out,
		palette: newPalette(!noColor),
	}
}

// Run renders the board and handles commands until quit, end of input or ctx is done.
func (that *Presenter) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	if err := that.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving")
			return nil
		case line, ok := <-lines:
			if !ok {
				// the reader only reports an error when it ran to the end of input
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				case <-ctx.Done():
					log.Info("context canceled, leaving")
					return nil
				}

				log.Info("input closed")
				return nil
			}

			quit, err := that.handleCommand(line)
			if err != nil {
				return err
			}

			if quit {
				log.Info("player quit")
				return nil
			}
		}
	}
}

// handleCommand applies one input line and reports whether the player asked to quit.
func (that *Presenter) handleCommand(line string) (bool, error) {
	command := strings.ToLower(strings.TrimSpace(line))

	switch command {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "r", "restart":
		that.session.Restart()
		return false, that.render()
	}

	cell, err := strconv.Atoi(command)
	if err != nil {
		that.logger.Debug("unknown command", "command", command)

		if _, err = fmt.Fprintln(that.out, helpText); err != nil {
			return false, fmt.Errorf("failed to write help: %w", err)
		}

		return false, nil
	}

	that.session.Move(cell)

	return false, that.render()
}

func (that *Presenter) render() error {
	game := that.session.State()

	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}

			cell := entity.CellIndex(row, col)
			sb.WriteString(that.palette.cell(&game, cell))
		}

		sb.WriteString("\n")
	}

	sb.WriteString(that.palette.status.Sprint(that.session.Status()))
	sb.WriteString("\n")

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// palette is the static color map of the text board.
type palette struct {
	markX  *color.Color
	markO  *color.Color
	empty  *color.Color
	win    *color.Color
	status *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		markX:  color.New(color.FgRed, color.Bold),
		markO:  color.New(color.FgBlue, color.Bold),
		empty:  color.New(color.FgHiBlack),
		win:    color.New(color.BgYellow, color.FgBlack, color.Bold),
		status: color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{p.markX, p.markO, p.empty, p.win, p.status} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (that palette) cell(game *entity.Game, cell int) string {
	mark := game.Board[cell]
	text := " " + mark.String() + " "

	switch {
	case game.InWinningLine(cell):
		return that.win.Sprint(text)
	case mark == entity.PlayerX:
		return that.markX.Sprint(text)
	case mark == entity.PlayerO:
		return that.markO.Sprint(text)
	default:
		return that.empty.Sprint(" " + strconv.Itoa(cell) + " ")
	}
}
