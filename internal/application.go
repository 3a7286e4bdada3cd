package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/transport/text"
	"github.com/rocketscienceinc/tictactoe/transport/tui"
)

// Presenter renders a session and feeds player input back into it.
type Presenter interface {
	Run(ctx context.Context) error
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	session := usecase.NewSession(logger)

	view, err := NewPresenter(logger, conf, session, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	log.Info("Starting game", "mode", conf.Mode, "session", session.ID())

	if err = view.Run(ctx); err != nil {
		return fmt.Errorf("%s presenter error: %w", conf.Mode, err)
	}

	log.Info("Game closed")

	return nil
}

// NewPresenter picks the presenter for conf.Mode.
func NewPresenter(logger *slog.Logger, conf *config.Config, session *usecase.Session, in io.Reader, out io.Writer) (Presenter, error) {
	switch conf.Mode {
	case config.ModeTUI:
		theme := tui.ThemeHex{
			CellBg: conf.Theme.CellBg,
			CellFg: conf.Theme.CellFg,
			MarkX:  conf.Theme.MarkX,
			MarkO:  conf.Theme.MarkO,
			WinBg:  conf.Theme.WinBg,
			Status: conf.Theme.Status,
		}.Theme()

		return tui.New(logger, session, theme), nil
	case config.ModeText:
		return text.New(logger, session, in, out, conf.NoColor), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, conf.Mode)
	}
}
