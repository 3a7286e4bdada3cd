package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Logs collects everything Logger wrote, as JSON lines.
	Logs *bytes.Buffer

	Session *usecase.Session
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Logs:    logs,
		Session: usecase.NewSession(logger),
	}
}

// Play feeds cells to the session one by one and fails the test on the first refusal.
func (that *Suite) Play(cells ...int) {
	that.Helper()

	for i, cell := range cells {
		if !that.Session.Move(cell) {
			that.Fatalf("move %d (cell %d) was refused", i, cell)
		}
	}
}
