package usecase

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// Session owns the single game of one play session. Presenters only talk to the
// game through it.
type Session struct {
	logger *slog.Logger

	id   string
	game *entity.Game
}

func NewSession(logger *slog.Logger) *Session {
	id := uuid.NewString()

	session := &Session{
		logger: logger.With("component", "session", "session", id),
		id:     id,
		game:   entity.NewGame(),
	}

	session.logger.Info("session started")

	return session
}

func (that *Session) ID() string {
	return that.id
}

// Move plays cell for the player to move. It reports whether the move was
// accepted; a refused move leaves the game as it was.
func (that *Session) Move(cell int) bool {
	log := that.logger.With("method", "Move", "cell", cell)

	player := that.game.Turn
	if err := tictactoe.MakeTurn(that.game, cell); err != nil {
		log.Debug("move refused", "error", err)
		return false
	}

	log.Info("move accepted", "player", player.String())

	switch {
	case that.game.IsWon():
		log.Info("game won", "winner", that.game.Winner.String(), "line", *that.game.WinningLine)
	case that.game.IsDraw():
		log.Info("game drawn")
	}

	return true
}

func (that *Session) Restart() {
	tictactoe.Restart(that.game)

	that.logger.Info("game restarted")
}

// State returns a copy of the current game.
func (that *Session) State() entity.Game {
	return that.game.Clone()
}

func (that *Session) Status() string {
	return that.game.StatusText()
}
