package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// MakeTurn places the mark of the player to move into cell, flips the turn and
// settles the outcome. A refused turn leaves the game untouched.
func MakeTurn(gameInstance *entity.Game, cell int) error {
	if err := validateMove(gameInstance, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[cell] = gameInstance.Turn
	gameInstance.Turn = gameInstance.Turn.Opponent()

	updateGameStatus(gameInstance)

	return nil
}

// Restart puts the game back to its initial state.
func Restart(gameInstance *entity.Game) {
	*gameInstance = *entity.NewGame()
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, cell int) error {
	if !gameInstance.IsInProgress() {
		return apperror.ErrGameFinished
	}

	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game) {
	if winner, line, ok := entity.Evaluate(gameInstance.Board); ok {
		gameInstance.Winner = winner
		gameInstance.WinningLine = &line
		gameInstance.Status = entity.StatusWon

		return
	}

	if gameInstance.Board.IsFull() {
		gameInstance.Status = entity.StatusDrawn
	}
}
