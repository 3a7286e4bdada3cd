package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrUnknownMode  = errors.New("unknown presentation mode")
	ErrUnknownLevel = errors.New("unknown log level")
)
