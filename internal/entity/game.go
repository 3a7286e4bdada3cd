package entity

import "fmt"

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

const BoardSize = 9

// Board holds the cells in row-major order: row = index / 3, col = index % 3.
type Board [BoardSize]Mark

// Line is a triple of cell indexes that wins when all three hold the same mark.
type Line [3]int

// WinLines are checked in this order: rows, columns, diagonals.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game is a snapshot of a single round.
type Game struct {
	Board       Board
	Turn        Mark
	Winner      Mark
	WinningLine *Line
	Status      Status
}

func NewGame() *Game {
	return &Game{
		Board:  Board{},
		Turn:   PlayerX,
		Winner: EmptyCell,
		Status: StatusInProgress,
	}
}

// Evaluate returns the mark and the first line in WinLines order whose three cells
// hold the same non-empty mark.
func Evaluate(board Board) (Mark, Line, bool) {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a, line, true
		}
	}

	return EmptyCell, Line{}, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) String() string {
	return string(that)
}

func CellIndex(row, col int) int {
	return row*3 + col
}

func CellPosition(cell int) (int, int) {
	return cell / 3, cell % 3
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDrawn
}

func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

// InWinningLine reports whether cell belongs to the line that decided the game.
func (that *Game) InWinningLine(cell int) bool {
	if that.WinningLine == nil {
		return false
	}

	for _, idx := range that.WinningLine {
		if idx == cell {
			return true
		}
	}

	return false
}

// Clone returns a copy that shares no memory with the receiver.
func (that *Game) Clone() Game {
	clone := *that
	if that.WinningLine != nil {
		line := *that.WinningLine
		clone.WinningLine = &line
	}

	return clone
}

// StatusText is the line shown under the board.
func (that *Game) StatusText() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("Winner: %s", that.Winner)
	case StatusDrawn:
		return "Draw!"
	default:
		return fmt.Sprintf("Next player: %s", that.Turn)
	}
}
