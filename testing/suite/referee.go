package suite

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrGameFinished = errors.New("game is already finished")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// placeMark puts mark on the cell (row*3+col) if the game is still open and the cell is free.
func placeMark(board entity.Board, mark string, cell int) error {
	if judge(board) != entity.StatusInProgress {
		return ErrGameFinished
	}

	if cell < 0 || cell >= entity.BoardSize*entity.BoardSize {
		return ErrInvalidCell
	}

	row, col := cell/entity.BoardSize, cell%entity.BoardSize
	if board[row][col] != entity.EmptyCell {
		return ErrCellOccupied
	}

	board[row][col] = mark

	return nil
}

// judge - the status a real server would report for the board.
func judge(board entity.Board) string {
	for _, combo := range WinCombos {
		a, b, c := cellAt(board, combo[0]), cellAt(board, combo[1]), cellAt(board, combo[2])
		if a != entity.EmptyCell && a == b && b == c {
			if a == entity.PlayerServer {
				return entity.StatusServerWon
			}

			return entity.StatusClientWon
		}
	}

	if len(board.EmptyCells()) == 0 {
		return entity.StatusDraw
	}

	return entity.StatusInProgress
}

func cellAt(board entity.Board, cell int) string {
	return board[cell/entity.BoardSize][cell%entity.BoardSize]
}

func cloneBoard(board entity.Board) entity.Board {
	clone := make(entity.Board, len(board))
	for i, row := range board {
		clone[i] = append([]string(nil), row...)
	}

	return clone
}
