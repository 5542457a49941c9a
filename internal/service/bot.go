package service

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type moveEcho interface {
	ShowMove(move int)
}

// MoveSource - anything that can come up with the next move for a board.
type MoveSource interface {
	ReadMove(board entity.Board) (int, error)
}

// botService plays on the human's behalf: it picks a random free cell of the board it is shown.
type botService struct {
	echo moveEcho
	pick func(n int) int
}

func NewBotService(echo moveEcho) MoveSource {
	return &botService{
		echo: echo,
		pick: rand.Intn, //nolint: gosec // it's ok
	}
}

func (that *botService) ReadMove(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	move := availableCells[that.pick(len(availableCells))]
	that.echo.ShowMove(move)

	return move, nil
}
