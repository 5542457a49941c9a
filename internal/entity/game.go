package entity

import (
	"strings"
)

const (
	StatusInProgress = "Game in progress"
	StatusServerWon  = "Server won!"
	StatusDraw       = "Draw!"
	StatusClientWon  = "Client won!"

	PlayerServer = "x"
	PlayerClient = "o"

	EmptyCell = ""

	BoardSize = 3
)

type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeTerminal
	// OutcomeUnrecognized marks a status that reads like a finished game but is not
	// one of the terminal values the loop stops on.
	OutcomeUnrecognized
)

func (that Outcome) String() string {
	switch that {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeTerminal:
		return "terminal"
	case OutcomeUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Board - the server's matrix view of the game, rows first.
type Board [][]string

func NewBoard() Board {
	board := make(Board, BoardSize)
	for i := range board {
		board[i] = make([]string, BoardSize)
	}

	return board
}

// EmptyCells returns the indexes (row*3+col) of the cells nobody has taken yet.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize*BoardSize)
	for row, line := range that {
		for col, cell := range line {
			if cell == EmptyCell {
				cells = append(cells, row*len(line)+col)
			}
		}
	}

	return cells
}

type Game struct {
	ID           string `json:"id"`
	Status       string `json:"status" validate:"required"`
	Board        Board  `json:"board" validate:"len=3,dive,len=3"`
	ServerStarts bool   `json:"serverStarts"`
	ServerMoves  []int  `json:"serverMoves"`
	ClientMoves  []int  `json:"clientMoves"`
}

// Outcome classifies the status reported by the server.
func (that *Game) Outcome() Outcome {
	switch that.Status {
	case StatusServerWon, StatusDraw:
		return OutcomeTerminal
	case StatusInProgress:
		return OutcomeOngoing
	}

	if strings.HasSuffix(strings.ToLower(that.Status), "won!") {
		return OutcomeUnrecognized
	}

	return OutcomeOngoing
}

func (that *Game) IsFinished() bool {
	return that.Outcome() == OutcomeTerminal
}

// MoveResult - the server's reply to a submitted move.
type MoveResult struct {
	StatusCode int
	Message    string
}

func (that *MoveResult) Accepted() bool {
	return that.StatusCode >= 200 && that.StatusCode < 300
}
