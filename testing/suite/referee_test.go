package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const (
	x = entity.PlayerServer
	o = entity.PlayerClient
	e = entity.EmptyCell
)

func TestReferee_placeMark(t *testing.T) {
	t.Run("Places the mark on the cell", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: the client takes the centre
		err := placeMark(board, o, 4)

		// Then: only the centre is taken
		require.NoError(t, err)
		require.Equal(t, entity.Board{{e, e, e}, {e, o, e}, {e, e, e}}, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with the server in the corner
		board := entity.Board{{x, e, e}, {e, e, e}, {e, e, e}}

		// When: the client tries the same corner
		err := placeMark(board, o, 0)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, ErrCellOccupied)
		require.Equal(t, entity.Board{{x, e, e}, {e, e, e}, {e, e, e}}, board)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: a cell past the board is passed
		err := placeMark(board, o, 20)

		// Then: ErrInvalidCell is returned
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: a negative cell is passed
		err := placeMark(board, o, -1)

		// Then: ErrInvalidCell is returned
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a board the server has already won
		board := entity.Board{{x, x, x}, {e, o, e}, {e, o, e}}

		// When: the client tries to move
		err := placeMark(board, o, 3)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, ErrGameFinished)
	})
}

func TestReferee_judge(t *testing.T) {
	tests := []struct {
		name     string
		board    entity.Board
		expected string
	}{
		{
			name:     "Server wins a column",
			board:    entity.Board{{x, o, e}, {x, o, e}, {x, e, e}},
			expected: entity.StatusServerWon,
		},
		{
			name:     "Client wins a diagonal",
			board:    entity.Board{{o, x, x}, {e, o, e}, {x, e, o}},
			expected: entity.StatusClientWon,
		},
		{
			name:     "Ongoing game",
			board:    entity.Board{{x, o, x}, {e, o, e}, {x, e, e}},
			expected: entity.StatusInProgress,
		},
		{
			name:     "Full board without a line is a draw",
			board:    entity.Board{{o, x, o}, {o, x, x}, {x, o, x}},
			expected: entity.StatusDraw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: judging the board
			status := judge(tt.board)

			// Then: the status is the one a server would report
			assert.Equal(t, tt.expected, status)
		})
	}
}
