package application

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/config"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/testing/suite"
	"github.com/rocketscienceinc/tictactoe-client/transport/console"
)

func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()

	u, err := url.Parse(serverURL)
	require.NoError(t, err)

	return &config.Config{
		LogLevel: "debug",
		Server: config.Server{
			Scheme: u.Scheme,
			Host:   u.Hostname(),
			Port:   u.Port(),
		},
		Game: config.Game{MaxRounds: 5},
		Telemetry: config.Telemetry{
			ServiceName: "tictactoe-client-test",
		},
	}
}

func TestRun(t *testing.T) {
	t.Run("Plays a game until the server reports a draw", func(t *testing.T) {
		// Given: A server that calls a draw after the first move
		ctx, st := suite.New(t)
		st.Server.SetStatusAfter(1, entity.StatusDraw)

		var out bytes.Buffer

		// When: The player types a single move
		err := Run(ctx, st.Logger, testConfig(t, st.Server.URL), strings.NewReader("4\n"), &out)

		// Then: The transcript matches a full game and no request follows the final status
		require.NoError(t, err)

		opening := "Board:\n" + console.RenderBoard(entity.NewBoard())
		played := "Board:\n" + console.RenderBoard(entity.Board{{"", "", ""}, {"", "o", ""}, {"", "", ""}})
		expected := "ID: abc123\n" +
			"serverStarts response code: 200\n" +
			opening +
			"Make a move: " +
			played +
			played +
			"Draw!\n"
		assert.Equal(t, expected, out.String())
		assert.Equal(t, []int{4}, st.Server.Moves())
		assert.Equal(t, 4, st.Server.Count(http.MethodGet, "/game/:id"))
	})

	t.Run("Stops quietly after five rounds when the game never ends", func(t *testing.T) {
		// Given: A server that never reports a final status
		ctx, st := suite.New(t)

		var out bytes.Buffer

		// When: The player types more moves than the budget allows
		err := Run(ctx, st.Logger, testConfig(t, st.Server.URL), strings.NewReader("0\n1\n2\n3\n5\n6\n7\n"), &out)

		// Then: Exactly five moves are sent and the board is printed after each of them
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 5}, st.Server.Moves())
		assert.Equal(t, 6, strings.Count(out.String(), "Board:"))
		assert.NotContains(t, out.String(), entity.StatusDraw)
		assert.NotContains(t, out.String(), entity.StatusServerWon)
	})

	t.Run("Does not stop on Client won!", func(t *testing.T) {
		// Given: A server that claims the client won after the first move
		ctx, st := suite.New(t)
		st.Server.SetStatusAfter(1, entity.StatusClientWon)

		var out bytes.Buffer

		// When: Playing with enough input for the whole budget
		err := Run(ctx, st.Logger, testConfig(t, st.Server.URL), strings.NewReader("0\n1\n2\n3\n4\n"), &out)

		// Then: All five rounds are played
		require.NoError(t, err)
		assert.Len(t, st.Server.Moves(), 5)
		assert.NotContains(t, out.String(), entity.StatusClientWon)
	})

	t.Run("Does not ask the server to start when the client opens", func(t *testing.T) {
		// Given: A configuration where the client starts
		ctx, st := suite.New(t)
		st.Server.SetStatusAfter(1, entity.StatusServerWon)

		conf := testConfig(t, st.Server.URL)
		conf.Game.ClientStarts = true

		var out bytes.Buffer

		// When: Playing the game
		err := Run(ctx, st.Logger, conf, strings.NewReader("8\n"), &out)

		// Then: The serverstarts endpoint is never called
		require.NoError(t, err)
		assert.Zero(t, st.Server.Count(http.MethodPatch, "/game/:id/serverstarts"))
		assert.NotContains(t, out.String(), "serverStarts response code")
		assert.True(t, strings.HasSuffix(out.String(), "Server won!\n"))
	})

	t.Run("Plays until the server completes a row", func(t *testing.T) {
		// Given: A server that answers every move by taking the first free cell
		ctx, st := suite.New(t)
		st.Server.PlayServerMoves()

		var out bytes.Buffer

		// When: The player stays out of the server's way
		err := Run(ctx, st.Logger, testConfig(t, st.Server.URL), strings.NewReader("8\n7\n"), &out)

		// Then: The server wins on its third move and the game stops there
		require.NoError(t, err)
		assert.Equal(t, []int{8, 7}, st.Server.Moves())
		assert.Equal(t, entity.Board{{"x", "x", "x"}, {"", "", ""}, {"", "o", "o"}}, st.Server.Board())
		assert.True(t, strings.HasSuffix(out.String(), "Server won!\n"))
	})

	t.Run("Keeps going after the server refuses a move", func(t *testing.T) {
		// Given: A server that calls a draw after two moves
		ctx, st := suite.New(t)
		st.Server.SetStatusAfter(2, entity.StatusDraw)

		var out bytes.Buffer

		// When: The player repeats a taken cell
		err := Run(ctx, st.Logger, testConfig(t, st.Server.URL), strings.NewReader("4\n4\n"), &out)

		// Then: The refused move does not end the game
		require.NoError(t, err)
		assert.Equal(t, []int{4, 4}, st.Server.Moves())
		assert.True(t, strings.HasSuffix(out.String(), "Draw!\n"))
	})

	t.Run("Autoplay picks free cells without reading input", func(t *testing.T) {
		// Given: A partly filled board and autoplay enabled
		ctx, st := suite.New(t)
		st.Server.SetBoard(entity.Board{
			{"x", "o", "x"},
			{"", "x", "o"},
			{"o", "", ""},
		})
		st.Server.SetStatusAfter(2, entity.StatusServerWon)

		conf := testConfig(t, st.Server.URL)
		conf.Game.Autoplay = true

		var out bytes.Buffer

		// When: Playing with no input at all
		err := Run(ctx, st.Logger, conf, strings.NewReader(""), &out)

		// Then: Every move lands on a free cell and is echoed
		require.NoError(t, err)
		require.Len(t, st.Server.Moves(), 2)
		for _, move := range st.Server.Moves() {
			assert.Contains(t, []int{3, 7, 8}, move)
		}
		assert.Equal(t, 2, strings.Count(out.String(), "Make a move: "))
	})
}

func TestRun_Errors(t *testing.T) {
	t.Run("Returns invalid input error for a non-integer move", func(t *testing.T) {
		// Given: A running server
		ctx, st := suite.New(t)

		var out bytes.Buffer

		// When: The player types something that is not a number
		err := Run(ctx, st.Logger, testConfig(t, st.Server.URL), strings.NewReader("abc\n"), &out)

		// Then: The game fails before any move is sent
		require.ErrorIs(t, err, apperror.ErrInvalidInput)
		assert.Zero(t, st.Server.Count(http.MethodPost, "/game/:id/move"))
	})

	t.Run("Returns transport error when the server is unreachable", func(t *testing.T) {
		// Given: A configuration pointing at a closed port
		ctx, st := suite.New(t)
		conf := testConfig(t, "http://127.0.0.1:1")

		var out bytes.Buffer

		// When: Starting the game
		err := Run(ctx, st.Logger, conf, strings.NewReader("4\n"), &out)

		// Then: A transport error is returned and nothing is printed
		require.ErrorIs(t, err, apperror.ErrTransport)
		assert.Empty(t, out.String())
	})

	t.Run("Returns malformed response error for a bad board", func(t *testing.T) {
		// Given: A server whose board is not 3x3
		ctx, st := suite.New(t)
		st.Server.Override(http.MethodGet, "/game/:id", http.StatusOK,
			`{"matrixBoard":[["","",""]],"game":{"status":"Game in progress"}}`)

		var out bytes.Buffer

		// When: Playing the game
		err := Run(ctx, st.Logger, testConfig(t, st.Server.URL), strings.NewReader("4\n"), &out)

		// Then: The malformed response is reported
		require.ErrorIs(t, err, apperror.ErrMalformedResponse)
	})
}
