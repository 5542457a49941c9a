package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/logger"
)

const maxWaitDuration = 30 * time.Second

const DefaultGameID = "abc123"

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Server *GameServer
}

// Request - a request the fake game server has received.
type Request struct {
	Method    string
	Route     string
	Path      string
	Body      []byte
	RequestID string
}

type reply struct {
	status      int
	contentType string
	body        string
}

// GameServer is an in-process stand-in for the tic-tac-toe game server. It referees the
// client's moves on its board; tests can script the reported status by the number of
// moves received, and can make it answer every move with one of its own.
type GameServer struct {
	URL string

	mu          sync.Mutex
	id          string
	board       entity.Board
	statuses    map[int]string
	serverPlays bool
	moves       []int
	requests    []Request
	overrides   map[string]reply
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	log := logger.New(io.Discard, slog.LevelDebug)

	server := NewGameServer()
	httpServer := httptest.NewServer(server.Handler())
	server.URL = httpServer.URL

	t.Cleanup(func() {
		httpServer.Close()
	})

	return ctx, &Suite{
		T:      t,
		Logger: log,
		Server: server,
	}
}

func NewGameServer() *GameServer {
	return &GameServer{
		id:        DefaultGameID,
		board:     entity.NewBoard(),
		statuses:  make(map[int]string),
		overrides: make(map[string]reply),
	}
}

func (that *GameServer) Handler() http.Handler {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(that.record, that.override)

	engine.POST("/newgame", that.newGame)
	engine.PATCH("/game/:id/serverstarts", that.serverStarts)
	engine.GET("/game/:id", that.getGame)
	engine.POST("/game/:id/move", that.makeMove)
	engine.PUT("/game/:id/move/:moveId", that.replaceMove)
	engine.DELETE("/game/:id/move/:moveId", that.undoMove)

	return engine
}

func (that *GameServer) SetID(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.id = id
}

func (that *GameServer) SetBoard(board entity.Board) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.board = cloneBoard(board)
}

// PlayServerMoves makes the server open the game on serverstarts and answer every accepted
// client move by taking the first free cell.
func (that *GameServer) PlayServerMoves() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.serverPlays = true
}

func (that *GameServer) Board() entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return cloneBoard(that.board)
}

// SetStatusAfter makes the server report status once it has received the given number of moves,
// whatever the board says.
func (that *GameServer) SetStatusAfter(moves int, status string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.statuses[moves] = status
}

// Override answers every request to the method and route (gin syntax, e.g. "/game/:id")
// with the given reply instead of the scripted one.
func (that *GameServer) Override(method, route string, status int, body string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	contentType := "text/plain; charset=utf-8"
	if len(body) > 0 && (body[0] == '{' || body[0] == '[') {
		contentType = "application/json; charset=utf-8"
	}

	that.overrides[method+" "+route] = reply{status: status, contentType: contentType, body: body}
}

func (that *GameServer) Moves() []int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]int(nil), that.moves...)
}

func (that *GameServer) Requests() []Request {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]Request(nil), that.requests...)
}

// Count returns how many requests hit the method and route.
func (that *GameServer) Count(method, route string) int {
	count := 0
	for _, req := range that.Requests() {
		if req.Method == method && req.Route == route {
			count++
		}
	}

	return count
}

func (that *GameServer) record(ctx *gin.Context) {
	var body []byte
	if ctx.Request.Body != nil {
		body, _ = io.ReadAll(ctx.Request.Body)
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	that.mu.Lock()
	that.requests = append(that.requests, Request{
		Method:    ctx.Request.Method,
		Route:     ctx.FullPath(),
		Path:      ctx.Request.URL.Path,
		Body:      body,
		RequestID: ctx.GetHeader("X-Request-Id"),
	})
	that.mu.Unlock()

	ctx.Next()
}

func (that *GameServer) override(ctx *gin.Context) {
	that.mu.Lock()
	scripted, ok := that.overrides[ctx.Request.Method+" "+ctx.FullPath()]
	that.mu.Unlock()

	if !ok {
		ctx.Next()
		return
	}

	ctx.Data(scripted.status, scripted.contentType, []byte(scripted.body))
	ctx.Abort()
}

func (that *GameServer) newGame(ctx *gin.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	ctx.JSON(http.StatusCreated, gin.H{"id": that.id})
}

func (that *GameServer) serverStarts(ctx *gin.Context) {
	if !that.known(ctx) {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.moves) > 0 || len(that.board.EmptyCells()) < entity.BoardSize*entity.BoardSize {
		ctx.String(http.StatusBadRequest, "Operation not allowed!")
		return
	}

	if that.serverPlays {
		that.playServerMove()
	}

	ctx.String(http.StatusOK, "OK")
}

func (that *GameServer) getGame(ctx *gin.Context) {
	if !that.known(ctx) {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	ctx.JSON(http.StatusOK, gin.H{
		"matrixBoard": cloneBoard(that.board),
		"game": gin.H{
			"id":          that.id,
			"status":      that.currentStatus(),
			"clientMoves": append([]int{}, that.moves...),
		},
	})
}

func (that *GameServer) makeMove(ctx *gin.Context) {
	if !that.known(ctx) {
		return
	}

	var req struct {
		Move *int `json:"move"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Move == nil {
		ctx.String(http.StatusBadRequest, "Move was not given!")
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves = append(that.moves, *req.Move)

	if err := placeMark(that.board, entity.PlayerClient, *req.Move); err != nil {
		ctx.String(http.StatusBadRequest, "Move not allowed!")
		return
	}

	if that.serverPlays {
		that.playServerMove()
	}

	ctx.String(http.StatusOK, that.currentStatusOrOK())
}

// playServerMove takes the first free cell for the server. Must be called with the lock held.
func (that *GameServer) playServerMove() {
	free := that.board.EmptyCells()
	if len(free) == 0 {
		return
	}

	_ = placeMark(that.board, entity.PlayerServer, free[0])
}

func (that *GameServer) replaceMove(ctx *gin.Context) {
	if !that.known(ctx) {
		return
	}

	ctx.String(http.StatusOK, "OK")
}

func (that *GameServer) undoMove(ctx *gin.Context) {
	if !that.known(ctx) {
		return
	}

	ctx.String(http.StatusOK, "OK")
}

func (that *GameServer) known(ctx *gin.Context) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if ctx.Param("id") != that.id {
		ctx.String(http.StatusNotFound, "Game not found!")
		return false
	}

	return true
}

// currentStatus must be called with the lock held.
func (that *GameServer) currentStatus() string {
	thresholds := make([]int, 0, len(that.statuses))
	for moves := range that.statuses {
		thresholds = append(thresholds, moves)
	}
	sort.Ints(thresholds)

	status := judge(that.board)
	for _, moves := range thresholds {
		if moves <= len(that.moves) {
			status = that.statuses[moves]
		}
	}

	return status
}

func (that *GameServer) currentStatusOrOK() string {
	status := that.currentStatus()
	if status == entity.StatusInProgress {
		return "OK"
	}

	return status
}
