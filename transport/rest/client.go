package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/validator"
)

const (
	instrumentationName = "github.com/rocketscienceinc/tictactoe-client/transport/rest"

	RequestIDHeader = "X-Request-Id"
)

const (
	routeNewGame      = "/newgame"
	routeServerStarts = "/game/:id/serverstarts"
	routeGame         = "/game/:id"
	routeMove         = "/game/:id/move"
	routeMoveByID     = "/game/:id/move/:moveId"
)

var tracer = otel.Tracer(instrumentationName)

// GameServer - the REST API of the tic-tac-toe game server.
type GameServer interface {
	NewGame(ctx context.Context) (*entity.Session, error)
	ServerStarts(ctx context.Context, session *entity.Session) (int, error)
	GetGame(ctx context.Context, session *entity.Session) (*entity.Game, error)
	MakeMove(ctx context.Context, session *entity.Session, move int) (*entity.MoveResult, error)

	ReplaceMove(ctx context.Context, session *entity.Session, moveID, move int) error
	UndoMove(ctx context.Context, session *entity.Session, moveID int) error
}

type gameServer struct {
	logger *slog.Logger

	serverURL string
	client    *http.Client
	requests  metric.Int64Counter
}

type moveRequest struct {
	Move int `json:"move"`
}

type newGameResponse struct {
	ID string `json:"id" validate:"required"`
}

type gameResponse struct {
	MatrixBoard entity.Board `json:"matrixBoard"`
	Game        *gameDTO     `json:"game" validate:"required"`
}

type gameDTO struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	MatrixBoard  entity.Board `json:"matrixBoard"`
	ServerStarts bool         `json:"serverStarts"`
	ServerMoves  []int        `json:"serverMoves"`
	ClientMoves  []int        `json:"clientMoves"`
}

type response struct {
	statusCode int
	body       []byte
}

// New creates a client for the game server at serverURL. A zero timeout leaves requests unbounded.
func New(logger *slog.Logger, serverURL string, timeout time.Duration) (GameServer, error) {
	requests, err := otel.Meter(instrumentationName).Int64Counter(
		"gameserver.requests",
		metric.WithDescription("Requests sent to the game server"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	return &gameServer{
		logger:    logger.With("component", "rest"),
		serverURL: strings.TrimRight(serverURL, "/"),
		client:    &http.Client{Timeout: timeout},
		requests:  requests,
	}, nil
}

func (that *gameServer) NewGame(ctx context.Context) (*entity.Session, error) {
	resp, err := that.do(ctx, "NewGame", http.MethodPost, routeNewGame, that.serverURL+"/newgame", nil)
	if err != nil {
		return nil, err
	}

	if err = resp.expectSuccess(); err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	var created newGameResponse
	if err = decode(resp.body, &created); err != nil {
		return nil, fmt.Errorf("could not read created game: %w", err)
	}

	return entity.NewSession(that.serverURL, created.ID), nil
}

// ServerStarts asks the server to open the game. The status code is returned as is, whatever it is.
func (that *gameServer) ServerStarts(ctx context.Context, session *entity.Session) (int, error) {
	resp, err := that.do(ctx, "ServerStarts", http.MethodPatch, routeServerStarts, gameURL(session, "/serverstarts"), nil)
	if err != nil {
		return 0, err
	}

	return resp.statusCode, nil
}

func (that *gameServer) GetGame(ctx context.Context, session *entity.Session) (*entity.Game, error) {
	resp, err := that.do(ctx, "GetGame", http.MethodGet, routeGame, gameURL(session, ""), nil)
	if err != nil {
		return nil, err
	}

	if err = resp.expectSuccess(); err != nil {
		return nil, fmt.Errorf("could not fetch game %s: %w", session.ID, err)
	}

	var fetched gameResponse
	if err = decode(resp.body, &fetched); err != nil {
		return nil, fmt.Errorf("could not read game %s: %w", session.ID, err)
	}

	game := fetched.toEntity()
	if err = validator.GetValidator().Struct(game); err != nil {
		return nil, fmt.Errorf("could not read game %s: %w: %w", session.ID, apperror.ErrMalformedResponse, err)
	}

	return game, nil
}

// MakeMove submits the move exactly as given. A rejected move is not an error: the reply is returned for the caller to judge.
func (that *gameServer) MakeMove(ctx context.Context, session *entity.Session, move int) (*entity.MoveResult, error) {
	resp, err := that.do(ctx, "MakeMove", http.MethodPost, routeMove, gameURL(session, "/move"), moveRequest{Move: move})
	if err != nil {
		return nil, err
	}

	return &entity.MoveResult{
		StatusCode: resp.statusCode,
		Message:    strings.TrimSpace(string(resp.body)),
	}, nil
}

// ReplaceMove rewrites the client's move number moveID and drops everything played after it.
func (that *gameServer) ReplaceMove(ctx context.Context, session *entity.Session, moveID, move int) error {
	target := gameURL(session, "/move/"+strconv.Itoa(moveID))

	resp, err := that.do(ctx, "ReplaceMove", http.MethodPut, routeMoveByID, target, moveRequest{Move: move})
	if err != nil {
		return err
	}

	if err = resp.expectSuccess(); err != nil {
		return fmt.Errorf("could not replace move %d: %w", moveID, err)
	}

	return nil
}

// UndoMove rewinds the game to the state before the client's move number moveID.
func (that *gameServer) UndoMove(ctx context.Context, session *entity.Session, moveID int) error {
	target := gameURL(session, "/move/"+strconv.Itoa(moveID))

	resp, err := that.do(ctx, "UndoMove", http.MethodDelete, routeMoveByID, target, nil)
	if err != nil {
		return err
	}

	if err = resp.expectSuccess(); err != nil {
		return fmt.Errorf("could not undo move %d: %w", moveID, err)
	}

	return nil
}

func (that *gameServer) do(ctx context.Context, operation, method, route, target string, payload any) (*response, error) {
	ctx, span := tracer.Start(ctx, "rest."+operation, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("http.route", route),
	))
	defer span.End()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("could not marshal %s request: %w", operation, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("could not build %s request: %w", operation, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	log := that.logger.With("operation", operation, "request_id", requestID)
	log.Debug("sending request", "method", method, "url", target)

	resp, err := that.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		that.count(ctx, method, route, 0)
		log.Error("request failed", "error", err)

		return nil, fmt.Errorf("%w: %s %s: %w", apperror.ErrTransport, method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not read response")

		return nil, fmt.Errorf("%w: reading %s response: %w", apperror.ErrTransport, operation, err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	that.count(ctx, method, route, resp.StatusCode)
	log.Debug("received response", "status", resp.StatusCode, "bytes", len(data))

	return &response{statusCode: resp.StatusCode, body: data}, nil
}

func (that *gameServer) count(ctx context.Context, method, route string, statusCode int) {
	that.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.response.status_code", statusCode),
	))
}

func (that *response) expectSuccess() error {
	if that.statusCode >= http.StatusOK && that.statusCode < http.StatusMultipleChoices {
		return nil
	}

	return fmt.Errorf("%w: %d %s", apperror.ErrUnexpectedStatus, that.statusCode, strings.TrimSpace(string(that.body)))
}

func (that *gameResponse) toEntity() *entity.Game {
	board := that.MatrixBoard
	if board == nil {
		board = that.Game.MatrixBoard
	}

	return &entity.Game{
		ID:           that.Game.ID,
		Status:       that.Game.Status,
		Board:        board,
		ServerStarts: that.Game.ServerStarts,
		ServerMoves:  that.Game.ServerMoves,
		ClientMoves:  that.Game.ClientMoves,
	}
}

func decode(data []byte, target any) error {
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err)
	}

	if err := validator.GetValidator().Struct(target); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err)
	}

	return nil
}

func gameURL(session *entity.Session, suffix string) string {
	return session.ServerURL + "/game/" + url.PathEscape(session.ID) + suffix
}
