package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const DefaultMaxRounds = 5

// GameUseCase - drives one game on the remote server from creation to its end.
type GameUseCase interface {
	Play(ctx context.Context) error
}

type gameServerDep interface {
	NewGame(ctx context.Context) (*entity.Session, error)
	ServerStarts(ctx context.Context, session *entity.Session) (int, error)
	GetGame(ctx context.Context, session *entity.Session) (*entity.Game, error)
	MakeMove(ctx context.Context, session *entity.Session, move int) (*entity.MoveResult, error)
}

type gameViewDep interface {
	ShowSessionID(id string)
	ShowServerStartsCode(code int)
	ShowBoard(board entity.Board)
	ShowStatus(status string)
}

type moveReaderDep interface {
	ReadMove(board entity.Board) (int, error)
}

type Options struct {
	MaxRounds    int
	ClientStarts bool
}

type gameUseCase struct {
	logger *slog.Logger

	server gameServerDep
	view   gameViewDep
	moves  moveReaderDep

	maxRounds    int
	clientStarts bool
}

func NewGameUseCase(logger *slog.Logger, server gameServerDep, view gameViewDep, moves moveReaderDep, opts Options) GameUseCase {
	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	return &gameUseCase{
		logger:       logger.With("component", "game"),
		server:       server,
		view:         view,
		moves:        moves,
		maxRounds:    maxRounds,
		clientStarts: opts.ClientStarts,
	}
}

// Play creates a game, lets the server open it and then alternates human moves with
// status checks for at most maxRounds rounds. Running out of rounds is not an error.
func (that *gameUseCase) Play(ctx context.Context) error {
	session, err := that.startSession(ctx)
	if err != nil {
		return err
	}

	log := that.logger.With("game_id", session.ID)

	if !that.clientStarts {
		if err = that.requestServerStart(ctx, session); err != nil {
			return err
		}
	}

	if err = that.printBoard(ctx, session); err != nil {
		return err
	}

	for round := 1; round <= that.maxRounds; round++ {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		game, over, err := that.checkGameOver(ctx, session)
		if err != nil {
			return err
		}
		if over {
			return nil
		}

		if err = that.submitMove(ctx, session, game.Board); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		if err = that.printBoard(ctx, session); err != nil {
			return err
		}

		if _, over, err = that.checkGameOver(ctx, session); err != nil {
			return err
		}
		if over {
			return nil
		}
	}

	log.Debug("round budget exhausted without a final status", "rounds", that.maxRounds)

	return nil
}

func (that *gameUseCase) startSession(ctx context.Context) (*entity.Session, error) {
	session, err := that.server.NewGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	that.logger.Info("game created", "game_id", session.ID)
	that.view.ShowSessionID(session.ID)

	return session, nil
}

func (that *gameUseCase) requestServerStart(ctx context.Context, session *entity.Session) error {
	code, err := that.server.ServerStarts(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to request server start: %w", err)
	}

	that.view.ShowServerStartsCode(code)

	return nil
}

func (that *gameUseCase) printBoard(ctx context.Context, session *entity.Session) error {
	game, err := that.server.GetGame(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to fetch board: %w", err)
	}

	that.view.ShowBoard(game.Board)

	return nil
}

// checkGameOver fetches the game and, when its status is final, shows the board and the status.
func (that *gameUseCase) checkGameOver(ctx context.Context, session *entity.Session) (*entity.Game, bool, error) {
	game, err := that.server.GetGame(ctx, session)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check game status: %w", err)
	}

	switch outcome := game.Outcome(); outcome {
	case entity.OutcomeTerminal:
		that.logger.Info("game finished", "game_id", session.ID, "status", game.Status)
		that.view.ShowBoard(game.Board)
		that.view.ShowStatus(game.Status)

		return game, true, nil
	case entity.OutcomeUnrecognized:
		that.logger.Warn("status looks final but is not one the game stops on",
			"game_id", session.ID, "status", game.Status)
	case entity.OutcomeOngoing:
	}

	return game, false, nil
}

func (that *gameUseCase) submitMove(ctx context.Context, session *entity.Session, board entity.Board) error {
	move, err := that.moves.ReadMove(board)
	if err != nil {
		return fmt.Errorf("failed to read move: %w", err)
	}

	result, err := that.server.MakeMove(ctx, session, move)
	if err != nil {
		return fmt.Errorf("failed to submit move %d: %w", move, err)
	}

	if !result.Accepted() {
		that.logger.Warn("move rejected by server",
			"game_id", session.ID, "move", move, "status", result.StatusCode, "reply", result.Message)
	}

	return nil
}
