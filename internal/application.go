package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-client/internal/config"
	"github.com/rocketscienceinc/tictactoe-client/internal/service"
	"github.com/rocketscienceinc/tictactoe-client/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-client/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-client/transport/console"
	"github.com/rocketscienceinc/tictactoe-client/transport/rest"
)

// RunApp - runs the application on the process console until the game ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run plays one game against the configured server, reading moves from in and printing to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	shutdown, err := telemetry.Init(ctx, conf.Telemetry)
	if err != nil {
		return fmt.Errorf("could not init telemetry: %w", err)
	}

	defer func() {
		if err = shutdown(context.Background()); err != nil {
			log.Error("could not shut down telemetry", "error", err)
		}
	}()

	serverURL := conf.Server.GetServerURL()

	gameServer, err := rest.New(logger, serverURL, conf.Server.Timeout)
	if err != nil {
		return fmt.Errorf("could not create game server client: %w", err)
	}

	view := console.New(in, out, conf.Console.Color)

	var moves service.MoveSource = view
	if conf.Game.Autoplay {
		moves = service.NewBotService(view)
	}

	gameUseCase := usecase.NewGameUseCase(logger, gameServer, view, moves, usecase.Options{
		MaxRounds:    conf.Game.MaxRounds,
		ClientStarts: conf.Game.ClientStarts,
	})

	log.Info("Starting game", "server", serverURL, "autoplay", conf.Game.Autoplay)

	if err = gameUseCase.Play(ctx); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}
