package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/audio"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/session"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/ui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessionID := conf.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var gameRepo repository.GameRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			log.Warn("could not connect to redis storage, games will not be resumed", "error", err)
		} else {
			defer func() {
				if err = redisStorage.Close(); err != nil {
					log.Error("could not close redis storage", "error", err)
				}
			}()

			gameRepo = repository.NewGameRepository(redisStorage.Connection, conf.Redis.SnapshotTTL)
		}
	}

	terminal := ui.New(logger)

	var sounds audio.Player = audio.NewNop()
	if !conf.Audio.Mute {
		sounds = audio.NewBeeper(logger, terminal.Beep, audio.DefaultBeeps)
	}

	sess := session.New(logger, session.Options{
		ID:         sessionID,
		Background: !conf.Audio.QuietMenu,
	}, tictactoe.NewEngine(), terminal, sounds, gameRepo)
	defer sess.Close()

	terminal.Bind(sess)
	sess.Open(ctx)

	log.Info("Starting terminal", "sessionID", sessionID)
	if err := terminal.Run(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	log.Info("Terminal closed, shutting down")
	return nil
}
