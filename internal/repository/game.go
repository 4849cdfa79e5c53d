package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const keyPrefix = "tictactoe:game:"

var ErrGameNotFound = errors.New("game not found")

// GameRepository stores the unfinished game of a session so it can be
// resumed after a restart.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type snapshotStore struct {
	client *redis.Client
	// zero keeps snapshots forever
	ttl time.Duration
}

func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &snapshotStore{
		client: client,
		ttl:    ttl,
	}
}

func snapshotKey(id string) string {
	return keyPrefix + id
}

// CreateOrUpdate overwrites the snapshot and restarts its expiry.
func (that *snapshotStore) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	payload, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game %s: %w", game.ID, err)
	}

	if err = that.client.Set(ctx, snapshotKey(game.ID), payload, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store game %s: %w", game.ID, err)
	}

	return nil
}

func (that *snapshotStore) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	payload, err := that.client.Get(ctx, snapshotKey(id)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, ErrGameNotFound
	case err != nil:
		return nil, fmt.Errorf("failed to read game %s: %w", id, err)
	}

	game := &entity.Game{}
	if err = json.Unmarshal(payload, game); err != nil {
		return nil, fmt.Errorf("failed to decode game %s: %w", id, err)
	}

	return game, nil
}

func (that *snapshotStore) DeleteByID(ctx context.Context, id string) error {
	removed, err := that.client.Del(ctx, snapshotKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to remove game %s: %w", id, err)
	}

	if removed == 0 {
		return ErrGameNotFound
	}

	return nil
}
