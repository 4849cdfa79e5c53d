package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

func newOngoingGame(id string) *entity.Game {
	return &entity.Game{
		ID:     id,
		Board:  entity.Board{entity.PlayerX, entity.EmptyCell, entity.EmptyCell, entity.EmptyCell, entity.PlayerO},
		Turn:   entity.PlayerX,
		Status: entity.Status{State: entity.StateOngoing},
	}
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, 0)

	// Given: an unfinished game
	game := newOngoingGame("123")

	// When: CreateOrUpdate is called twice with a move in between
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

	game.Board[8] = entity.PlayerX
	game.Turn = entity.PlayerO
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error is returned and the latest snapshot is stored
	require.NoError(t, err)

	stored, err := gameRepo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlayerX, stored.Board[8])
	assert.Equal(t, entity.PlayerO, stored.Turn)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		game := newOngoingGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		game := newOngoingGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned and the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestGameRepository_TTL(t *testing.T) {
	t.Run("Snapshot expires after the ttl", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a stored game
		game := newOngoingGame("123")

		// When: it is saved with a one hour ttl
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// Then: the key carries an expiry of at most an hour
		ttl, err := st.Storage.TTL(ctx, snapshotKey(game.ID)).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Hour)
	})

	t.Run("Zero ttl keeps the snapshot", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game without ttl
		game := newOngoingGame("456")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the key ttl is read
		ttl, err := st.Storage.TTL(ctx, snapshotKey(game.ID)).Result()

		// Then: redis reports no expiry
		require.NoError(t, err)
		assert.Equal(t, time.Duration(-1), ttl)
	})
}

func TestGameRepository_CorruptSnapshot(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, 0)

	// Given: a key holding something that is not a game
	require.NoError(t, st.Storage.Set(ctx, snapshotKey("bad"), "not json", 0).Err())

	// When: GetByID is called
	game, err := gameRepo.GetByID(ctx, "bad")

	// Then: a decode error is returned
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrGameNotFound)
	assert.Nil(t, game)
}
