// Package session runs one local game: it owns the engine and reports every
// change to the presentation and audio collaborators.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/audio"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
)

var errFinishedSnapshot = errors.New("stored game is not in progress")

// Presenter draws the game. All methods are called from the goroutine that
// drives the session.
type Presenter interface {
	ShowMenu()
	ShowBoard()
	ClearBoard()
	RenderCell(cell int, mark entity.Mark)
	ShowTurn(mark entity.Mark)
	ShowOutcome(status entity.Status)
	PromptReplay(status entity.Status)
}

type engine interface {
	ApplyMove(cell int) (entity.MoveResult, error)
	Reset()
	Status() entity.Status
	CurrentPlayer() entity.Mark
	Board() entity.Board
	Load(board entity.Board, turn entity.Mark) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type Session struct {
	logger *slog.Logger

	id         string
	background bool

	engine    engine
	presenter Presenter
	sounds    audio.Player

	// nil disables resuming unfinished games
	gameRepo gameRepo
}

type Options struct {
	ID string
	// Background loops audio.CueBackground while the menu is shown.
	Background bool
}

func New(logger *slog.Logger, opts Options, engine engine, presenter Presenter, sounds audio.Player, gameRepo gameRepo) *Session {
	return &Session{
		logger:     logger.With("component", "session", "sessionID", opts.ID),
		id:         opts.ID,
		background: opts.Background,
		engine:     engine,
		presenter:  presenter,
		sounds:     sounds,
		gameRepo:   gameRepo,
	}
}

func (that *Session) ID() string {
	return that.id
}

// Open resumes a stored unfinished game or shows the menu.
func (that *Session) Open(ctx context.Context) {
	log := that.logger.With("method", "Open")

	game, err := that.loadGame(ctx)
	if err != nil {
		log.Warn("could not resume game", "error", err)
	}

	if game == nil {
		that.showMenu()
		return
	}

	that.presenter.ShowBoard()
	that.presenter.ClearBoard()
	for cell, mark := range game.Board {
		if mark != entity.EmptyCell {
			that.presenter.RenderCell(cell, mark)
		}
	}
	that.presenter.ShowTurn(that.engine.CurrentPlayer())

	log.Info("resumed game", "turn", that.engine.CurrentPlayer())
}

// StartGame leaves the menu and starts a fresh game.
func (that *Session) StartGame(ctx context.Context) {
	that.sounds.Stop()
	that.presenter.ShowBoard()
	that.resetGame(ctx)

	that.logger.Info("game started")
}

// HandleCell applies the current player's move to the cell and reports the
// result. A rejected move changes nothing and returns the engine's error.
func (that *Session) HandleCell(ctx context.Context, cell int) (entity.MoveResult, error) {
	log := that.logger.With("method", "HandleCell", "cell", cell)

	result, err := that.engine.ApplyMove(cell)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return result, fmt.Errorf("failed make turn: %w", err)
	}

	that.presenter.RenderCell(result.Cell, result.Mark)
	that.sounds.Play(audio.CueClick)

	switch {
	case result.Status.IsWon():
		that.finishGame(ctx, result.Status, audio.CueVictory)
		log.Info("game won", "winner", result.Status.Winner)
	case result.Status.IsDraw():
		that.finishGame(ctx, result.Status, audio.CueDraw)
		log.Info("game drawn")
	default:
		that.presenter.ShowTurn(that.engine.CurrentPlayer())
		that.saveGame(ctx)
	}

	return result, nil
}

// Replay handles the answer to the replay prompt.
func (that *Session) Replay(ctx context.Context, playAgain bool) {
	if playAgain {
		that.resetGame(ctx)
		return
	}

	that.showMenu()
}

// Close stops every sound.
func (that *Session) Close() {
	that.sounds.Stop()
}

func (that *Session) showMenu() {
	that.presenter.ShowMenu()

	if that.background {
		that.sounds.Loop(audio.CueBackground)
	}
}

func (that *Session) resetGame(ctx context.Context) {
	that.engine.Reset()
	that.presenter.ClearBoard()
	that.presenter.ShowTurn(that.engine.CurrentPlayer())
	that.deleteGame(ctx)
}

func (that *Session) finishGame(ctx context.Context, status entity.Status, cue audio.Cue) {
	that.sounds.Play(cue)
	that.presenter.ShowOutcome(status)
	that.deleteGame(ctx)
	that.presenter.PromptReplay(status)
}

func (that *Session) loadGame(ctx context.Context) (*entity.Game, error) {
	if that.gameRepo == nil {
		return nil, nil
	}

	game, err := that.gameRepo.GetByID(ctx, that.id)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if !game.Status.IsOngoing() {
		that.deleteGame(ctx)
		return nil, fmt.Errorf("%w: stored status %q", errFinishedSnapshot, game.Status.State)
	}

	if err = that.engine.Load(game.Board, game.Turn); err != nil {
		that.deleteGame(ctx)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	return game, nil
}

func (that *Session) saveGame(ctx context.Context) {
	if that.gameRepo == nil {
		return
	}

	game := &entity.Game{
		ID:     that.id,
		Board:  that.engine.Board(),
		Turn:   that.engine.CurrentPlayer(),
		Status: that.engine.Status(),
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		that.logger.Error("failed to save game", "method", "saveGame", "error", err)
	}
}

func (that *Session) deleteGame(ctx context.Context) {
	if that.gameRepo == nil {
		return
	}

	err := that.gameRepo.DeleteByID(ctx, that.id)
	if err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		that.logger.Error("failed to delete game", "method", "deleteGame", "error", err)
	}
}
