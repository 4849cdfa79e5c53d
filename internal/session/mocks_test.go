package session

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe/internal/audio"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type mockPresenter struct {
	mock.Mock
}

func (that *mockPresenter) ShowMenu() {
	that.Called()
}

func (that *mockPresenter) ShowBoard() {
	that.Called()
}

func (that *mockPresenter) ClearBoard() {
	that.Called()
}

func (that *mockPresenter) RenderCell(cell int, mark entity.Mark) {
	that.Called(cell, mark)
}

func (that *mockPresenter) ShowTurn(mark entity.Mark) {
	that.Called(mark)
}

func (that *mockPresenter) ShowOutcome(status entity.Status) {
	that.Called(status)
}

func (that *mockPresenter) PromptReplay(status entity.Status) {
	that.Called(status)
}

type mockSounds struct {
	mock.Mock
}

func (that *mockSounds) Play(cue audio.Cue) {
	that.Called(cue)
}

func (that *mockSounds) Loop(cue audio.Cue) {
	that.Called(cue)
}

func (that *mockSounds) Stop() {
	that.Called()
}

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}
