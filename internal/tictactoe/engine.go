// Package tictactoe holds the game-state engine: the board, the player to
// move and the win/draw rules.
package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Engine owns the state of a single game. It is not safe for concurrent use;
// the session that embeds it serialises all calls.
type Engine struct {
	board  entity.Board
	turn   entity.Mark
	status entity.Status
}

// NewEngine returns an engine with an empty board and X to move.
func NewEngine() *Engine {
	engine := &Engine{}
	engine.Reset()

	return engine
}

// Reset reinitialises the whole game.
func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.status = entity.Status{State: entity.StateOngoing}
}

// ApplyMove places the current player's mark on the cell. A rejected move
// leaves the engine untouched and returns an error wrapping apperror.ErrInvalidMove.
func (that *Engine) ApplyMove(cell int) (entity.MoveResult, error) {
	result := entity.MoveResult{
		Cell:   cell,
		Status: that.status,
	}

	if err := that.validateMove(cell); err != nil {
		return result, fmt.Errorf("%w: cell %d: %w", apperror.ErrInvalidMove, cell, err)
	}

	mark := that.turn
	that.board[cell] = mark
	that.updateGameStatus(mark)

	result.Accepted = true
	result.Mark = mark
	result.Status = that.status

	return result, nil
}

// Status returns the current game status.
func (that *Engine) Status() entity.Status {
	return that.status
}

// CurrentPlayer returns the mark of the player to move, or the winner once
// the game is won.
func (that *Engine) CurrentPlayer() entity.Mark {
	return that.turn
}

// Board returns a copy of the board.
func (that *Engine) Board() entity.Board {
	return that.board
}

// Load replaces the whole state with a stored unfinished game.
func (that *Engine) Load(board entity.Board, turn entity.Mark) error {
	if err := validateSnapshot(board, turn); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidSnapshot, err)
	}

	that.board = board
	that.turn = turn
	that.status = entity.Status{State: entity.StateOngoing}

	return nil
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(cell int) error {
	if that.status.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.board) {
		return apperror.ErrInvalidCell
	}

	if that.board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move. The win check runs
// before the draw check, so filling the last cell with a line is a win.
func (that *Engine) updateGameStatus(mark entity.Mark) {
	switch {
	case that.board.Winner() == mark:
		that.status = entity.Status{State: entity.StateWon, Winner: mark}
	case that.board.IsFull():
		that.status = entity.Status{State: entity.StateDraw}
	default:
		that.status = entity.Status{State: entity.StateOngoing}
		that.turn = mark.Opponent()
	}
}
