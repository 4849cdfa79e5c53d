package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var (
	errUnknownMark   = errors.New("unknown mark")
	errMarkCount     = errors.New("mark counts do not follow alternating turns")
	errTurnMismatch  = errors.New("turn does not match the board")
	errBoardFinished = errors.New("board is already finished")
)

func validateSnapshot(board entity.Board, turn entity.Mark) error {
	for i, cell := range board {
		if cell != entity.EmptyCell && !cell.IsPlayer() {
			return fmt.Errorf("%w %q at cell %d", errUnknownMark, cell, i)
		}
	}

	xCount, oCount := board.Count(entity.PlayerX), board.Count(entity.PlayerO)
	if xCount != oCount && xCount != oCount+1 {
		return fmt.Errorf("%w: X=%d O=%d", errMarkCount, xCount, oCount)
	}

	expected := entity.PlayerX
	if xCount > oCount {
		expected = entity.PlayerO
	}

	if turn != expected {
		return fmt.Errorf("%w: got %q, want %q", errTurnMismatch, turn, expected)
	}

	if board.Winner() != entity.EmptyCell || board.IsFull() {
		return errBoardFinished
	}

	return nil
}
