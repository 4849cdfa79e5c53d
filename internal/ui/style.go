package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	colorWin  = tcell.ColorGreen
	colorDraw = tcell.ColorOrange
)

// markColor returns the color a mark is drawn with.
func markColor(mark entity.Mark) tcell.Color {
	switch mark {
	case entity.PlayerX:
		return tcell.ColorBlue
	case entity.PlayerO:
		return tcell.ColorRed
	default:
		return tcell.ColorDefault
	}
}

func turnText(mark entity.Mark) string {
	return fmt.Sprintf("Player %s's Turn", mark)
}

// outcomeText returns the indicator text and color for a finished game.
func outcomeText(status entity.Status) (string, tcell.Color) {
	if status.IsWon() {
		return fmt.Sprintf("Player %s Wins!", status.Winner), colorWin
	}

	return "It's a Draw!", colorDraw
}

func replayText(status entity.Status) string {
	if status.IsWon() {
		return fmt.Sprintf("Game Over\n\nPlayer %s wins!\nDo you want to play again?", status.Winner)
	}

	return "Game Over\n\nIt's a draw!\nDo you want to play again?"
}

// cellForRune maps the keys 1-9 onto the board row by row.
func cellForRune(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}

	return int(r - '1'), true
}

// neighbor returns the cell reached from cell with an arrow key. Moves off
// the board stay in place.
func neighbor(cell int, key tcell.Key) int {
	row, col := entity.RowCol(cell)

	switch key {
	case tcell.KeyUp:
		row--
	case tcell.KeyDown:
		row++
	case tcell.KeyLeft:
		col--
	case tcell.KeyRight:
		col++
	default:
		return cell
	}

	if row < 0 || row > 2 || col < 0 || col > 2 {
		return cell
	}

	return row*3 + col
}
