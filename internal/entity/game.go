package entity

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	StateOngoing State = "ongoing"
	StateWon     State = "won"
	StateDraw    State = "draw"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// WinCombos lists every line that wins the game: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Mark is the content of a cell and also identifies a player.
type Mark string

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is the 3x3 grid addressed row-major by index 0-8.
type Board [BoardSize]Mark

// IsFull reports whether no empty cell is left.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// Count returns how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}
	return n
}

// Winner returns the mark that completed a line, or EmptyCell.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}
	return EmptyCell
}

// RowCol converts a cell index into its row and column.
func RowCol(cell int) (int, int) {
	return cell / 3, cell % 3
}

type State string

// Status is derived from the board after every move.
type Status struct {
	State  State `json:"state"`
	Winner Mark  `json:"winner,omitempty"`
}

func (that Status) IsOngoing() bool {
	return that.State == StateOngoing
}

func (that Status) IsWon() bool {
	return that.State == StateWon
}

func (that Status) IsDraw() bool {
	return that.State == StateDraw
}

func (that Status) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

// MoveResult describes the outcome of a single move attempt.
type MoveResult struct {
	Accepted bool   `json:"accepted"`
	Status   Status `json:"status"`
	Cell     int    `json:"cell"`
	Mark     Mark   `json:"mark,omitempty"`
}

// Game is the stored snapshot of an unfinished game.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"player_turn"`
	Status Status `json:"status"`
}
