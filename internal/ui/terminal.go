// Package ui draws the game in the terminal with tview.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	pageMenu   = "menu"
	pageGame   = "game"
	pageReplay = "replay"
)

const (
	labelYes = "Yes"
	labelNo  = "No"
)

const centerCell = 4

var errNoScreen = errors.New("terminal screen is not running")

// Controller receives the player's input.
type Controller interface {
	StartGame(ctx context.Context)
	HandleCell(ctx context.Context, cell int) (entity.MoveResult, error)
	Replay(ctx context.Context, playAgain bool)
}

// Terminal is the presentation of a session. Every method must be called
// before Run or from the tview event loop.
type Terminal struct {
	logger *slog.Logger

	app       *tview.Application
	pages     *tview.Pages
	menu      *tview.List
	cells     [entity.BoardSize]*tview.Button
	indicator *tview.TextView

	ctx        context.Context
	controller Controller

	mu     sync.Mutex
	screen tcell.Screen
}

func New(logger *slog.Logger) *Terminal {
	that := &Terminal{
		logger: logger.With("component", "ui"),
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		ctx:    context.Background(),
	}

	that.pages.
		AddPage(pageMenu, that.newMenu(), true, true).
		AddPage(pageGame, that.newBoard(), true, false)

	that.app.
		SetRoot(that.pages, true).
		EnableMouse(true).
		SetInputCapture(that.captureKey).
		SetBeforeDrawFunc(func(screen tcell.Screen) bool {
			that.setScreen(screen)
			return false
		})

	return that
}

// Bind sets the controller that receives menu, cell and replay input.
func (that *Terminal) Bind(controller Controller) {
	that.controller = controller
}

// Run blocks until the player quits or ctx is cancelled.
func (that *Terminal) Run(ctx context.Context) error {
	that.ctx = ctx

	stop := context.AfterFunc(ctx, that.app.Stop)
	defer stop()

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("failed to run terminal: %w", err)
	}

	return nil
}

// Beep rings the terminal bell.
func (that *Terminal) Beep() error {
	that.mu.Lock()
	screen := that.screen
	that.mu.Unlock()

	if screen == nil {
		return errNoScreen
	}

	return screen.Beep()
}

func (that *Terminal) ShowMenu() {
	that.pages.SwitchToPage(pageMenu)
	that.app.SetFocus(that.menu)
}

func (that *Terminal) ShowBoard() {
	that.pages.SwitchToPage(pageGame)
	that.app.SetFocus(that.cells[centerCell])
}

func (that *Terminal) ClearBoard() {
	for _, button := range that.cells {
		paintCell(button, entity.EmptyCell)
	}

	that.indicator.SetText("")
	that.app.SetFocus(that.cells[centerCell])
}

func (that *Terminal) RenderCell(cell int, mark entity.Mark) {
	if cell < 0 || cell >= len(that.cells) {
		return
	}

	paintCell(that.cells[cell], mark)
}

func (that *Terminal) ShowTurn(mark entity.Mark) {
	that.indicator.SetText(turnText(mark)).SetTextColor(markColor(mark))
}

func (that *Terminal) ShowOutcome(status entity.Status) {
	text, color := outcomeText(status)
	that.indicator.SetText(text).SetTextColor(color)
}

func (that *Terminal) PromptReplay(status entity.Status) {
	modal := tview.NewModal().
		SetText(replayText(status)).
		AddButtons([]string{labelYes, labelNo}).
		SetDoneFunc(func(_ int, label string) {
			that.pages.RemovePage(pageReplay)
			if that.controller != nil {
				that.controller.Replay(that.ctx, label == labelYes)
			}
		})

	that.pages.AddPage(pageReplay, modal, false, true)
	that.app.SetFocus(modal)
}

func (that *Terminal) newMenu() tview.Primitive {
	title := tview.NewTextView().
		SetText("Tic Tac Toe").
		SetTextAlign(tview.AlignCenter)

	that.menu = tview.NewList().
		ShowSecondaryText(false).
		AddItem("Start Game", "", 's', that.startGame).
		AddItem("Quit", "", 'q', that.app.Stop)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(title, 2, 0, false).
		AddItem(that.menu, 2, 0, true).
		AddItem(nil, 0, 1, false)

	return centered(layout, 20)
}

func (that *Terminal) newBoard() tview.Primitive {
	grid := tview.NewGrid().
		SetRows(3, 3, 3).
		SetColumns(7, 7, 7).
		SetBorders(true)

	for cell := range that.cells {
		button := tview.NewButton("")
		button.SetSelectedFunc(func() {
			that.selectCell(cell)
		})
		paintCell(button, entity.EmptyCell)

		row, col := entity.RowCol(cell)
		grid.AddItem(button, row, col, 1, 1, 0, 0, cell == centerCell)
		that.cells[cell] = button
	}

	that.indicator = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(grid, 13, 0, true).
		AddItem(that.indicator, 2, 0, false).
		AddItem(nil, 0, 1, false)

	return centered(layout, 25)
}

func (that *Terminal) captureKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
		that.app.Stop()
		return nil
	}

	if name, _ := that.pages.GetFrontPage(); name != pageGame {
		return event
	}

	switch event.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		next := neighbor(that.focusedCell(), event.Key())
		that.app.SetFocus(that.cells[next])
		return nil
	case tcell.KeyRune:
		if cell, ok := cellForRune(event.Rune()); ok {
			that.selectCell(cell)
			return nil
		}
	}

	return event
}

func (that *Terminal) startGame() {
	if that.controller != nil {
		that.controller.StartGame(that.ctx)
	}
}

func (that *Terminal) selectCell(cell int) {
	if that.controller == nil {
		return
	}

	if _, err := that.controller.HandleCell(that.ctx, cell); err != nil {
		that.logger.Debug("cell not taken", "method", "selectCell", "cell", cell, "error", err)
	}
}

func (that *Terminal) focusedCell() int {
	focus := that.app.GetFocus()
	for cell, button := range that.cells {
		if focus == button {
			return cell
		}
	}

	return centerCell
}

func (that *Terminal) setScreen(screen tcell.Screen) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.screen = screen
}

func paintCell(button *tview.Button, mark entity.Mark) {
	color := markColor(mark)

	button.SetLabel(string(mark))
	button.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(color))
	button.SetActivatedStyle(tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(color))
}

func centered(p tview.Primitive, width int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(p, width, 0, true).
		AddItem(nil, 0, 1, false)
}
