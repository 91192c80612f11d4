package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/play"
)

const (
	cellWidth = 2 // glyph plus a spacer column
	boardTop  = 1 // row 0 holds the status line
)

var numberColors = [9]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorPurple,
	tcell.ColorGray,
}

// Screen draws the board in a terminal and turns mouse clicks into grid
// positions
type Screen struct {
	screen tcell.Screen
	held   bool
}

func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "opening terminal")
	}
	return NewScreenFrom(screen)
}

// NewScreenFrom initialises an existing tcell screen, such as a simulation
// screen
func NewScreenFrom(screen tcell.Screen) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising terminal")
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	return &Screen{screen: screen}, nil
}

func (s *Screen) Close() {
	s.screen.Fini()
}

func cellStyle(cell game.Cell, exposeBombs bool) tcell.Style {
	style := tcell.StyleDefault
	switch cell.Status() {
	case game.OpenBomb:
		return style.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	case game.OpenClear:
		return style.Foreground(numberColors[cell.NeighboringBombs()]).Bold(true)
	case game.ClosedBomb:
		if exposeBombs {
			return style.Foreground(tcell.ColorRed)
		}
	}
	return style.Foreground(tcell.ColorSilver)
}

func progressStyle(progress game.Progress) tcell.Style {
	switch progress {
	case game.Won:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case game.Lost:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

func (s *Screen) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (s *Screen) Render(board *game.Board, progress game.Progress) error {
	s.screen.Clear()
	s.drawText(0, 0, progressStyle(progress), statusLine(board, progress))

	exposeBombs := progress != game.Ongoing
	for c, cell := range board.Cells() {
		s.screen.SetContent(c.X()*cellWidth, c.Y()+boardTop, game.Glyph(cell, exposeBombs), nil, cellStyle(cell, exposeBombs))
	}

	hint := "click a cell to reveal it, q to quit"
	if exposeBombs {
		hint = "press any key to exit"
	}
	s.drawText(0, board.Height()+boardTop+1, tcell.StyleDefault.Dim(true), hint)

	s.screen.Show()
	return nil
}

// gridPosition maps a terminal position to grid coordinates. Spacer columns
// and the status line map off the board.
func gridPosition(x, y int) (int, int) {
	if x < 0 || x%cellWidth != 0 {
		return -1, -1
	}
	return x / cellWidth, y - boardTop
}

func isQuit(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return event.Rune() == 'q'
	}
	return false
}

// Click blocks until the left mouse button goes down, returning the grid
// position under it, or play.ErrQuit when the player quits
func (s *Screen) Click() (int, int, error) {
	for {
		switch event := s.screen.PollEvent().(type) {
		case nil:
			return 0, 0, play.ErrQuit
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if isQuit(event) {
				return 0, 0, play.ErrQuit
			}
		case *tcell.EventMouse:
			pressed := event.Buttons()&tcell.Button1 != 0
			wasHeld := s.held
			s.held = pressed

			if pressed && !wasHeld {
				x, y := gridPosition(event.Position())
				return x, y, nil
			}
		}
	}
}

// Quit drains the pending events without blocking and reports whether one of
// them asks to quit. Mouse events are dropped.
func (s *Screen) Quit() bool {
	for s.screen.HasPendingEvent() {
		switch event := s.screen.PollEvent().(type) {
		case nil:
			return true
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if isQuit(event) {
				return true
			}
		}
	}
	return false
}

// WaitKey blocks until any key is pressed
func (s *Screen) WaitKey() {
	for {
		switch s.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}
