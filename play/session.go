package play

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/game"
)

var Log = logrus.New()

// ErrQuit is returned by an Input when the player asks to stop
var ErrQuit = errors.New("quit")

// Input supplies the grid positions the player clicks. Positions may lie off
// the board; the session filters them.
type Input interface {
	Click() (x, y int, err error)
}

// Renderer draws the board once per turn
type Renderer interface {
	Render(board *game.Board, progress game.Progress) error
}

// Session drives a single game: it renders, reads a click, reveals it, and
// stops as soon as the game is won or lost
type Session struct {
	board    *game.Board
	input    Input
	renderer Renderer
	moves    int
}

func NewSession(board *game.Board, input Input, renderer Renderer) *Session {
	return &Session{
		board:    board,
		input:    input,
		renderer: renderer,
	}
}

// Moves returns the number of reveals accepted so far
func (session *Session) Moves() int {
	return session.moves
}

// Run plays until the game ends or the input quits, returning the progress at
// that point. Clicks are never read once the game has ended.
func (session *Session) Run() (game.Progress, error) {
	for {
		progress := session.board.Progress()
		if err := session.renderer.Render(session.board, progress); err != nil {
			return progress, errors.Wrap(err, "rendering board")
		}

		if progress != game.Ongoing {
			Log.WithFields(logrus.Fields{
				"progress": progress.String(),
				"moves":    session.moves,
			}).Info("game over")
			return progress, nil
		}

		x, y, err := session.input.Click()
		if errors.Is(err, ErrQuit) {
			Log.WithField("moves", session.moves).Info("player quit")
			return progress, nil
		}
		if err != nil {
			return progress, errors.Wrap(err, "reading input")
		}

		coordinate, ok := session.board.Size().NewCoordinate(x, y)
		if !ok {
			Log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("ignoring click outside the board")
			continue
		}

		opened := session.board.Reveal(coordinate)
		session.moves++
		Log.WithFields(logrus.Fields{
			"coordinate": coordinate.String(),
			"opened":     opened,
		}).Debug("revealed")
	}
}
