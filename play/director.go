package play

import (
	"github.com/they4kman/sweeper/game"
	"time"
)

// DirectorInput lets a computer player supply the clicks, pausing Delay
// before each one
type DirectorInput struct {
	Director game.Director
	View     game.View
	Delay    time.Duration

	// Quit, if set, is checked before every move and stops the game when it
	// returns true
	Quit func() bool
}

func (input *DirectorInput) Click() (int, int, error) {
	if input.Delay > 0 {
		time.Sleep(input.Delay)
	}
	if input.Quit != nil && input.Quit() {
		return 0, 0, ErrQuit
	}

	c, ok := input.Director.Choose(input.View)
	if !ok {
		return 0, 0, ErrQuit
	}
	return c.X(), c.Y(), nil
}
