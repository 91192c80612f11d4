package game

import (
	"github.com/pkg/errors"
	"math"
	"math/rand/v2"
)

// Config describes the board to generate. It is built once by the driver and
// passed to NewBoard.
type Config struct {
	Size  `yaml:",inline"`
	Bombs int `yaml:"bombs"`

	// Seed for bomb placement; 0 picks a fresh random seed
	Seed uint64 `yaml:"seed"`
}

func NewConfig() Config {
	return Config{
		Size:  Size{Width: 30, Height: 16},
		Bombs: 99,
	}
}

// Validate checks the dimensions and that the bombs fit on the board
func (config Config) Validate() error {
	if config.Width < 1 || config.Height < 1 {
		return errors.Wrapf(ErrInvalidSize, "board must be at least 1x1, got %s", config.Size)
	}
	if config.Width > math.MaxInt/config.Height {
		return errors.Wrapf(ErrInvalidSize, "%s board has too many cells to count", config.Size)
	}
	if config.Bombs < 0 {
		return errors.Wrapf(ErrInvalidBombCount, "bomb count must not be negative, got %d", config.Bombs)
	}
	if config.Bombs > config.Cells() {
		return errors.Wrapf(ErrInvalidBombCount,
			"too many bombs: %d bombs do not fit in the %d cells of a %s board",
			config.Bombs, config.Cells(), config.Size)
	}
	return nil
}

func (config Config) newRand() (*rand.Rand, uint64) {
	seed := config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
