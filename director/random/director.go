package random

import (
	"github.com/they4kman/sweeper/game"
	"math/rand/v2"
)

// Director reveals closed cells in a random order fixed on first use
type Director struct {
	rng   *rand.Rand
	order []game.Coordinate
}

func New(rng *rand.Rand) *Director {
	return &Director{rng: rng}
}

func (director *Director) init(size game.Size) {
	director.order = make([]game.Coordinate, 0, size.Cells())
	for i := 0; i < size.Cells(); i++ {
		c, _ := size.FromIndex(i)
		director.order = append(director.order, c)
	}

	director.rng.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Choose(view game.View) (game.Coordinate, bool) {
	return director.Pick(view, nil)
}

// Pick returns the next closed cell for which skip (if given) is false
func (director *Director) Pick(view game.View, skip func(game.Coordinate) bool) (game.Coordinate, bool) {
	if director.order == nil {
		director.init(view.Size())
	}

	// Cells never close again, so open ones at the front can be dropped
	for len(director.order) > 0 {
		if open, _ := view.Visible(director.order[0]); !open {
			break
		}
		director.order = director.order[1:]
	}

	for _, c := range director.order {
		if open, _ := view.Visible(c); open {
			continue
		}
		if skip != nil && skip(c) {
			continue
		}
		return c, true
	}
	return game.Coordinate{}, false
}
