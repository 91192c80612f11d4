package constraint

import (
	"fmt"
	"github.com/gammazero/deque"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/util/collections"
	"math/rand/v2"
	"slices"
	"strings"
)

// Director plays by deduction: it reveals cells proven safe, guesses the
// least risky cell when nothing can be proven, and falls back to a random
// cell not known to hold a bomb.
type Director struct {
	rng      *rand.Rand
	fallback *random.Director
	safe     *deque.Deque[game.Coordinate]
}

// Observation records that exactly numBombs of cells hold a bomb, as read off
// the open cell at origin
type Observation struct {
	origin   game.Coordinate
	numBombs int
	cells    collections.Set[game.Coordinate]
}

func (observation Observation) String() string {
	cells := make([]string, 0, len(observation.cells))
	for cell := range observation.cells {
		cells = append(cells, cell.String())
	}
	slices.Sort(cells)
	return fmt.Sprintf("Obs[%s, %d ε %s]", observation.origin, observation.numBombs, strings.Join(cells, ", "))
}

func New(rng *rand.Rand) *Director {
	return &Director{
		rng:      rng,
		fallback: random.New(rng),
		safe:     deque.New[game.Coordinate](),
	}
}

func (director *Director) Choose(view game.View) (game.Coordinate, bool) {
	if c, ok := director.nextSafe(view); ok {
		return c, true
	}

	observations := observe(view)
	bombs, safe := deduce(observations)

	size := view.Size()
	safeCells := make([]game.Coordinate, 0, safe.Len())
	for c := range safe {
		safeCells = append(safeCells, c)
	}
	slices.SortFunc(safeCells, func(a, b game.Coordinate) int {
		return size.Index(a) - size.Index(b)
	})
	for _, c := range safeCells {
		director.safe.PushBack(c)
	}
	if c, ok := director.nextSafe(view); ok {
		return c, true
	}

	if c, ok := director.leastRisky(observations, bombs); ok {
		return c, true
	}
	return director.fallback.Pick(view, bombs.Contains)
}

func (director *Director) nextSafe(view game.View) (game.Coordinate, bool) {
	for director.safe.Len() > 0 {
		c := director.safe.PopFront()
		if open, _ := view.Visible(c); !open {
			return c, true
		}
	}
	return game.Coordinate{}, false
}

// leastRisky picks among the cells touched by observations the one whose
// worst local bomb probability is lowest, breaking ties at random
func (director *Director) leastRisky(observations []*Observation, bombs collections.Set[game.Coordinate]) (game.Coordinate, bool) {
	risk := make(map[game.Coordinate]float64)
	for _, observation := range observations {
		unknown := observation.cells.Difference(bombs)
		if unknown.Len() == 0 {
			continue
		}
		remaining := observation.numBombs - observation.cells.Intersection(bombs).Len()
		probability := float64(remaining) / float64(unknown.Len())

		for c := range unknown {
			if past, seen := risk[c]; !seen || probability > past {
				risk[c] = probability
			}
		}
	}
	if len(risk) == 0 {
		return game.Coordinate{}, false
	}

	lowest := 2.0
	var candidates []game.Coordinate
	for c, probability := range risk {
		switch {
		case probability < lowest:
			lowest = probability
			candidates = append(candidates[:0], c)
		case probability == lowest:
			candidates = append(candidates, c)
		}
	}

	return candidates[director.rng.IntN(len(candidates))], true
}

// observe collects one observation per open safe cell that still borders
// closed cells
func observe(view game.View) []*Observation {
	size := view.Size()
	var observations []*Observation

	for i := 0; i < size.Cells(); i++ {
		origin, _ := size.FromIndex(i)
		open, numBombs := view.Visible(origin)
		if !open {
			continue
		}

		observation := &Observation{
			origin:   origin,
			numBombs: numBombs,
			cells:    make(collections.Set[game.Coordinate]),
		}
		for _, neighbor := range size.Adjacents(origin) {
			if neighborOpen, _ := view.Visible(neighbor); !neighborOpen {
				observation.cells.Add(neighbor)
			}
		}

		if observation.cells.Len() > 0 {
			observations = append(observations, observation)
		}
	}

	return observations
}

// deduce repeatedly applies the single-observation rules (all remaining
// cells are bombs, or none are) and the subset rule between pairs of
// observations until nothing new is learned
func deduce(observations []*Observation) (bombs, safe collections.Set[game.Coordinate]) {
	bombs = make(collections.Set[game.Coordinate])
	safe = make(collections.Set[game.Coordinate])

	unknown := func(observation *Observation) (collections.Set[game.Coordinate], int) {
		cells := observation.cells.Difference(bombs).Difference(safe)
		remaining := observation.numBombs - observation.cells.Intersection(bombs).Len()
		return cells, remaining
	}

	mark := func(cells collections.Set[game.Coordinate], known collections.Set[game.Coordinate]) bool {
		changed := false
		for c := range cells {
			if !known.Contains(c) {
				known.Add(c)
				changed = true
			}
		}
		return changed
	}

	for changed := true; changed; {
		changed = false

		for _, observation := range observations {
			cells, remaining := unknown(observation)
			if cells.Len() == 0 {
				continue
			}
			if remaining == 0 {
				changed = mark(cells, safe) || changed
			} else if remaining == cells.Len() {
				changed = mark(cells, bombs) || changed
			}
		}

		for _, inner := range observations {
			innerCells, innerRemaining := unknown(inner)
			if innerCells.Len() == 0 {
				continue
			}

			for _, outer := range observations {
				if outer == inner {
					continue
				}
				outerCells, outerRemaining := unknown(outer)
				if outerCells.Len() <= innerCells.Len() || innerCells.Difference(outerCells).Len() > 0 {
					continue
				}

				rest := outerCells.Difference(innerCells)
				restRemaining := outerRemaining - innerRemaining
				if restRemaining == 0 {
					changed = mark(rest, safe) || changed
				} else if restRemaining == rest.Len() {
					changed = mark(rest, bombs) || changed
				}
			}
		}
	}

	return bombs, safe
}
