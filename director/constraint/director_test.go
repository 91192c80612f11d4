package constraint

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/util/collections"
	"math/rand/v2"
	"testing"
)

func parse(t *testing.T, layout string) *game.Board {
	t.Helper()
	board, err := game.ParseLayout(layout)
	require.NoError(t, err)
	return board
}

func reveal(t *testing.T, board *game.Board, x, y int) {
	t.Helper()
	c, ok := board.Size().NewCoordinate(x, y)
	require.True(t, ok)
	board.Reveal(c)
}

func coordinates(t *testing.T, size game.Size, points ...[2]int) collections.Set[game.Coordinate] {
	t.Helper()
	set := make(collections.Set[game.Coordinate])
	for _, point := range points {
		c, ok := size.NewCoordinate(point[0], point[1])
		require.True(t, ok)
		set.Add(c)
	}
	return set
}

func TestDeduceSingleObservations(t *testing.T) {
	board := parse(t, ".*..")
	reveal(t, board, 0, 0)
	reveal(t, board, 2, 0)

	bombs, safe := deduce(observe(board))
	assert.Equal(t, coordinates(t, board.Size(), [2]int{1, 0}), bombs)
	assert.Equal(t, coordinates(t, board.Size(), [2]int{3, 0}), safe)
}

func TestDeduceSubsets(t *testing.T) {
	board := parse(t, `
		....
		*...
		....
	`)
	reveal(t, board, 3, 1)

	observations := observe(board)
	require.Len(t, observations, 3)
	assert.Equal(t, "Obs[(1, 0), 1 ε (0, 0), (0, 1)]", observations[0].String())

	bombs, safe := deduce(observations)
	assert.Equal(t, coordinates(t, board.Size(), [2]int{0, 1}), bombs)
	assert.Equal(t, coordinates(t, board.Size(), [2]int{0, 0}, [2]int{0, 2}), safe)
}

func TestChooseSolvesWithoutGuessing(t *testing.T) {
	board := parse(t, `
		....
		*...
		....
	`)
	reveal(t, board, 3, 1)

	director := New(rand.New(rand.NewPCG(1, 2)))

	c, ok := director.Choose(board)
	require.True(t, ok)
	assert.Equal(t, "(0, 0)", c.String())
	board.Reveal(c)

	c, ok = director.Choose(board)
	require.True(t, ok)
	assert.Equal(t, "(0, 2)", c.String())
	board.Reveal(c)

	assert.Equal(t, game.Won, board.Progress())
}

func TestChooseAvoidsKnownBombs(t *testing.T) {
	board := parse(t, ".*.")
	reveal(t, board, 0, 0)

	director := New(rand.New(rand.NewPCG(3, 4)))
	c, ok := director.Choose(board)
	require.True(t, ok)
	assert.Equal(t, "(2, 0)", c.String())
}

func TestChooseLeastRisky(t *testing.T) {
	// a lone 1 over three closed cells gives each the same risk
	board := parse(t, `
		....
		.*.*
	`)
	reveal(t, board, 0, 0)

	director := New(rand.New(rand.NewPCG(5, 6)))
	c, ok := director.Choose(board)
	require.True(t, ok)

	open, _ := board.Visible(c)
	assert.False(t, open)
	assert.Contains(t, []string{"(1, 0)", "(0, 1)", "(1, 1)"}, c.String())
}

func TestPlaysRandomBoardsSoundly(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		board, err := game.NewBoard(game.Config{Size: game.Size{Width: 9, Height: 9}, Bombs: 10, Seed: seed})
		require.NoError(t, err)

		director := New(rand.New(rand.NewPCG(seed, seed)))
		for board.Progress() == game.Ongoing {
			observations := observe(board)
			bombs, safe := deduce(observations)
			for c := range bombs {
				require.Truef(t, board.Cell(c).IsBomb(), "seed %d: %s deduced as bomb", seed, c)
			}
			for c := range safe {
				require.Falsef(t, board.Cell(c).IsBomb(), "seed %d: %s deduced as safe", seed, c)
			}

			c, ok := director.Choose(board)
			require.True(t, ok)
			require.Falsef(t, bombs.Contains(c), "seed %d: chose known bomb %s", seed, c)
			board.Reveal(c)
		}
	}
}
