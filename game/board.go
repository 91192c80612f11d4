package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/util/collections"
	"iter"
	"math/rand/v2"
)

var Log = logrus.New()

// Board owns the grid of cells for a single game. Coordinates passed to its
// methods must come from the board's own Size.
type Board struct {
	size  Size
	bombs int
	cells [][]Cell // indexed [y][x]
}

func emptyBoard(size Size) *Board {
	board := &Board{
		size:  size,
		cells: make([][]Cell, size.Height),
	}
	for y := range board.cells {
		board.cells[y] = make([]Cell, size.Width)
	}
	return board
}

// NewBoard generates a board with config.Bombs bombs at distinct random
// positions. It fails without returning a board when the configuration is
// invalid, including when there are more bombs than cells.
func NewBoard(config Config) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rng, seed := config.newRand()
	indexes, method := pickBombIndexes(rng, config.Cells(), config.Bombs)

	board := emptyBoard(config.Size)
	for _, index := range indexes {
		coordinate, ok := board.size.FromIndex(index)
		if !ok {
			return nil, errors.Errorf("bomb index %d outside of %s board", index, board.size)
		}
		board.plantBomb(coordinate)
	}

	Log.WithFields(logrus.Fields{
		"size":   config.Size.String(),
		"bombs":  config.Bombs,
		"seed":   seed,
		"method": method,
	}).Debug("generated board")

	return board, nil
}

// NewBoardWithBombs builds a board with bombs at exactly the given positions
func NewBoardWithBombs(size Size, bombs []Coordinate) (*Board, error) {
	config := Config{Size: size, Bombs: len(bombs)}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board := emptyBoard(size)
	planted := make(collections.Set[Coordinate], len(bombs))
	for _, bomb := range bombs {
		if _, ok := size.NewCoordinate(bomb.x, bomb.y); !ok {
			return nil, errors.Wrapf(ErrInvalidBombCount, "bomb at %s lies outside the %s board", bomb, size)
		}
		if planted.Contains(bomb) {
			return nil, errors.Wrapf(ErrInvalidBombCount, "duplicate bomb at %s", bomb)
		}
		planted.Add(bomb)
		board.plantBomb(bomb)
	}
	return board, nil
}

// pickBombIndexes draws count distinct indexes from [0, cells). Sparse boards
// resample on collision; dense ones take a prefix of a partial shuffle so the
// time stays bounded as count approaches cells.
func pickBombIndexes(rng *rand.Rand, cells, count int) ([]int, string) {
	if count*2 <= cells {
		picked := make(collections.Set[int], count)
		indexes := make([]int, 0, count)
		for picked.Len() < count {
			index := rng.IntN(cells)
			if picked.Contains(index) {
				continue
			}
			picked.Add(index)
			indexes = append(indexes, index)
		}
		return indexes, "resample"
	}

	cellIndexes := make([]int, cells)
	for i := range cellIndexes {
		cellIndexes[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rng.IntN(cells-i)
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	}
	return cellIndexes[:count], "shuffle"
}

func (board *Board) plantBomb(coordinate Coordinate) {
	board.cellAt(coordinate).plantBomb()
	board.bombs++

	for _, neighbor := range board.size.Adjacents(coordinate) {
		board.cellAt(neighbor).increaseNeighboringBombs()
	}
}

func (board *Board) cellAt(coordinate Coordinate) *Cell {
	return &board.cells[coordinate.y][coordinate.x]
}

func (board *Board) Size() Size {
	return board.size
}

func (board *Board) Width() int {
	return board.size.Width
}

func (board *Board) Height() int {
	return board.size.Height
}

func (board *Board) Bombs() int {
	return board.bombs
}

// Cell returns a copy of the cell at coordinate
func (board *Board) Cell(coordinate Coordinate) Cell {
	return *board.cellAt(coordinate)
}

// Cells iterates over every cell, row by row
func (board *Board) Cells() iter.Seq2[Coordinate, Cell] {
	return func(yield func(Coordinate, Cell) bool) {
		for y, row := range board.cells {
			for x, cell := range row {
				if !yield(Coordinate{x: x, y: y}, cell) {
					return
				}
			}
		}
	}
}

// Remaining returns the number of safe cells still closed
func (board *Board) Remaining() int {
	remaining := 0
	for _, cell := range board.Cells() {
		if cell.status == ClosedClear {
			remaining++
		}
	}
	return remaining
}

// Visible reports what a player can see of a cell: whether it is open and,
// for an open safe cell, its neighbouring bomb count
func (board *Board) Visible(coordinate Coordinate) (bool, int) {
	cell := board.cellAt(coordinate)
	switch cell.status {
	case OpenClear:
		return true, cell.neighboringBombs
	case OpenBomb:
		return true, 0
	default:
		return false, 0
	}
}

// Reveal opens the cell at coordinate and returns how many cells were opened.
// Opening a safe cell with no neighbouring bombs cascades to its neighbours;
// revealing an already open cell does nothing.
func (board *Board) Reveal(coordinate Coordinate) int {
	cell := board.cellAt(coordinate)

	switch cell.status {
	case ClosedBomb:
		cell.open()
		Log.WithField("coordinate", coordinate.String()).Info("bomb detonated")
		return 1
	case ClosedClear:
		return board.flood(coordinate)
	default:
		return 0
	}
}

// Progress is Lost as soon as any bomb is open, Ongoing while safe cells
// remain closed, and Won otherwise
func (board *Board) Progress() Progress {
	progress := Won
	for _, row := range board.cells {
		for _, cell := range row {
			switch cell.status {
			case OpenBomb:
				return Lost
			case ClosedClear:
				progress = Ongoing
			}
		}
	}
	return progress
}
