package game

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// flood opens the closed safe cell at start, then keeps opening the
// neighbours of every opened cell that has no neighbouring bombs. Cells are
// visited depth-first from an explicit stack, and a cell is only opened while
// still closed, so each one is opened at most once.
func (board *Board) flood(start Coordinate) int {
	stack := deque.New[Coordinate]()
	stack.PushBack(start)

	opened := 0
	for stack.Len() > 0 {
		coordinate := stack.PopBack()
		cell := board.cellAt(coordinate)
		if cell.status != ClosedClear {
			continue
		}

		cell.open()
		opened++

		if cell.neighboringBombs > 0 {
			continue
		}
		for _, neighbor := range board.size.Adjacents(coordinate) {
			if board.cellAt(neighbor).status == ClosedClear {
				stack.PushBack(neighbor)
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"start":  start.String(),
		"opened": opened,
	}).Debug("flood fill")

	return opened
}
