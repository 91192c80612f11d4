package game

type Cell struct {
	status           Status
	neighboringBombs int
}

func (cell Cell) Status() Status {
	return cell.status
}

// NeighboringBombs is fixed once the board has been generated
func (cell Cell) NeighboringBombs() int {
	return cell.neighboringBombs
}

func (cell Cell) IsBomb() bool {
	return cell.status == ClosedBomb || cell.status == OpenBomb
}

func (cell Cell) IsOpen() bool {
	return cell.status == OpenClear || cell.status == OpenBomb
}

// plantBomb overwrites whatever status the cell had. Only called during
// generation, before play starts.
func (cell *Cell) plantBomb() {
	cell.status = ClosedBomb
}

func (cell *Cell) increaseNeighboringBombs() {
	cell.neighboringBombs++
}

// open transitions a closed cell to its open counterpart, reporting whether
// anything changed
func (cell *Cell) open() bool {
	switch cell.status {
	case ClosedClear:
		cell.status = OpenClear
	case ClosedBomb:
		cell.status = OpenBomb
	default:
		return false
	}
	return true
}
