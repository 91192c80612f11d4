package game

type Status int
type Progress int

const (
	ClosedClear Status = iota
	ClosedBomb
	OpenClear
	OpenBomb
)

func (status Status) String() string {
	switch status {
	case ClosedClear:
		return "closed-clear"
	case ClosedBomb:
		return "closed-bomb"
	case OpenClear:
		return "open-clear"
	case OpenBomb:
		return "open-bomb"
	default:
		return "unknown"
	}
}

const (
	Lost Progress = iota
	Won
	Ongoing
)

func (progress Progress) String() string {
	switch progress {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

// Offsets of the eight neighbours of a cell, in enumeration order
var adjacentDeltas = [8][2]int{
	{-1, -1},
	{0, -1},
	{1, -1},
	{-1, 0},
	{1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
}
