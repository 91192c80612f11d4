package game

// View is the part of a board a player is allowed to see
type View interface {
	Size() Size
	Visible(coordinate Coordinate) (open bool, neighboringBombs int)
}

// Director is a computer player
type Director interface {
	// Choose picks the next cell to reveal, or returns false when it has
	// nothing left to try
	Choose(view View) (Coordinate, bool)
}
