package game

import "fmt"

// Size holds the dimensions of a board, in number of cells
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Coordinate is a position known to lie within the Size it was created from.
// The zero value is the top-left cell.
type Coordinate struct {
	x, y int
}

func (c Coordinate) X() int {
	return c.x
}

func (c Coordinate) Y() int {
	return c.y
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.x, c.y)
}

// NewCoordinate returns the coordinate (x, y), or false when it falls outside
// the board. Probing off-grid positions is expected; it is not an error.
func (size Size) NewCoordinate(x, y int) (Coordinate, bool) {
	if x < 0 || y < 0 || x >= size.Width || y >= size.Height {
		return Coordinate{}, false
	}
	return Coordinate{x: x, y: y}, true
}

// Cells returns the total number of cells
func (size Size) Cells() int {
	return size.Width * size.Height
}

// Index returns the row-major index of c
func (size Size) Index(c Coordinate) int {
	return c.y*size.Width + c.x
}

// FromIndex decodes a row-major index back into a coordinate
func (size Size) FromIndex(index int) (Coordinate, bool) {
	if index < 0 || index >= size.Cells() {
		return Coordinate{}, false
	}
	return size.NewCoordinate(index%size.Width, index/size.Width)
}

// Adjacents returns the in-bounds neighbours of c, in the fixed order
// top-left, top, top-right, left, right, bottom-left, bottom, bottom-right.
func (size Size) Adjacents(c Coordinate) []Coordinate {
	adjacents := make([]Coordinate, 0, len(adjacentDeltas))
	for _, delta := range adjacentDeltas {
		if neighbor, ok := size.NewCoordinate(c.x+delta[0], c.y+delta[1]); ok {
			adjacents = append(adjacents, neighbor)
		}
	}
	return adjacents
}

func (size Size) String() string {
	return fmt.Sprintf("%dx%d", size.Width, size.Height)
}
