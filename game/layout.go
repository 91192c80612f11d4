package game

import (
	"github.com/pkg/errors"
	"strings"
)

const (
	layoutBomb  = '*'
	layoutClear = '.'
)

// ParseLayout builds a board from rows of '*' (bomb) and '.' (clear), one
// row per line. Surrounding blank lines are ignored.
func ParseLayout(layout string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(layout), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	size := Size{Width: len(rows[0]), Height: len(rows)}
	if size.Width == 0 {
		return nil, errors.Wrap(ErrInvalidSize, "empty layout")
	}

	var bombs []Coordinate
	for y, row := range rows {
		if len(row) != size.Width {
			return nil, errors.Wrapf(ErrInvalidSize, "layout row %d has %d cells, expected %d", y, len(row), size.Width)
		}
		for x, c := range row {
			switch c {
			case layoutBomb:
				bombs = append(bombs, Coordinate{x: x, y: y})
			case layoutClear:
			default:
				return nil, errors.Errorf("unexpected %q at (%d, %d) in layout", c, x, y)
			}
		}
	}

	return NewBoardWithBombs(size, bombs)
}

// Layout returns the bomb positions in the format read by ParseLayout
func (board *Board) Layout() string {
	var layout strings.Builder
	for y, row := range board.cells {
		if y > 0 {
			layout.WriteByte('\n')
		}
		for _, cell := range row {
			if cell.IsBomb() {
				layout.WriteByte(layoutBomb)
			} else {
				layout.WriteByte(layoutClear)
			}
		}
	}
	return layout.String()
}

// Glyph is the character a text frontend draws for cell. Closed bombs stay
// hidden unless exposeBombs is set, typically once the game is over.
func Glyph(cell Cell, exposeBombs bool) rune {
	switch cell.status {
	case OpenBomb:
		return '*'
	case OpenClear:
		if cell.neighboringBombs == 0 {
			return '.'
		}
		return rune('0' + cell.neighboringBombs)
	case ClosedBomb:
		if exposeBombs {
			return 'o'
		}
	}
	return '#'
}

// String draws the board as a player sees it, one row per line
func (board *Board) String() string {
	exposeBombs := board.Progress() != Ongoing

	var out strings.Builder
	for y, row := range board.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		for _, cell := range row {
			out.WriteRune(Glyph(cell, exposeBombs))
		}
	}
	return out.String()
}
