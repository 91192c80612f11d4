package game

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseLayout(t *testing.T) {
	board := mustParse(t, `
		*...
		..*.
	`)

	assert.Equal(t, Size{Width: 4, Height: 2}, board.Size())
	assert.Equal(t, 2, board.Bombs())
	assert.Equal(t, "*...\n..*.", board.Layout())
	assert.Equal(t, 2, board.Cell(mustCoordinate(t, board.Size(), 1, 1)).NeighboringBombs())
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
	}{
		{"empty", "   \n  "},
		{"ragged", "...\n..\n..."},
		{"unknown cell", "..x\n..."},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := ParseLayout(test.layout)
			assert.Nil(t, board)
			assert.Error(t, err)
		})
	}

	_, err := ParseLayout("...\n..")
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name        string
		cell        Cell
		exposeBombs bool
		want        rune
	}{
		{"closed clear", Cell{status: ClosedClear, neighboringBombs: 2}, false, '#'},
		{"closed clear exposed", Cell{status: ClosedClear}, true, '#'},
		{"closed bomb hidden", Cell{status: ClosedBomb}, false, '#'},
		{"closed bomb exposed", Cell{status: ClosedBomb}, true, 'o'},
		{"open zero", Cell{status: OpenClear}, false, '.'},
		{"open three", Cell{status: OpenClear, neighboringBombs: 3}, false, '3'},
		{"open eight", Cell{status: OpenClear, neighboringBombs: 8}, false, '8'},
		{"open bomb", Cell{status: OpenBomb}, false, '*'},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, string(test.want), string(Glyph(test.cell, test.exposeBombs)))
		})
	}
}

func TestStringAfterLoss(t *testing.T) {
	board := mustParse(t, `
		*..
		..*
	`)
	board.Reveal(mustCoordinate(t, board.Size(), 2, 1))

	require.Equal(t, Lost, board.Progress())
	assert.Equal(t, "o##\n##*", board.String())
}
