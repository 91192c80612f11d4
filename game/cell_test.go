package game

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCellPlantBomb(t *testing.T) {
	var cell Cell
	assert.Equal(t, ClosedClear, cell.Status())
	assert.False(t, cell.IsBomb())

	cell.status = OpenClear
	cell.plantBomb()
	assert.Equal(t, ClosedBomb, cell.Status())
	assert.True(t, cell.IsBomb())
	assert.False(t, cell.IsOpen())
}

func TestCellNeighboringBombs(t *testing.T) {
	var cell Cell
	for i := 0; i < 3; i++ {
		cell.increaseNeighboringBombs()
	}
	assert.Equal(t, 3, cell.NeighboringBombs())
}

func TestCellOpen(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		changed bool
	}{
		{ClosedClear, OpenClear, true},
		{ClosedBomb, OpenBomb, true},
		{OpenClear, OpenClear, false},
		{OpenBomb, OpenBomb, false},
	}

	for _, test := range tests {
		t.Run(test.from.String(), func(t *testing.T) {
			cell := Cell{status: test.from}
			assert.Equal(t, test.changed, cell.open())
			assert.Equal(t, test.to, cell.Status())
			assert.True(t, cell.IsOpen())
		})
	}
}
