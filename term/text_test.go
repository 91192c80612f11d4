package term

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweeper/play"
	"strings"
	"testing"
)

func TestTextRender(t *testing.T) {
	board := parse(t, `
		*..
		...
	`)
	reveal(t, board, 2, 1)

	var out bytes.Buffer
	require.NoError(t, NewText(&out).Render(board, board.Progress()))
	assert.Equal(t, "bombs: 1  left: 1  ongoing\n#1.\n#1.\n\n", out.String())
}

func TestLinesClick(t *testing.T) {
	in := strings.NewReader("1 2\n\n  nonsense\n3,4\n5\n6 seven\n  7 , 8  \nq\n9 9\n")
	var errs bytes.Buffer
	lines := NewLines(in, &errs)

	for _, want := range [][2]int{{1, 2}, {3, 4}, {7, 8}} {
		x, y, err := lines.Click()
		require.NoError(t, err)
		assert.Equal(t, want, [2]int{x, y})
	}

	_, _, err := lines.Click()
	assert.ErrorIs(t, err, play.ErrQuit)

	reported := strings.Split(strings.TrimSpace(errs.String()), "\n")
	require.Len(t, reported, 3)
	assert.Contains(t, reported[0], `got "nonsense"`)
	assert.Contains(t, reported[1], `got "5"`)
	assert.Contains(t, reported[2], `bad row in "6 seven"`)
}

func TestLinesEndOfInput(t *testing.T) {
	lines := NewLines(strings.NewReader("0 0\n"), &bytes.Buffer{})

	_, _, err := lines.Click()
	require.NoError(t, err)

	_, _, err = lines.Click()
	assert.ErrorIs(t, err, play.ErrQuit)
}

func TestLinesDriveSession(t *testing.T) {
	board := parse(t, "*..")
	var out bytes.Buffer

	session := play.NewSession(board, NewLines(strings.NewReader("2 0\n"), &bytes.Buffer{}), NewText(&out))
	progress, err := session.Run()

	require.NoError(t, err)
	assert.Equal(t, "won", progress.String())
	assert.Equal(t, "bombs: 1  left: 2  ongoing\n###\n\nbombs: 1  left: 0  won\no1.\n\n", out.String())
}
