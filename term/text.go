package term

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/play"
	"io"
	"strconv"
	"strings"
	"unicode"
)

func statusLine(board *game.Board, progress game.Progress) string {
	return fmt.Sprintf("bombs: %d  left: %d  %s", board.Bombs(), board.Remaining(), progress)
}

// Text renders the board as plain text, one frame per turn
type Text struct {
	out io.Writer
}

func NewText(out io.Writer) *Text {
	return &Text{out: out}
}

func (text *Text) Render(board *game.Board, progress game.Progress) error {
	_, err := fmt.Fprintf(text.out, "%s\n%s\n\n", statusLine(board, progress), board)
	return errors.Wrap(err, "writing board")
}

// Lines reads clicks as "x y" pairs, one per line. Commas also separate the
// pair, and "q" quits.
type Lines struct {
	scanner *bufio.Scanner
	errOut  io.Writer
}

// NewLines reads clicks from in, reporting lines it cannot understand to
// errOut
func NewLines(in io.Reader, errOut io.Writer) *Lines {
	return &Lines{
		scanner: bufio.NewScanner(in),
		errOut:  errOut,
	}
}

func parseClick(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("expected \"x y\", got %q", line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "bad column in %q", line)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "bad row in %q", line)
	}
	return x, y, nil
}

func (lines *Lines) Click() (int, int, error) {
	for lines.scanner.Scan() {
		line := strings.TrimSpace(lines.scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return 0, 0, play.ErrQuit
		}

		x, y, err := parseClick(line)
		if err != nil {
			fmt.Fprintln(lines.errOut, err)
			continue
		}
		return x, y, nil
	}

	if err := lines.scanner.Err(); err != nil {
		return 0, 0, errors.Wrap(err, "reading clicks")
	}
	return 0, 0, play.ErrQuit
}
