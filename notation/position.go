package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/lasker/morris"
)

const rowLen = 3

// ParsePosition parses a position written by FormatPosition: the
// points in canonical order as eight '/'-separated rows of three, then
// Blue's and Orange's reserves. Within a row '1' is Blue, '2' is
// Orange and "x" or "xN" are runs of empty points:
//
//	1,x2/x3/x3/x3/x3/x3/x3/x,2,x 9 9
func ParsePosition(s string) (*morris.Position, error) {
	words := strings.Fields(s)
	if len(words) != 3 {
		return nil, errors.New("bad position: wrong number of words")
	}
	rows := strings.Split(words[0], "/")
	if len(rows) != morris.NumPoints/rowLen {
		return nil, fmt.Errorf("bad position: %d rows", len(rows))
	}
	var board [morris.NumPoints]morris.Color
	for i, r := range rows {
		row, err := parseRow(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		copy(board[i*rowLen:], row)
	}
	blue, err := strconv.Atoi(words[1])
	if err != nil {
		return nil, fmt.Errorf("bad blue reserve: %s", words[1])
	}
	orange, err := strconv.Atoi(words[2])
	if err != nil {
		return nil, fmt.Errorf("bad orange reserve: %s", words[2])
	}
	return morris.FromSquares(morris.Config{}, board, blue, orange)
}

func parseRow(r string) ([]morris.Color, error) {
	var out []morris.Color
	for _, sq := range strings.Split(r, ",") {
		switch {
		case sq == "1":
			out = append(out, morris.Blue)
		case sq == "2":
			out = append(out, morris.Orange)
		case sq == "x":
			out = append(out, morris.NoColor)
		case strings.HasPrefix(sq, "x"):
			n, err := strconv.Atoi(sq[1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("bad run: %q", sq)
			}
			for ; n > 0; n-- {
				out = append(out, morris.NoColor)
			}
		default:
			return nil, fmt.Errorf("bad square: %q", sq)
		}
	}
	if len(out) != rowLen {
		return nil, fmt.Errorf("bad length: %d", len(out))
	}
	return out, nil
}

func FormatPosition(p *morris.Position) string {
	var rows []string
	for r := 0; r < morris.NumPoints/rowLen; r++ {
		rows = append(rows, formatRow(p, morris.Point(r*rowLen)))
	}
	return fmt.Sprintf("%s %d %d",
		strings.Join(rows, "/"),
		p.Reserve(morris.Blue),
		p.Reserve(morris.Orange))
}

func formatRow(p *morris.Position, start morris.Point) string {
	var bits []string
	for i := 0; i < rowLen; {
		var n int
		for n = 0; i+n < rowLen && p.At(start+morris.Point(i+n)) == morris.NoColor; n++ {
		}
		switch n {
		case 0:
			if p.At(start+morris.Point(i)) == morris.Blue {
				bits = append(bits, "1")
			} else {
				bits = append(bits, "2")
			}
			i++
		case 1:
			bits = append(bits, "x")
		default:
			bits = append(bits, fmt.Sprintf("x%d", n))
		}
		i += n
	}
	return strings.Join(bits, ",")
}
