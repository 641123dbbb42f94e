// Package notation reads and writes the text forms used by the
// referee: moves as "<origin> <destination> <capture>" and a compact
// one-line position format.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nelhage/lasker/morris"
)

// NoCapture is written in the capture slot of moves that do not close
// a mill.
const NoCapture = "r0"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrWrongHand   = errors.New("placement from the wrong hand")
)

// Hand returns the reserve marker used as the origin of c's
// placements.
func Hand(c morris.Color) string {
	switch c {
	case morris.Blue:
		return "h1"
	case morris.Orange:
		return "h2"
	}
	panic(fmt.Sprintf("bad color: %s", c))
}

// HandColor returns the color whose reserve marker is s.
func HandColor(s string) (morris.Color, bool) {
	switch s {
	case "h1":
		return morris.Blue, true
	case "h2":
		return morris.Orange, true
	}
	return morris.NoColor, false
}

// ParseMove parses a move like "h1 d2 r0" or "a7 d7 g1".
func ParseMove(move string) (morris.Move, error) {
	words := strings.Fields(move)
	if len(words) != 3 {
		return morris.Move{}, fmt.Errorf("%w: want 3 fields, got %d", ErrIllegalMove, len(words))
	}
	var m morris.Move
	var err error
	if _, ok := HandColor(words[0]); ok {
		m.Type = morris.Place
		m.From = morris.NoPoint
	} else {
		m.Type = morris.Slide
		if m.From, err = morris.ParsePoint(words[0]); err != nil {
			return morris.Move{}, fmt.Errorf("origin %q: %w", words[0], err)
		}
	}
	if m.To, err = morris.ParsePoint(words[1]); err != nil {
		return morris.Move{}, fmt.Errorf("destination %q: %w", words[1], err)
	}
	if words[2] == NoCapture {
		m.Capture = morris.NoPoint
	} else if m.Capture, err = morris.ParsePoint(words[2]); err != nil {
		return morris.Move{}, fmt.Errorf("capture %q: %w", words[2], err)
	}
	return m, nil
}

// ParseMoveFor parses a move played by c, rejecting placements from
// the other side's hand.
func ParseMoveFor(move string, c morris.Color) (morris.Move, error) {
	m, err := ParseMove(move)
	if err != nil {
		return m, err
	}
	if m.Type == morris.Place {
		if hand, _ := HandColor(strings.Fields(move)[0]); hand != c {
			return morris.Move{}, fmt.Errorf("%q: %w", strings.TrimSpace(move), ErrWrongHand)
		}
	}
	return m, nil
}

// FormatMove renders m as played by c.
func FormatMove(m morris.Move, c morris.Color) string {
	var out strings.Builder
	switch m.Type {
	case morris.Place:
		out.WriteString(Hand(c))
	case morris.Slide:
		out.WriteString(m.From.String())
	default:
		panic("bad move type")
	}
	out.WriteByte(' ')
	out.WriteString(m.To.String())
	out.WriteByte(' ')
	if m.Capture == morris.NoPoint {
		out.WriteString(NoCapture)
	} else {
		out.WriteString(m.Capture.String())
	}
	return out.String()
}
