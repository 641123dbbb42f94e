package morristest

import (
	"strings"

	"github.com/nelhage/lasker/morris"
	"github.com/nelhage/lasker/notation"
)

func Move(s string) morris.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

// Moves parses a ';'-separated list of moves.
func Moves(s string) []morris.Move {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var ms []morris.Move
	for _, b := range strings.Split(s, ";") {
		ms = append(ms, Move(b))
	}
	return ms
}

func FormatMoves(first morris.Color, ms []morris.Move) string {
	var bits []string
	c := first
	for _, m := range ms {
		bits = append(bits, notation.FormatMove(m, c))
		c = c.Flip()
	}
	return strings.Join(bits, "; ")
}

// Position parses a position in notation.ParsePosition form.
func Position(s string) *morris.Position {
	p, e := notation.ParsePosition(s)
	if e != nil {
		panic(e)
	}
	return p
}

// Play starts a fresh game and applies ms alternately, Blue first.
func Play(ms string) *morris.Position {
	p := morris.New(morris.Config{})
	c := morris.Blue
	for _, m := range Moves(ms) {
		if e := p.MakeMove(c, m); e != nil {
			panic(e)
		}
		c = c.Flip()
	}
	return p
}
