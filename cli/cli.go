package cli

import (
	"fmt"
	"io"

	"github.com/nelhage/lasker/morris"
	"github.com/nelhage/lasker/notation"
)

type Player interface {
	GetMove(p *morris.Position, c morris.Color) (morris.Move, error)
}

type Glyphs struct {
	Blue, Orange, Empty string
}

type CLI struct {
	moves []morris.Move
	p     *morris.Position

	Config   morris.Config
	Glyphs   *Glyphs
	Out      io.Writer
	Blue     Player
	Orange   Player
	MaxPlies int
}

var DefaultGlyphs = Glyphs{
	Blue:   "B",
	Orange: "O",
	Empty:  ".",
}

var UnicodeGlyphs = Glyphs{
	Blue:   "●",
	Orange: "○",
	Empty:  "·",
}

// Play runs a game between c.Blue and c.Orange and returns the final
// position. c.Config must Validate. Moves whose capture does not match
// the mill they form are refused and asked for again.
func (c *CLI) Play() *morris.Position {
	c.moves = nil
	c.p = morris.New(c.Config)
	toMove := morris.Blue
	for ply := 0; ; ply++ {
		c.render(toMove)
		if over, winner := c.p.GameOver(); over {
			fmt.Fprintf(c.Out, "Game Over! ")
			if winner == morris.NoColor {
				fmt.Fprintln(c.Out, "Draw.")
			} else {
				fmt.Fprintf(c.Out, "%s wins.\n", winner)
			}
			return c.p
		}
		if !c.p.HasMoves(toMove) {
			fmt.Fprintf(c.Out, "Game Over! %s cannot move, %s wins.\n", toMove, toMove.Flip())
			return c.p
		}
		if c.MaxPlies > 0 && ply >= c.MaxPlies {
			fmt.Fprintf(c.Out, "Stopped after %d plies.\n", ply)
			return c.p
		}
		player := c.Blue
		if toMove == morris.Orange {
			player = c.Orange
		}
		var m morris.Move
		for {
			var err error
			m, err = player.GetMove(c.p, toMove)
			if err != nil {
				fmt.Fprintf(c.Out, "%s: %v\n", toMove, err)
				return c.p
			}
			if err = c.p.CheckCapture(toMove, m); err == nil {
				err = c.p.MakeMove(toMove, m)
			}
			if err == nil {
				break
			}
			fmt.Fprintln(c.Out, "illegal move:", err)
		}
		if toMove == morris.Blue {
			fmt.Fprintf(c.Out, "%d. %s\n", ply/2+1, notation.FormatMove(m, toMove))
		} else {
			fmt.Fprintf(c.Out, "%d. ... %s\n", ply/2+1, notation.FormatMove(m, toMove))
		}
		c.moves = append(c.moves, m)
		toMove = toMove.Flip()
	}
}

func (c *CLI) Moves() []morris.Move {
	return c.moves
}

func (c *CLI) render(toMove morris.Color) {
	fmt.Fprintln(c.Out)
	fmt.Fprintf(c.Out, "[%s to play]\n", toMove)
	RenderBoard(c.Glyphs, c.Out, c.p)
}

// board lists each drawn row with the points it shows, in order.
var board = []struct {
	format string
	points []morris.Point
}{
	{"7 %s--------%s--------%s", []morris.Point{morris.A7, morris.D7, morris.G7}},
	{"  |        |        |", nil},
	{"6 |  %s-----%s-----%s  |", []morris.Point{morris.B6, morris.D6, morris.F6}},
	{"  |  |     |     |  |", nil},
	{"5 |  |  %s--%s--%s  |  |", []morris.Point{morris.C5, morris.D5, morris.E5}},
	{"  |  |  |     |  |  |", nil},
	{"4 %s--%s--%s     %s--%s--%s", []morris.Point{morris.A4, morris.B4, morris.C4, morris.E4, morris.F4, morris.G4}},
	{"  |  |  |     |  |  |", nil},
	{"3 |  |  %s--%s--%s  |  |", []morris.Point{morris.C3, morris.D3, morris.E3}},
	{"  |  |     |     |  |", nil},
	{"2 |  %s-----%s-----%s  |", []morris.Point{morris.B2, morris.D2, morris.F2}},
	{"  |        |        |", nil},
	{"1 %s--------%s--------%s", []morris.Point{morris.A1, morris.D1, morris.G1}},
	{"  a  b  c  d  e  f  g", nil},
}

func RenderBoard(g *Glyphs, out io.Writer, p *morris.Position) {
	if g == nil {
		g = &DefaultGlyphs
	}
	for _, row := range board {
		args := make([]interface{}, len(row.points))
		for i, pt := range row.points {
			switch p.At(pt) {
			case morris.Blue:
				args[i] = g.Blue
			case morris.Orange:
				args[i] = g.Orange
			default:
				args[i] = g.Empty
			}
		}
		fmt.Fprintf(out, row.format+"\n", args...)
	}
	fmt.Fprintf(out, "hand: %s:%d %s:%d\n",
		morris.Blue, p.Reserve(morris.Blue),
		morris.Orange, p.Reserve(morris.Orange))
}
