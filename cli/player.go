package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nelhage/lasker/morris"
	"github.com/nelhage/lasker/notation"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

// GetMove prompts for a move in referee notation. The capture may be
// left off, in which case the usual choice is made when the move
// completes a mill. Placements must come from color's own hand.
func (c *cliPlayer) GetMove(p *morris.Position, color morris.Color) (morris.Move, error) {
	for {
		fmt.Fprintf(c.out, "%s> ", color)
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return morris.Move{}, err
		}
		auto := len(strings.Fields(line)) == 2
		if auto {
			line = strings.TrimSpace(line) + " " + notation.NoCapture
		}
		m, err := notation.ParseMoveFor(line, color)
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		if auto {
			m.Capture = p.ResolveCapture(color, m)
		}
		return m, nil
	}
}
