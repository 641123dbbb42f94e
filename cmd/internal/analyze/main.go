package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/lasker/ai"
	"github.com/nelhage/lasker/cli"
	"github.com/nelhage/lasker/cmd/internal/opt"
	"github.com/nelhage/lasker/morris"
	"github.com/nelhage/lasker/notation"
)

type Command struct {
	color   string
	quiet   bool
	eval    bool
	explain bool
	limit   time.Duration

	mmopt opt.Minimax

	stdout io.Writer
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position" }
func (*Command) Usage() string {
	return `analyze [options] POSITION

Search a position given as "ROWS BLUE-RESERVE ORANGE-RESERVE", e.g.

  analyze -color orange "1,x2/x3/x3/x3/x3/x3/x3/x3 9 10"
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.color, "color", "blue", "side to analyze for")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print the board diagram")
	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.BoolVar(&c.explain, "explain", false, "explain scoring")
	flags.DurationVar(&c.limit, "limit", time.Minute, "limit of how much time to use")

	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	p, err := notation.ParsePosition(strings.Join(flag.Args(), " "))
	if err != nil {
		log.Error().Err(err).Msg("parse position")
		return subcommands.ExitUsageError
	}
	var color morris.Color
	switch strings.ToLower(c.color) {
	case "blue":
		color = morris.Blue
	case "orange":
		color = morris.Orange
	default:
		log.Error().Str("color", c.color).Msg("-color must be blue or orange")
		return subcommands.ExitUsageError
	}
	cfg, w, err := c.mmopt.Load()
	if err != nil {
		log.Error().Err(err).Msg("search options")
		return subcommands.ExitUsageError
	}
	out := c.stdout
	if out == nil {
		out = os.Stdout
	}

	if !c.quiet {
		cli.RenderBoard(nil, out, p)
		fmt.Fprintf(out, "phase: %s=%s %s=%s\n",
			morris.Blue, p.Phase(morris.Blue),
			morris.Orange, p.Phase(morris.Orange))
	}
	if c.explain {
		ai.ExplainScore(out, &w, p)
	}
	if c.eval {
		fmt.Fprintf(out, " %s eval=%d\n", color, cfg.Evaluate(p, color))
		return subcommands.ExitSuccess
	}

	ctx, cancel := context.WithTimeout(ctx, c.limit)
	defer cancel()
	start := time.Now()
	pv, val, st := ai.NewMinimax(cfg).Analyze(ctx, p, color)
	var pvs []string
	mover := color
	for _, m := range pv {
		pvs = append(pvs, notation.FormatMove(m, mover))
		mover = mover.Flip()
	}
	fmt.Fprintf(out, "AI analysis:\n")
	fmt.Fprintf(out, " pv=[%s]\n", strings.Join(pvs, "; "))
	fmt.Fprintf(out, " value=%d\n", val)
	fmt.Fprintf(out, " depth=%d visited=%d evaluated=%d terminal=%d cut=%d\n",
		st.Depth, st.Visited, st.Evaluated, st.Terminal, st.CutNodes)
	fmt.Fprintf(out, " time=%s\n", time.Since(start))
	if over, winner := p.GameOver(); over {
		fmt.Fprintf(out, " game over, winner: %s\n", winner)
	}
	return subcommands.ExitSuccess
}
