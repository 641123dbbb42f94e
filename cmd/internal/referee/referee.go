package referee

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/lasker/cmd/internal/opt"
	"github.com/nelhage/lasker/morris"
	"github.com/nelhage/lasker/referee"
)

type Command struct {
	opt    opt.Minimax
	pieces int

	stdin  io.Reader
	stdout io.Writer
}

func (*Command) Name() string     { return "referee" }
func (*Command) Synopsis() string { return "Play one game against a referee on stdin/stdout" }
func (*Command) Usage() string {
	return `referee [flags]

Play a single game against a referee. The first line of input names our
color (blue or orange); every later line is an opponent move, answered
with one of ours. A line starting with END is echoed back and ends the
game.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
	fs.IntVar(&c.pieces, "pieces", 0, "pieces per side (default 10)")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := morris.Config{Pieces: c.pieces}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("-pieces")
		return subcommands.ExitUsageError
	}
	if c.stdin == nil {
		c.stdin = os.Stdin
	}
	if c.stdout == nil {
		c.stdout = os.Stdout
	}
	engine := referee.NewEngine(c.stdin, c.stdout)
	engine.Config = cfg
	engine.ConfigFactory = c.opt.BuildConfig
	if err := engine.Run(ctx); err != nil {
		log.Error().Err(err).Msg("referee")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
