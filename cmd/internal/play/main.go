package play

import (
	"bufio"
	"context"
	"flag"
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
	blue     string
	orange   string
	pieces   int
	limit    time.Duration
	maxPlies int
	out      string

	unicode bool
	mmopt   opt.Minimax

	stdin  io.Reader
	stdout io.Writer
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Lasker Morris from the command line" }
func (*Command) Usage() string {
	return `play

Play Lasker Morris on the command-line, against a human or AI. Players are
human, rand[:SEED] or minimax[:DEPTH]. Humans enter moves as
"ORIGIN DEST [CAPTURE]", with h1/h2 as the origin of a placement.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.blue, "blue", "human", "blue player")
	flags.StringVar(&c.orange, "orange", "minimax", "orange player")
	flags.IntVar(&c.pieces, "pieces", 0, "pieces per side (default 10)")
	flags.DurationVar(&c.limit, "limit", time.Minute, "ai time limit")
	flags.IntVar(&c.maxPlies, "max-plies", 400, "stop the game after this many plies")
	flags.StringVar(&c.out, "out", "", "write the moves to file")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	c.mmopt.AddFlags(flags)
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
	in := bufio.NewReader(c.stdin)
	blue, err := c.parsePlayer(in, c.blue)
	if err != nil {
		log.Error().Err(err).Str("player", c.blue).Msg("-blue")
		return subcommands.ExitUsageError
	}
	orange, err := c.parsePlayer(in, c.orange)
	if err != nil {
		log.Error().Err(err).Str("player", c.orange).Msg("-orange")
		return subcommands.ExitUsageError
	}
	st := &cli.CLI{
		Config:   cfg,
		Out:      c.stdout,
		Blue:     blue,
		Orange:   orange,
		Glyphs:   glyphs(c.unicode),
		MaxPlies: c.maxPlies,
	}
	st.Play()
	if c.out != "" {
		var out strings.Builder
		color := morris.Blue
		for _, m := range st.Moves() {
			out.WriteString(notation.FormatMove(m, color))
			out.WriteString("\n")
			color = color.Flip()
		}
		if err := os.WriteFile(c.out, []byte(out.String()), 0644); err != nil {
			log.Error().Err(err).Str("path", c.out).Msg("write moves")
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

type aiWrapper struct {
	limit time.Duration
	p     ai.Player
}

func (a *aiWrapper) GetMove(p *morris.Position, c morris.Color) (morris.Move, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.limit)
	defer cancel()
	return a.p.GetMove(ctx, p, c)
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) (cli.Player, error) {
	if s == "human" {
		return cli.NewCLIPlayer(c.stdout, in), nil
	}
	cfg, _, err := c.mmopt.Load()
	if err != nil {
		return nil, err
	}
	p, err := opt.ParsePlayer(s, cfg)
	if err != nil {
		return nil, err
	}
	return &aiWrapper{c.limit, p}, nil
}
