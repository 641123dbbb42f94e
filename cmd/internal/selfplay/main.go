package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/lasker/cmd/internal/opt"
)

type Command struct {
	p1     string
	p2     string
	seed   uint64
	pieces int

	games   int
	cutoff  int
	swap    bool
	threads int

	summary string
	verbose bool

	mmopt opt.Minimax
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players are rand[:SEED] or minimax[:DEPTH].
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "minimax", "player 1")
	flags.StringVar(&c.p2, "p2", "rand", "player 2")
	flags.Uint64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.pieces, "pieces", 0, "pieces per side (default 10)")
	flags.IntVar(&c.games, "games", 10, "number of games to play")
	flags.IntVar(&c.cutoff, "cutoff", 200, "cut games off after how many plies")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = uint64(time.Now().Unix())
	}
	search, _, err := c.mmopt.Load()
	if err != nil {
		log.Error().Err(err).Msg("search options")
		return subcommands.ExitUsageError
	}
	cfg := &Config{
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Cutoff:  c.cutoff,
		Swap:    c.swap,
		Verbose: c.verbose,
		Pieces:  c.pieces,
		P1:      c.p1,
		P2:      c.p2,
		Search:  search,
	}
	start := time.Now()
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitFailure
	}

	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}

	var plies int
	for _, g := range st.Games {
		plies += len(g.Moves)
	}
	pr := message.NewPrinter(language.English)
	pr.Fprintf(os.Stderr, "done games=%d plies=%d seed=%d ties=%d cutoff=%d blue=%d orange=%d time=%s\n",
		st.Count(), plies, c.seed, st.Ties, st.Cutoff, st.Blue, st.Orange, time.Since(start))
	pr.Fprintf(os.Stderr, "p1.wins=%d p2.wins=%d\n", st.Players[0].Wins, st.Players[1].Wins)

	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tblue\torange\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].BlueWins, st.Players[0].OrangeWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].BlueWins, st.Players[1].OrangeWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].BlueWins+st.Players[1].BlueWins,
		st.Players[0].OrangeWins+st.Players[1].OrangeWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()

	return subcommands.ExitSuccess
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Seed    uint64
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Seed:    c.seed,
		Stats:   stats,
	}
	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0644)
}
