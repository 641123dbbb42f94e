package selfplay

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/lasker/ai"
	"github.com/nelhage/lasker/cmd/internal/opt"
	"github.com/nelhage/lasker/morris"
	"github.com/nelhage/lasker/notation"
)

type Config struct {
	Games   int
	Threads int
	Seed    uint64
	Cutoff  int
	Swap    bool
	Verbose bool

	Pieces int
	P1, P2 string
	Search ai.MinimaxConfig
}

type Stats struct {
	Players [2]struct {
		Wins       int
		BlueWins   int
		OrangeWins int
	}
	Blue, Orange int
	Ties         int
	Cutoff       int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.Blue + s.Orange + s.Ties + s.Cutoff
}

type Result struct {
	Index   int
	P1Color morris.Color
	Winner  morris.Color
	Cutoff  bool
	Moves   []morris.Move
}

func (s *Stats) add(r Result) {
	s.Games = append(s.Games, r)
	if r.Cutoff {
		s.Cutoff++
		return
	}
	switch r.Winner {
	case morris.NoColor:
		s.Ties++
		return
	case morris.Blue:
		s.Blue++
	case morris.Orange:
		s.Orange++
	}
	i := 1
	if r.Winner == r.P1Color {
		i = 0
	}
	s.Players[i].Wins++
	if r.Winner == morris.Blue {
		s.Players[i].BlueWins++
	} else {
		s.Players[i].OrangeWins++
	}
}

// Simulate plays cfg.Games games, cfg.Threads at a time. Every game
// gets its own players and position.
func Simulate(ctx context.Context, cfg *Config) (Stats, error) {
	var st Stats
	var mu sync.Mutex
	if err := (morris.Config{Pieces: cfg.Pieces}).Validate(); err != nil {
		return st, err
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = 1
	}
	games := make(chan int)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(games)
		for i := 0; i < cfg.Games; i++ {
			select {
			case games <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for t := 0; t < threads; t++ {
		grp.Go(func() error {
			for i := range games {
				r, err := playGame(ctx, cfg, i)
				if err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}
				if cfg.Verbose {
					log.Info().
						Int("game", i).
						Stringer("p1", r.P1Color).
						Stringer("winner", r.Winner).
						Bool("cutoff", r.Cutoff).
						Int("plies", len(r.Moves)).
						Msg("game done")
				}
				mu.Lock()
				st.add(r)
				mu.Unlock()
			}
			return nil
		})
	}
	err := grp.Wait()
	return st, err
}

func buildPlayer(name string, seed uint64, search ai.MinimaxConfig) (ai.Player, error) {
	if name == "rand" {
		return ai.NewRandom(seed), nil
	}
	return opt.ParsePlayer(name, search)
}

func playGame(ctx context.Context, cfg *Config, i int) (Result, error) {
	r := Result{Index: i, P1Color: morris.Blue}
	if cfg.Swap && i%2 == 1 {
		r.P1Color = morris.Orange
	}
	seed := cfg.Seed + uint64(i)
	p1, err := buildPlayer(cfg.P1, seed, cfg.Search)
	if err != nil {
		return r, err
	}
	p2, err := buildPlayer(cfg.P2, seed^0x5bd1e995, cfg.Search)
	if err != nil {
		return r, err
	}
	players := map[morris.Color]ai.Player{
		r.P1Color:        p1,
		r.P1Color.Flip(): p2,
	}

	p := morris.New(morris.Config{Pieces: cfg.Pieces})
	c := morris.Blue
	for {
		if over, winner := p.GameOver(); over {
			r.Winner = winner
			return r, nil
		}
		if !p.HasMoves(c) {
			r.Winner = c.Flip()
			return r, nil
		}
		if cfg.Cutoff > 0 && len(r.Moves) >= cfg.Cutoff {
			r.Cutoff = true
			return r, nil
		}
		m, err := players[c].GetMove(ctx, p, c)
		if err != nil {
			return r, err
		}
		if err := p.MakeMove(c, m); err != nil {
			return r, fmt.Errorf("%s played %s: %w", c, notation.FormatMove(m, c), err)
		}
		r.Moves = append(r.Moves, m)
		c = c.Flip()
	}
}
