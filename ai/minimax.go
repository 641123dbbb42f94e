package ai

import (
	"bytes"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"github.com/nelhage/lasker/morris"
	"github.com/nelhage/lasker/notation"
)

const (
	MaxEval int64 = 1 << 30
	MinEval       = -MaxEval

	defaultDepth = 4

	// flying with three pieces against 21 empty points is the
	// widest branching the board allows
	maxMoves = 3 * (morris.NumPoints - 3)
)

type MinimaxAI struct {
	cfg MinimaxConfig
	st  Stats

	evaluate EvaluationFunc

	root  morris.Color
	p     *morris.Position
	stack []frame

	cancel *int32
}

type frame struct {
	moves [maxMoves]morris.Move
	pv    []morris.Move
}

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	CutNodes  uint64
	Elapsed   time.Duration
}

type MinimaxConfig struct {
	Depth int
	Debug int

	Evaluate EvaluationFunc
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	if m.cfg.Depth <= 0 {
		m.cfg.Depth = defaultDepth
	}
	m.evaluate = cfg.Evaluate
	if m.evaluate == nil {
		m.evaluate = DefaultEvaluate
	}
	m.stack = make([]frame, m.cfg.Depth+1)
	for i := range m.stack {
		m.stack[i].pv = make([]morris.Move, 0, m.cfg.Depth)
	}
	return m
}

func formatpv(c morris.Color, ms []morris.Move) string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, m := range ms {
		if i != 0 {
			out.WriteString(" ")
		}
		out.WriteString(notation.FormatMove(m, c))
		c = c.Flip()
	}
	out.WriteString("]")
	return out.String()
}

// GetMove searches p for c and returns the chosen move, its capture
// resolved against p itself.
func (m *MinimaxAI) GetMove(ctx context.Context, p *morris.Position, c morris.Color) (morris.Move, error) {
	if !p.HasMoves(c) {
		return morris.Move{}, ErrNoMoves
	}
	ms, _, _ := m.Analyze(ctx, p, c)
	var move morris.Move
	if len(ms) > 0 {
		move = ms[0]
	} else {
		// nothing completed, or the game is already over
		move = p.AllMoves(c, nil)[0]
	}
	move.Capture = p.ResolveCapture(c, move)
	return move, nil
}

// Analyze runs an iterative-deepening alpha-beta search of p for c
// and returns the principal variation and value of the deepest
// completed iteration. Values are always from c's point of view. p is
// not modified.
func (m *MinimaxAI) Analyze(ctx context.Context, p *morris.Position, c morris.Color) ([]morris.Move, int64, Stats) {
	var cancel int32
	m.cancel = &cancel
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			atomic.StoreInt32(&cancel, 1)
		case <-done:
		}
	}()

	m.root = c
	m.p = p.Clone()

	var ms []morris.Move
	var v int64
	var st Stats
	top := time.Now()
	for depth := 1; depth <= m.cfg.Depth; depth++ {
		m.st = Stats{Depth: depth}
		start := time.Now()
		next, val := m.minimax(0, depth, MinEval-1, MaxEval+1, true, c)
		if atomic.LoadInt32(m.cancel) != 0 {
			if m.cfg.Debug > 0 {
				log.Debug().Int("depth", depth).Msg("[minimax] cancelled")
			}
			break
		}
		m.st.Elapsed = time.Since(start)
		ms = append(ms[:0], next...)
		v = val
		st = m.st
		if m.cfg.Debug > 0 {
			log.Debug().
				Int("depth", depth).
				Int64("val", v).
				Str("pv", formatpv(c, ms)).
				Dur("time", m.st.Elapsed).
				Dur("total", time.Since(top)).
				Uint64("evaluated", m.st.Evaluated).
				Msg("[minimax] deepen")
		}
		if m.cfg.Debug > 1 {
			log.Debug().
				Uint64("visited", m.st.Visited).
				Uint64("terminal", m.st.Terminal).
				Uint64("cut", m.st.CutNodes).
				Msg("[minimax]  stats")
		}
	}
	if st.Depth == 0 {
		// keep the counters of the interrupted iteration
		st = m.st
	}
	m.p = nil
	return ms, v, st
}

func (ai *MinimaxAI) minimax(
	ply, depth int,
	α, β int64,
	maximizing bool,
	toMove morris.Color) ([]morris.Move, int64) {
	if atomic.LoadInt32(ai.cancel) != 0 {
		return nil, 0
	}
	over, _ := ai.p.GameOver()
	if depth == 0 || over {
		ai.st.Evaluated++
		if over {
			ai.st.Terminal++
		}
		return nil, ai.evaluate(ai.p, ai.root)
	}

	ai.st.Visited++
	f := &ai.stack[ply]
	moves := ai.p.AllMoves(toMove, f.moves[:0])
	if len(moves) == 0 {
		// the side to move is stuck, which loses
		ai.st.Terminal++
		if maximizing {
			return nil, MinEval
		}
		return nil, MaxEval
	}

	best := MaxEval + 1
	if maximizing {
		best = MinEval - 1
	}
	pv := f.pv[:0]
	for _, m := range moves {
		if err := ai.p.MakeMove(toMove, m); err != nil {
			panic("minimax: generated illegal move: " + err.Error())
		}
		ms, v := ai.minimax(ply+1, depth-1, α, β, !maximizing, toMove.Flip())
		ai.p.UnmakeMove(toMove, m)
		if atomic.LoadInt32(ai.cancel) != 0 {
			return nil, 0
		}

		if maximizing {
			if v > best {
				best = v
				pv = append(append(pv[:0], m), ms...)
			}
			if best > α {
				α = best
			}
		} else {
			if v < best {
				best = v
				pv = append(append(pv[:0], m), ms...)
			}
			if best < β {
				β = best
			}
		}
		if β <= α {
			ai.st.CutNodes++
			break
		}
	}
	f.pv = pv
	return pv, best
}
