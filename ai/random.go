package ai

import (
	"github.com/nelhage/lasker/morris"
	"golang.org/x/exp/rand"
	"golang.org/x/net/context"
)

type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, p *morris.Position, c morris.Color) (morris.Move, error) {
	moves := p.AllMoves(c, nil)
	if len(moves) == 0 {
		return morris.Move{}, ErrNoMoves
	}
	return moves[r.r.Intn(len(moves))], nil
}

func NewRandom(seed uint64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
