package ai

import (
	"errors"

	"github.com/nelhage/lasker/morris"
	"golang.org/x/net/context"
)

// ErrNoMoves is returned by GetMove when the side to move has no
// legal move.
var ErrNoMoves = errors.New("no legal moves")

type Player interface {
	GetMove(ctx context.Context, p *morris.Position, c morris.Color) (morris.Move, error)
}
