package morris

import (
	"errors"

	"github.com/nelhage/lasker/bitboard"
)

type MoveType byte

const (
	Place MoveType = 1 + iota
	Slide
)

// Move is either a placement from reserve onto To, or a slide from
// From to To. Slides cover flying as well: only the destinations the
// generator offers differ. Capture is the opponent piece removed
// because the move completed a mill, or NoPoint.
type Move struct {
	Type     MoveType
	From, To Point
	Capture  Point
}

var ErrBadMove = errors.New("invalid move type")

func PlaceMove(to Point) Move {
	return Move{Type: Place, From: NoPoint, To: to, Capture: NoPoint}
}

func SlideMove(from, to Point) Move {
	return Move{Type: Slide, From: from, To: to, Capture: NoPoint}
}

func (m Move) Equal(rhs Move) bool {
	return m == rhs
}

func (m Move) IsSlide() bool {
	return m.Type == Slide
}

// MakeMove applies m for c in place: the placement or slide (a fly
// when c is in the flying phase) followed by the attached capture. On
// error the position is left unchanged.
func (p *Position) MakeMove(c Color, m Move) error {
	var err error
	switch m.Type {
	case Place:
		err = p.Place(m.To, c)
	case Slide:
		if p.Phase(c) == Flying {
			err = p.Fly(m.From, m.To, c)
		} else {
			err = p.Slide(m.From, m.To, c)
		}
	default:
		return ErrBadMove
	}
	if err != nil {
		return err
	}
	if m.Capture != NoPoint {
		if err = p.Capture(m.Capture, c); err != nil {
			p.retract(c, m)
			return err
		}
	}
	return nil
}

// UnmakeMove reverts a successful MakeMove(c, m), restoring the
// captured piece, the moved piece and the reserve.
func (p *Position) UnmakeMove(c Color, m Move) {
	if m.Capture != NoPoint {
		*p.bits(c.Flip()) |= m.Capture.bit()
	}
	p.retract(c, m)
}

func (p *Position) retract(c Color, m Move) {
	own := p.bits(c)
	switch m.Type {
	case Place:
		*own &^= m.To.bit()
		*p.reserve(c)++
	case Slide:
		*own = *own&^m.To.bit() | m.From.bit()
	default:
		panic("bad move type")
	}
}

// ResolveCapture plays m (whose Capture is ignored) on a scratch copy
// of p and returns the piece c would capture: NoPoint unless the move
// completes a mill through its destination.
func (p *Position) ResolveCapture(c Color, m Move) Point {
	scratch := *p
	m.Capture = NoPoint
	if scratch.MakeMove(c, m) != nil {
		return NoPoint
	}
	if !scratch.MillAt(m.To, c) {
		return NoPoint
	}
	return scratch.BestCapture(c)
}

// CheckCapture verifies that m carries a capture exactly when it
// completes a mill through its destination and the opponent still
// has a piece on the board. It does not modify p.
func (p *Position) CheckCapture(c Color, m Move) error {
	scratch := *p
	capture := m.Capture
	m.Capture = NoPoint
	if err := scratch.MakeMove(c, m); err != nil {
		return err
	}
	mill := scratch.MillAt(m.To, c) && scratch.OnBoard(c.Flip()) > 0
	switch {
	case mill && capture == NoPoint:
		return ErrMissingCapture
	case !mill && capture != NoPoint:
		return ErrIllegalCapture
	case mill && scratch.At(capture) != c.Flip():
		return ErrIllegalCapture
	}
	return nil
}

// AllMoves appends every legal move for c to moves, in canonical
// order, each tagged with its capture.
func (p *Position) AllMoves(c Color, moves []Move) []Move {
	empty := p.empty()
	own := *p.bits(c)
	switch p.Phase(c) {
	case Placing:
		for to := Point(0); to < NumPoints; to++ {
			if empty&to.bit() == 0 {
				continue
			}
			moves = append(moves, p.tag(c, PlaceMove(to)))
		}
	case Sliding:
		for from := Point(0); from < NumPoints; from++ {
			if own&from.bit() == 0 {
				continue
			}
			for _, to := range adjacency[from] {
				if empty&to.bit() == 0 {
					continue
				}
				moves = append(moves, p.tag(c, SlideMove(from, to)))
			}
		}
	case Flying:
		for from := Point(0); from < NumPoints; from++ {
			if own&from.bit() == 0 {
				continue
			}
			for to := Point(0); to < NumPoints; to++ {
				if empty&to.bit() == 0 {
					continue
				}
				moves = append(moves, p.tag(c, SlideMove(from, to)))
			}
		}
	}
	return moves
}

func (p *Position) tag(c Color, m Move) Move {
	m.Capture = p.ResolveCapture(c, m)
	return m
}

// HasMoves reports whether AllMoves(c) would be non-empty.
func (p *Position) HasMoves(c Color) bool {
	empty := p.empty()
	own := *p.bits(c)
	switch p.Phase(c) {
	case Placing:
		return empty != 0
	case Flying:
		return own != 0 && empty != 0
	default:
		return bitboard.Grow(&graph, empty, own) != 0
	}
}
