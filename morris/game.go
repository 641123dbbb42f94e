package morris

import (
	"errors"
	"fmt"

	"github.com/nelhage/lasker/bitboard"
)

type Config struct {
	// Pieces is each side's initial reserve.
	Pieces int
}

const (
	defaultPieces = 10

	MinPieces = 3
	// MaxPieces lets both hands fit on the board at once.
	MaxPieces = NumPoints / 2
)

var (
	ErrOccupied       = errors.New("position is occupied")
	ErrNoReserve      = errors.New("no pieces left in reserve")
	ErrNotOwner       = errors.New("piece not owned by mover")
	ErrNotAdjacent    = errors.New("destination is not adjacent")
	ErrIllegalCapture = errors.New("illegal capture")
	ErrMissingCapture = errors.New("move completes a mill but captures nothing")
	ErrBadConfig      = errors.New("invalid config")
)

// Validate checks that Pieces is zero (the default) or within
// [MinPieces, MaxPieces].
func (g Config) Validate() error {
	if g.Pieces != 0 && (g.Pieces < MinPieces || g.Pieces > MaxPieces) {
		return fmt.Errorf("%w: pieces=%d, want %d..%d", ErrBadConfig, g.Pieces, MinPieces, MaxPieces)
	}
	return nil
}

// New returns the starting position for g. It panics if g does not
// Validate.
func New(g Config) *Position {
	if err := g.Validate(); err != nil {
		panic(err)
	}
	if g.Pieces == 0 {
		g.Pieces = defaultPieces
	}
	return &Position{
		cfg:           &g,
		blueReserve:   int8(g.Pieces),
		orangeReserve: int8(g.Pieces),
	}
}

// Position is the complete game state: who owns each point and how
// many pieces each side still holds in reserve. Blue and Orange are
// occupancy bitboards indexed by Point and never intersect.
type Position struct {
	cfg *Config

	Blue   uint64
	Orange uint64

	blueReserve   int8
	orangeReserve int8
}

// FromSquares initializes a Position with the given owner for every
// point and the given reserves.
func FromSquares(cfg Config, board [NumPoints]Color, blueReserve, orangeReserve int) (*Position, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := New(cfg)
	for i, c := range board {
		switch c {
		case NoColor:
		case Blue:
			p.Blue |= Point(i).bit()
		case Orange:
			p.Orange |= Point(i).bit()
		default:
			return nil, errors.New("bad color")
		}
	}
	if blueReserve < 0 || orangeReserve < 0 {
		return nil, errors.New("negative reserve")
	}
	if blueReserve > p.cfg.Pieces || orangeReserve > p.cfg.Pieces {
		return nil, fmt.Errorf("reserve exceeds %d pieces", p.cfg.Pieces)
	}
	p.blueReserve = int8(blueReserve)
	p.orangeReserve = int8(orangeReserve)
	for _, c := range [...]Color{Blue, Orange} {
		if p.Pieces(c) > p.cfg.Pieces {
			return nil, fmt.Errorf("%s has %d pieces, more than %d", c, p.Pieces(c), p.cfg.Pieces)
		}
	}
	return p, nil
}

func (p *Position) Config() Config {
	return *p.cfg
}

func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Equal reports whether p and o have the same owners and reserves.
func (p *Position) Equal(o *Position) bool {
	return p.Blue == o.Blue && p.Orange == o.Orange &&
		p.blueReserve == o.blueReserve && p.orangeReserve == o.orangeReserve
}

func (p *Position) At(pt Point) Color {
	switch {
	case !pt.Valid():
		return NoColor
	case p.Blue&pt.bit() != 0:
		return Blue
	case p.Orange&pt.bit() != 0:
		return Orange
	}
	return NoColor
}

func (p *Position) bits(c Color) *uint64 {
	switch c {
	case Blue:
		return &p.Blue
	case Orange:
		return &p.Orange
	}
	panic(fmt.Sprintf("bad color: %x", int(c)))
}

func (p *Position) reserve(c Color) *int8 {
	switch c {
	case Blue:
		return &p.blueReserve
	case Orange:
		return &p.orangeReserve
	}
	panic(fmt.Sprintf("bad color: %x", int(c)))
}

// Occupancy returns the set of points owned by c.
func (p *Position) Occupancy(c Color) uint64 {
	return *p.bits(c)
}

func (p *Position) empty() uint64 {
	return graph.Mask &^ (p.Blue | p.Orange)
}

func (p *Position) Reserve(c Color) int {
	return int(*p.reserve(c))
}

func (p *Position) OnBoard(c Color) int {
	return bitboard.Popcount(*p.bits(c))
}

// Pieces counts c's pieces on the board and in reserve.
func (p *Position) Pieces(c Color) int {
	return p.Reserve(c) + p.OnBoard(c)
}

func (p *Position) Phase(c Color) Phase {
	switch {
	case p.Reserve(c) > 0:
		return Placing
	case p.OnBoard(c) == 3:
		return Flying
	default:
		return Sliding
	}
}

// Place puts one of c's reserve pieces on pos.
func (p *Position) Place(pos Point, c Color) error {
	if !pos.Valid() {
		return ErrInvalidPoint
	}
	if p.empty()&pos.bit() == 0 {
		return ErrOccupied
	}
	r := p.reserve(c)
	if *r <= 0 {
		return ErrNoReserve
	}
	*r--
	*p.bits(c) |= pos.bit()
	return nil
}

// Slide moves c's piece from one point to an adjacent empty point.
func (p *Position) Slide(from, to Point, c Color) error {
	if !from.Valid() || !to.Valid() {
		return ErrInvalidPoint
	}
	if !Adjacent(from, to) {
		return ErrNotAdjacent
	}
	return p.Fly(from, to, c)
}

// Fly moves c's piece from one point to any empty point.
func (p *Position) Fly(from, to Point, c Color) error {
	if !from.Valid() || !to.Valid() {
		return ErrInvalidPoint
	}
	own := p.bits(c)
	if *own&from.bit() == 0 {
		return ErrNotOwner
	}
	if p.empty()&to.bit() == 0 {
		return ErrOccupied
	}
	*own = *own&^from.bit() | to.bit()
	return nil
}

// Capture removes the opponent's piece at pos on behalf of c.
func (p *Position) Capture(pos Point, c Color) error {
	if !pos.Valid() {
		return ErrInvalidPoint
	}
	opp := p.bits(c.Flip())
	if *opp&pos.bit() == 0 {
		return ErrIllegalCapture
	}
	*opp &^= pos.bit()
	return nil
}

// MillComplete reports whether c owns all three points of any mill.
func (p *Position) MillComplete(c Color) bool {
	own := *p.bits(c)
	for _, m := range millMasks {
		if own&m == m {
			return true
		}
	}
	return false
}

// MillAt reports whether pos lies on a mill entirely owned by c.
func (p *Position) MillAt(pos Point, c Color) bool {
	if !pos.Valid() {
		return false
	}
	own := *p.bits(c)
	for _, m := range pointMills[pos] {
		if own&m == m {
			return true
		}
	}
	return false
}

// protected returns c's pieces that sit inside one of c's completed
// mills.
func (p *Position) protected(c Color) uint64 {
	own := *p.bits(c)
	var out uint64
	for _, m := range millMasks {
		if own&m == m {
			out |= m
		}
	}
	return out
}

// Mobility counts c's options: every empty point while c holds
// reserve, plus every edge from one of c's pieces to an empty point.
func (p *Position) Mobility(c Color) int {
	empty := p.empty()
	n := 0
	if p.Reserve(c) > 0 {
		n += bitboard.Popcount(empty)
	}
	return n + bitboard.Edges(&graph, *p.bits(c), empty)
}

// OpenMills counts the mills where c owns two points and the third
// is empty.
func (p *Position) OpenMills(c Color) int {
	own := *p.bits(c)
	empty := p.empty()
	n := 0
	for _, m := range millMasks {
		if bitboard.Popcount(own&m) == 2 && bitboard.Popcount(empty&m) == 1 {
			n++
		}
	}
	return n
}

// Immobile counts c's pieces with no empty neighbour.
func (p *Position) Immobile(c Color) int {
	return bitboard.Popcount(bitboard.Isolated(&graph, *p.bits(c), p.empty()))
}

// GameOver reports whether the game has ended and who won. A side
// with fewer than three pieces in total loses; when both sides are
// short, or neither side can move, there is no winner.
func (p *Position) GameOver() (over bool, winner Color) {
	blueShort := p.Pieces(Blue) < 3
	orangeShort := p.Pieces(Orange) < 3
	switch {
	case blueShort && orangeShort:
		return true, NoColor
	case blueShort:
		return true, Orange
	case orangeShort:
		return true, Blue
	}
	if !p.HasMoves(Blue) && !p.HasMoves(Orange) {
		return true, NoColor
	}
	return false, NoColor
}
